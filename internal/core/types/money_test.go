package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundVND(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1000", "1000"},
		{"1000.4", "1000"},
		{"1000.5", "1001"},
		{"1000.6", "1001"},
		{"-1000.5", "-1001"},
		{"0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := RoundVND(MustMoney(tt.input))
			assert.True(t, got.Equal(MustMoney(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("3500000")
	require.NoError(t, err)
	assert.True(t, m.Equal(NewMoneyFromInt(3500000)))

	_, err = NewMoneyFromString("not money")
	assert.Error(t, err)
}

func TestParseDecimalOrZero(t *testing.T) {
	assert.True(t, ParseDecimalOrZero("123.5").Equal(MustMoney("123.5")))
	assert.True(t, ParseDecimalOrZero("  42 ").Equal(MustMoney("42")))
	assert.True(t, ParseDecimalOrZero("").IsZero(), "blank input is zero")
	assert.True(t, ParseDecimalOrZero("n/a").IsZero(), "garbage input is zero")
}
