package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/anmds2025/roomify/internal/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestConsumption_NormalDelta(t *testing.T) {
	got := Consumption(dec("100"), dec("150"))
	assert.True(t, got.Equal(dec("50")), "got %s", got)
}

func TestConsumption_NegativeDeltaClampsToZero(t *testing.T) {
	// Meter reset: old=500, new=10 must bill zero, not -490.
	got := Consumption(dec("500"), dec("10"))
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestConsumption_EqualReadings(t *testing.T) {
	got := Consumption(dec("320"), dec("320"))
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestParseReading_NonNumericIsZero(t *testing.T) {
	cases := []string{"", "   ", "abc", "12,5a", "-"}
	for _, s := range cases {
		assert.True(t, ParseReading(s).IsZero(), "input %q", s)
	}
}

func TestParseReading_Numeric(t *testing.T) {
	assert.True(t, ParseReading("150").Equal(dec("150")))
	assert.True(t, ParseReading(" 42.5 ").Equal(dec("42.5")))
}

func TestApplyTariff(t *testing.T) {
	got := ApplyTariff(dec("50"), dec("3000"))
	assert.True(t, got.Equal(types.NewMoneyFromInt(150000)), "got %s", got)
}

func TestApplyTariff_MissingPriceIsZero(t *testing.T) {
	got := ApplyTariff(dec("50"), decimal.Zero)
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestApplyTariff_RoundsToWholeVND(t *testing.T) {
	// 3 units at 3333.5 = 10000.5 rounds half-up to 10001.
	got := ApplyTariff(dec("3"), dec("3333.5"))
	assert.True(t, got.Equal(types.NewMoneyFromInt(10001)), "got %s", got)
}
