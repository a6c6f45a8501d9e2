package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Period
		wantErr bool
	}{
		{"unpadded", "3/2025", Period{Month: 3, Year: 2025}, false},
		{"zero padded", "03/2025", Period{Month: 3, Year: 2025}, false},
		{"december", "12/2024", Period{Month: 12, Year: 2024}, false},
		{"surrounding spaces", " 7/2025 ", Period{Month: 7, Year: 2025}, false},
		{"month zero", "0/2025", Period{}, true},
		{"month thirteen", "13/2025", Period{}, true},
		{"year below range", "1/1999", Period{}, true},
		{"year above range", "1/2300", Period{}, true},
		{"missing slash", "32025", Period{}, true},
		{"not a number", "abc/2025", Period{}, true},
		{"empty", "", Period{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriod_PaddedAndUnpaddedCompareEqual(t *testing.T) {
	a, err := ParsePeriod("3/2025")
	require.NoError(t, err)
	b, err := ParsePeriod("03/2025")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, "3/2025", b.String(), "canonical form is unpadded")
}

func TestPeriod_Ordering(t *testing.T) {
	jan := Period{Month: 1, Year: 2025}
	dec := Period{Month: 12, Year: 2024}

	assert.True(t, dec.Before(jan))
	assert.False(t, jan.Before(dec))
	assert.Equal(t, jan, dec.Next(), "December rolls into January of next year")
	assert.Equal(t, Period{Month: 2, Year: 2025}, jan.Next())
}

func TestPeriod_Start(t *testing.T) {
	p := Period{Month: 3, Year: 2025}
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), p.Start())
}

func TestPeriodOf(t *testing.T) {
	p := PeriodOf(time.Date(2025, time.July, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, Period{Month: 7, Year: 2025}, p)
}

func TestPeriod_JSON(t *testing.T) {
	p := Period{Month: 3, Year: 2025}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `"3/2025"`, string(data))

	var parsed Period
	require.NoError(t, json.Unmarshal([]byte(`"03/2025"`), &parsed))
	assert.True(t, p.Equal(parsed))

	assert.Error(t, json.Unmarshal([]byte(`"13/2025"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`42`), &parsed))
}
