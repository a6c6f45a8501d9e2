package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Period identifies a billing month. The canonical wire form is the
// unpadded "M/YYYY" string used across the application ("3/2025").
// Parsing also accepts the zero-padded form ("03/2025") and normalizes
// it, so "3/2025" and "03/2025" compare equal by month and year value.
type Period struct {
	Month int
	Year  int
}

// PeriodAll is the aggregate-all marker accepted by report queries.
const PeriodAll = "All"

// NewPeriod creates a validated Period.
func NewPeriod(month, year int) (Period, error) {
	p := Period{Month: month, Year: year}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodOf returns the Period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// ParsePeriod parses "M/YYYY" or "MM/YYYY" into a Period.
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return Period{}, fmt.Errorf("invalid period %q: want M/YYYY", s)
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Period{}, fmt.Errorf("invalid period month %q: %w", parts[0], err)
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Period{}, fmt.Errorf("invalid period year %q: %w", parts[1], err)
	}

	return NewPeriod(month, year)
}

// Validate checks month and year ranges. Years are bounded to
// 2000-2200: anything outside is a typo in practice (a two-digit year,
// a fat-fingered extra digit), not real billing data.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("period month %d out of range 1-12", p.Month)
	}
	if p.Year < 2000 || p.Year > 2200 {
		return fmt.Errorf("period year %d out of range", p.Year)
	}
	return nil
}

// String returns the canonical unpadded form, e.g. "3/2025".
func (p Period) String() string {
	return fmt.Sprintf("%d/%d", p.Month, p.Year)
}

// IsZero reports whether the period is unset.
func (p Period) IsZero() bool {
	return p.Month == 0 && p.Year == 0
}

// Equal compares by numeric month/year value, not string form.
func (p Period) Equal(other Period) bool {
	return p.Month == other.Month && p.Year == other.Year
}

// Before reports whether p is an earlier month than other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

// Next returns the following month.
func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Month: 1, Year: p.Year + 1}
	}
	return Period{Month: p.Month + 1, Year: p.Year}
}

// Start returns midnight UTC on the first day of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// MarshalJSON encodes the period as its canonical string.
func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(p.String())), nil
}

// UnmarshalJSON accepts the "M/YYYY" string form.
func (p *Period) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("period must be a JSON string: %w", err)
	}
	parsed, err := ParsePeriod(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
