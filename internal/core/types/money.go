// Package types provides common type aliases and utilities.
package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// NewMoneyFromInt creates a Money value from whole currency units.
// Convenient for VND amounts, which have no minor unit.
func NewMoneyFromInt(v int64) Money {
	return decimal.NewFromInt(v)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// RoundVND rounds a monetary value to a whole VND unit (half-up).
// VND has no minor unit, so whole-unit rounding is the billing rule
// applied at tariff application time.
func RoundVND(m Money) Money {
	return m.Round(0)
}

// ParseDecimalOrZero parses a numeric string into a decimal.
// Blank or non-numeric input yields zero. Operators routinely leave
// reading fields empty or re-type them; the billing rules treat such
// input as zero rather than rejecting the whole form.
func ParseDecimalOrZero(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
