// Package billing implements the utility-reading and billing computation
// engine: meter-reading deltas, tariff application, money-slip line item
// building, period aggregation and bulk slip planning. Everything in this
// package is pure computation over its inputs; persistence and transport
// live elsewhere.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/anmds2025/roomify/internal/core/types"
)

// Category classifies a money-slip line item.
type Category string

const (
	CategoryRoom        Category = "room"
	CategoryElectricity Category = "electricity"
	CategoryWater       Category = "water"
	CategoryParking     Category = "parking"
	CategoryService     Category = "service"
	CategoryDebt        Category = "debt"
	CategoryOther       Category = "other"
)

// WaterPolicy selects how a room is billed for water.
type WaterPolicy string

const (
	// WaterMetered bills water from meter readings.
	WaterMetered WaterPolicy = "metered"

	// WaterFixed bills water as a flat monthly fee. Rooms with this
	// policy have no water reading fields at all.
	WaterFixed WaterPolicy = "fixed"
)

// LineItem is one charge on a money slip. Amount is signed: the debt
// category may carry a negative value (carry-over credit).
type LineItem struct {
	Category Category    `json:"category"`
	Amount   types.Money `json:"amount"`
}

// ParseReading converts raw operator input into a meter reading value.
// Blank or non-numeric input parses to zero; validation of required
// fields happens before parsing (see Build).
func ParseReading(s string) decimal.Decimal {
	return types.ParseDecimalOrZero(s)
}

// Consumption computes usage for a billing period from two meter
// readings. Negative deltas (meter reset, re-entered reading) clamp to
// zero: the operational rule is to never bill negative consumption.
func Consumption(oldValue, newValue decimal.Decimal) decimal.Decimal {
	if newValue.GreaterThan(oldValue) {
		return newValue.Sub(oldValue)
	}
	return decimal.Zero
}

// ApplyTariff converts a consumption quantity and a unit price into a
// charge. A missing or non-positive price yields zero: billing a
// category with an unconfigured tariff produces no revenue for that
// category instead of blocking slip creation. Amounts round half-up to
// the whole VND unit.
func ApplyTariff(consumption, unitPrice decimal.Decimal) types.Money {
	if unitPrice.Sign() <= 0 || consumption.Sign() <= 0 {
		return types.Zero()
	}
	return types.RoundVND(consumption.Mul(unitPrice))
}
