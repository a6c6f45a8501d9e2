package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
)

// RoomInfo is the billing view of a room: everything needed to build a
// money slip, snapshotted from the room catalog at build time so the
// draft stays stable even if the catalog changes mid-flight.
type RoomInfo struct {
	RoomID           id.ID
	HomeID           id.ID
	Code             string
	RenterName       string
	OccupantCount    int
	RentAmount       types.Money
	ElectricityPrice types.Money
	WaterPrice       types.Money
	WaterPolicy      WaterPolicy
	OldElectricity   decimal.Decimal
	OldWater         decimal.Decimal
	ParkingFee       types.Money
	ServiceFee       types.Money
}

// BuildInput carries the per-period operator input for one room.
// Reading fields are raw strings as entered: blank means "not filled
// in", anything else parses leniently (non-numeric becomes zero).
type BuildInput struct {
	Room           RoomInfo
	NewElectricity string
	NewWater       string
	Debt           types.Money
	ExtraCharges   []LineItem
}

// ReadingSnapshot records the meter values a slip was built from.
type ReadingSnapshot struct {
	OldElectricity decimal.Decimal `json:"oldElectricity"`
	NewElectricity decimal.Decimal `json:"newElectricity"`
	OldWater       decimal.Decimal `json:"oldWater"`
	NewWater       decimal.Decimal `json:"newWater"`
}

// Draft is a fully computed money slip before persistence: the line
// items, their exact sum, the consumptions and the readings they came
// from.
type Draft struct {
	Lines                  []LineItem
	Total                  types.Money
	ElectricityConsumption decimal.Decimal
	WaterConsumption       decimal.Decimal
	Readings               ReadingSnapshot
}

// Build computes a money-slip draft for one room and one period of
// operator input.
//
// The room rent line is always present. Electricity is billed from the
// reading delta. Water is billed from readings only under the metered
// policy; fixed-policy rooms get a flat water line when the fee is set.
// Parking and service lines appear only when their fees are non-zero,
// debt only when non-zero (it keeps its sign). The total is the exact
// sum of the line amounts.
//
// A blank required reading is a validation error: new electricity is
// always required, new water only for metered rooms.
func Build(in BuildInput) (Draft, error) {
	if err := validateReadings(in); err != nil {
		return Draft{}, err
	}

	newElec := ParseReading(in.NewElectricity)
	elecConsumption := Consumption(in.Room.OldElectricity, newElec)

	var newWater, waterConsumption decimal.Decimal
	if in.Room.WaterPolicy == WaterMetered {
		newWater = ParseReading(in.NewWater)
		waterConsumption = Consumption(in.Room.OldWater, newWater)
	}

	lines := make([]LineItem, 0, 6+len(in.ExtraCharges))
	lines = append(lines, LineItem{Category: CategoryRoom, Amount: types.RoundVND(in.Room.RentAmount)})
	lines = append(lines, LineItem{Category: CategoryElectricity, Amount: ApplyTariff(elecConsumption, in.Room.ElectricityPrice)})

	// Fixed-policy rooms carry no water line at all: water is covered
	// by the rent, not billed as a separate charge.
	if in.Room.WaterPolicy == WaterMetered {
		lines = append(lines, LineItem{Category: CategoryWater, Amount: ApplyTariff(waterConsumption, in.Room.WaterPrice)})
	}

	if !in.Room.ParkingFee.IsZero() {
		lines = append(lines, LineItem{Category: CategoryParking, Amount: types.RoundVND(in.Room.ParkingFee)})
	}
	if !in.Room.ServiceFee.IsZero() {
		lines = append(lines, LineItem{Category: CategoryService, Amount: types.RoundVND(in.Room.ServiceFee)})
	}
	if !in.Debt.IsZero() {
		lines = append(lines, LineItem{Category: CategoryDebt, Amount: types.RoundVND(in.Debt)})
	}
	for _, extra := range in.ExtraCharges {
		lines = append(lines, LineItem{Category: CategoryOther, Amount: types.RoundVND(extra.Amount)})
	}

	total := types.Zero()
	for _, line := range lines {
		total = total.Add(line.Amount)
	}

	return Draft{
		Lines:                  lines,
		Total:                  total,
		ElectricityConsumption: elecConsumption,
		WaterConsumption:       waterConsumption,
		Readings: ReadingSnapshot{
			OldElectricity: in.Room.OldElectricity,
			NewElectricity: newElec,
			OldWater:       in.Room.OldWater,
			NewWater:       newWater,
		},
	}, nil
}

func validateReadings(in BuildInput) error {
	var missing []string
	if strings.TrimSpace(in.NewElectricity) == "" {
		missing = append(missing, "newElectricity")
	}
	if in.Room.WaterPolicy == WaterMetered && strings.TrimSpace(in.NewWater) == "" {
		missing = append(missing, "newWater")
	}
	if len(missing) > 0 {
		return apperror.NewValidation("missing meter readings").
			WithDetail("roomCode", in.Room.Code).
			WithDetail("fields", missing)
	}
	return nil
}
