// Package room provides the Room catalog: a rentable unit inside a
// home, carrying its tariffs, flat fees, water billing policy and the
// meter readings carried over from the last finalized money slip.
package room

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/entity"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/billing"
)

// Status is the occupancy state of a room.
type Status string

const (
	StatusVacant   Status = "vacant"
	StatusOccupied Status = "occupied"
)

// Room represents one rentable unit.
type Room struct {
	entity.Catalog

	// HomeID references the home this room belongs to
	HomeID id.ID `db:"home_id" json:"homeId"`

	// Status is the occupancy state
	Status Status `db:"status" json:"status"`

	// RenterName is the current renter (denormalized for slips)
	RenterName string `db:"renter_name" json:"renterName"`

	// RenterID references the renter catalog entry, when known
	RenterID *id.ID `db:"renter_id" json:"renterId,omitempty"`

	// OccupantCount is how many people live in the room
	OccupantCount int `db:"occupant_count" json:"occupantCount"`

	// RentAmount is the monthly rent in VND
	RentAmount types.Money `db:"rent_amount" json:"rentAmount"`

	// ElectricityPrice is the per-unit electricity tariff
	ElectricityPrice types.Money `db:"electricity_price" json:"electricityPrice"`

	// WaterPolicy selects metered or fixed water billing
	WaterPolicy billing.WaterPolicy `db:"water_policy" json:"waterPolicy"`

	// WaterPrice is the per-unit water tariff. Only applied to metered
	// rooms; fixed-policy rooms have water covered by the rent.
	WaterPrice types.Money `db:"water_price" json:"waterPrice"`

	// ParkingFee is the flat monthly parking charge, zero if none
	ParkingFee types.Money `db:"parking_fee" json:"parkingFee"`

	// ServiceFee is the flat monthly service charge, zero if none
	ServiceFee types.Money `db:"service_fee" json:"serviceFee"`

	// OldElectricity is the electricity reading carried from the last
	// finalized slip
	OldElectricity decimal.Decimal `db:"old_electricity" json:"oldElectricity"`

	// OldWater is the water reading carried from the last finalized
	// slip. Unused for fixed-policy rooms.
	OldWater decimal.Decimal `db:"old_water" json:"oldWater"`
}

// NewRoom creates a Room attached to a home.
func NewRoom(code, name string, homeID id.ID) *Room {
	return &Room{
		Catalog:          entity.NewCatalog(code, name),
		HomeID:           homeID,
		Status:           StatusVacant,
		WaterPolicy:      billing.WaterMetered,
		RentAmount:       types.Zero(),
		ElectricityPrice: types.Zero(),
		WaterPrice:       types.Zero(),
		ParkingFee:       types.Zero(),
		ServiceFee:       types.Zero(),
	}
}

// Validate implements entity.Validatable.
func (r *Room) Validate(ctx context.Context) error {
	if err := r.Catalog.Validate(ctx); err != nil {
		return err
	}
	if id.IsNil(r.HomeID) {
		return apperror.NewValidation("homeId is required").
			WithDetail("field", "homeId")
	}
	switch r.Status {
	case StatusVacant, StatusOccupied:
	default:
		return apperror.NewValidation("invalid room status").
			WithDetail("field", "status").
			WithDetail("value", string(r.Status))
	}
	switch r.WaterPolicy {
	case billing.WaterMetered, billing.WaterFixed:
	default:
		return apperror.NewValidation("water policy must be metered or fixed").
			WithDetail("field", "waterPolicy").
			WithDetail("value", string(r.WaterPolicy))
	}
	if r.OccupantCount < 0 {
		return apperror.NewValidation("occupant count cannot be negative").
			WithDetail("field", "occupantCount")
	}
	for field, amount := range map[string]types.Money{
		"rentAmount":       r.RentAmount,
		"electricityPrice": r.ElectricityPrice,
		"waterPrice":       r.WaterPrice,
		"parkingFee":       r.ParkingFee,
		"serviceFee":       r.ServiceFee,
	} {
		if amount.IsNegative() {
			return apperror.NewValidation("amount cannot be negative").
				WithDetail("field", field)
		}
	}
	return nil
}

// BillingInfo snapshots the room for slip building.
func (r *Room) BillingInfo() billing.RoomInfo {
	return billing.RoomInfo{
		RoomID:           r.ID,
		HomeID:           r.HomeID,
		Code:             r.Code,
		RenterName:       r.RenterName,
		OccupantCount:    r.OccupantCount,
		RentAmount:       r.RentAmount,
		ElectricityPrice: r.ElectricityPrice,
		WaterPrice:       r.WaterPrice,
		WaterPolicy:      r.WaterPolicy,
		OldElectricity:   r.OldElectricity,
		OldWater:         r.OldWater,
		ParkingFee:       r.ParkingFee,
		ServiceFee:       r.ServiceFee,
	}
}

// Occupy assigns a renter to the room.
func (r *Room) Occupy(renterID id.ID, renterName string, occupants int) {
	r.Status = StatusOccupied
	r.RenterID = &renterID
	r.RenterName = renterName
	r.OccupantCount = occupants
}

// Vacate clears the renter assignment.
func (r *Room) Vacate() {
	r.Status = StatusVacant
	r.RenterID = nil
	r.RenterName = ""
	r.OccupantCount = 0
}
