// Package contract provides the Contract document: the rental
// agreement binding a renter to a room, with deposit and agreed rent.
// An active contract marks its room occupied; ending the contract
// vacates the room and settles the deposit.
package contract

import (
	"context"
	"time"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/entity"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
)

// Status is the lifecycle state of a contract.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

// Contract represents one rental agreement.
type Contract struct {
	entity.Document

	// RoomID references the rented room
	RoomID id.ID `db:"room_id" json:"roomId"`

	// RenterID references the renter
	RenterID id.ID `db:"renter_id" json:"renterId"`

	// RenterName is denormalized for display and slips
	RenterName string `db:"renter_name" json:"renterName"`

	// OccupantCount is how many people move in under this contract
	OccupantCount int `db:"occupant_count" json:"occupantCount"`

	// Status is the lifecycle state
	Status Status `db:"status" json:"status"`

	// StartDate is when the tenancy begins
	StartDate time.Time `db:"start_date" json:"startDate"`

	// EndDate is set when the contract is ended
	EndDate *time.Time `db:"end_date" json:"endDate,omitempty"`

	// Deposit is the security deposit held, in VND
	Deposit types.Money `db:"deposit" json:"deposit"`

	// MonthlyRent is the agreed rent, in VND
	MonthlyRent types.Money `db:"monthly_rent" json:"monthlyRent"`

	// DepositReturned is how much of the deposit was paid back at end
	DepositReturned types.Money `db:"deposit_returned" json:"depositReturned"`
}

// NewContract creates an active contract.
func NewContract(homeID, roomID, renterID id.ID, start time.Time) *Contract {
	return &Contract{
		Document:        entity.NewDocument(homeID),
		RoomID:          roomID,
		RenterID:        renterID,
		OccupantCount:   1,
		Status:          StatusActive,
		StartDate:       start,
		Deposit:         types.Zero(),
		MonthlyRent:     types.Zero(),
		DepositReturned: types.Zero(),
	}
}

// Validate implements entity.Validatable.
func (c *Contract) Validate(ctx context.Context) error {
	if err := c.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(c.RoomID) {
		return apperror.NewValidation("room is required").
			WithDetail("field", "roomId")
	}
	if id.IsNil(c.RenterID) {
		return apperror.NewValidation("renter is required").
			WithDetail("field", "renterId")
	}

	switch c.Status {
	case StatusActive, StatusEnded:
	default:
		return apperror.NewValidation("invalid contract status").
			WithDetail("field", "status").
			WithDetail("value", string(c.Status))
	}

	if c.StartDate.IsZero() {
		return apperror.NewValidation("start date is required").
			WithDetail("field", "startDate")
	}
	if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		return apperror.NewValidation("end date cannot precede start date").
			WithDetail("field", "endDate")
	}

	if c.OccupantCount < 1 {
		return apperror.NewValidation("occupant count must be at least 1").
			WithDetail("field", "occupantCount")
	}
	if c.Deposit.IsNegative() || c.MonthlyRent.IsNegative() {
		return apperror.NewValidation("amounts cannot be negative")
	}

	return nil
}

// IsActive reports whether the tenancy is ongoing.
func (c *Contract) IsActive() bool {
	return c.Status == StatusActive
}

// End closes the contract and records the returned deposit.
func (c *Contract) End(when time.Time, depositReturned types.Money) error {
	if c.Status == StatusEnded {
		return apperror.NewConflict("contract is already ended").
			WithDetail("contractId", c.ID)
	}
	if depositReturned.IsNegative() || depositReturned.GreaterThan(c.Deposit) {
		return apperror.NewValidation("returned deposit must be between zero and the held deposit").
			WithDetail("field", "depositReturned").
			WithDetail("held", c.Deposit)
	}
	c.Status = StatusEnded
	c.EndDate = &when
	c.DepositReturned = depositReturned
	c.Touch()
	return nil
}
