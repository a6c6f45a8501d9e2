// Package moneyslip provides the MoneySlip document: the monthly bill
// issued to a room's renter, built from meter readings and the room's
// tariffs. A finalized slip is immutable; its readings become the
// room's carried-over readings for the next period.
package moneyslip

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/entity"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/billing"
)

// MoneySlip represents one monthly bill for one room.
type MoneySlip struct {
	entity.Document

	// RoomID references the billed room
	RoomID id.ID `db:"room_id" json:"roomId"`

	// RoomCode and RenterName are denormalized at build time so the
	// slip stays readable after the room changes hands
	RoomCode   string `db:"room_code" json:"roomCode"`
	RenterName string `db:"renter_name" json:"renterName"`

	// Period is the billed month. Stored as two integer columns so
	// period queries stay numeric.
	Period      types.Period `db:"-" json:"period"`
	PeriodMonth int          `db:"period_month" json:"-"`
	PeriodYear  int          `db:"period_year" json:"-"`

	// Meter readings the slip was computed from
	OldElectricity decimal.Decimal `db:"old_electricity" json:"oldElectricity"`
	NewElectricity decimal.Decimal `db:"new_electricity" json:"newElectricity"`
	OldWater       decimal.Decimal `db:"old_water" json:"oldWater"`
	NewWater       decimal.Decimal `db:"new_water" json:"newWater"`

	// TotalAmount is the exact sum of line amounts, in VND
	TotalAmount types.Money `db:"total_amount" json:"totalAmount"`

	// PaidAmount tracks payments received against the slip
	PaidAmount types.Money `db:"paid_amount" json:"paidAmount"`

	// Table part: charges
	Lines []Line `db:"-" json:"lines"`
}

// Line represents one charge on the slip.
type Line struct {
	LineID   id.ID            `db:"line_id" json:"lineId"`
	LineNo   int              `db:"line_no" json:"lineNo"`
	Category billing.Category `db:"category" json:"category"`
	Amount   types.Money      `db:"amount" json:"amount"`
}

// NewMoneySlip creates a slip for a room and period.
func NewMoneySlip(homeID, roomID id.ID, period types.Period) *MoneySlip {
	return &MoneySlip{
		Document:    entity.NewDocument(homeID),
		RoomID:      roomID,
		Period:      period,
		PeriodMonth: period.Month,
		PeriodYear:  period.Year,
		TotalAmount: types.Zero(),
		PaidAmount:  types.Zero(),
		Lines:       make([]Line, 0),
	}
}

// ApplyDraft fills the slip from a computed billing draft.
func (m *MoneySlip) ApplyDraft(room billing.RoomInfo, draft billing.Draft) {
	m.RoomCode = room.Code
	m.RenterName = room.RenterName
	m.OldElectricity = draft.Readings.OldElectricity
	m.NewElectricity = draft.Readings.NewElectricity
	m.OldWater = draft.Readings.OldWater
	m.NewWater = draft.Readings.NewWater
	m.TotalAmount = draft.Total

	m.Lines = m.Lines[:0]
	for i, line := range draft.Lines {
		m.Lines = append(m.Lines, Line{
			LineID:   id.New(),
			LineNo:   i + 1,
			Category: line.Category,
			Amount:   line.Amount,
		})
	}
}

// Validate implements entity.Validatable.
func (m *MoneySlip) Validate(ctx context.Context) error {
	if err := m.Document.Validate(ctx); err != nil {
		return err
	}

	if id.IsNil(m.RoomID) {
		return apperror.NewValidation("room is required").
			WithDetail("field", "roomId")
	}

	if err := m.Period.Validate(); err != nil {
		return apperror.NewValidation(err.Error()).
			WithDetail("field", "period")
	}

	if len(m.Lines) == 0 {
		return apperror.NewValidation("at least one line is required").
			WithDetail("field", "lines")
	}

	sum := types.Zero()
	for i, line := range m.Lines {
		if line.Category == "" {
			return apperror.NewValidation("line category is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		sum = sum.Add(line.Amount)
	}
	if !sum.Equal(m.TotalAmount) {
		return apperror.NewValidation("total does not match line sum").
			WithDetail("total", m.TotalAmount).
			WithDetail("lineSum", sum)
	}

	return nil
}

// Outstanding returns the unpaid remainder.
func (m *MoneySlip) Outstanding() types.Money {
	return m.TotalAmount.Sub(m.PaidAmount)
}

// IsSettled reports whether payments cover the total.
func (m *MoneySlip) IsSettled() bool {
	return m.PaidAmount.GreaterThanOrEqual(m.TotalAmount)
}

// Facts returns the slip's aggregation view for reports.
func (m *MoneySlip) Facts() billing.SlipFacts {
	lines := make([]billing.LineItem, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, billing.LineItem{Category: l.Category, Amount: l.Amount})
	}
	return billing.SlipFacts{Period: m.Period, Lines: lines}
}
