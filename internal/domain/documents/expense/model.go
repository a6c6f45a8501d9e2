// Package expense provides the Expense document: money the landlord
// spent on a property in a period. Expenses reduce profit in period
// summaries.
package expense

import (
	"context"
	"strings"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/entity"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/billing"
)

// Kind classifies an expense.
type Kind string

const (
	KindMaintenance Kind = "maintenance"
	KindUtility     Kind = "utility"
	KindTax         Kind = "tax"
	KindOther       Kind = "other"
)

// Expense represents one landlord outlay.
type Expense struct {
	entity.Document

	// Kind classifies the outlay
	Kind Kind `db:"kind" json:"kind"`

	// Description says what the money went to
	Description string `db:"description" json:"description"`

	// Period is the month the expense belongs to. Stored as two
	// integer columns so period queries stay numeric.
	Period      types.Period `db:"-" json:"period"`
	PeriodMonth int          `db:"period_month" json:"-"`
	PeriodYear  int          `db:"period_year" json:"-"`

	// Amount is the outlay in VND, always positive
	Amount types.Money `db:"amount" json:"amount"`
}

// NewExpense creates an expense for a home and period.
func NewExpense(homeID id.ID, period types.Period, kind Kind, amount types.Money) *Expense {
	return &Expense{
		Document:    entity.NewDocument(homeID),
		Kind:        kind,
		Period:      period,
		PeriodMonth: period.Month,
		PeriodYear:  period.Year,
		Amount:      amount,
	}
}

// Validate implements entity.Validatable.
func (e *Expense) Validate(ctx context.Context) error {
	if err := e.Document.Validate(ctx); err != nil {
		return err
	}

	switch e.Kind {
	case KindMaintenance, KindUtility, KindTax, KindOther:
	default:
		return apperror.NewValidation("invalid expense kind").
			WithDetail("field", "kind").
			WithDetail("value", string(e.Kind))
	}

	if err := e.Period.Validate(); err != nil {
		return apperror.NewValidation(err.Error()).
			WithDetail("field", "period")
	}

	if strings.TrimSpace(e.Description) == "" {
		return apperror.NewValidation("description is required").
			WithDetail("field", "description")
	}

	if e.Amount.Sign() <= 0 {
		return apperror.NewValidation("amount must be positive").
			WithDetail("field", "amount")
	}

	return nil
}

// Facts returns the expense's aggregation view for reports.
func (e *Expense) Facts() billing.ExpenseFacts {
	return billing.ExpenseFacts{Period: e.Period, Amount: e.Amount}
}
