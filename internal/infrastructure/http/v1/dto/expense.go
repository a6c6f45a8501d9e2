package dto

import (
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/documents/expense"
)

// --- Request DTOs ---

// CreateExpenseRequest is the request body for recording an expense.
type CreateExpenseRequest struct {
	HomeID      string       `json:"homeId" binding:"required"`
	Kind        string       `json:"kind" binding:"required"`
	Description string       `json:"description" binding:"required"`
	Period      types.Period `json:"period" binding:"required"`
	Amount      types.Money  `json:"amount" binding:"required"`
	Comment     string       `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateExpenseRequest) ToEntity() (*expense.Expense, error) {
	homeID, err := id.Parse(r.HomeID)
	if err != nil {
		return nil, err
	}

	e := expense.NewExpense(homeID, r.Period, expense.Kind(r.Kind), r.Amount)
	e.Description = r.Description
	e.Comment = r.Comment
	return e, nil
}

// UpdateExpenseRequest is the request body for updating an expense.
type UpdateExpenseRequest struct {
	Kind        string       `json:"kind" binding:"required"`
	Description string       `json:"description" binding:"required"`
	Period      types.Period `json:"period" binding:"required"`
	Amount      types.Money  `json:"amount" binding:"required"`
	Comment     string       `json:"comment"`
	Version     int          `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateExpenseRequest) ApplyTo(e *expense.Expense) {
	e.Kind = expense.Kind(r.Kind)
	e.Description = r.Description
	e.Period = r.Period
	e.PeriodMonth = r.Period.Month
	e.PeriodYear = r.Period.Year
	e.Amount = r.Amount
	e.Comment = r.Comment
	e.Version = r.Version
}

// --- Response DTOs ---

// ExpenseResponse is the response body for an expense.
type ExpenseResponse struct {
	DocumentResponse
	Kind        string       `json:"kind"`
	Description string       `json:"description"`
	Period      types.Period `json:"period"`
	Amount      types.Money  `json:"amount"`
}

// FromExpense creates response DTO from domain entity.
func FromExpense(e *expense.Expense) *ExpenseResponse {
	return &ExpenseResponse{
		DocumentResponse: FromDocument(e.Document),
		Kind:             string(e.Kind),
		Description:      e.Description,
		Period:           e.Period,
		Amount:           e.Amount,
	}
}
