package expense

import (
	"context"
	"time"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain"
)

// Repository defines operations for expense documents.
type Repository interface {
	Create(ctx context.Context, doc *Expense) error
	GetByID(ctx context.Context, docID id.ID) (*Expense, error)
	GetByNumber(ctx context.Context, number string) (*Expense, error)
	Update(ctx context.Context, doc *Expense) error
	Delete(ctx context.Context, docID id.ID) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Expense], error)

	GetForUpdate(ctx context.Context, docID id.ID) (*Expense, error)
}

// ListFilter for filtering expenses.
type ListFilter struct {
	domain.ListFilter

	HomeID   *id.ID
	Kind     *Kind
	Period   *types.Period
	DateFrom *time.Time
	DateTo   *time.Time
}
