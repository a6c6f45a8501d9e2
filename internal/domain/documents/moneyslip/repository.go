// Package moneyslip provides the MoneySlip document repository.
package moneyslip

import (
	"context"
	"time"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain"
)

// Repository defines operations for money slip documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *MoneySlip) error
	GetByID(ctx context.Context, docID id.ID) (*MoneySlip, error)
	GetByNumber(ctx context.Context, number string) (*MoneySlip, error)
	Update(ctx context.Context, doc *MoneySlip) error
	Delete(ctx context.Context, docID id.ID) error

	// Line operations
	GetLines(ctx context.Context, docID id.ID) ([]Line, error)
	SaveLines(ctx context.Context, docID id.ID, lines []Line) error

	// List operations
	List(ctx context.Context, filter ListFilter) (domain.ListResult[*MoneySlip], error)

	// FindByRoomAndPeriod retrieves the slip for a room in a period,
	// if one exists. Bulk runs use this to refuse double billing.
	FindByRoomAndPeriod(ctx context.Context, roomID id.ID, period types.Period) (*MoneySlip, error)

	// Locking
	GetForUpdate(ctx context.Context, docID id.ID) (*MoneySlip, error)
}

// ListFilter for filtering money slips.
type ListFilter struct {
	domain.ListFilter

	// Document-specific filters
	HomeID    *id.ID
	RoomID    *id.ID
	Period    *types.Period
	Finalized *bool
	DateFrom  *time.Time
	DateTo    *time.Time
}
