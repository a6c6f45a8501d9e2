package contract

import (
	"context"
	"time"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain"
)

// Repository defines operations for contract documents.
type Repository interface {
	Create(ctx context.Context, doc *Contract) error
	GetByID(ctx context.Context, docID id.ID) (*Contract, error)
	GetByNumber(ctx context.Context, number string) (*Contract, error)
	Update(ctx context.Context, doc *Contract) error
	Delete(ctx context.Context, docID id.ID) error

	List(ctx context.Context, filter ListFilter) (domain.ListResult[*Contract], error)

	// FindActiveByRoom retrieves the active contract on a room, if any.
	FindActiveByRoom(ctx context.Context, roomID id.ID) (*Contract, error)

	GetForUpdate(ctx context.Context, docID id.ID) (*Contract, error)
}

// ListFilter for filtering contracts.
type ListFilter struct {
	domain.ListFilter

	HomeID   *id.ID
	RoomID   *id.ID
	RenterID *id.ID
	Status   *Status
	DateFrom *time.Time
	DateTo   *time.Time
}
