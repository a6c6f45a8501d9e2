package room

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain"
)

// Repository defines the interface for Room persistence.
type Repository interface {
	domain.CatalogRepository[*Room]

	// FindByHome lists rooms of one home, ordered by code.
	FindByHome(ctx context.Context, homeID id.ID) ([]*Room, error)

	// FindOccupied lists occupied rooms across all homes, ordered by
	// code. Bulk slip runs seed from this set.
	FindOccupied(ctx context.Context) ([]*Room, error)

	// UpdateReadings writes the carried-over meter readings. Called
	// when a money slip is finalized.
	UpdateReadings(ctx context.Context, roomID id.ID, electricity, water decimal.Decimal) error
}
