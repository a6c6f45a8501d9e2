package home

import (
	"context"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain"
)

// Repository defines the interface for Home persistence.
type Repository interface {
	domain.CatalogRepository[*Home]

	// CountRooms returns how many rooms reference the home.
	CountRooms(ctx context.Context, homeID id.ID) (int, error)
}
