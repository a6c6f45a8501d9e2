package renter

import (
	"context"

	"github.com/anmds2025/roomify/internal/domain"
)

// Repository defines the interface for Renter persistence.
type Repository interface {
	domain.CatalogRepository[*Renter]

	// FindByPhone retrieves a renter by phone number.
	FindByPhone(ctx context.Context, phone string) (*Renter, error)
}
