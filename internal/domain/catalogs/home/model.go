// Package home provides the Home catalog: a managed rental property
// (building or house) that groups rooms.
package home

import (
	"context"
	"strings"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/entity"
)

// Home represents one managed property.
type Home struct {
	entity.Catalog

	// Address is the street address of the property
	Address string `db:"address" json:"address"`

	// ManagerName is the on-site manager, if any
	ManagerName *string `db:"manager_name" json:"managerName,omitempty"`

	// ManagerPhone is the manager contact number
	ManagerPhone *string `db:"manager_phone" json:"managerPhone,omitempty"`

	// Note is free-form operator commentary
	Note *string `db:"note" json:"note,omitempty"`
}

// NewHome creates a Home with required fields.
func NewHome(code, name, address string) *Home {
	return &Home{
		Catalog: entity.NewCatalog(code, name),
		Address: address,
	}
}

// Validate implements entity.Validatable.
func (h *Home) Validate(ctx context.Context) error {
	if err := h.Catalog.Validate(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(h.Address) == "" {
		return apperror.NewValidation("address is required").
			WithDetail("field", "address")
	}
	return nil
}
