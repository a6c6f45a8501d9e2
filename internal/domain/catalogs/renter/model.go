// Package renter provides the Renter catalog: the people who rent
// rooms, with contact details and identity papers.
package renter

import (
	"context"
	"regexp"
	"time"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/entity"
)

// Renter represents one tenant person. Name lives in the base catalog
// Name field.
type Renter struct {
	entity.Catalog

	// Phone is the contact number, digits only with optional leading +
	Phone string `db:"phone" json:"phone"`

	// Email is optional
	Email *string `db:"email" json:"email,omitempty"`

	// IdentityNumber is the citizen ID / passport number
	IdentityNumber *string `db:"identity_number" json:"identityNumber,omitempty"`

	// Hometown is the registered place of origin
	Hometown *string `db:"hometown" json:"hometown,omitempty"`

	// MoveInDate is when the renter moved in, if currently housed
	MoveInDate *time.Time `db:"move_in_date" json:"moveInDate,omitempty"`

	// Note is free-form operator commentary
	Note *string `db:"note" json:"note,omitempty"`
}

var phonePattern = regexp.MustCompile(`^\+?\d{8,15}$`)

// NewRenter creates a Renter with required fields.
func NewRenter(code, name, phone string) *Renter {
	return &Renter{
		Catalog: entity.NewCatalog(code, name),
		Phone:   phone,
	}
}

// Validate implements entity.Validatable.
func (r *Renter) Validate(ctx context.Context) error {
	if err := r.Catalog.Validate(ctx); err != nil {
		return err
	}
	if !phonePattern.MatchString(r.Phone) {
		return apperror.NewValidation("phone must be 8-15 digits").
			WithDetail("field", "phone").
			WithDetail("value", r.Phone)
	}
	return nil
}
