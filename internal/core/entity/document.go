package entity

import (
	"context"
	"time"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
)

// Document is the base type for business transactions.
// Examples: MoneySlip, Expense, Contract.
type Document struct {
	BaseDocument

	// Number is the document number (auto-generated, unique within type+period)
	Number string `db:"number" json:"number"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Finalized indicates the document is locked for editing.
	// A finalized money slip is the bill that was handed to the renter;
	// corrections create a new document.
	Finalized bool `db:"finalized" json:"finalized"`

	// HomeID is the owning home (required: every document is scoped to a home)
	HomeID id.ID `db:"home_id" json:"homeId"`

	// Comment is an optional user comment
	Comment string `db:"comment" json:"comment,omitempty"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument(homeID id.ID) Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		Date:         time.Now().UTC(),
		HomeID:       homeID,
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if id.IsNil(d.HomeID) {
		return apperror.NewValidation("home is required").
			WithDetail("field", "homeId")
	}

	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}

	return nil
}

// CanModify checks if document can be modified.
// Finalized documents are immutable.
func (d *Document) CanModify() error {
	if d.Finalized {
		return apperror.NewSlipFinalized(d.ID.String())
	}
	return nil
}

// MarkFinalized locks the document and bumps its version.
func (d *Document) MarkFinalized() {
	d.Finalized = true
	d.Touch()
}

// IsBackdated checks if document date is in the past.
func (d *Document) IsBackdated() bool {
	return d.Date.Before(time.Now().UTC().Truncate(24 * time.Hour))
}
