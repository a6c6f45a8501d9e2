package dto

import (
	"time"

	"github.com/anmds2025/roomify/internal/domain/catalogs/renter"
)

// --- Request DTOs ---

// CreateRenterRequest is the request body for creating a renter.
type CreateRenterRequest struct {
	Code           string     `json:"code"`
	Name           string     `json:"name" binding:"required"`
	Phone          string     `json:"phone" binding:"required"`
	Email          *string    `json:"email"`
	IdentityNumber *string    `json:"identityNumber"`
	Hometown       *string    `json:"hometown"`
	MoveInDate     *time.Time `json:"moveInDate"`
	Note           *string    `json:"note"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateRenterRequest) ToEntity() *renter.Renter {
	rt := renter.NewRenter(r.Code, r.Name, r.Phone)
	rt.Email = r.Email
	rt.IdentityNumber = r.IdentityNumber
	rt.Hometown = r.Hometown
	rt.MoveInDate = r.MoveInDate
	rt.Note = r.Note
	return rt
}

// UpdateRenterRequest is the request body for updating a renter.
type UpdateRenterRequest struct {
	Code           string     `json:"code"`
	Name           string     `json:"name" binding:"required"`
	Phone          string     `json:"phone" binding:"required"`
	Email          *string    `json:"email"`
	IdentityNumber *string    `json:"identityNumber"`
	Hometown       *string    `json:"hometown"`
	MoveInDate     *time.Time `json:"moveInDate"`
	Note           *string    `json:"note"`
	Version        int        `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateRenterRequest) ApplyTo(rt *renter.Renter) {
	rt.Code = r.Code
	rt.Name = r.Name
	rt.Phone = r.Phone
	rt.Email = r.Email
	rt.IdentityNumber = r.IdentityNumber
	rt.Hometown = r.Hometown
	rt.MoveInDate = r.MoveInDate
	rt.Note = r.Note
	rt.Version = r.Version
}

// --- Response DTOs ---

// RenterResponse is the response body for a renter.
type RenterResponse struct {
	CatalogResponse
	Phone          string     `json:"phone"`
	Email          *string    `json:"email,omitempty"`
	IdentityNumber *string    `json:"identityNumber,omitempty"`
	Hometown       *string    `json:"hometown,omitempty"`
	MoveInDate     *time.Time `json:"moveInDate,omitempty"`
	Note           *string    `json:"note,omitempty"`
}

// FromRenter creates response DTO from domain entity.
func FromRenter(rt *renter.Renter) *RenterResponse {
	return &RenterResponse{
		CatalogResponse: FromCatalog(rt.Catalog),
		Phone:           rt.Phone,
		Email:           rt.Email,
		IdentityNumber:  rt.IdentityNumber,
		Hometown:        rt.Hometown,
		MoveInDate:      rt.MoveInDate,
		Note:            rt.Note,
	}
}
