package dto

import (
	"github.com/anmds2025/roomify/internal/domain/catalogs/home"
)

// --- Request DTOs ---

// CreateHomeRequest is the request body for creating a home.
type CreateHomeRequest struct {
	Code         string  `json:"code"`
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	ManagerName  *string `json:"managerName"`
	ManagerPhone *string `json:"managerPhone"`
	Note         *string `json:"note"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateHomeRequest) ToEntity() *home.Home {
	h := home.NewHome(r.Code, r.Name, r.Address)
	h.ManagerName = r.ManagerName
	h.ManagerPhone = r.ManagerPhone
	h.Note = r.Note
	return h
}

// UpdateHomeRequest is the request body for updating a home.
type UpdateHomeRequest struct {
	Code         string  `json:"code"`
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address" binding:"required"`
	ManagerName  *string `json:"managerName"`
	ManagerPhone *string `json:"managerPhone"`
	Note         *string `json:"note"`
	Version      int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateHomeRequest) ApplyTo(h *home.Home) {
	h.Code = r.Code
	h.Name = r.Name
	h.Address = r.Address
	h.ManagerName = r.ManagerName
	h.ManagerPhone = r.ManagerPhone
	h.Note = r.Note
	h.Version = r.Version
}

// --- Response DTOs ---

// HomeResponse is the response body for a home.
type HomeResponse struct {
	CatalogResponse
	Address      string  `json:"address"`
	ManagerName  *string `json:"managerName,omitempty"`
	ManagerPhone *string `json:"managerPhone,omitempty"`
	Note         *string `json:"note,omitempty"`
}

// FromHome creates response DTO from domain entity.
func FromHome(h *home.Home) *HomeResponse {
	return &HomeResponse{
		CatalogResponse: FromCatalog(h.Catalog),
		Address:         h.Address,
		ManagerName:     h.ManagerName,
		ManagerPhone:    h.ManagerPhone,
		Note:            h.Note,
	}
}
