// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"github.com/anmds2025/roomify/internal/core/entity"
	"github.com/anmds2025/roomify/internal/core/id"
)

// --- List Response ---

// ListResponse wraps list results with pagination.
type ListResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- Base DTOs ---

// BaseResponse contains common response fields.
type BaseResponse struct {
	ID           string    `json:"id"`
	DeletionMark bool      `json:"deletionMark"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// FromBaseCatalog creates BaseResponse from entity.BaseCatalog.
func FromBaseCatalog(b entity.BaseCatalog) BaseResponse {
	return BaseResponse{
		ID:           b.ID.String(),
		DeletionMark: b.DeletionMark,
		Version:      b.Version,
	}
}

// FromBaseDocument creates BaseResponse from entity.BaseDocument.
func FromBaseDocument(b entity.BaseDocument) BaseResponse {
	return BaseResponse{
		ID:           b.ID.String(),
		DeletionMark: b.DeletionMark,
		Version:      b.Version,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// --- Catalog DTOs ---

// CatalogResponse contains catalog fields.
type CatalogResponse struct {
	BaseResponse
	Code string `json:"code"`
	Name string `json:"name"`
}

// FromCatalog creates CatalogResponse from entity.Catalog.
func FromCatalog(c entity.Catalog) CatalogResponse {
	return CatalogResponse{
		BaseResponse: FromBaseCatalog(c.BaseCatalog),
		Code:         c.Code,
		Name:         c.Name,
	}
}

// --- Document DTOs ---

// DocumentResponse contains document fields.
type DocumentResponse struct {
	BaseResponse
	Number    string    `json:"number"`
	Date      time.Time `json:"date"`
	Finalized bool      `json:"finalized"`
	HomeID    string    `json:"homeId"`
	Comment   string    `json:"comment,omitempty"`
}

// FromDocument creates DocumentResponse from entity.Document.
func FromDocument(d entity.Document) DocumentResponse {
	return DocumentResponse{
		BaseResponse: FromBaseDocument(d.BaseDocument),
		Number:       d.Number,
		Date:         d.Date,
		Finalized:    d.Finalized,
		HomeID:       d.HomeID.String(),
		Comment:      d.Comment,
	}
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// --- Success Response ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// --- Deletion ---

type SetDeletionMarkRequest struct {
	Marked bool `json:"marked"`
}
