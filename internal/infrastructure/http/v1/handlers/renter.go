package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/domain/catalogs/renter"
	"github.com/anmds2025/roomify/internal/infrastructure/http/v1/dto"
)

// RenterHTTPHandler is a type alias to shorten signatures.
type RenterHTTPHandler = CatalogHandler[
	*renter.Renter,
	dto.CreateRenterRequest,
	dto.UpdateRenterRequest,
]

// RenterHandler adds renter-specific endpoints on top of the generic CRUD.
type RenterHandler struct {
	*RenterHTTPHandler
	service *renter.Service
}

// NewRenterHandler builds a configured handler for renters.
func NewRenterHandler(
	base *BaseHandler,
	service *renter.Service,
) *RenterHandler {

	config := CatalogHandlerConfig[
		*renter.Renter,
		dto.CreateRenterRequest,
		dto.UpdateRenterRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "renter",

		MapCreateDTO: func(req dto.CreateRenterRequest) (*renter.Renter, error) {
			return req.ToEntity(), nil
		},

		MapUpdateDTO: func(req dto.UpdateRenterRequest, existing *renter.Renter) *renter.Renter {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *renter.Renter) any {
			return dto.FromRenter(entity)
		},
	}

	return &RenterHandler{
		RenterHTTPHandler: NewCatalogHandler(base, config),
		service:           service,
	}
}

// FindByPhone handles GET /renters/by-phone?phone=...
func (h *RenterHandler) FindByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		h.Error(c, apperror.NewValidation("phone is required"))
		return
	}

	r, err := h.service.FindByPhone(c.Request.Context(), phone)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromRenter(r))
}
