package handlers

import (
	"github.com/anmds2025/roomify/internal/domain/catalogs/home"
	"github.com/anmds2025/roomify/internal/infrastructure/http/v1/dto"
)

// HomeHTTPHandler is a type alias to shorten signatures.
type HomeHTTPHandler = CatalogHandler[
	*home.Home,
	dto.CreateHomeRequest,
	dto.UpdateHomeRequest,
]

// NewHomeHandler builds a configured generic handler for homes.
func NewHomeHandler(
	base *BaseHandler,
	service *home.Service,
) *HomeHTTPHandler {

	config := CatalogHandlerConfig[
		*home.Home,
		dto.CreateHomeRequest,
		dto.UpdateHomeRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "home",

		MapCreateDTO: func(req dto.CreateHomeRequest) (*home.Home, error) {
			return req.ToEntity(), nil
		},

		MapUpdateDTO: func(req dto.UpdateHomeRequest, existing *home.Home) *home.Home {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *home.Home) any {
			return dto.FromHome(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
