package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain/catalogs/room"
	"github.com/anmds2025/roomify/internal/infrastructure/http/v1/dto"
)

// RoomHTTPHandler is a type alias to shorten signatures.
type RoomHTTPHandler = CatalogHandler[
	*room.Room,
	dto.CreateRoomRequest,
	dto.UpdateRoomRequest,
]

// RoomHandler adds occupancy endpoints on top of the generic CRUD.
type RoomHandler struct {
	*RoomHTTPHandler
	service *room.Service
}

// NewRoomHandler builds a configured handler for rooms.
func NewRoomHandler(
	base *BaseHandler,
	service *room.Service,
) *RoomHandler {

	config := CatalogHandlerConfig[
		*room.Room,
		dto.CreateRoomRequest,
		dto.UpdateRoomRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "room",

		MapCreateDTO: func(req dto.CreateRoomRequest) (*room.Room, error) {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateRoomRequest, existing *room.Room) *room.Room {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *room.Room) any {
			return dto.FromRoom(entity)
		},
	}

	return &RoomHandler{
		RoomHTTPHandler: NewCatalogHandler(base, config),
		service:         service,
	}
}

// ByHome handles GET /rooms/by-home/:homeId - rooms of one home.
func (h *RoomHandler) ByHome(c *gin.Context) {
	homeID, ok := h.ParseID(c, "homeId")
	if !ok {
		return
	}

	rooms, err := h.service.FindByHome(c.Request.Context(), homeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(rooms))
	for i, r := range rooms {
		items[i] = dto.FromRoom(r)
	}
	h.OK(c, gin.H{"items": items})
}

// Occupy handles POST /rooms/:id/occupy - move a renter in.
func (h *RoomHandler) Occupy(c *gin.Context) {
	roomID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.OccupyRoomRequest
	if !h.BindJSON(c, &req) {
		return
	}

	renterID, err := id.Parse(req.RenterID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid renterId"))
		return
	}

	occupants := req.OccupantCount
	if occupants < 1 {
		occupants = 1
	}

	if err := h.service.Occupy(c.Request.Context(), roomID, renterID, req.RenterName, occupants); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "room occupied")
}

// Vacate handles POST /rooms/:id/vacate - move the renter out.
func (h *RoomHandler) Vacate(c *gin.Context) {
	roomID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Vacate(c.Request.Context(), roomID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "room vacated")
}
