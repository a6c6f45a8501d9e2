package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/internal/domain/documents/contract"
	"github.com/anmds2025/roomify/internal/infrastructure/http/v1/dto"
)

// ContractHandler handles HTTP requests for contract documents.
type ContractHandler struct {
	*BaseHandler
	service *contract.Service
}

// NewContractHandler creates a new contract handler.
func NewContractHandler(base *BaseHandler, service *contract.Service) *ContractHandler {
	return &ContractHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /documents/contracts - open a tenancy.
func (h *ContractHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateContractRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id in request body"))
		return
	}

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromContract(doc))
}

// Get handles GET /documents/contracts/:id
func (h *ContractHandler) Get(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromContract(doc))
}

// Update handles PUT /documents/contracts/:id - amend terms of an
// active contract.
func (h *ContractHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateContractRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	req.ApplyTo(doc)

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromContract(doc))
}

// End handles POST /documents/contracts/:id/end - close the tenancy,
// settle the deposit and vacate the room.
func (h *ContractHandler) End(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.EndContractRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.End(c.Request.Context(), docID, req.EndDate, req.DepositReturned); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "contract ended")
}

// Delete handles DELETE /documents/contracts/:id
func (h *ContractHandler) Delete(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// List handles GET /documents/contracts - list with filtering.
func (h *ContractHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := contract.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "start_date DESC")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if homeID := c.Query("homeId"); homeID != "" {
		if parsed, err := id.Parse(homeID); err == nil {
			filter.HomeID = &parsed
		}
	}

	if roomID := c.Query("roomId"); roomID != "" {
		if parsed, err := id.Parse(roomID); err == nil {
			filter.RoomID = &parsed
		}
	}

	if renterID := c.Query("renterId"); renterID != "" {
		if parsed, err := id.Parse(renterID); err == nil {
			filter.RenterID = &parsed
		}
	}

	if status := c.Query("status"); status != "" {
		val := contract.Status(status)
		filter.Status = &val
	}

	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		if parsed, err := time.Parse(time.RFC3339, dateFrom); err == nil {
			filter.DateFrom = &parsed
		}
	}

	if dateTo := c.Query("dateTo"); dateTo != "" {
		if parsed, err := time.Parse(time.RFC3339, dateTo); err == nil {
			filter.DateTo = &parsed
		}
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromContract(item)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
