package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/internal/domain/billing"
	"github.com/anmds2025/roomify/internal/domain/catalogs/room"
	"github.com/anmds2025/roomify/internal/domain/documents/moneyslip"
	"github.com/anmds2025/roomify/internal/infrastructure/http/v1/dto"
	"github.com/anmds2025/roomify/internal/infrastructure/metrics"
)

// MoneySlipHandler handles HTTP requests for money slip documents.
type MoneySlipHandler struct {
	*BaseHandler
	service *moneyslip.Service
	rooms   *room.Service
	metrics *metrics.Metrics
}

// NewMoneySlipHandler creates a new money slip handler.
func NewMoneySlipHandler(base *BaseHandler, service *moneyslip.Service, rooms *room.Service, m *metrics.Metrics) *MoneySlipHandler {
	return &MoneySlipHandler{
		BaseHandler: base,
		service:     service,
		rooms:       rooms,
		metrics:     m,
	}
}

// Create handles POST /documents/money-slips - build and save a slip
// for one room from operator readings.
func (h *MoneySlipHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateMoneySlipRequest
	if !h.BindJSON(c, &req) {
		return
	}

	roomID, err := id.Parse(req.RoomID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid roomId"))
		return
	}

	info, err := h.rooms.BillingInfo(ctx, roomID)
	if err != nil {
		h.Error(c, err)
		return
	}

	draft, err := billing.Build(billing.BuildInput{
		Room:           info,
		NewElectricity: req.NewElectricity,
		NewWater:       req.NewWater,
		Debt:           req.Debt,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	doc := moneyslip.NewMoneySlip(info.HomeID, info.RoomID, req.Period)
	doc.ApplyDraft(info, draft)
	doc.Comment = req.Comment

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.metrics.SlipsCreatedTotal.Inc()
	c.JSON(http.StatusCreated, dto.FromMoneySlip(doc))
}

// Get handles GET /documents/money-slips/:id
func (h *MoneySlipHandler) Get(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromMoneySlip(doc))
}

// Update handles PUT /documents/money-slips/:id - re-enter readings on
// an unfinalized slip. Lines and total are recomputed from the new
// readings against the room's current tariffs.
func (h *MoneySlipHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMoneySlipRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	info, err := h.rooms.BillingInfo(ctx, doc.RoomID)
	if err != nil {
		h.Error(c, err)
		return
	}

	draft, err := billing.Build(billing.BuildInput{
		Room:           info,
		NewElectricity: req.NewElectricity,
		NewWater:       req.NewWater,
		Debt:           req.Debt,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	doc.ApplyDraft(info, draft)
	doc.Comment = req.Comment
	doc.Version = req.Version

	if err := h.service.Update(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromMoneySlip(doc))
}

// Delete handles DELETE /documents/money-slips/:id
func (h *MoneySlipHandler) Delete(c *gin.Context) {
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

// Finalize handles POST /documents/money-slips/:id/finalize
func (h *MoneySlipHandler) Finalize(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Finalize(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "money slip finalized")
}

// RecordPayment handles POST /documents/money-slips/:id/payments
func (h *MoneySlipHandler) RecordPayment(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.RecordPayment(c.Request.Context(), docID, req.Amount); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "payment recorded")
}

// List handles GET /documents/money-slips - list with filtering.
func (h *MoneySlipHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := moneyslip.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "date DESC")
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

	if period := c.Query("period"); period != "" {
		parsed, err := types.ParsePeriod(period)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid period, want M/YYYY"))
			return
		}
		filter.Period = &parsed
	}

	if finalized := c.Query("finalized"); finalized != "" {
		val := finalized == "true"
		filter.Finalized = &val
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
		items[i] = dto.FromMoneySlip(item)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
