package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/internal/domain/documents/expense"
	"github.com/anmds2025/roomify/internal/infrastructure/http/v1/dto"
)

// ExpenseHandler handles HTTP requests for expense documents.
type ExpenseHandler struct {
	*BaseHandler
	service *expense.Service
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(base *BaseHandler, service *expense.Service) *ExpenseHandler {
	return &ExpenseHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /documents/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc, err := req.ToEntity()
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid homeId"))
		return
	}

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromExpense(doc))
}

// Get handles GET /documents/expenses/:id
func (h *ExpenseHandler) Get(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromExpense(doc))
}

// Update handles PUT /documents/expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
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

	h.OK(c, dto.FromExpense(doc))
}

// Delete handles DELETE /documents/expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
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

// Finalize handles POST /documents/expenses/:id/finalize
func (h *ExpenseHandler) Finalize(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Finalize(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "expense finalized")
}

// List handles GET /documents/expenses - list with filtering.
func (h *ExpenseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := expense.ListFilter{
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

	if kind := c.Query("kind"); kind != "" {
		val := expense.Kind(kind)
		filter.Kind = &val
	}

	if period := c.Query("period"); period != "" {
		parsed, err := types.ParsePeriod(period)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid period, want M/YYYY"))
			return
		}
		filter.Period = &parsed
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
		items[i] = dto.FromExpense(item)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
