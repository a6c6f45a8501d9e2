package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain/billing"
	"github.com/anmds2025/roomify/internal/domain/catalogs/room"
	"github.com/anmds2025/roomify/internal/infrastructure/http/v1/dto"
	"github.com/anmds2025/roomify/internal/infrastructure/metrics"
)

// BillingHandler drives slip previews and create-slips-for-all runs.
type BillingHandler struct {
	*BaseHandler
	planner *billing.Planner
	rooms   *room.Service
	metrics *metrics.Metrics
}

// NewBillingHandler creates a new billing handler.
func NewBillingHandler(base *BaseHandler, planner *billing.Planner, rooms *room.Service, m *metrics.Metrics) *BillingHandler {
	return &BillingHandler{
		BaseHandler: base,
		planner:     planner,
		rooms:       rooms,
		metrics:     m,
	}
}

// Seed handles GET /billing/bulk/seed - the pre-filled bulk form: one
// row per occupied room, reading inputs blank.
func (h *BillingHandler) Seed(c *gin.Context) {
	infos, err := h.rooms.BillingInfos(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	entries := h.planner.Seed(infos)
	items := make([]dto.SeedEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.FromSeedEntry(e))
	}

	h.OK(c, gin.H{"entries": items})
}

// Preview handles POST /billing/preview - compute a slip draft for one
// room without persisting anything.
func (h *BillingHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PreviewSlipRequest
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

	h.OK(c, dto.FromDraft(info.Code, draft))
}

// BulkSubmit handles POST /billing/bulk - create slips for every
// submitted room. The batch is validated as a whole before any slip is
// created; after that each room succeeds or fails on its own.
func (h *BillingHandler) BulkSubmit(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.BulkSubmitRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := req.Period.Validate(); err != nil {
		h.Error(c, apperror.NewValidation("invalid period"))
		return
	}

	infos, err := h.rooms.BillingInfos(ctx)
	if err != nil {
		h.Error(c, err)
		return
	}
	byRoom := make(map[id.ID]billing.RoomInfo, len(infos))
	for _, info := range infos {
		byRoom[info.RoomID] = info
	}

	entries := make([]billing.Entry, 0, len(req.Entries))
	for _, e := range req.Entries {
		roomID, err := id.Parse(e.RoomID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid roomId").WithDetail("roomId", e.RoomID))
			return
		}
		info, ok := byRoom[roomID]
		if !ok {
			h.Error(c, apperror.NewValidation("room is not occupied or does not exist").WithDetail("roomId", e.RoomID))
			return
		}
		entries = append(entries, billing.Entry{
			Room:           info,
			NewElectricity: e.NewElectricity,
			NewWater:       e.NewWater,
			Debt:           e.Debt,
		})
	}

	if err := h.planner.Validate(entries); err != nil {
		h.metrics.BulkRunsTotal.WithLabelValues("rejected").Inc()
		h.Error(c, err)
		return
	}

	results := h.planner.Submit(ctx, entries, req.Period)
	resp := dto.FromBulkResults(req.Period, results)

	h.metrics.SlipsCreatedTotal.Add(float64(resp.Created))
	if resp.Failed > 0 {
		h.metrics.BulkRunsTotal.WithLabelValues("partial").Inc()
		h.Error(c, apperror.NewPartialBatch(resp.Failed, len(results)).
			WithDetail("items", resp.Items))
		return
	}

	h.metrics.BulkRunsTotal.WithLabelValues("ok").Inc()
	h.OK(c, resp)
}
