package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/documents/moneyslip"
	"github.com/anmds2025/roomify/internal/domain/reports"
	"github.com/anmds2025/roomify/internal/infrastructure/export"
)

// ReportsHandler handles HTTP requests for reports and exports.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
	slips   *moneyslip.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service, slips *moneyslip.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
		slips:       slips,
	}
}

func (h *ReportsHandler) parseHomeID(c *gin.Context) (*id.ID, bool) {
	homeID := c.Query("homeId")
	if homeID == "" {
		return nil, true
	}
	parsed, err := id.Parse(homeID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid homeId"))
		return nil, false
	}
	return &parsed, true
}

// GetPeriodSummary handles GET /reports/period-summary
func (h *ReportsHandler) GetPeriodSummary(c *gin.Context) {
	homeID, ok := h.parseHomeID(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", types.PeriodAll)
	if period != types.PeriodAll {
		if _, err := types.ParsePeriod(period); err != nil {
			h.Error(c, apperror.NewValidation("invalid period, want M/YYYY or All"))
			return
		}
	}

	summary, err := h.service.GetPeriodSummary(c.Request.Context(), reports.PeriodSummaryFilter{
		Period: period,
		HomeID: homeID,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, summary)
}

// GetMonthlySeries handles GET /reports/monthly-series
func (h *ReportsHandler) GetMonthlySeries(c *gin.Context) {
	homeID, ok := h.parseHomeID(c)
	if !ok {
		return
	}

	report, err := h.service.GetMonthlySeries(c.Request.Context(), reports.MonthlySeriesFilter{
		Year:   h.ParseIntQuery(c, "year", 0),
		HomeID: homeID,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// GetDebtReport handles GET /reports/debts
func (h *ReportsHandler) GetDebtReport(c *gin.Context) {
	homeID, ok := h.parseHomeID(c)
	if !ok {
		return
	}

	report, err := h.service.GetDebtReport(c.Request.Context(), reports.DebtReportFilter{
		HomeID: homeID,
		Limit:  h.ParseIntQuery(c, "limit", 50),
		Offset: h.ParseIntQuery(c, "offset", 0),
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// ExportSlipPDF handles GET /reports/slips/:id/pdf - the printable
// slip handed to the renter.
func (h *ReportsHandler) ExportSlipPDF(c *gin.Context) {
	docID, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	slip, err := h.slips.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	data, err := export.BuildSlipPDF(slip)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	filename := fmt.Sprintf("slip-%s.pdf", slip.Number)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// ExportSummaryXLSX handles GET /reports/period-summary/xlsx - the
// summary workbook for the bookkeeping side.
func (h *ReportsHandler) ExportSummaryXLSX(c *gin.Context) {
	ctx := c.Request.Context()

	homeID, ok := h.parseHomeID(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", types.PeriodAll)
	year := 0
	if period != types.PeriodAll {
		parsed, err := types.ParsePeriod(period)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid period, want M/YYYY or All"))
			return
		}
		year = parsed.Year
	}

	summary, err := h.service.GetPeriodSummary(ctx, reports.PeriodSummaryFilter{
		Period: period,
		HomeID: homeID,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	series, err := h.service.GetMonthlySeries(ctx, reports.MonthlySeriesFilter{
		Year:   year,
		HomeID: homeID,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	data, err := export.BuildSummaryXLSX(summary, series)
	if err != nil {
		h.Error(c, apperror.NewInternal(err))
		return
	}

	filename := fmt.Sprintf("summary-%s.xlsx", strings.ReplaceAll(period, "/", "-"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
