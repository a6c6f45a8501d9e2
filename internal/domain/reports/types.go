// Package reports provides financial report generation services.
package reports

import (
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/billing"
)

// --- Period Summary ---

// PeriodSummaryFilter defines the scope of a period summary.
type PeriodSummaryFilter struct {
	// Period is an "M/YYYY" string or the all-time marker
	Period string

	// HomeID limits the summary to one home; nil means all homes
	HomeID *id.ID
}

// --- Monthly Series ---

// MonthlySeriesFilter defines the scope of a revenue/expense series.
type MonthlySeriesFilter struct {
	// Year limits the series to one year; 0 means all years
	Year int

	// HomeID limits the series to one home; nil means all homes
	HomeID *id.ID
}

// MonthlySeriesReport is the month-by-month series plus overall totals.
type MonthlySeriesReport struct {
	Months       []billing.MonthTotal `json:"months"`
	TotalRevenue types.Money          `json:"totalRevenue"`
	TotalExpense types.Money          `json:"totalExpense"`
	TotalProfit  types.Money          `json:"totalProfit"`
}

// --- Debt Report ---

// DebtReportFilter defines the scope of the outstanding-balance report.
type DebtReportFilter struct {
	HomeID *id.ID
	Limit  int
	Offset int
}

// DebtReportItem is one room's outstanding balance across its
// finalized, unsettled slips.
type DebtReportItem struct {
	RoomID      id.ID       `json:"roomId"`
	RoomCode    string      `json:"roomCode"`
	RenterName  string      `json:"renterName"`
	SlipCount   int         `json:"slipCount"`
	Outstanding types.Money `json:"outstanding"`
}

// DebtReport lists rooms with unpaid slips.
type DebtReport struct {
	Items []DebtReportItem `json:"items"`
	Total int              `json:"total"`
}
