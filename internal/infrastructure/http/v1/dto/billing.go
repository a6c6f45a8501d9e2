package dto

import (
	"github.com/shopspring/decimal"

	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/billing"
)

// --- Request DTOs ---

// BulkEntryRequest is one room's operator input in a bulk slip run.
// Reading fields are raw strings as entered; blank means not filled in.
type BulkEntryRequest struct {
	RoomID         string      `json:"roomId" binding:"required"`
	NewElectricity string      `json:"newElectricity"`
	NewWater       string      `json:"newWater"`
	Debt           types.Money `json:"debt"`
}

// BulkSubmitRequest is the request body for a create-slips-for-all run.
type BulkSubmitRequest struct {
	Period  types.Period       `json:"period" binding:"required"`
	Entries []BulkEntryRequest `json:"entries" binding:"required,min=1"`
}

// PreviewSlipRequest is the request body for computing a slip draft
// without persisting anything.
type PreviewSlipRequest struct {
	RoomID         string      `json:"roomId" binding:"required"`
	NewElectricity string      `json:"newElectricity"`
	NewWater       string      `json:"newWater"`
	Debt           types.Money `json:"debt"`
}

// --- Response DTOs ---

// SeedEntryResponse is one pre-filled row of the bulk slip form: the
// room snapshot plus blank reading inputs for the operator.
type SeedEntryResponse struct {
	RoomID         string          `json:"roomId"`
	RoomCode       string          `json:"roomCode"`
	RenterName     string          `json:"renterName"`
	OccupantCount  int             `json:"occupantCount"`
	RentAmount     types.Money     `json:"rentAmount"`
	OldElectricity decimal.Decimal `json:"oldElectricity"`
	OldWater       decimal.Decimal `json:"oldWater"`
	WaterPolicy    string          `json:"waterPolicy"`
	NewElectricity string          `json:"newElectricity"`
	NewWater       string          `json:"newWater"`
	Debt           types.Money     `json:"debt"`
}

// FromSeedEntry creates a seed row from a planner entry.
func FromSeedEntry(e billing.Entry) SeedEntryResponse {
	return SeedEntryResponse{
		RoomID:         e.Room.RoomID.String(),
		RoomCode:       e.Room.Code,
		RenterName:     e.Room.RenterName,
		OccupantCount:  e.Room.OccupantCount,
		RentAmount:     e.Room.RentAmount,
		OldElectricity: e.Room.OldElectricity,
		OldWater:       e.Room.OldWater,
		WaterPolicy:    string(e.Room.WaterPolicy),
		NewElectricity: e.NewElectricity,
		NewWater:       e.NewWater,
		Debt:           e.Debt,
	}
}

// BulkItemResponse is the per-room outcome of a bulk submit.
type BulkItemResponse struct {
	RoomID   string `json:"roomId"`
	RoomCode string `json:"roomCode"`
	SlipID   string `json:"slipId,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BulkSubmitResponse reports how a bulk run went, room by room.
type BulkSubmitResponse struct {
	Period  types.Period       `json:"period"`
	Created int                `json:"created"`
	Failed  int                `json:"failed"`
	Items   []BulkItemResponse `json:"items"`
}

// FromBulkResults creates the bulk response from planner results.
func FromBulkResults(period types.Period, results []billing.ItemResult) *BulkSubmitResponse {
	resp := &BulkSubmitResponse{
		Period: period,
		Items:  make([]BulkItemResponse, 0, len(results)),
	}
	for _, r := range results {
		item := BulkItemResponse{
			RoomID:   r.RoomID.String(),
			RoomCode: r.RoomCode,
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
			resp.Failed++
		} else {
			item.SlipID = r.SlipID.String()
			resp.Created++
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}

// SlipPreviewResponse is a computed slip draft before persistence.
type SlipPreviewResponse struct {
	RoomCode               string                  `json:"roomCode"`
	Lines                  []MoneySlipLineResponse `json:"lines"`
	Total                  types.Money             `json:"total"`
	ElectricityConsumption decimal.Decimal         `json:"electricityConsumption"`
	WaterConsumption       decimal.Decimal         `json:"waterConsumption"`
	Readings               billing.ReadingSnapshot `json:"readings"`
}

// FromDraft creates a preview response from a computed draft.
func FromDraft(roomCode string, d billing.Draft) *SlipPreviewResponse {
	lines := make([]MoneySlipLineResponse, 0, len(d.Lines))
	for i, l := range d.Lines {
		lines = append(lines, MoneySlipLineResponse{
			LineNo:   i + 1,
			Category: string(l.Category),
			Amount:   l.Amount,
		})
	}
	return &SlipPreviewResponse{
		RoomCode:               roomCode,
		Lines:                  lines,
		Total:                  d.Total,
		ElectricityConsumption: d.ElectricityConsumption,
		WaterConsumption:       d.WaterConsumption,
		Readings:               d.Readings,
	}
}
