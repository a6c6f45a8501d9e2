package dto

import (
	"github.com/shopspring/decimal"

	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/documents/moneyslip"
)

// --- Request DTOs ---

// CreateMoneySlipRequest is the request body for creating a slip for
// one room. Readings are raw operator input; non-numeric values bill
// zero consumption.
type CreateMoneySlipRequest struct {
	RoomID         string       `json:"roomId" binding:"required"`
	Period         types.Period `json:"period" binding:"required"`
	NewElectricity string       `json:"newElectricity"`
	NewWater       string       `json:"newWater"`
	Debt           types.Money  `json:"debt"`
	Comment        string       `json:"comment"`
}

// UpdateMoneySlipRequest re-enters readings on an unfinalized slip.
type UpdateMoneySlipRequest struct {
	NewElectricity string      `json:"newElectricity"`
	NewWater       string      `json:"newWater"`
	Debt           types.Money `json:"debt"`
	Comment        string      `json:"comment"`
	Version        int         `json:"version" binding:"required"`
}

// RecordPaymentRequest records money received against a slip.
type RecordPaymentRequest struct {
	Amount types.Money `json:"amount" binding:"required"`
}

// --- Response DTOs ---

// MoneySlipLineResponse is one charge on a slip.
type MoneySlipLineResponse struct {
	LineNo   int         `json:"lineNo"`
	Category string      `json:"category"`
	Amount   types.Money `json:"amount"`
}

// MoneySlipResponse is the response body for a money slip.
type MoneySlipResponse struct {
	DocumentResponse
	RoomID         string                  `json:"roomId"`
	RoomCode       string                  `json:"roomCode"`
	RenterName     string                  `json:"renterName"`
	Period         types.Period            `json:"period"`
	OldElectricity decimal.Decimal         `json:"oldElectricity"`
	NewElectricity decimal.Decimal         `json:"newElectricity"`
	OldWater       decimal.Decimal         `json:"oldWater"`
	NewWater       decimal.Decimal         `json:"newWater"`
	TotalAmount    types.Money             `json:"totalAmount"`
	PaidAmount     types.Money             `json:"paidAmount"`
	Outstanding    types.Money             `json:"outstanding"`
	Lines          []MoneySlipLineResponse `json:"lines"`
}

// FromMoneySlip creates response DTO from domain entity.
func FromMoneySlip(m *moneyslip.MoneySlip) *MoneySlipResponse {
	lines := make([]MoneySlipLineResponse, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, MoneySlipLineResponse{
			LineNo:   l.LineNo,
			Category: string(l.Category),
			Amount:   l.Amount,
		})
	}

	return &MoneySlipResponse{
		DocumentResponse: FromDocument(m.Document),
		RoomID:           m.RoomID.String(),
		RoomCode:         m.RoomCode,
		RenterName:       m.RenterName,
		Period:           m.Period,
		OldElectricity:   m.OldElectricity,
		NewElectricity:   m.NewElectricity,
		OldWater:         m.OldWater,
		NewWater:         m.NewWater,
		TotalAmount:      m.TotalAmount,
		PaidAmount:       m.PaidAmount,
		Outstanding:      m.Outstanding(),
		Lines:            lines,
	}
}
