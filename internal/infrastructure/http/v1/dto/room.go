package dto

import (
	"github.com/shopspring/decimal"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/billing"
	"github.com/anmds2025/roomify/internal/domain/catalogs/room"
)

// --- Request DTOs ---

// CreateRoomRequest is the request body for creating a room.
type CreateRoomRequest struct {
	Code             string      `json:"code"`
	Name             string      `json:"name" binding:"required"`
	HomeID           string      `json:"homeId" binding:"required"`
	RentAmount       types.Money `json:"rentAmount"`
	ElectricityPrice types.Money `json:"electricityPrice"`
	WaterPolicy      string      `json:"waterPolicy"`
	WaterPrice       types.Money `json:"waterPrice"`
	ParkingFee       types.Money `json:"parkingFee"`
	ServiceFee       types.Money `json:"serviceFee"`
	OldElectricity   *string     `json:"oldElectricity"`
	OldWater         *string     `json:"oldWater"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateRoomRequest) ToEntity() (*room.Room, error) {
	homeID, err := id.Parse(r.HomeID)
	if err != nil {
		return nil, err
	}

	rm := room.NewRoom(r.Code, r.Name, homeID)
	rm.RentAmount = r.RentAmount
	rm.ElectricityPrice = r.ElectricityPrice
	if r.WaterPolicy != "" {
		rm.WaterPolicy = billing.WaterPolicy(r.WaterPolicy)
	}
	rm.WaterPrice = r.WaterPrice
	rm.ParkingFee = r.ParkingFee
	rm.ServiceFee = r.ServiceFee
	if r.OldElectricity != nil {
		rm.OldElectricity = billing.ParseReading(*r.OldElectricity)
	}
	if r.OldWater != nil {
		rm.OldWater = billing.ParseReading(*r.OldWater)
	}
	return rm, nil
}

// UpdateRoomRequest is the request body for updating a room.
type UpdateRoomRequest struct {
	Code             string      `json:"code"`
	Name             string      `json:"name" binding:"required"`
	RentAmount       types.Money `json:"rentAmount"`
	ElectricityPrice types.Money `json:"electricityPrice"`
	WaterPolicy      string      `json:"waterPolicy"`
	WaterPrice       types.Money `json:"waterPrice"`
	ParkingFee       types.Money `json:"parkingFee"`
	ServiceFee       types.Money `json:"serviceFee"`
	OccupantCount    int         `json:"occupantCount"`
	Version          int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity. Occupancy state and
// carried readings are managed through dedicated operations, not here.
func (r *UpdateRoomRequest) ApplyTo(rm *room.Room) {
	rm.Code = r.Code
	rm.Name = r.Name
	rm.RentAmount = r.RentAmount
	rm.ElectricityPrice = r.ElectricityPrice
	if r.WaterPolicy != "" {
		rm.WaterPolicy = billing.WaterPolicy(r.WaterPolicy)
	}
	rm.WaterPrice = r.WaterPrice
	rm.ParkingFee = r.ParkingFee
	rm.ServiceFee = r.ServiceFee
	rm.OccupantCount = r.OccupantCount
	rm.Version = r.Version
}

// OccupyRoomRequest moves a renter in.
type OccupyRoomRequest struct {
	RenterID      string `json:"renterId" binding:"required"`
	RenterName    string `json:"renterName" binding:"required"`
	OccupantCount int    `json:"occupantCount"`
}

// --- Response DTOs ---

// RoomResponse is the response body for a room.
type RoomResponse struct {
	CatalogResponse
	HomeID           string          `json:"homeId"`
	Status           string          `json:"status"`
	RenterName       string          `json:"renterName,omitempty"`
	RenterID         *string         `json:"renterId,omitempty"`
	OccupantCount    int             `json:"occupantCount"`
	RentAmount       types.Money     `json:"rentAmount"`
	ElectricityPrice types.Money     `json:"electricityPrice"`
	WaterPolicy      string          `json:"waterPolicy"`
	WaterPrice       types.Money     `json:"waterPrice"`
	ParkingFee       types.Money     `json:"parkingFee"`
	ServiceFee       types.Money     `json:"serviceFee"`
	OldElectricity   decimal.Decimal `json:"oldElectricity"`
	OldWater         decimal.Decimal `json:"oldWater"`
}

// FromRoom creates response DTO from domain entity.
func FromRoom(rm *room.Room) *RoomResponse {
	resp := &RoomResponse{
		CatalogResponse:  FromCatalog(rm.Catalog),
		HomeID:           rm.HomeID.String(),
		Status:           string(rm.Status),
		RenterName:       rm.RenterName,
		OccupantCount:    rm.OccupantCount,
		RentAmount:       rm.RentAmount,
		ElectricityPrice: rm.ElectricityPrice,
		WaterPolicy:      string(rm.WaterPolicy),
		WaterPrice:       rm.WaterPrice,
		ParkingFee:       rm.ParkingFee,
		ServiceFee:       rm.ServiceFee,
		OldElectricity:   rm.OldElectricity,
		OldWater:         rm.OldWater,
	}
	if rm.RenterID != nil {
		s := rm.RenterID.String()
		resp.RenterID = &s
	}
	return resp
}
