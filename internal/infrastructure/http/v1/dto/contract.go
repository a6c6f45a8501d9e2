package dto

import (
	"time"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/documents/contract"
)

// --- Request DTOs ---

// CreateContractRequest is the request body for opening a rental contract.
type CreateContractRequest struct {
	HomeID        string      `json:"homeId" binding:"required"`
	RoomID        string      `json:"roomId" binding:"required"`
	RenterID      string      `json:"renterId" binding:"required"`
	RenterName    string      `json:"renterName" binding:"required"`
	OccupantCount int         `json:"occupantCount" binding:"required,min=1"`
	StartDate     time.Time   `json:"startDate" binding:"required"`
	Deposit       types.Money `json:"deposit"`
	MonthlyRent   types.Money `json:"monthlyRent" binding:"required"`
	Comment       string      `json:"comment"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateContractRequest) ToEntity() (*contract.Contract, error) {
	homeID, err := id.Parse(r.HomeID)
	if err != nil {
		return nil, err
	}
	roomID, err := id.Parse(r.RoomID)
	if err != nil {
		return nil, err
	}
	renterID, err := id.Parse(r.RenterID)
	if err != nil {
		return nil, err
	}

	c := contract.NewContract(homeID, roomID, renterID, r.StartDate)
	c.RenterName = r.RenterName
	c.OccupantCount = r.OccupantCount
	c.Deposit = r.Deposit
	c.MonthlyRent = r.MonthlyRent
	c.Comment = r.Comment
	return c, nil
}

// UpdateContractRequest is the request body for amending an active contract.
type UpdateContractRequest struct {
	RenterName    string      `json:"renterName" binding:"required"`
	OccupantCount int         `json:"occupantCount" binding:"required,min=1"`
	Deposit       types.Money `json:"deposit"`
	MonthlyRent   types.Money `json:"monthlyRent" binding:"required"`
	Comment       string      `json:"comment"`
	Version       int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateContractRequest) ApplyTo(c *contract.Contract) {
	c.RenterName = r.RenterName
	c.OccupantCount = r.OccupantCount
	c.Deposit = r.Deposit
	c.MonthlyRent = r.MonthlyRent
	c.Comment = r.Comment
	c.Version = r.Version
}

// EndContractRequest is the request body for ending a contract.
type EndContractRequest struct {
	EndDate         time.Time   `json:"endDate" binding:"required"`
	DepositReturned types.Money `json:"depositReturned"`
}

// --- Response DTOs ---

// ContractResponse is the response body for a contract.
type ContractResponse struct {
	DocumentResponse
	RoomID          string      `json:"roomId"`
	RenterID        string      `json:"renterId"`
	RenterName      string      `json:"renterName"`
	OccupantCount   int         `json:"occupantCount"`
	Status          string      `json:"status"`
	StartDate       time.Time   `json:"startDate"`
	EndDate         *time.Time  `json:"endDate,omitempty"`
	Deposit         types.Money `json:"deposit"`
	MonthlyRent     types.Money `json:"monthlyRent"`
	DepositReturned types.Money `json:"depositReturned"`
}

// FromContract creates response DTO from domain entity.
func FromContract(c *contract.Contract) *ContractResponse {
	return &ContractResponse{
		DocumentResponse: FromDocument(c.Document),
		RoomID:           c.RoomID.String(),
		RenterID:         c.RenterID.String(),
		RenterName:       c.RenterName,
		OccupantCount:    c.OccupantCount,
		Status:           string(c.Status),
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		Deposit:          c.Deposit,
		MonthlyRent:      c.MonthlyRent,
		DepositReturned:  c.DepositReturned,
	}
}
