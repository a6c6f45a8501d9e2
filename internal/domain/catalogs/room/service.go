package room

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/tx"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/internal/domain/billing"
	"github.com/anmds2025/roomify/pkg/numerator"
)

// Service provides business logic for the Room catalog.
type Service struct {
	*domain.CatalogService[*Room]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Room service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Room]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "room",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeDelete(svc.validateBeforeDelete)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, r *Room) error {
	if r.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.Config{
			Prefix:   "ROOM",
			PadWidth: 4,
		}, nil, time.Now())
		if err != nil {
			return err
		}
		r.Code = code
	}

	exists, err := s.repo.ExistsByCode(ctx, r.Code)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("room", "code", r.Code)
	}
	return nil
}

// validateBeforeDelete blocks deleting an occupied room.
func (s *Service) validateBeforeDelete(ctx context.Context, r *Room) error {
	if r.Status == StatusOccupied {
		return apperror.NewBusinessRule(apperror.CodeRoomOccupied, "cannot delete an occupied room").
			WithDetail("roomId", r.ID).
			WithDetail("renterName", r.RenterName)
	}
	return nil
}

// --- Entity-specific methods ---

// FindByHome lists rooms of one home.
func (s *Service) FindByHome(ctx context.Context, homeID id.ID) ([]*Room, error) {
	return s.repo.FindByHome(ctx, homeID)
}

// FindOccupied lists occupied rooms for bulk slip seeding.
func (s *Service) FindOccupied(ctx context.Context) ([]*Room, error) {
	return s.repo.FindOccupied(ctx)
}

// BillingInfos snapshots occupied rooms for a bulk slip run.
func (s *Service) BillingInfos(ctx context.Context) ([]billing.RoomInfo, error) {
	rooms, err := s.repo.FindOccupied(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]billing.RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		infos = append(infos, r.BillingInfo())
	}
	return infos, nil
}

// BillingInfo snapshots one room for single-slip building.
func (s *Service) BillingInfo(ctx context.Context, roomID id.ID) (billing.RoomInfo, error) {
	r, err := s.GetByID(ctx, roomID)
	if err != nil {
		return billing.RoomInfo{}, err
	}
	return r.BillingInfo(), nil
}

// CarryReadings advances the room's old meter readings after a slip is
// finalized.
func (s *Service) CarryReadings(ctx context.Context, roomID id.ID, electricity, water decimal.Decimal) error {
	return s.repo.UpdateReadings(ctx, roomID, electricity, water)
}

// Occupy assigns a renter to the room. Called when a contract starts.
func (s *Service) Occupy(ctx context.Context, roomID, renterID id.ID, renterName string, occupants int) error {
	r, err := s.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if r.Status == StatusOccupied {
		return apperror.NewBusinessRule(apperror.CodeRoomOccupied, "room is already occupied").
			WithDetail("roomId", roomID).
			WithDetail("renterName", r.RenterName)
	}
	r.Occupy(renterID, renterName, occupants)
	return s.Update(ctx, r)
}

// Vacate clears the renter assignment. Called when a contract ends.
func (s *Service) Vacate(ctx context.Context, roomID id.ID) error {
	r, err := s.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	r.Vacate()
	return s.Update(ctx, r)
}
