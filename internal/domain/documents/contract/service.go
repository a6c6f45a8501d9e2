// Package contract provides the Contract document service.
package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/tx"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/pkg/logger"
	"github.com/anmds2025/roomify/pkg/numerator"
)

// RoomOccupancy flips a room between vacant and occupied as contracts
// start and end. Implemented by the room service.
type RoomOccupancy interface {
	Occupy(ctx context.Context, roomID, renterID id.ID, renterName string, occupants int) error
	Vacate(ctx context.Context, roomID id.ID) error
}

// Service provides business operations for contract documents.
type Service struct {
	repo      Repository
	rooms     RoomOccupancy
	numerator numerator.Generator
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Contract]
}

// NewService creates a new contract service.
func NewService(repo Repository, rooms RoomOccupancy, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		rooms:     rooms,
		numerator: gen,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Contract](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Contract] {
	return s.hooks
}

// Create creates an active contract and occupies its room, atomically.
func (s *Service) Create(ctx context.Context, doc *Contract) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkRoomFree(ctx, doc.RoomID); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig("CT")
		number, err := s.numerator.GetNextNumber(ctx, cfg, nil, doc.StartDate)
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		return s.rooms.Occupy(ctx, doc.RoomID, doc.RenterID, doc.RenterName, doc.OccupantCount)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "contract created",
		"id", doc.ID,
		"number", doc.Number,
		"room_id", doc.RoomID)

	return nil
}

// GetByID retrieves a contract.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Contract, error) {
	return s.repo.GetByID(ctx, docID)
}

// Update updates a contract. Ended contracts reject updates.
func (s *Service) Update(ctx context.Context, doc *Contract) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	current, err := s.repo.GetByID(ctx, doc.ID)
	if err != nil {
		return err
	}
	if current.Status == StatusEnded {
		return apperror.NewConflict("contract is ended and cannot be modified").
			WithDetail("contractId", doc.ID)
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Update(ctx, doc)
	})
}

// End closes the contract, settles the deposit and vacates the room,
// atomically.
func (s *Service) End(ctx context.Context, docID id.ID, when time.Time, depositReturned types.Money) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}
		if err := doc.End(when, depositReturned); err != nil {
			return err
		}
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		return s.rooms.Vacate(ctx, doc.RoomID)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "contract ended", "id", docID)
	return nil
}

// Delete soft-deletes a contract. Active contracts must be ended first.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.IsActive() {
		return apperror.NewConflict("active contract cannot be deleted; end it first").
			WithDetail("contractId", docID)
	}

	return s.repo.Delete(ctx, docID)
}

// List retrieves contracts with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Contract], error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) checkRoomFree(ctx context.Context, roomID id.ID) error {
	existing, err := s.repo.FindActiveByRoom(ctx, roomID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	return apperror.NewBusinessRule(apperror.CodeRoomOccupied, "room already has an active contract").
		WithDetail("roomId", roomID).
		WithDetail("existingContract", existing.Number)
}
