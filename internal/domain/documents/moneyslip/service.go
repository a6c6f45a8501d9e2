// Package moneyslip provides the MoneySlip document service.
package moneyslip

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/tx"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/internal/domain/billing"
	"github.com/anmds2025/roomify/pkg/logger"
	"github.com/anmds2025/roomify/pkg/numerator"
)

// ReadingsCarrier advances a room's carried-over meter readings when a
// slip is finalized. Implemented by the room service.
type ReadingsCarrier interface {
	CarryReadings(ctx context.Context, roomID id.ID, electricity, water decimal.Decimal) error
}

// Service provides business operations for money slip documents.
type Service struct {
	repo      Repository
	rooms     ReadingsCarrier
	numerator numerator.Generator
	txManager tx.Manager
	hooks     *domain.HookRegistry[*MoneySlip]
}

// NewService creates a new money slip service.
func NewService(
	repo Repository,
	rooms ReadingsCarrier,
	gen numerator.Generator,
	txManager tx.Manager,
) *Service {
	return &Service{
		repo:      repo,
		rooms:     rooms,
		numerator: gen,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*MoneySlip](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*MoneySlip] {
	return s.hooks
}

// Create creates a new money slip document.
func (s *Service) Create(ctx context.Context, doc *MoneySlip) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if err := s.checkNotBilled(ctx, doc.RoomID, doc.Period, doc.ID); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig("MS")
		number, err := s.numerator.GetNextNumber(ctx, cfg, &numerator.Options{Strategy: NumeratorStrategy}, doc.Period.Start())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, doc); err != nil {
			return fmt.Errorf("create document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "money slip created",
		"id", doc.ID,
		"number", doc.Number,
		"room_code", doc.RoomCode,
		"period", doc.Period.String())

	return nil
}

// GetByID retrieves a money slip with lines.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*MoneySlip, error) {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.GetLines(ctx, docID)
	if err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}
	doc.Lines = lines

	return doc, nil
}

// Update updates a money slip. Finalized slips reject updates.
func (s *Service) Update(ctx context.Context, doc *MoneySlip) error {
	if err := s.hooks.RunBeforeUpdate(ctx, doc); err != nil {
		return err
	}

	if err := doc.CanModify(); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		if err := s.repo.SaveLines(ctx, doc.ID, doc.Lines); err != nil {
			return fmt.Errorf("save lines: %w", err)
		}
		return nil
	})
}

// Delete soft-deletes a money slip. Finalized slips cannot be deleted.
func (s *Service) Delete(ctx context.Context, docID id.ID) error {
	doc, err := s.repo.GetByID(ctx, docID)
	if err != nil {
		return err
	}

	if doc.Finalized {
		return doc.CanModify()
	}

	return s.repo.Delete(ctx, docID)
}

// Finalize locks the slip and carries its new meter readings over to
// the room, atomically. A second finalize on the same slip fails.
func (s *Service) Finalize(ctx context.Context, docID id.ID) error {
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}

		if err := doc.CanModify(); err != nil {
			return err
		}

		doc.MarkFinalized()
		if err := s.repo.Update(ctx, doc); err != nil {
			return fmt.Errorf("update document: %w", err)
		}

		return s.rooms.CarryReadings(ctx, doc.RoomID, doc.NewElectricity, doc.NewWater)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "money slip finalized", "id", docID)
	return nil
}

// RecordPayment adds a payment against the slip.
func (s *Service) RecordPayment(ctx context.Context, docID id.ID, amount types.Money) error {
	if amount.Sign() <= 0 {
		return apperror.NewValidation("payment amount must be positive").
			WithDetail("field", "amount")
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}
		doc.PaidAmount = doc.PaidAmount.Add(amount)
		return s.repo.Update(ctx, doc)
	})
}

// List retrieves money slips with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*MoneySlip], error) {
	return s.repo.List(ctx, filter)
}

// CreateSlip implements billing.SlipCreator for bulk runs: one slip
// per room from a computed draft, refusing rooms already billed for
// the period.
func (s *Service) CreateSlip(ctx context.Context, room billing.RoomInfo, draft billing.Draft, period types.Period) (id.ID, error) {
	doc := NewMoneySlip(room.HomeID, room.RoomID, period)
	doc.ApplyDraft(room, draft)

	if err := s.Create(ctx, doc); err != nil {
		return id.Nil(), err
	}
	return doc.ID, nil
}

func (s *Service) checkNotBilled(ctx context.Context, roomID id.ID, period types.Period, excludeID id.ID) error {
	existing, err := s.repo.FindByRoomAndPeriod(ctx, roomID, period)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != excludeID {
		return apperror.NewDuplicate("money slip", "room+period", period.String()).
			WithDetail("roomId", roomID).
			WithDetail("existingSlip", existing.Number)
	}
	return nil
}
