// Package expense provides the Expense document service.
package expense

import (
	"context"
	"fmt"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/tx"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/pkg/logger"
	"github.com/anmds2025/roomify/pkg/numerator"
)

// Service provides business operations for expense documents.
type Service struct {
	repo      Repository
	numerator numerator.Generator
	txManager tx.Manager
	hooks     *domain.HookRegistry[*Expense]
}

// NewService creates a new expense service.
func NewService(repo Repository, gen numerator.Generator, txManager tx.Manager) *Service {
	return &Service{
		repo:      repo,
		numerator: gen,
		txManager: txManager,
		hooks:     domain.NewHookRegistry[*Expense](),
	}
}

// Hooks returns the hook registry for registering callbacks.
func (s *Service) Hooks() *domain.HookRegistry[*Expense] {
	return s.hooks
}

// Create creates a new expense document.
func (s *Service) Create(ctx context.Context, doc *Expense) error {
	if err := s.hooks.RunBeforeCreate(ctx, doc); err != nil {
		return err
	}

	if err := doc.Validate(ctx); err != nil {
		return err
	}

	if doc.Number == "" {
		cfg := numerator.DefaultConfig("EX")
		number, err := s.numerator.GetNextNumber(ctx, cfg, nil, doc.Period.Start())
		if err != nil {
			return fmt.Errorf("generate number: %w", err)
		}
		doc.Number = number
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, doc)
	})
	if err != nil {
		return err
	}

	if err := s.hooks.RunAfterCreate(ctx, doc); err != nil {
		logger.Warn(ctx, "after-create hook failed", "error", err)
	}

	logger.Info(ctx, "expense created",
		"id", doc.ID,
		"number", doc.Number,
		"kind", string(doc.Kind),
		"period", doc.Period.String())

	return nil
}

// GetByID retrieves an expense.
func (s *Service) GetByID(ctx context.Context, docID id.ID) (*Expense, error) {
	return s.repo.GetByID(ctx, docID)
}

// Update updates an expense. Finalized expenses reject updates.
func (s *Service) Update(ctx context.Context, doc *Expense) error {
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
		return s.repo.Update(ctx, doc)
	})
}

// Delete soft-deletes an expense.
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

// Finalize locks the expense against edits.
func (s *Service) Finalize(ctx context.Context, docID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		doc, err := s.repo.GetForUpdate(ctx, docID)
		if err != nil {
			return err
		}
		if err := doc.CanModify(); err != nil {
			return err
		}
		doc.MarkFinalized()
		return s.repo.Update(ctx, doc)
	})
}

// List retrieves expenses with filtering.
func (s *Service) List(ctx context.Context, filter ListFilter) (domain.ListResult[*Expense], error) {
	return s.repo.List(ctx, filter)
}
