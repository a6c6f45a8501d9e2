package home

import (
	"context"
	"time"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/tx"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/pkg/numerator"
)

// Service provides business logic for the Home catalog.
// Uses composition with domain.CatalogService for common CRUD operations.
type Service struct {
	*domain.CatalogService[*Home]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Home service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Home]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "home",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeCreate(svc.checkCodeUnique)
	base.Hooks().OnBeforeDelete(svc.validateBeforeDelete)

	return svc
}

// prepareForCreate assigns a sequential code when none was provided.
func (s *Service) prepareForCreate(ctx context.Context, h *Home) error {
	if h.Code != "" {
		return nil
	}
	code, err := s.numerator.GetNextNumber(ctx, numerator.Config{
		Prefix:   "HOME",
		PadWidth: 3,
	}, nil, time.Now())
	if err != nil {
		return err
	}
	h.Code = code
	return nil
}

func (s *Service) checkCodeUnique(ctx context.Context, h *Home) error {
	exists, err := s.repo.ExistsByCode(ctx, h.Code)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("home", "code", h.Code)
	}
	return nil
}

// validateBeforeDelete blocks deleting a home that still has rooms.
func (s *Service) validateBeforeDelete(ctx context.Context, h *Home) error {
	count, err := s.repo.CountRooms(ctx, h.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewConflict("home still has rooms").
			WithDetail("homeId", h.ID).
			WithDetail("roomCount", count)
	}
	return nil
}
