package renter

import (
	"context"
	"time"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/tx"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/pkg/numerator"
)

// Service provides business logic for the Renter catalog.
type Service struct {
	*domain.CatalogService[*Renter]
	repo      Repository
	numerator numerator.Generator
}

// NewService creates a new Renter service.
func NewService(repo Repository, txManager tx.Manager, gen numerator.Generator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Renter]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "renter",
	})

	svc := &Service{
		CatalogService: base,
		repo:           repo,
		numerator:      gen,
	}

	base.Hooks().OnBeforeCreate(svc.prepareForCreate)
	base.Hooks().OnBeforeUpdate(svc.checkPhoneUnique)

	return svc
}

func (s *Service) prepareForCreate(ctx context.Context, r *Renter) error {
	if r.Code == "" {
		code, err := s.numerator.GetNextNumber(ctx, numerator.Config{
			Prefix:   "RT",
			PadWidth: 5,
		}, nil, time.Now())
		if err != nil {
			return err
		}
		r.Code = code
	}
	return s.checkPhoneUnique(ctx, r)
}

func (s *Service) checkPhoneUnique(ctx context.Context, r *Renter) error {
	existing, err := s.repo.FindByPhone(ctx, r.Phone)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID != r.ID {
		return apperror.NewDuplicate("renter", "phone", r.Phone)
	}
	return nil
}

// FindByPhone retrieves a renter by phone number.
func (s *Service) FindByPhone(ctx context.Context, phone string) (*Renter, error) {
	return s.repo.FindByPhone(ctx, phone)
}

// --- Entity-specific methods ---

// AssignRoom records the move-in date when a renter takes a room.
// The room side of the assignment is handled by the contract document.
func (s *Service) AssignRoom(ctx context.Context, renterID id.ID, moveIn time.Time) error {
	r, err := s.GetByID(ctx, renterID)
	if err != nil {
		return err
	}
	r.MoveInDate = &moveIn
	return s.Update(ctx, r)
}
