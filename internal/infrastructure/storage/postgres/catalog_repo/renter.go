package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/domain/catalogs/renter"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
)

const renterTable = "cat_renters"

// RenterRepo implements renter.Repository.
type RenterRepo struct {
	*BaseCatalogRepo[*renter.Renter]
}

// NewRenterRepo creates a new renter repository.
func NewRenterRepo(txm *postgres.TxManager) *RenterRepo {
	return &RenterRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*renter.Renter](
			txm,
			renterTable,
			postgres.ExtractDBColumns[renter.Renter](),
			func() *renter.Renter { return &renter.Renter{} },
		),
	}
}

// FindByPhone retrieves a renter by phone number.
func (r *RenterRepo) FindByPhone(ctx context.Context, phone string) (*renter.Renter, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"phone": phone}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	rt, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("renter", phone)
		}
		return nil, err
	}
	return rt, nil
}
