package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain/catalogs/home"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
)

const homeTable = "cat_homes"

// HomeRepo implements home.Repository.
type HomeRepo struct {
	*BaseCatalogRepo[*home.Home]
}

// NewHomeRepo creates a new home repository.
func NewHomeRepo(txm *postgres.TxManager) *HomeRepo {
	return &HomeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*home.Home](
			txm,
			homeTable,
			postgres.ExtractDBColumns[home.Home](),
			func() *home.Home { return &home.Home{} },
		),
	}
}

// CountRooms returns how many rooms reference the home.
func (r *HomeRepo) CountRooms(ctx context.Context, homeID id.ID) (int, error) {
	q := r.Builder().
		Select("COUNT(*)").
		From(roomTable).
		Where(squirrel.Eq{"home_id": homeID}).
		Where(squirrel.Eq{"deletion_mark": false})

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count rooms: %w", err)
	}

	return count, nil
}
