package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain/catalogs/room"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
)

const roomTable = "cat_rooms"

// RoomRepo implements room.Repository.
type RoomRepo struct {
	*BaseCatalogRepo[*room.Room]
}

// NewRoomRepo creates a new room repository.
func NewRoomRepo(txm *postgres.TxManager) *RoomRepo {
	return &RoomRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*room.Room](
			txm,
			roomTable,
			postgres.ExtractDBColumns[room.Room](),
			func() *room.Room { return &room.Room{} },
		),
	}
}

// FindByHome lists rooms of one home, ordered by code.
func (r *RoomRepo) FindByHome(ctx context.Context, homeID id.ID) ([]*room.Room, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"home_id": homeID}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("code ASC")

	return r.FindMany(ctx, q)
}

// FindOccupied lists occupied rooms across all homes, ordered by code.
func (r *RoomRepo) FindOccupied(ctx context.Context) ([]*room.Room, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"status": room.StatusOccupied}).
		Where(squirrel.Eq{"deletion_mark": false}).
		OrderBy("code ASC")

	return r.FindMany(ctx, q)
}

// UpdateReadings writes the carried-over meter readings.
func (r *RoomRepo) UpdateReadings(ctx context.Context, roomID id.ID, electricity, water decimal.Decimal) error {
	q := r.Builder().
		Update(roomTable).
		Set("old_electricity", electricity).
		Set("old_water", water).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": roomID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update readings: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update readings: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(roomTable, roomID.String())
	}

	return nil
}
