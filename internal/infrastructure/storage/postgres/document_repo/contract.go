package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/internal/domain/documents/contract"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
)

const contractsTable = "doc_contracts"

// ContractRepo implements contract.Repository.
type ContractRepo struct {
	*BaseDocumentRepo[*contract.Contract]
}

// NewContractRepo creates a new contract repository.
func NewContractRepo(txm *postgres.TxManager) *ContractRepo {
	return &ContractRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*contract.Contract](
			txm,
			contractsTable,
			postgres.ExtractDBColumns[contract.Contract](),
			func() *contract.Contract { return &contract.Contract{} },
		),
	}
}

// FindActiveByRoom retrieves the active contract on a room, if any.
func (r *ContractRepo) FindActiveByRoom(ctx context.Context, roomID id.ID) (*contract.Contract, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": contract.StatusActive}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	doc, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("contract", roomID.String())
		}
		return nil, err
	}
	return doc, nil
}

// List retrieves contracts with filtering.
func (r *ContractRepo) List(ctx context.Context, filter contract.ListFilter) (domain.ListResult[*contract.Contract], error) {
	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.HomeID != nil {
		q = q.Where(squirrel.Eq{"home_id": *filter.HomeID})
	}

	if filter.RoomID != nil {
		q = q.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}

	if filter.RenterID != nil {
		q = q.Where(squirrel.Eq{"renter_id": *filter.RenterID})
	}

	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": *filter.Status})
	}

	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"start_date": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"start_date": *filter.DateTo})
	}

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": searchPattern},
			squirrel.ILike{"renter_name": searchPattern},
		})
	}

	return r.listWith(ctx, q, filter.ListFilter, "start_date DESC")
}
