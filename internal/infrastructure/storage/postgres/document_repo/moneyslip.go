package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/internal/domain/documents/moneyslip"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
)

const (
	moneySlipsTable     = "doc_money_slips"
	moneySlipLinesTable = "doc_money_slip_lines"
)

// MoneySlipRepo implements moneyslip.Repository.
type MoneySlipRepo struct {
	*BaseDocumentRepo[*moneyslip.MoneySlip]
}

// NewMoneySlipRepo creates a new money slip repository.
func NewMoneySlipRepo(txm *postgres.TxManager) *MoneySlipRepo {
	return &MoneySlipRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*moneyslip.MoneySlip](
			txm,
			moneySlipsTable,
			postgres.ExtractDBColumns[moneyslip.MoneySlip](),
			func() *moneyslip.MoneySlip { return &moneyslip.MoneySlip{} },
		),
	}
}

func syncSlipPeriod(doc *moneyslip.MoneySlip) {
	doc.PeriodMonth = doc.Period.Month
	doc.PeriodYear = doc.Period.Year
}

func restoreSlipPeriod(doc *moneyslip.MoneySlip) {
	doc.Period = types.Period{Month: doc.PeriodMonth, Year: doc.PeriodYear}
}

// Create inserts a new money slip.
func (r *MoneySlipRepo) Create(ctx context.Context, doc *moneyslip.MoneySlip) error {
	syncSlipPeriod(doc)
	return r.BaseDocumentRepo.Create(ctx, doc)
}

// Update updates an existing money slip.
func (r *MoneySlipRepo) Update(ctx context.Context, doc *moneyslip.MoneySlip) error {
	syncSlipPeriod(doc)
	return r.BaseDocumentRepo.Update(ctx, doc)
}

// GetByID retrieves a money slip by ID.
func (r *MoneySlipRepo) GetByID(ctx context.Context, docID id.ID) (*moneyslip.MoneySlip, error) {
	doc, err := r.BaseDocumentRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	restoreSlipPeriod(doc)
	return doc, nil
}

// GetByNumber retrieves a money slip by number.
func (r *MoneySlipRepo) GetByNumber(ctx context.Context, number string) (*moneyslip.MoneySlip, error) {
	doc, err := r.BaseDocumentRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	restoreSlipPeriod(doc)
	return doc, nil
}

// GetForUpdate retrieves a money slip with row lock.
func (r *MoneySlipRepo) GetForUpdate(ctx context.Context, docID id.ID) (*moneyslip.MoneySlip, error) {
	doc, err := r.BaseDocumentRepo.GetForUpdate(ctx, docID)
	if err != nil {
		return nil, err
	}
	restoreSlipPeriod(doc)
	return doc, nil
}

// GetLines retrieves lines for a money slip.
func (r *MoneySlipRepo) GetLines(ctx context.Context, docID id.ID) ([]moneyslip.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "category", "amount").
		From(moneySlipLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []moneyslip.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

// SaveLines saves lines for a money slip (delete existing + insert new).
func (r *MoneySlipRepo) SaveLines(ctx context.Context, docID id.ID, lines []moneyslip.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + moneySlipLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(moneySlipLinesTable).
		Columns("line_id", "document_id", "line_no", "category", "amount")

	for _, line := range lines {
		q = q.Values(line.LineID, docID, line.LineNo, line.Category, line.Amount)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert lines: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}

// List retrieves money slips with filtering.
func (r *MoneySlipRepo) List(ctx context.Context, filter moneyslip.ListFilter) (domain.ListResult[*moneyslip.MoneySlip], error) {
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

	if filter.Period != nil {
		q = q.Where(squirrel.Eq{"period_month": filter.Period.Month})
		q = q.Where(squirrel.Eq{"period_year": filter.Period.Year})
	}

	if filter.Finalized != nil {
		q = q.Where(squirrel.Eq{"finalized": *filter.Finalized})
	}

	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": searchPattern},
			squirrel.ILike{"room_code": searchPattern},
			squirrel.ILike{"renter_name": searchPattern},
		})
	}

	result, err := r.listWith(ctx, q, filter.ListFilter, "date DESC")
	if err != nil {
		return result, err
	}

	for _, doc := range result.Items {
		restoreSlipPeriod(doc)
	}

	return result, nil
}

// FindByRoomAndPeriod retrieves the slip for a room in a period.
func (r *MoneySlipRepo) FindByRoomAndPeriod(ctx context.Context, roomID id.ID, period types.Period) (*moneyslip.MoneySlip, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"period_month": period.Month}).
		Where(squirrel.Eq{"period_year": period.Year}).
		Where(squirrel.Eq{"deletion_mark": false}).
		Limit(1)

	doc, err := r.FindOne(ctx, q)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("money slip", roomID.String()+"@"+period.String())
		}
		return nil, err
	}
	restoreSlipPeriod(doc)
	return doc, nil
}
