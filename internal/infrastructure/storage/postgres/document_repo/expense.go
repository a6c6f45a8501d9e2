package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain"
	"github.com/anmds2025/roomify/internal/domain/documents/expense"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
)

const expensesTable = "doc_expenses"

// ExpenseRepo implements expense.Repository.
type ExpenseRepo struct {
	*BaseDocumentRepo[*expense.Expense]
}

// NewExpenseRepo creates a new expense repository.
func NewExpenseRepo(txm *postgres.TxManager) *ExpenseRepo {
	return &ExpenseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*expense.Expense](
			txm,
			expensesTable,
			postgres.ExtractDBColumns[expense.Expense](),
			func() *expense.Expense { return &expense.Expense{} },
		),
	}
}

func syncExpensePeriod(doc *expense.Expense) {
	doc.PeriodMonth = doc.Period.Month
	doc.PeriodYear = doc.Period.Year
}

func restoreExpensePeriod(doc *expense.Expense) {
	doc.Period = types.Period{Month: doc.PeriodMonth, Year: doc.PeriodYear}
}

// Create inserts a new expense.
func (r *ExpenseRepo) Create(ctx context.Context, doc *expense.Expense) error {
	syncExpensePeriod(doc)
	return r.BaseDocumentRepo.Create(ctx, doc)
}

// Update updates an existing expense.
func (r *ExpenseRepo) Update(ctx context.Context, doc *expense.Expense) error {
	syncExpensePeriod(doc)
	return r.BaseDocumentRepo.Update(ctx, doc)
}

// GetByID retrieves an expense by ID.
func (r *ExpenseRepo) GetByID(ctx context.Context, docID id.ID) (*expense.Expense, error) {
	doc, err := r.BaseDocumentRepo.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}
	restoreExpensePeriod(doc)
	return doc, nil
}

// GetByNumber retrieves an expense by number.
func (r *ExpenseRepo) GetByNumber(ctx context.Context, number string) (*expense.Expense, error) {
	doc, err := r.BaseDocumentRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	restoreExpensePeriod(doc)
	return doc, nil
}

// GetForUpdate retrieves an expense with row lock.
func (r *ExpenseRepo) GetForUpdate(ctx context.Context, docID id.ID) (*expense.Expense, error) {
	doc, err := r.BaseDocumentRepo.GetForUpdate(ctx, docID)
	if err != nil {
		return nil, err
	}
	restoreExpensePeriod(doc)
	return doc, nil
}

// List retrieves expenses with filtering.
func (r *ExpenseRepo) List(ctx context.Context, filter expense.ListFilter) (domain.ListResult[*expense.Expense], error) {
	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.HomeID != nil {
		q = q.Where(squirrel.Eq{"home_id": *filter.HomeID})
	}

	if filter.Kind != nil {
		q = q.Where(squirrel.Eq{"kind": *filter.Kind})
	}

	if filter.Period != nil {
		q = q.Where(squirrel.Eq{"period_month": filter.Period.Month})
		q = q.Where(squirrel.Eq{"period_year": filter.Period.Year})
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
			squirrel.ILike{"description": searchPattern},
		})
	}

	result, err := r.listWith(ctx, q, filter.ListFilter, "date DESC")
	if err != nil {
		return result, err
	}

	for _, doc := range result.Items {
		restoreExpensePeriod(doc)
	}

	return result, nil
}
