// Package report_repo provides PostgreSQL implementations for report
// repositories.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/billing"
	"github.com/anmds2025/roomify/internal/domain/reports"
	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// slipLineRow is one slip line joined with its slip's period.
type slipLineRow struct {
	DocumentID  id.ID            `db:"document_id"`
	PeriodMonth int              `db:"period_month"`
	PeriodYear  int              `db:"period_year"`
	Category    billing.Category `db:"category"`
	Amount      types.Money      `db:"amount"`
}

// GetSlipFacts returns period and line items of finalized slips.
func (r *ReportRepo) GetSlipFacts(ctx context.Context, homeID *id.ID) ([]billing.SlipFacts, error) {
	q := r.builder.
		Select(
			"l.document_id",
			"s.period_month",
			"s.period_year",
			"l.category",
			"l.amount",
		).
		From("doc_money_slip_lines l").
		Join("doc_money_slips s ON s.id = l.document_id").
		Where(squirrel.Eq{"s.finalized": true}).
		Where(squirrel.Eq{"s.deletion_mark": false}).
		OrderBy("l.document_id", "l.line_no")

	if homeID != nil {
		q = q.Where(squirrel.Eq{"s.home_id": *homeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build slip facts query: %w", err)
	}

	var rows []slipLineRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("slip facts: %w", err)
	}

	// Group rows by slip; rows come ordered by document_id.
	var facts []billing.SlipFacts
	var current *billing.SlipFacts
	var currentID id.ID
	for _, row := range rows {
		if current == nil || row.DocumentID != currentID {
			facts = append(facts, billing.SlipFacts{
				Period: types.Period{Month: row.PeriodMonth, Year: row.PeriodYear},
			})
			current = &facts[len(facts)-1]
			currentID = row.DocumentID
		}
		current.Lines = append(current.Lines, billing.LineItem{
			Category: row.Category,
			Amount:   row.Amount,
		})
	}

	return facts, nil
}

// GetExpenseFacts returns period and amount of non-deleted expenses.
func (r *ReportRepo) GetExpenseFacts(ctx context.Context, homeID *id.ID) ([]billing.ExpenseFacts, error) {
	q := r.builder.
		Select("period_month", "period_year", "amount").
		From("doc_expenses").
		Where(squirrel.Eq{"deletion_mark": false})

	if homeID != nil {
		q = q.Where(squirrel.Eq{"home_id": *homeID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build expense facts query: %w", err)
	}

	var rows []struct {
		PeriodMonth int         `db:"period_month"`
		PeriodYear  int         `db:"period_year"`
		Amount      types.Money `db:"amount"`
	}
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("expense facts: %w", err)
	}

	facts := make([]billing.ExpenseFacts, 0, len(rows))
	for _, row := range rows {
		facts = append(facts, billing.ExpenseFacts{
			Period: types.Period{Month: row.PeriodMonth, Year: row.PeriodYear},
			Amount: row.Amount,
		})
	}

	return facts, nil
}

// GetDebtReport returns rooms with outstanding slip balances.
func (r *ReportRepo) GetDebtReport(ctx context.Context, filter reports.DebtReportFilter) (*reports.DebtReport, error) {
	q := r.builder.
		Select(
			"s.room_id",
			"MAX(s.room_code) AS room_code",
			"MAX(s.renter_name) AS renter_name",
			"COUNT(*) AS slip_count",
			"SUM(s.total_amount - s.paid_amount) AS outstanding",
		).
		From("doc_money_slips s").
		Where(squirrel.Eq{"s.finalized": true}).
		Where(squirrel.Eq{"s.deletion_mark": false}).
		Where(squirrel.Expr("s.paid_amount < s.total_amount")).
		GroupBy("s.room_id").
		OrderBy("outstanding DESC")

	if filter.HomeID != nil {
		q = q.Where(squirrel.Eq{"s.home_id": *filter.HomeID})
	}

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build debt report query: %w", err)
	}

	var items []reports.DebtReportItem
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("debt report: %w", err)
	}

	return &reports.DebtReport{
		Items: items,
		Total: len(items),
	}, nil
}
