package reports

import (
	"context"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/domain/billing"
)

// Repository defines report data access. It hands back raw facts;
// the aggregation math lives in the billing package so it can be
// tested without a database.
type Repository interface {
	// GetSlipFacts returns period and line items of finalized,
	// non-deleted slips in scope.
	GetSlipFacts(ctx context.Context, homeID *id.ID) ([]billing.SlipFacts, error)

	// GetExpenseFacts returns period and amount of non-deleted
	// expenses in scope.
	GetExpenseFacts(ctx context.Context, homeID *id.ID) ([]billing.ExpenseFacts, error)

	// GetDebtReport returns rooms with outstanding slip balances.
	GetDebtReport(ctx context.Context, filter DebtReportFilter) (*DebtReport, error)
}
