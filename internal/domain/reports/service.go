package reports

import (
	"context"
	"fmt"

	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/billing"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetPeriodSummary generates the revenue/expense/profit rollup for one
// period or for all time.
func (s *Service) GetPeriodSummary(ctx context.Context, filter PeriodSummaryFilter) (*billing.PeriodSummary, error) {
	if filter.Period == "" {
		filter.Period = types.PeriodAll
	}

	slips, err := s.repo.GetSlipFacts(ctx, filter.HomeID)
	if err != nil {
		return nil, fmt.Errorf("get slip facts: %w", err)
	}
	expenses, err := s.repo.GetExpenseFacts(ctx, filter.HomeID)
	if err != nil {
		return nil, fmt.Errorf("get expense facts: %w", err)
	}

	summary, err := billing.Aggregate(slips, expenses, filter.Period)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetMonthlySeries generates the month-by-month revenue/expense series
// for charts. Months with no activity are omitted.
func (s *Service) GetMonthlySeries(ctx context.Context, filter MonthlySeriesFilter) (*MonthlySeriesReport, error) {
	slips, err := s.repo.GetSlipFacts(ctx, filter.HomeID)
	if err != nil {
		return nil, fmt.Errorf("get slip facts: %w", err)
	}
	expenses, err := s.repo.GetExpenseFacts(ctx, filter.HomeID)
	if err != nil {
		return nil, fmt.Errorf("get expense facts: %w", err)
	}

	if filter.Year != 0 {
		slips = filterSlipsByYear(slips, filter.Year)
		expenses = filterExpensesByYear(expenses, filter.Year)
	}

	months := billing.MonthlySeries(slips, expenses)

	report := &MonthlySeriesReport{
		Months:       months,
		TotalRevenue: types.Zero(),
		TotalExpense: types.Zero(),
		TotalProfit:  types.Zero(),
	}
	for _, m := range months {
		report.TotalRevenue = report.TotalRevenue.Add(m.Revenue)
		report.TotalExpense = report.TotalExpense.Add(m.Expense)
		report.TotalProfit = report.TotalProfit.Add(m.Profit)
	}
	return report, nil
}

// GetDebtReport returns rooms with outstanding slip balances.
func (s *Service) GetDebtReport(ctx context.Context, filter DebtReportFilter) (*DebtReport, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Limit > 1000 {
		filter.Limit = 1000
	}

	report, err := s.repo.GetDebtReport(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get debt report: %w", err)
	}
	return report, nil
}

func filterSlipsByYear(slips []billing.SlipFacts, year int) []billing.SlipFacts {
	out := slips[:0:0]
	for _, s := range slips {
		if s.Period.Year == year {
			out = append(out, s)
		}
	}
	return out
}

func filterExpensesByYear(expenses []billing.ExpenseFacts, year int) []billing.ExpenseFacts {
	out := expenses[:0:0]
	for _, e := range expenses {
		if e.Period.Year == year {
			out = append(out, e)
		}
	}
	return out
}
