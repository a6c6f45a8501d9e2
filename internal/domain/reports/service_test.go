package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmds2025/roomify/internal/core/id"
	"github.com/anmds2025/roomify/internal/core/types"
	"github.com/anmds2025/roomify/internal/domain/billing"
)

type fakeRepo struct {
	slips    []billing.SlipFacts
	expenses []billing.ExpenseFacts
	debt     *DebtReport

	lastHomeID     *id.ID
	lastDebtFilter DebtReportFilter
}

func (f *fakeRepo) GetSlipFacts(_ context.Context, homeID *id.ID) ([]billing.SlipFacts, error) {
	f.lastHomeID = homeID
	return f.slips, nil
}

func (f *fakeRepo) GetExpenseFacts(_ context.Context, homeID *id.ID) ([]billing.ExpenseFacts, error) {
	return f.expenses, nil
}

func (f *fakeRepo) GetDebtReport(_ context.Context, filter DebtReportFilter) (*DebtReport, error) {
	f.lastDebtFilter = filter
	return f.debt, nil
}

func period(month, year int) types.Period {
	return types.Period{Month: month, Year: year}
}

func slipFacts(p types.Period, rent, electricity int64) billing.SlipFacts {
	return billing.SlipFacts{
		Period: p,
		Lines: []billing.LineItem{
			{Category: billing.CategoryRoom, Amount: types.NewMoneyFromInt(rent)},
			{Category: billing.CategoryElectricity, Amount: types.NewMoneyFromInt(electricity)},
		},
	}
}

func TestGetPeriodSummary_SinglePeriod(t *testing.T) {
	repo := &fakeRepo{
		slips: []billing.SlipFacts{
			slipFacts(period(3, 2025), 2_000_000, 150_000),
			slipFacts(period(4, 2025), 2_000_000, 180_000),
		},
		expenses: []billing.ExpenseFacts{
			{Period: period(3, 2025), Amount: types.NewMoneyFromInt(500_000)},
		},
	}
	svc := NewService(repo)

	summary, err := svc.GetPeriodSummary(context.Background(), PeriodSummaryFilter{Period: "3/2025"})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.SlipCount, "only March slips counted")
	assert.True(t, summary.TotalRevenue.Equal(types.NewMoneyFromInt(2_150_000)), "revenue %s", summary.TotalRevenue)
	assert.True(t, summary.TotalExpense.Equal(types.NewMoneyFromInt(500_000)))
	assert.True(t, summary.Profit.Equal(types.NewMoneyFromInt(1_650_000)))
	assert.True(t, summary.RevenueByCategory[billing.CategoryRoom].Equal(types.NewMoneyFromInt(2_000_000)))
}

func TestGetPeriodSummary_DefaultsToAllTime(t *testing.T) {
	repo := &fakeRepo{
		slips: []billing.SlipFacts{
			slipFacts(period(3, 2025), 2_000_000, 150_000),
			slipFacts(period(4, 2025), 2_000_000, 180_000),
		},
	}
	svc := NewService(repo)

	summary, err := svc.GetPeriodSummary(context.Background(), PeriodSummaryFilter{})
	require.NoError(t, err)

	assert.Equal(t, types.PeriodAll, summary.Period)
	assert.Equal(t, 2, summary.SlipCount)
	assert.True(t, summary.TotalRevenue.Equal(types.NewMoneyFromInt(4_330_000)))
}

func TestGetPeriodSummary_InvalidPeriod(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.GetPeriodSummary(context.Background(), PeriodSummaryFilter{Period: "13/2025"})
	assert.Error(t, err)
}

func TestGetPeriodSummary_PassesHomeScope(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	homeID := id.New()

	_, err := svc.GetPeriodSummary(context.Background(), PeriodSummaryFilter{
		Period: types.PeriodAll,
		HomeID: &homeID,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastHomeID)
	assert.Equal(t, homeID, *repo.lastHomeID)
}

func TestGetMonthlySeries_YearFilterAndTotals(t *testing.T) {
	repo := &fakeRepo{
		slips: []billing.SlipFacts{
			slipFacts(period(3, 2025), 2_000_000, 100_000),
			slipFacts(period(4, 2025), 2_000_000, 200_000),
			slipFacts(period(12, 2024), 9_000_000, 0),
		},
		expenses: []billing.ExpenseFacts{
			{Period: period(3, 2025), Amount: types.NewMoneyFromInt(300_000)},
			{Period: period(12, 2024), Amount: types.NewMoneyFromInt(1_000_000)},
		},
	}
	svc := NewService(repo)

	report, err := svc.GetMonthlySeries(context.Background(), MonthlySeriesFilter{Year: 2025})
	require.NoError(t, err)

	require.Len(t, report.Months, 2, "2024 data excluded")
	assert.True(t, report.Months[0].Period.Before(report.Months[1].Period), "months sorted ascending")
	assert.True(t, report.TotalRevenue.Equal(types.NewMoneyFromInt(4_300_000)))
	assert.True(t, report.TotalExpense.Equal(types.NewMoneyFromInt(300_000)))
	assert.True(t, report.TotalProfit.Equal(types.NewMoneyFromInt(4_000_000)))
}

func TestGetMonthlySeries_EmptyData(t *testing.T) {
	svc := NewService(&fakeRepo{})

	report, err := svc.GetMonthlySeries(context.Background(), MonthlySeriesFilter{})
	require.NoError(t, err)
	assert.Empty(t, report.Months)
	assert.True(t, report.TotalProfit.IsZero())
}

func TestGetDebtReport_ClampsLimit(t *testing.T) {
	repo := &fakeRepo{debt: &DebtReport{}}
	svc := NewService(repo)

	_, err := svc.GetDebtReport(context.Background(), DebtReportFilter{Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 100, repo.lastDebtFilter.Limit, "default limit applied")

	_, err = svc.GetDebtReport(context.Background(), DebtReportFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1000, repo.lastDebtFilter.Limit, "limit capped")
}
