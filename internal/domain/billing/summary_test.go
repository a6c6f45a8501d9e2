package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anmds2025/roomify/internal/core/types"
)

func period(m, y int) types.Period {
	return types.Period{Month: m, Year: y}
}

func TestAggregate_SinglePeriod(t *testing.T) {
	// Two finalized slips in 3/2025 (2,000,000 + 2,500,000 revenue) and
	// one 500,000 expense: revenue 4,500,000, profit 4,000,000.
	slips := []SlipFacts{
		{Period: period(3, 2025), Lines: []LineItem{
			{Category: CategoryRoom, Amount: types.NewMoneyFromInt(2000000)},
		}},
		{Period: period(3, 2025), Lines: []LineItem{
			{Category: CategoryRoom, Amount: types.NewMoneyFromInt(2200000)},
			{Category: CategoryElectricity, Amount: types.NewMoneyFromInt(300000)},
		}},
	}
	expenses := []ExpenseFacts{
		{Period: period(3, 2025), Amount: types.NewMoneyFromInt(500000)},
	}

	summary, err := Aggregate(slips, expenses, "3/2025")
	require.NoError(t, err)

	assert.Equal(t, "3/2025", summary.Period)
	assert.Equal(t, 2, summary.SlipCount)
	assert.True(t, summary.TotalRevenue.Equal(types.NewMoneyFromInt(4500000)), "revenue %s", summary.TotalRevenue)
	assert.True(t, summary.TotalExpense.Equal(types.NewMoneyFromInt(500000)))
	assert.True(t, summary.Profit.Equal(types.NewMoneyFromInt(4000000)), "profit %s", summary.Profit)
	assert.True(t, summary.RevenueByCategory[CategoryRoom].Equal(types.NewMoneyFromInt(4200000)))
	assert.True(t, summary.RevenueByCategory[CategoryElectricity].Equal(types.NewMoneyFromInt(300000)))
}

func TestAggregate_PaddedPeriodMatchesUnpadded(t *testing.T) {
	// Data recorded as "03/2025" and a "3/2025" query are the same month.
	slips := []SlipFacts{
		{Period: period(3, 2025), Lines: []LineItem{
			{Category: CategoryRoom, Amount: types.NewMoneyFromInt(1000000)},
		}},
	}

	summary, err := Aggregate(slips, nil, "03/2025")
	require.NoError(t, err)

	assert.Equal(t, "3/2025", summary.Period)
	assert.True(t, summary.TotalRevenue.Equal(types.NewMoneyFromInt(1000000)))
}

func TestAggregate_DebtAndServiceExcludedFromRevenue(t *testing.T) {
	slips := []SlipFacts{
		{Period: period(4, 2025), Lines: []LineItem{
			{Category: CategoryRoom, Amount: types.NewMoneyFromInt(2000000)},
			{Category: CategoryDebt, Amount: types.NewMoneyFromInt(500000)},
			{Category: CategoryService, Amount: types.NewMoneyFromInt(100000)},
		}},
	}

	summary, err := Aggregate(slips, nil, "4/2025")
	require.NoError(t, err)

	assert.True(t, summary.TotalRevenue.Equal(types.NewMoneyFromInt(2000000)), "revenue %s", summary.TotalRevenue)
	_, hasDebt := summary.RevenueByCategory[CategoryDebt]
	assert.False(t, hasDebt)
}

func TestAggregate_AllPeriods(t *testing.T) {
	slips := []SlipFacts{
		{Period: period(1, 2025), Lines: []LineItem{{Category: CategoryRoom, Amount: types.NewMoneyFromInt(1000000)}}},
		{Period: period(2, 2025), Lines: []LineItem{{Category: CategoryRoom, Amount: types.NewMoneyFromInt(1500000)}}},
	}
	expenses := []ExpenseFacts{
		{Period: period(1, 2025), Amount: types.NewMoneyFromInt(200000)},
	}

	summary, err := Aggregate(slips, expenses, types.PeriodAll)
	require.NoError(t, err)

	assert.Equal(t, types.PeriodAll, summary.Period)
	assert.True(t, summary.TotalRevenue.Equal(types.NewMoneyFromInt(2500000)))
	assert.True(t, summary.Profit.Equal(types.NewMoneyFromInt(2300000)))
}

func TestAggregate_InvalidPeriod(t *testing.T) {
	_, err := Aggregate(nil, nil, "2025-03")
	require.Error(t, err)
}

func TestAggregate_NegativeProfit(t *testing.T) {
	expenses := []ExpenseFacts{
		{Period: period(5, 2025), Amount: types.NewMoneyFromInt(800000)},
	}

	summary, err := Aggregate(nil, expenses, "5/2025")
	require.NoError(t, err)

	assert.True(t, summary.Profit.Equal(types.NewMoneyFromInt(-800000)), "profit %s", summary.Profit)
}

func TestMonthlySeries_SkipsEmptyMonths(t *testing.T) {
	slips := []SlipFacts{
		{Period: period(1, 2025), Lines: []LineItem{{Category: CategoryRoom, Amount: types.NewMoneyFromInt(1000000)}}},
		// 2/2025 has a slip with only a zero line: revenue and expense
		// both zero, so the month stays out of the series.
		{Period: period(2, 2025), Lines: []LineItem{{Category: CategoryRoom, Amount: types.Zero()}}},
		{Period: period(3, 2025), Lines: []LineItem{{Category: CategoryRoom, Amount: types.NewMoneyFromInt(1200000)}}},
	}
	expenses := []ExpenseFacts{
		{Period: period(4, 2025), Amount: types.NewMoneyFromInt(300000)},
	}

	series := MonthlySeries(slips, expenses)

	require.Len(t, series, 3)
	assert.Equal(t, period(1, 2025), series[0].Period)
	assert.Equal(t, period(3, 2025), series[1].Period)
	assert.Equal(t, period(4, 2025), series[2].Period)
	assert.True(t, series[2].Profit.Equal(types.NewMoneyFromInt(-300000)))
}

func TestMonthlySeries_SortsAcrossYears(t *testing.T) {
	slips := []SlipFacts{
		{Period: period(1, 2026), Lines: []LineItem{{Category: CategoryRoom, Amount: types.NewMoneyFromInt(100)}}},
		{Period: period(12, 2025), Lines: []LineItem{{Category: CategoryRoom, Amount: types.NewMoneyFromInt(100)}}},
	}

	series := MonthlySeries(slips, nil)

	require.Len(t, series, 2)
	assert.Equal(t, period(12, 2025), series[0].Period)
	assert.Equal(t, period(1, 2026), series[1].Period)
}
