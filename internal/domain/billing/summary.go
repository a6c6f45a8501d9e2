package billing

import (
	"sort"

	"github.com/anmds2025/roomify/internal/core/apperror"
	"github.com/anmds2025/roomify/internal/core/types"
)

// RevenueCategories are the line-item categories counted as revenue in
// period summaries, in report display order. Debt lines are balance
// transfers between periods and service lines are cost pass-throughs;
// neither is revenue.
var RevenueCategories = []Category{
	CategoryRoom,
	CategoryElectricity,
	CategoryWater,
	CategoryParking,
	CategoryOther,
}

// SlipFacts is the aggregation view of a money slip: its period and
// line items. Only finalized slips should be fed to Aggregate; the
// caller (report repository) enforces that.
type SlipFacts struct {
	Period types.Period
	Lines  []LineItem
}

// ExpenseFacts is the aggregation view of an expense document.
type ExpenseFacts struct {
	Period types.Period
	Amount types.Money
}

// PeriodSummary is the financial rollup for one period or for all time.
type PeriodSummary struct {
	Period            string                   `json:"period"`
	SlipCount         int                      `json:"slipCount"`
	RevenueByCategory map[Category]types.Money `json:"revenueByCategory"`
	TotalRevenue      types.Money              `json:"totalRevenue"`
	TotalExpense      types.Money              `json:"totalExpense"`
	Profit            types.Money              `json:"profit"`
}

// MonthTotal is one point of a monthly revenue/expense series.
type MonthTotal struct {
	Period  types.Period `json:"period"`
	Revenue types.Money  `json:"revenue"`
	Expense types.Money  `json:"expense"`
	Profit  types.Money  `json:"profit"`
}

// Aggregate builds the financial summary for the given period scope.
// Scope is either the PeriodAll marker or an "M/YYYY" period string;
// period matching is by month/year value, so "03/2025" input data and
// a "3/2025" scope land in the same bucket. Profit is total revenue
// minus total expense and may be negative.
func Aggregate(slips []SlipFacts, expenses []ExpenseFacts, scope string) (PeriodSummary, error) {
	all := scope == types.PeriodAll
	var period types.Period
	if !all {
		var err error
		period, err = types.ParsePeriod(scope)
		if err != nil {
			return PeriodSummary{}, apperror.NewValidation("invalid period").
				WithDetail("period", scope).
				WithCause(err)
		}
	}

	byCategory := make(map[Category]types.Money, len(RevenueCategories))
	for _, c := range RevenueCategories {
		byCategory[c] = types.Zero()
	}

	revenue := types.Zero()
	slipCount := 0
	for _, slip := range slips {
		if !all && !slip.Period.Equal(period) {
			continue
		}
		slipCount++
		for _, line := range slip.Lines {
			if !isRevenue(line.Category) {
				continue
			}
			byCategory[line.Category] = byCategory[line.Category].Add(line.Amount)
			revenue = revenue.Add(line.Amount)
		}
	}

	expense := types.Zero()
	for _, e := range expenses {
		if !all && !e.Period.Equal(period) {
			continue
		}
		expense = expense.Add(e.Amount)
	}

	out := PeriodSummary{
		Period:            scope,
		SlipCount:         slipCount,
		RevenueByCategory: byCategory,
		TotalRevenue:      revenue,
		TotalExpense:      expense,
		Profit:            revenue.Sub(expense),
	}
	if !all {
		out.Period = period.String()
	}
	return out, nil
}

// MonthlySeries rolls slips and expenses up per month, sorted
// chronologically. Months where both revenue and expense are zero are
// left out so chart ranges track actual activity.
func MonthlySeries(slips []SlipFacts, expenses []ExpenseFacts) []MonthTotal {
	type bucket struct {
		revenue types.Money
		expense types.Money
	}
	buckets := map[types.Period]*bucket{}

	get := func(p types.Period) *bucket {
		b, ok := buckets[p]
		if !ok {
			b = &bucket{revenue: types.Zero(), expense: types.Zero()}
			buckets[p] = b
		}
		return b
	}

	for _, slip := range slips {
		b := get(slip.Period)
		for _, line := range slip.Lines {
			if isRevenue(line.Category) {
				b.revenue = b.revenue.Add(line.Amount)
			}
		}
	}
	for _, e := range expenses {
		b := get(e.Period)
		b.expense = b.expense.Add(e.Amount)
	}

	series := make([]MonthTotal, 0, len(buckets))
	for p, b := range buckets {
		if b.revenue.IsZero() && b.expense.IsZero() {
			continue
		}
		series = append(series, MonthTotal{
			Period:  p,
			Revenue: b.revenue,
			Expense: b.expense,
			Profit:  b.revenue.Sub(b.expense),
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Period.Before(series[j].Period)
	})
	return series
}

func isRevenue(c Category) bool {
	switch c {
	case CategoryRoom, CategoryElectricity, CategoryWater, CategoryParking, CategoryOther:
		return true
	}
	return false
}
