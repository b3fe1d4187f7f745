package aggregation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(id, category string, amount int64, date time.Time) *domain.Expense {
	return &domain.Expense{
		ID:          id,
		Amount:      decimal.NewFromInt(amount),
		Category:    category,
		Description: category + " " + id,
		Date:        date,
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 30, 0, 0, time.UTC)
}

func ids(expenses []*domain.Expense) []string {
	out := make([]string, len(expenses))
	for i, e := range expenses {
		out[i] = e.ID
	}
	return out
}

func TestFilterByMonth_SelectsExactMonthAndPreservesOrder(t *testing.T) {
	expenses := []*domain.Expense{
		expense("1", domain.CategoryGrocery, 100, day(2024, time.March, 31)),
		expense("2", domain.CategoryGrocery, 200, day(2024, time.April, 1)),
		expense("3", domain.CategoryTransport, 300, day(2023, time.April, 15)),
		expense("4", domain.CategoryTransport, 400, day(2024, time.April, 30)),
		expense("5", domain.CategoryTravel, 500, day(2024, time.April, 2)),
	}

	filtered := FilterByMonth(expenses, time.April, 2024)

	assert.Equal(t, []string{"2", "4", "5"}, ids(filtered))
}

func TestFilterByMonth_IsIdempotent(t *testing.T) {
	expenses := []*domain.Expense{
		expense("1", domain.CategoryGrocery, 100, day(2024, time.January, 5)),
		expense("2", domain.CategoryGrocery, 200, day(2024, time.February, 5)),
		expense("3", domain.CategoryGrocery, 300, day(2024, time.January, 25)),
	}

	once := FilterByMonth(expenses, time.January, 2024)
	twice := FilterByMonth(once, time.January, 2024)

	assert.Equal(t, ids(once), ids(twice))
}

func TestFilterByMonth_DoesNotMutateInput(t *testing.T) {
	expenses := []*domain.Expense{
		expense("1", domain.CategoryGrocery, 100, day(2024, time.January, 5)),
		expense("2", domain.CategoryGrocery, 200, day(2024, time.February, 5)),
	}

	_ = FilterByMonth(expenses, time.January, 2024)

	assert.Equal(t, []string{"1", "2"}, ids(expenses))
}

func TestTotalSpent(t *testing.T) {
	assert.True(t, TotalSpent(nil).IsZero())
	assert.True(t, TotalSpent([]*domain.Expense{}).IsZero())

	expenses := []*domain.Expense{
		expense("1", domain.CategoryGrocery, 4000, day(2024, time.January, 1)),
		expense("2", domain.CategoryGrocery, 3000, day(2024, time.January, 2)),
		expense("3", domain.CategoryTransport, 5000, day(2024, time.January, 3)),
	}
	expenses[0].Amount = decimal.RequireFromString("0.10")
	expenses[1].Amount = decimal.RequireFromString("0.20")

	total := TotalSpent(expenses)
	assert.Equal(t, "5000.3", total.String())

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]*domain.Expense(nil), expenses...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.True(t, total.Equal(TotalSpent(shuffled)))
	}
}

func TestTotalBudgetAndBalance(t *testing.T) {
	assert.True(t, TotalBudget(nil).IsZero())

	budgets := []domain.Budget{
		{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(10000)},
		{Category: domain.CategoryTransport, Limit: decimal.NewFromInt(3000)},
	}
	assert.Equal(t, "13000", TotalBudget(budgets).String())

	assert.Equal(t, "-500", Balance(decimal.NewFromInt(1000), decimal.NewFromInt(1500)).String())
}

func TestPercentageOf(t *testing.T) {
	for _, spent := range []int64{-10, 0, 10, 5000} {
		assert.True(t, PercentageOf(decimal.NewFromInt(spent), decimal.Zero).IsZero())
		assert.True(t, PercentageOf(decimal.NewFromInt(spent), decimal.NewFromInt(-5)).IsZero())
	}

	assert.Equal(t, "70", PercentageOf(decimal.NewFromInt(7000), decimal.NewFromInt(10000)).String())
	assert.Equal(t, "166.7", PercentageOf(decimal.NewFromInt(5000), decimal.NewFromInt(3000)).Round(1).String())
}

func TestBreakdown_LengthAndStableOrdering(t *testing.T) {
	budgets := []domain.Budget{
		{Category: "A", Limit: decimal.NewFromInt(100)},
		{Category: "B", Limit: decimal.NewFromInt(100)},
		{Category: "C", Limit: decimal.NewFromInt(100)},
		{Category: "D", Limit: decimal.NewFromInt(100)},
		{Category: "E", Limit: decimal.NewFromInt(100)},
	}
	expenses := []*domain.Expense{
		expense("1", "B", 50, day(2024, time.May, 1)),
		expense("2", "D", 50, day(2024, time.May, 2)),
		expense("3", "E", 80, day(2024, time.May, 3)),
	}

	entries := Breakdown(budgets, expenses)

	require.Len(t, entries, len(budgets))
	var order []string
	for _, e := range entries {
		order = append(order, e.Category)
	}
	assert.Equal(t, []string{"E", "B", "D", "A", "C"}, order)

	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].Spent.GreaterThanOrEqual(entries[i].Spent))
	}
}

func TestBreakdown_CategoryMatchingIsCaseSensitive(t *testing.T) {
	budgets := []domain.Budget{{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(100)}}
	expenses := []*domain.Expense{expense("1", "grocery", 50, day(2024, time.May, 1))}

	entries := Breakdown(budgets, expenses)

	require.Len(t, entries, 1)
	assert.True(t, entries[0].Spent.IsZero())
}

func TestBreakdown_DoesNotReorderInputBudgets(t *testing.T) {
	budgets := []domain.Budget{
		{Category: "A", Limit: decimal.NewFromInt(100)},
		{Category: "B", Limit: decimal.NewFromInt(100)},
	}
	expenses := []*domain.Expense{expense("1", "B", 50, day(2024, time.May, 1))}

	_ = Breakdown(budgets, expenses)

	assert.Equal(t, "A", budgets[0].Category)
}

func TestSummarize_GroceryTransportScenario(t *testing.T) {
	budgets := []domain.Budget{
		{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(10000)},
		{Category: domain.CategoryTransport, Limit: decimal.NewFromInt(3000)},
	}
	expenses := []*domain.Expense{
		expense("1", domain.CategoryGrocery, 4000, day(2024, time.June, 3)),
		expense("2", domain.CategoryGrocery, 3000, day(2024, time.June, 9)),
		expense("3", domain.CategoryTransport, 5000, day(2024, time.June, 12)),
		expense("4", domain.CategoryTransport, 9999, day(2024, time.May, 12)),
	}

	s := Summarize(expenses, budgets, time.June, 2024)

	assert.Equal(t, "12000", s.TotalSpent.String())
	assert.Equal(t, "13000", s.TotalBudget.String())
	assert.Equal(t, "1000", s.Balance.String())
	assert.False(t, s.Exceeded())
	assert.Len(t, s.Expenses, 3)

	require.Len(t, s.Breakdown, 2)
	grocery := s.Breakdown[0]
	assert.Equal(t, domain.CategoryGrocery, grocery.Category)
	assert.Equal(t, "7000", grocery.Spent.String())
	assert.Equal(t, "3000", grocery.Remaining.String())
	assert.Equal(t, "70", grocery.Percentage.String())

	transport := s.Breakdown[1]
	assert.Equal(t, domain.CategoryTransport, transport.Category)
	assert.Equal(t, "5000", transport.Spent.String())
	assert.Equal(t, "-2000", transport.Remaining.String())
	assert.Equal(t, "166.7", transport.Percentage.Round(1).String())
}

func TestSummarize_OrphanCategoryCountsTowardTotalOnly(t *testing.T) {
	budgets := []domain.Budget{{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(1000)}}
	expenses := []*domain.Expense{
		expense("1", domain.CategoryGrocery, 400, day(2024, time.June, 3)),
		expense("2", "Pets", 900, day(2024, time.June, 4)),
	}

	s := Summarize(expenses, budgets, time.June, 2024)

	assert.Equal(t, "1300", s.TotalSpent.String())
	assert.Equal(t, "900", s.UnbudgetedSpent.String())
	require.Len(t, s.Breakdown, 1)
	assert.Equal(t, "400", s.Breakdown[0].Spent.String())
	assert.Equal(t, "-300", s.Balance.String())
	assert.True(t, s.Exceeded())
	assert.True(t, s.DisplayBalance().IsZero())
}

func TestSummarize_EmptyInputs(t *testing.T) {
	s := Summarize(nil, nil, time.January, 2025)

	assert.Empty(t, s.Expenses)
	assert.Empty(t, s.Breakdown)
	assert.True(t, s.TotalSpent.IsZero())
	assert.True(t, s.TotalBudget.IsZero())
	assert.True(t, s.Balance.IsZero())
	assert.False(t, s.Exceeded())
}
