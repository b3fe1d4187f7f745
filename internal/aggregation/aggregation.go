// Package aggregation derives the monthly budget view model from in-memory
// expense and budget lists. Every function is pure and never mutates its
// inputs.
package aggregation

import (
	"slices"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// BreakdownEntry is the spend-vs-limit summary for one budget category
type BreakdownEntry struct {
	Category   string          `json:"category"`
	Color      string          `json:"color"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Summary is the derived view model for one calendar month
type Summary struct {
	Year            int               `json:"year"`
	Month           int               `json:"month"`
	Expenses        []*domain.Expense `json:"expenses"`
	TotalSpent      decimal.Decimal   `json:"totalSpent"`
	TotalBudget     decimal.Decimal   `json:"totalBudget"`
	Balance         decimal.Decimal   `json:"balance"`
	UnbudgetedSpent decimal.Decimal   `json:"unbudgetedSpent"`
	Breakdown       []BreakdownEntry  `json:"breakdown"`
}

// Exceeded reports whether spending is over the total budget
func (s *Summary) Exceeded() bool {
	return s.Balance.IsNegative()
}

// DisplayBalance is the balance clamped at zero for display
func (s *Summary) DisplayBalance() decimal.Decimal {
	if s.Balance.IsNegative() {
		return decimal.Zero
	}
	return s.Balance
}

// FilterByMonth returns the expenses dated in the given month and year,
// preserving input order
func FilterByMonth(expenses []*domain.Expense, month time.Month, year int) []*domain.Expense {
	filtered := make([]*domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e == nil {
			continue
		}
		if e.Date.Year() == year && e.Date.Month() == month {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// TotalSpent sums expense amounts
func TotalSpent(expenses []*domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e == nil {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

// TotalBudget sums budget limits
func TotalBudget(budgets []domain.Budget) decimal.Decimal {
	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.Limit)
	}
	return total
}

// Balance is the signed remaining budget
func Balance(totalBudget, totalSpent decimal.Decimal) decimal.Decimal {
	return totalBudget.Sub(totalSpent)
}

// PercentageOf returns spent as a percentage of limit, or zero when the limit
// is not positive
func PercentageOf(spent, limit decimal.Decimal) decimal.Decimal {
	if !limit.IsPositive() {
		return decimal.Zero
	}
	return spent.Div(limit).Mul(hundred)
}

// Breakdown computes one entry per budget and orders them by spend,
// highest first. Equal spends keep the budgets' input order.
// Expenses whose category has no budget are not represented.
func Breakdown(budgets []domain.Budget, expenses []*domain.Expense) []BreakdownEntry {
	spentByCategory := make(map[string]decimal.Decimal, len(budgets))
	for _, e := range expenses {
		if e == nil {
			continue
		}
		spentByCategory[e.Category] = spentByCategory[e.Category].Add(e.Amount)
	}

	entries := make([]BreakdownEntry, len(budgets))
	for i, b := range budgets {
		spent := spentByCategory[b.Category]
		entries[i] = BreakdownEntry{
			Category:   b.Category,
			Color:      domain.CategoryColor(b.Category),
			Limit:      b.Limit,
			Spent:      spent,
			Remaining:  b.Limit.Sub(spent),
			Percentage: PercentageOf(spent, b.Limit),
		}
	}

	slices.SortStableFunc(entries, func(a, b BreakdownEntry) int {
		return b.Spent.Cmp(a.Spent)
	})
	return entries
}

// Summarize builds the full view model for the given month
func Summarize(expenses []*domain.Expense, budgets []domain.Budget, month time.Month, year int) *Summary {
	filtered := FilterByMonth(expenses, month, year)
	totalSpent := TotalSpent(filtered)
	totalBudget := TotalBudget(budgets)

	return &Summary{
		Year:            year,
		Month:           int(month),
		Expenses:        filtered,
		TotalSpent:      totalSpent,
		TotalBudget:     totalBudget,
		Balance:         Balance(totalBudget, totalSpent),
		UnbudgetedSpent: unbudgetedSpent(budgets, filtered),
		Breakdown:       Breakdown(budgets, filtered),
	}
}

// unbudgetedSpent is the part of the total that no breakdown entry shows
func unbudgetedSpent(budgets []domain.Budget, expenses []*domain.Expense) decimal.Decimal {
	budgeted := make(map[string]struct{}, len(budgets))
	for _, b := range budgets {
		budgeted[b.Category] = struct{}{}
	}

	total := decimal.Zero
	for _, e := range expenses {
		if e == nil {
			continue
		}
		if _, ok := budgeted[e.Category]; !ok {
			total = total.Add(e.Amount)
		}
	}
	return total
}
