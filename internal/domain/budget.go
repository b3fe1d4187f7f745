package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Budget is a per-category monthly spending cap
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}

// BudgetOverrideRepository is the per-user budget override store
type BudgetOverrideRepository interface {
	GetAllByUser(ctx context.Context, userID string) ([]*Budget, error)
	// UpsertBatch writes every budget keyed by (user, category) atomically
	UpsertBatch(ctx context.Context, userID string, budgets []Budget) error
	Delete(ctx context.Context, userID string, category string) error
	DeleteAllByUser(ctx context.Context, userID string) error
}

// MergeBudgets lays per-user overrides over the catalog defaults. The result
// has exactly one entry per catalog category, in catalog order. Overrides for
// categories outside the catalog are ignored.
func MergeBudgets(catalog []CatalogEntry, overrides []*Budget) []Budget {
	byCategory := make(map[string]decimal.Decimal, len(overrides))
	for _, o := range overrides {
		if o == nil {
			continue
		}
		byCategory[o.Category] = o.Limit
	}

	merged := make([]Budget, len(catalog))
	for i, entry := range catalog {
		limit := entry.DefaultLimit
		if override, ok := byCategory[entry.Category]; ok {
			limit = override
		}
		merged[i] = Budget{Category: entry.Category, Limit: limit}
	}
	return merged
}
