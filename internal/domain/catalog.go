package domain

import "github.com/shopspring/decimal"

// CatalogEntry is a category with its default monthly limit and display color
type CatalogEntry struct {
	Category     string          `json:"category"`
	DefaultLimit decimal.Decimal `json:"defaultLimit"`
	Color        string          `json:"color"`
}

// FallbackColor is used for categories that are not in the catalog
const FallbackColor = "#9CA3AF"

// Category names
const (
	CategoryFoodAndDrinks = "Food & Drinks"
	CategoryGrocery       = "Grocery"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryBills         = "Bills & Utilities"
	CategoryHealth        = "Health"
	CategoryEntertainment = "Entertainment"
	CategoryTravel        = "Travel"
	CategoryEducation     = "Education"
	CategoryOthers        = "Others"
)

// Order is significant: it drives default display order and the breakdown
// tie-break order.
var catalog = []CatalogEntry{
	{Category: CategoryFoodAndDrinks, DefaultLimit: decimal.NewFromInt(8000), Color: "#F97316"},
	{Category: CategoryGrocery, DefaultLimit: decimal.NewFromInt(10000), Color: "#22C55E"},
	{Category: CategoryTransport, DefaultLimit: decimal.NewFromInt(3000), Color: "#3B82F6"},
	{Category: CategoryShopping, DefaultLimit: decimal.NewFromInt(5000), Color: "#EC4899"},
	{Category: CategoryBills, DefaultLimit: decimal.NewFromInt(6000), Color: "#EAB308"},
	{Category: CategoryHealth, DefaultLimit: decimal.NewFromInt(3000), Color: "#EF4444"},
	{Category: CategoryEntertainment, DefaultLimit: decimal.NewFromInt(2000), Color: "#8B5CF6"},
	{Category: CategoryTravel, DefaultLimit: decimal.NewFromInt(5000), Color: "#06B6D4"},
	{Category: CategoryEducation, DefaultLimit: decimal.NewFromInt(2000), Color: "#14B8A6"},
	{Category: CategoryOthers, DefaultLimit: decimal.NewFromInt(2000), Color: "#64748B"},
}

// Catalog returns a copy of the fixed, ordered category catalog
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

// CatalogCategories returns the catalog category names in order
func CatalogCategories() []string {
	names := make([]string, len(catalog))
	for i, entry := range catalog {
		names[i] = entry.Category
	}
	return names
}

// DefaultBudgets returns the catalog as budgets with their default limits
func DefaultBudgets() []Budget {
	return MergeBudgets(catalog, nil)
}

// IsCatalogCategory reports whether name is a catalog category (case-sensitive)
func IsCatalogCategory(name string) bool {
	for _, entry := range catalog {
		if entry.Category == name {
			return true
		}
	}
	return false
}

// CategoryColor returns the display color for a category
func CategoryColor(name string) string {
	for _, entry := range catalog {
		if entry.Category == name {
			return entry.Color
		}
	}
	return FallbackColor
}
