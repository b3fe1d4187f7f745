package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeBudgets_NoOverridesReturnsCatalogDefaults(t *testing.T) {
	merged := MergeBudgets(Catalog(), nil)

	require.Len(t, merged, len(Catalog()))
	for i, entry := range Catalog() {
		assert.Equal(t, entry.Category, merged[i].Category)
		assert.True(t, entry.DefaultLimit.Equal(merged[i].Limit), "limit for %s", entry.Category)
	}
}

func TestMergeBudgets_OverridesReplaceDefaultsInCatalogOrder(t *testing.T) {
	overrides := []*Budget{
		{Category: CategoryTransport, Limit: decimal.NewFromInt(4500)},
		{Category: CategoryFoodAndDrinks, Limit: decimal.Zero},
	}

	merged := MergeBudgets(Catalog(), overrides)

	require.Len(t, merged, len(Catalog()))
	assert.Equal(t, CategoryFoodAndDrinks, merged[0].Category)
	assert.True(t, merged[0].Limit.IsZero())
	assert.Equal(t, CategoryGrocery, merged[1].Category)
	assert.Equal(t, "10000", merged[1].Limit.String())
	assert.Equal(t, CategoryTransport, merged[2].Category)
	assert.Equal(t, "4500", merged[2].Limit.String())
}

func TestMergeBudgets_IgnoresUnknownAndNilOverrides(t *testing.T) {
	overrides := []*Budget{
		nil,
		{Category: "Crypto", Limit: decimal.NewFromInt(99)},
		{Category: "grocery", Limit: decimal.NewFromInt(1)},
	}

	merged := MergeBudgets(Catalog(), overrides)

	require.Len(t, merged, len(Catalog()))
	for _, b := range merged {
		assert.NotEqual(t, "Crypto", b.Category)
	}
	assert.Equal(t, "10000", merged[1].Limit.String(), "matching is case-sensitive")
}

func TestDefaultBudgets_IsACopy(t *testing.T) {
	first := DefaultBudgets()
	first[0].Limit = decimal.NewFromInt(1)

	second := DefaultBudgets()
	assert.Equal(t, "8000", second[0].Limit.String())

	entries := Catalog()
	entries[0].Category = "Changed"
	assert.Equal(t, CategoryFoodAndDrinks, Catalog()[0].Category)
}

func TestCategoryColor(t *testing.T) {
	assert.Equal(t, "#22C55E", CategoryColor(CategoryGrocery))
	assert.Equal(t, FallbackColor, CategoryColor("Pets"))
	assert.True(t, IsCatalogCategory(CategoryOthers))
	assert.False(t, IsCatalogCategory("others"))
}
