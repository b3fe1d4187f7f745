package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "auth0|asha"

var ist = time.FixedZone("IST", 5*3600+1800)

func newTestReconciliation() (*ReconciliationService, *testutil.MockExpenseRepository, *testutil.MockBudgetOverrideRepository, *testutil.MockEventPublisher) {
	expenseRepo := testutil.NewMockExpenseRepository()
	budgetRepo := testutil.NewMockBudgetOverrideRepository()
	publisher := &testutil.MockEventPublisher{}

	svc := NewReconciliationService(expenseRepo, budgetRepo, ist)
	svc.SetEventPublisher(publisher)
	return svc, expenseRepo, budgetRepo, publisher
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFetchAll_Unauthenticated(t *testing.T) {
	svc, expenseRepo, _, _ := newTestReconciliation()
	expenseRepo.GetAllByUserFn = func(ctx context.Context, userID string) ([]*domain.Expense, error) {
		t.Fatal("store must not be queried without a user")
		return nil, nil
	}

	state := svc.FetchAll(context.Background(), "")

	assert.Empty(t, state.Expenses)
	assert.NotNil(t, state.Expenses)
	assert.Equal(t, domain.DefaultBudgets(), state.Budgets)
}

func TestFetchAll_MergesOverridesInCatalogOrder(t *testing.T) {
	svc, expenseRepo, budgetRepo, _ := newTestReconciliation()

	expenseRepo.AddExpense(&domain.Expense{
		ID:          "1",
		UserID:      testUser,
		Amount:      decimal.NewFromInt(250),
		Category:    domain.CategoryFoodAndDrinks,
		Description: "Lunch",
		Date:        time.Date(2024, time.January, 31, 20, 0, 0, 0, time.UTC),
	})
	budgetRepo.SetOverride(testUser, domain.Budget{Category: domain.CategoryTransport, Limit: decimal.NewFromInt(1500)})
	budgetRepo.SetOverride(testUser, domain.Budget{Category: "Pets", Limit: decimal.NewFromInt(99)})

	state := svc.FetchAll(context.Background(), testUser)

	require.Len(t, state.Expenses, 1)
	assert.Equal(t, time.February, state.Expenses[0].Date.Month(), "dates are reported in the configured zone")

	catalog := domain.Catalog()
	require.Len(t, state.Budgets, len(catalog))
	for i, entry := range catalog {
		assert.Equal(t, entry.Category, state.Budgets[i].Category)
	}
	assert.Equal(t, "1500", state.Budgets[2].Limit.String())
	assert.True(t, state.Budgets[0].Limit.Equal(catalog[0].DefaultLimit))
}

func TestFetchAll_ExpenseStoreFailureReturnsDefaults(t *testing.T) {
	svc, expenseRepo, budgetRepo, _ := newTestReconciliation()
	expenseRepo.GetAllByUserFn = func(ctx context.Context, userID string) ([]*domain.Expense, error) {
		return nil, errors.New("connection refused")
	}
	budgetRepo.SetOverride(testUser, domain.Budget{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(1)})

	state := svc.FetchAll(context.Background(), testUser)

	assert.Empty(t, state.Expenses)
	assert.Equal(t, domain.DefaultBudgets(), state.Budgets)
}

func TestFetchAll_BudgetStoreFailureKeepsExpenses(t *testing.T) {
	svc, expenseRepo, budgetRepo, _ := newTestReconciliation()
	expenseRepo.AddExpense(&domain.Expense{ID: "1", UserID: testUser, Amount: decimal.NewFromInt(5), Category: domain.CategoryOthers, Description: "Tip"})
	budgetRepo.GetAllByUserFn = func(ctx context.Context, userID string) ([]*domain.Budget, error) {
		return nil, errors.New("timeout")
	}

	state := svc.FetchAll(context.Background(), testUser)

	assert.Len(t, state.Expenses, 1)
	assert.Equal(t, domain.DefaultBudgets(), state.Budgets)
}

func TestCreateExpense(t *testing.T) {
	svc, _, _, publisher := newTestReconciliation()

	created, err := svc.CreateExpense(context.Background(), testUser, CreateExpenseInput{
		Amount:      decimal.NewFromInt(120),
		Category:    " Transport ",
		Description: "  Auto ride ",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "1", created.ID)
	assert.Equal(t, "Transport", created.Category)
	assert.Equal(t, "Auto ride", created.Description)
	assert.Equal(t, ist, created.Date.Location())
	assert.Equal(t, []string{"expense.created"}, publisher.Types())
}

func TestCreateExpense_ExplicitDate(t *testing.T) {
	svc, _, _, _ := newTestReconciliation()
	date := time.Date(2024, time.January, 5, 0, 0, 0, 0, ist)

	created, err := svc.CreateExpense(context.Background(), testUser, CreateExpenseInput{
		Amount:      decimal.NewFromInt(250),
		Category:    domain.CategoryFoodAndDrinks,
		Description: "Lunch",
	}, &date)
	require.NoError(t, err)

	assert.True(t, date.Equal(created.Date))
}

func TestCreateExpense_InputDate(t *testing.T) {
	svc, _, _, _ := newTestReconciliation()

	created, err := svc.CreateExpense(context.Background(), testUser, CreateExpenseInput{
		Amount:      decimal.RequireFromString("99.50"),
		Category:    domain.CategoryGrocery,
		Description: "Rice",
		Date:        "2024-02-29",
	}, nil)
	require.NoError(t, err)

	assert.True(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, ist).Equal(created.Date))
}

func TestCreateExpense_UnknownCategoryIsKept(t *testing.T) {
	svc, _, _, _ := newTestReconciliation()

	created, err := svc.CreateExpense(context.Background(), testUser, CreateExpenseInput{
		Amount:      decimal.NewFromInt(10),
		Category:    "Pets",
		Description: "Treats",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Pets", created.Category)
}

func TestCreateExpense_Validation(t *testing.T) {
	long := make([]byte, domain.MaxDescriptionLength+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name     string
		userID   string
		input    CreateExpenseInput
		expected error
	}{
		{"unauthenticated", "", CreateExpenseInput{Amount: decimal.NewFromInt(1), Category: "Grocery", Description: "Milk"}, domain.ErrUnauthorized},
		{"negative amount", testUser, CreateExpenseInput{Amount: decimal.NewFromInt(-1), Category: "Grocery", Description: "Milk"}, domain.ErrInvalidAmount},
		{"blank description", testUser, CreateExpenseInput{Amount: decimal.NewFromInt(1), Category: "Grocery", Description: "   "}, domain.ErrDescriptionRequired},
		{"long description", testUser, CreateExpenseInput{Amount: decimal.NewFromInt(1), Category: "Grocery", Description: string(long)}, domain.ErrDescriptionTooLong},
		{"blank category", testUser, CreateExpenseInput{Amount: decimal.NewFromInt(1), Category: "", Description: "Milk"}, domain.ErrCategoryRequired},
		{"three decimals", testUser, CreateExpenseInput{Amount: decimal.RequireFromString("1.005"), Category: "Grocery", Description: "Milk"}, domain.ErrInvalidAmount},
		{"too large for the store", testUser, CreateExpenseInput{Amount: decimal.New(1, 10), Category: "Grocery", Description: "Milk"}, domain.ErrInvalidAmount},
		{"unreadable date", testUser, CreateExpenseInput{Amount: decimal.NewFromInt(1), Category: "Grocery", Description: "Milk", Date: "yesterday"}, domain.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, expenseRepo, _, publisher := newTestReconciliation()

			_, err := svc.CreateExpense(context.Background(), tt.userID, tt.input, nil)

			assert.ErrorIs(t, err, tt.expected)
			assert.Empty(t, expenseRepo.Expenses)
			assert.Empty(t, publisher.Events)
		})
	}
}

func TestCreateExpense_StoreFailure(t *testing.T) {
	svc, expenseRepo, _, publisher := newTestReconciliation()
	expenseRepo.CreateFn = func(ctx context.Context, userID string, expense domain.NewExpense, date *time.Time) (*domain.Expense, error) {
		return nil, errors.New("insert failed")
	}

	_, err := svc.CreateExpense(context.Background(), testUser, CreateExpenseInput{
		Amount:      decimal.NewFromInt(1),
		Category:    domain.CategoryGrocery,
		Description: "Milk",
	}, nil)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Empty(t, publisher.Events)
}

func TestUpdateExpense_RoundTrip(t *testing.T) {
	svc, _, _, publisher := newTestReconciliation()
	ctx := context.Background()

	created, err := svc.CreateExpense(ctx, testUser, CreateExpenseInput{
		Amount:      decimal.NewFromInt(100),
		Category:    domain.CategoryGrocery,
		Description: "Vegetables",
	}, nil)
	require.NoError(t, err)

	updated, err := svc.UpdateExpense(ctx, testUser, created.ID, UpdateExpenseInput{
		Amount: decPtr("140.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, "140.5", updated.Amount.String())
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Description, updated.Description)
	assert.True(t, created.Date.Equal(updated.Date))
	assert.Equal(t, []string{"expense.created", "expense.updated"}, publisher.Types())

	state := svc.FetchAll(ctx, testUser)
	require.Len(t, state.Expenses, 1)
	assert.Equal(t, "140.5", state.Expenses[0].Amount.String())
}

func TestUpdateExpense_ParsesDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		day   int
	}{
		{"date only", "2024-01-05", 5},
		{"rfc3339", "2024-01-06T10:30:00Z", 6},
		{"local date time", "2024-01-07T09:00:00", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, expenseRepo, _, _ := newTestReconciliation()
			expenseRepo.AddExpense(&domain.Expense{ID: "1", UserID: testUser, Amount: decimal.NewFromInt(1), Category: "Grocery", Description: "Milk"})

			updated, err := svc.UpdateExpense(context.Background(), testUser, "1", UpdateExpenseInput{Date: strPtr(tt.value)})
			require.NoError(t, err)

			assert.Equal(t, 2024, updated.Date.Year())
			assert.Equal(t, time.January, updated.Date.Month())
			assert.Equal(t, tt.day, updated.Date.Day())
		})
	}
}

func TestUpdateExpense_DropsUnparseableDate(t *testing.T) {
	svc, expenseRepo, _, _ := newTestReconciliation()
	original := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	expenseRepo.AddExpense(&domain.Expense{ID: "1", UserID: testUser, Amount: decimal.NewFromInt(1), Category: "Grocery", Description: "Milk", Date: original})

	updated, err := svc.UpdateExpense(context.Background(), testUser, "1", UpdateExpenseInput{
		Description: strPtr("Oat milk"),
		Date:        strPtr("next tuesday"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Oat milk", updated.Description)
	assert.True(t, original.Equal(updated.Date))
}

func TestUpdateExpense_OnlyUnparseableDateKeepsRecord(t *testing.T) {
	svc, expenseRepo, _, publisher := newTestReconciliation()
	expenseRepo.AddExpense(&domain.Expense{ID: "1", UserID: testUser, Amount: decimal.NewFromInt(1), Category: "Grocery", Description: "Milk"})

	updated, err := svc.UpdateExpense(context.Background(), testUser, "1", UpdateExpenseInput{Date: strPtr("soon")})
	require.NoError(t, err)

	assert.Equal(t, "1", updated.ID)
	assert.Equal(t, "Milk", updated.Description)
	assert.Empty(t, expenseRepo.Keys, "nothing is written")
	assert.Empty(t, publisher.Events)
}

func TestUpdateExpense_OnlyUnparseableDateUnknownID(t *testing.T) {
	svc, _, _, _ := newTestReconciliation()

	_, err := svc.UpdateExpense(context.Background(), testUser, "42", UpdateExpenseInput{Date: strPtr("soon")})

	assert.ErrorIs(t, err, domain.ErrExpenseNotFound)
}

func TestUpdateExpense_NonexistentID(t *testing.T) {
	svc, expenseRepo, _, publisher := newTestReconciliation()
	expenseRepo.AddExpense(&domain.Expense{ID: "1", UserID: testUser, Amount: decimal.NewFromInt(1), Category: "Grocery", Description: "Milk"})

	_, err := svc.UpdateExpense(context.Background(), testUser, "999", UpdateExpenseInput{Amount: decPtr("5")})

	assert.ErrorIs(t, err, domain.ErrExpenseNotFound)
	require.Len(t, expenseRepo.Keys, 2, "one retry with the alternate representation")
	assert.Equal(t, domain.ExpenseKeyNumeric, expenseRepo.Keys[0].Kind)
	assert.Equal(t, domain.ExpenseKeyText, expenseRepo.Keys[1].Kind)
	assert.Empty(t, publisher.Events)

	state := svc.FetchAll(context.Background(), testUser)
	assert.Equal(t, "1", state.Expenses[0].Amount.String(), "stored data is unchanged")
}

func TestUpdateExpense_RetryWithTextKey(t *testing.T) {
	svc, expenseRepo, _, _ := newTestReconciliation()
	// Stored id is not in canonical integer form, so only the text key matches
	expenseRepo.AddExpense(&domain.Expense{ID: "007", UserID: testUser, Amount: decimal.NewFromInt(1), Category: "Grocery", Description: "Milk"})

	updated, err := svc.UpdateExpense(context.Background(), testUser, "007", UpdateExpenseInput{Amount: decPtr("9")})
	require.NoError(t, err)
	assert.Equal(t, "9", updated.Amount.String())
	assert.Len(t, expenseRepo.Keys, 2)
}

func TestUpdateExpense_TextIDSingleAttempt(t *testing.T) {
	svc, expenseRepo, _, _ := newTestReconciliation()

	_, err := svc.UpdateExpense(context.Background(), testUser, "abc-123", UpdateExpenseInput{Amount: decPtr("9")})

	assert.ErrorIs(t, err, domain.ErrExpenseNotFound)
	require.Len(t, expenseRepo.Keys, 1)
	assert.Equal(t, domain.ExpenseKeyText, expenseRepo.Keys[0].Kind)
}

func TestUpdateExpense_StoreErrorStopsRetry(t *testing.T) {
	svc, expenseRepo, _, _ := newTestReconciliation()
	expenseRepo.UpdateFn = func(ctx context.Context, userID string, key domain.ExpenseKey, update domain.ExpenseUpdate) (*domain.Expense, error) {
		return nil, errors.New("deadlock detected")
	}

	_, err := svc.UpdateExpense(context.Background(), testUser, "5", UpdateExpenseInput{Amount: decPtr("9")})

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Len(t, expenseRepo.Keys, 1)
}

func TestUpdateExpense_Validation(t *testing.T) {
	svc, _, _, _ := newTestReconciliation()
	ctx := context.Background()

	_, err := svc.UpdateExpense(ctx, "", "1", UpdateExpenseInput{Amount: decPtr("1")})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.UpdateExpense(ctx, testUser, "  ", UpdateExpenseInput{Amount: decPtr("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidExpenseID)

	_, err = svc.UpdateExpense(ctx, testUser, "1", UpdateExpenseInput{Amount: decPtr("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.UpdateExpense(ctx, testUser, "1", UpdateExpenseInput{Amount: decPtr("12345678901")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = svc.UpdateExpense(ctx, testUser, "1", UpdateExpenseInput{Description: strPtr(" ")})
	assert.ErrorIs(t, err, domain.ErrDescriptionRequired)

	_, err = svc.UpdateExpense(ctx, testUser, "1", UpdateExpenseInput{})
	assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
}

func TestSaveBudgets(t *testing.T) {
	svc, _, budgetRepo, publisher := newTestReconciliation()
	ctx := context.Background()

	err := svc.SaveBudgets(ctx, testUser, []domain.Budget{
		{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(12000)},
		{Category: domain.CategoryHealth, Limit: decimal.Zero},
	})
	require.NoError(t, err)

	assert.Len(t, budgetRepo.Overrides[testUser], 2)
	assert.Equal(t, []string{"budget.updated"}, publisher.Types())

	state := svc.FetchAll(ctx, testUser)
	assert.Equal(t, "12000", state.Budgets[1].Limit.String())
	assert.True(t, state.Budgets[5].Limit.IsZero())
}

func TestSaveBudgets_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		budgets  []domain.Budget
		expected error
	}{
		{"unauthenticated", "", []domain.Budget{{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(1)}}, domain.ErrUnauthorized},
		{"negative limit", testUser, []domain.Budget{{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(-1)}}, domain.ErrInvalidAmount},
		{"unknown category", testUser, []domain.Budget{{Category: "Pets", Limit: decimal.NewFromInt(1)}}, domain.ErrUnknownCategory},
		{"duplicate category", testUser, []domain.Budget{
			{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(1)},
			{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(2)},
		}, domain.ErrDuplicateCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, budgetRepo, _ := newTestReconciliation()
			budgetRepo.UpsertBatchFn = func(ctx context.Context, userID string, budgets []domain.Budget) error {
				t.Fatal("invalid input must not reach the store")
				return nil
			}

			err := svc.SaveBudgets(context.Background(), tt.userID, tt.budgets)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestSaveBudgets_StoreFailurePropagates(t *testing.T) {
	svc, _, budgetRepo, publisher := newTestReconciliation()
	budgetRepo.UpsertBatchFn = func(ctx context.Context, userID string, budgets []domain.Budget) error {
		return errors.New("tx aborted")
	}

	err := svc.SaveBudgets(context.Background(), testUser, []domain.Budget{
		{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(1)},
	})

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Empty(t, publisher.Events)
}

func TestDeleteBudgetOverride(t *testing.T) {
	svc, _, budgetRepo, publisher := newTestReconciliation()
	budgetRepo.SetOverride(testUser, domain.Budget{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(1)})

	svc.DeleteBudgetOverride(context.Background(), testUser, domain.CategoryGrocery)

	assert.Empty(t, budgetRepo.Overrides[testUser])
	assert.Equal(t, []string{"budget.reset"}, publisher.Types())

	state := svc.FetchAll(context.Background(), testUser)
	assert.Equal(t, domain.DefaultBudgets(), state.Budgets)
}

func TestDeleteBudgetOverride_FailureIsSwallowed(t *testing.T) {
	svc, _, budgetRepo, publisher := newTestReconciliation()
	budgetRepo.DeleteFn = func(ctx context.Context, userID string, category string) error {
		return errors.New("gone")
	}

	assert.NotPanics(t, func() {
		svc.DeleteBudgetOverride(context.Background(), testUser, domain.CategoryGrocery)
	})
	assert.Empty(t, publisher.Events)
}

func TestClearAllUserData(t *testing.T) {
	svc, expenseRepo, budgetRepo, publisher := newTestReconciliation()
	expenseRepo.AddExpense(&domain.Expense{ID: "1", UserID: testUser, Category: "Grocery", Description: "Milk"})
	expenseRepo.AddExpense(&domain.Expense{ID: "2", UserID: "auth0|other", Category: "Grocery", Description: "Eggs"})
	budgetRepo.SetOverride(testUser, domain.Budget{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(1)})

	svc.ClearAllUserData(context.Background(), testUser)

	assert.Empty(t, expenseRepo.Expenses[testUser])
	assert.Len(t, expenseRepo.Expenses["auth0|other"], 1)
	assert.Empty(t, budgetRepo.Overrides[testUser])
	assert.Equal(t, []string{"account.cleared"}, publisher.Types())
}

func TestClearAllUserData_ContinuesAfterExpenseFailure(t *testing.T) {
	svc, expenseRepo, budgetRepo, _ := newTestReconciliation()
	expenseRepo.DeleteAllByUserFn = func(ctx context.Context, userID string) error {
		return errors.New("permission denied")
	}
	budgetRepo.SetOverride(testUser, domain.Budget{Category: domain.CategoryGrocery, Limit: decimal.NewFromInt(1)})

	svc.ClearAllUserData(context.Background(), testUser)

	assert.Empty(t, budgetRepo.Overrides[testUser])
}

func TestClearAllUserData_Unauthenticated(t *testing.T) {
	svc, _, _, publisher := newTestReconciliation()

	svc.ClearAllUserData(context.Background(), "")

	assert.Empty(t, publisher.Events)
}
