package service

import (
	"context"
	"testing"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLoader returns a fixed state
type stubLoader struct {
	state   *State
	userIDs []string
}

func (s *stubLoader) FetchAll(ctx context.Context, userID string) *State {
	s.userIDs = append(s.userIDs, userID)
	return s.state
}

func TestSummaryService_CurrentMonth(t *testing.T) {
	loader := &stubLoader{state: &State{
		Expenses: []*domain.Expense{
			{ID: "1", Amount: decimal.NewFromInt(5000), Category: domain.CategoryGrocery, Description: "Monthly", Date: time.Date(2024, time.March, 2, 0, 0, 0, 0, ist)},
			{ID: "2", Amount: decimal.NewFromInt(3000), Category: domain.CategoryGrocery, Description: "Old", Date: time.Date(2024, time.February, 28, 0, 0, 0, 0, ist)},
			{ID: "3", Amount: decimal.NewFromInt(500), Category: domain.CategoryTransport, Description: "Cab", Date: time.Date(2024, time.March, 3, 0, 0, 0, 0, ist)},
		},
		Budgets: domain.DefaultBudgets(),
	}}

	svc := NewSummaryService(loader, ist)
	// 20:00 UTC on Feb 29 is already March 1 in IST
	svc.now = func() time.Time { return time.Date(2024, time.February, 29, 20, 0, 0, 0, time.UTC) }

	summary := svc.CurrentMonth(context.Background(), testUser)

	assert.Equal(t, []string{testUser}, loader.userIDs)
	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, 3, summary.Month)
	require.Len(t, summary.Expenses, 2)
	assert.Equal(t, "5500", summary.TotalSpent.String())
	assert.Equal(t, "46000", summary.TotalBudget.String())
	assert.False(t, summary.Exceeded())

	require.NotEmpty(t, summary.Breakdown)
	assert.Equal(t, domain.CategoryGrocery, summary.Breakdown[0].Category)
	assert.Equal(t, "50", summary.Breakdown[0].Percentage.String())
}

func TestSummaryService_CurrentMonth_Unauthenticated(t *testing.T) {
	recon, _, _, _ := newTestReconciliation()
	svc := NewSummaryService(recon, ist)

	summary := svc.CurrentMonth(context.Background(), "")

	assert.Empty(t, summary.Expenses)
	assert.True(t, summary.TotalSpent.IsZero())
	assert.Len(t, summary.Breakdown, len(domain.Catalog()))
}
