package service

import (
	"context"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/aggregation"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/util"
)

// SummaryService computes the current month view for a user
type SummaryService struct {
	loader   StateLoader
	location *time.Location
	now      func() time.Time
}

// NewSummaryService creates a new SummaryService. The current month is
// determined in loc.
func NewSummaryService(loader StateLoader, loc *time.Location) *SummaryService {
	if loc == nil {
		loc = time.UTC
	}
	return &SummaryService{
		loader:   loader,
		location: loc,
		now:      time.Now,
	}
}

// CurrentMonth loads the user's state and aggregates it for the current month
func (s *SummaryService) CurrentMonth(ctx context.Context, userID string) *aggregation.Summary {
	state := s.loader.FetchAll(ctx, userID)
	year, month := util.CurrentMonth(s.now(), s.location)
	return aggregation.Summarize(state.Expenses, state.Budgets, month, year)
}
