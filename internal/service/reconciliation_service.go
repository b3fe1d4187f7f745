package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/util"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/websocket"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// State is the full per-user dataset the client works from
type State struct {
	Expenses []*domain.Expense `json:"expenses"`
	Budgets  []domain.Budget   `json:"budgets"`
}

// StateLoader loads the per-user dataset
type StateLoader interface {
	FetchAll(ctx context.Context, userID string) *State
}

// ReconciliationService is the only write path to the expense and budget
// stores. It maps store rows to canonical records and reports the outcome of
// every mutation.
type ReconciliationService struct {
	expenseRepo    domain.ExpenseRepository
	budgetRepo     domain.BudgetOverrideRepository
	location       *time.Location
	eventPublisher websocket.EventPublisher
}

// NewReconciliationService creates a new ReconciliationService. Expense dates
// are reported in loc.
func NewReconciliationService(expenseRepo domain.ExpenseRepository, budgetRepo domain.BudgetOverrideRepository, loc *time.Location) *ReconciliationService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReconciliationService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		location:    loc,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ReconciliationService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *ReconciliationService) publishEvent(userID string, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

func defaultState() *State {
	return &State{
		Expenses: []*domain.Expense{},
		Budgets:  domain.DefaultBudgets(),
	}
}

// FetchAll loads the user's expenses and effective budgets. It never fails:
// without a user, or when the expense store is unreachable, the default
// state is returned.
func (s *ReconciliationService) FetchAll(ctx context.Context, userID string) *State {
	if userID == "" {
		return defaultState()
	}

	var (
		expenses  []*domain.Expense
		overrides []*domain.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.expenseRepo.GetAllByUser(gctx, userID)
		if err != nil {
			return err
		}
		expenses = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.budgetRepo.GetAllByUser(gctx, userID)
		if err != nil {
			// Budgets degrade to catalog defaults on their own
			log.Warn().Err(err).Str("user_id", userID).Msg("Failed to load budget overrides, using defaults")
			return nil
		}
		overrides = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load expenses, returning default state")
		return defaultState()
	}

	for _, e := range expenses {
		s.localize(e)
	}
	if expenses == nil {
		expenses = []*domain.Expense{}
	}

	return &State{
		Expenses: expenses,
		Budgets:  domain.MergeBudgets(domain.Catalog(), overrides),
	}
}

// CreateExpenseInput holds the input for creating an expense. Date is the
// client supplied calendar date, empty for "now".
type CreateExpenseInput struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        string
}

// CreateExpense validates and stores a new expense. A non-nil explicitDate,
// or else a readable input.Date, replaces the store-assigned creation
// timestamp. Unlike updates, an unreadable date on create is ErrInvalidDate.
func (s *ReconciliationService) CreateExpense(ctx context.Context, userID string, input CreateExpenseInput, explicitDate *time.Time) (*domain.Expense, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	description, err := validateDescription(input.Description)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domain.ErrCategoryRequired
	}
	if explicitDate == nil && strings.TrimSpace(input.Date) != "" {
		parsed, ok := util.ParseCalendarDate(input.Date, s.location)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDate, input.Date)
		}
		explicitDate = &parsed
	}

	created, err := s.expenseRepo.Create(ctx, userID, domain.NewExpense{
		Amount:      input.Amount,
		Category:    category,
		Description: description,
	}, explicitDate)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create expense")
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s.localize(created)
	s.publishEvent(userID, websocket.ExpenseCreated(created))

	return created, nil
}

// UpdateExpenseInput is a partial update as received from a client. Date is
// kept as text until it is parsed here.
type UpdateExpenseInput struct {
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *string
}

// UpdateExpense merges the given fields into an existing expense. The id may
// be numeric or text; when the first representation matches nothing the other
// one is tried once.
func (s *ReconciliationService) UpdateExpense(ctx context.Context, userID string, id string, input UpdateExpenseInput) (*domain.Expense, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	keys, err := domain.KeyAttempts(id)
	if err != nil {
		return nil, err
	}

	update, err := s.buildUpdate(userID, id, input)
	if err != nil {
		return nil, err
	}
	if update.IsEmpty() {
		if input.Date == nil {
			return nil, domain.ErrEmptyUpdate
		}
		// Only an unreadable date was sent; the record stays as it is
		return s.findExpense(ctx, userID, keys)
	}

	for i, key := range keys {
		updated, err := s.expenseRepo.Update(ctx, userID, key, update)
		if err == nil {
			s.localize(updated)
			s.publishEvent(userID, websocket.ExpenseUpdated(updated))
			return updated, nil
		}
		if !errors.Is(err, domain.ErrExpenseNotFound) {
			log.Error().Err(err).Str("user_id", userID).Str("expense_id", id).Msg("Failed to update expense")
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		if i+1 < len(keys) {
			log.Debug().Str("expense_id", id).Str("key", key.String()).Msg("No expense matched, retrying with alternate key")
		}
	}

	return nil, domain.ErrExpenseNotFound
}

// findExpense returns the stored expense matching the first key that hits
func (s *ReconciliationService) findExpense(ctx context.Context, userID string, keys []domain.ExpenseKey) (*domain.Expense, error) {
	expenses, err := s.expenseRepo.GetAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to load expenses")
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	for _, key := range keys {
		for _, e := range expenses {
			if e.ID == key.String() {
				s.localize(e)
				return e, nil
			}
		}
	}
	return nil, domain.ErrExpenseNotFound
}

func (s *ReconciliationService) buildUpdate(userID, id string, input UpdateExpenseInput) (domain.ExpenseUpdate, error) {
	var update domain.ExpenseUpdate

	if input.Amount != nil {
		if err := domain.ValidateAmount(*input.Amount); err != nil {
			return update, err
		}
		update.Amount = input.Amount
	}
	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		if category == "" {
			return update, domain.ErrCategoryRequired
		}
		update.Category = &category
	}
	if input.Description != nil {
		description, err := validateDescription(*input.Description)
		if err != nil {
			return update, err
		}
		update.Description = &description
	}
	if input.Date != nil {
		if date, ok := util.ParseCalendarDate(*input.Date, s.location); ok {
			update.Date = &date
		} else {
			log.Warn().
				Str("user_id", userID).
				Str("expense_id", id).
				Str("date", *input.Date).
				Msg("Dropping unparseable date from expense update")
		}
	}

	return update, nil
}

// SaveBudgets stores overrides for the given budgets in one batch. Every
// entry must name a catalog category and carry a non-negative limit.
func (s *ReconciliationService) SaveBudgets(ctx context.Context, userID string, budgets []domain.Budget) error {
	if userID == "" {
		return domain.ErrUnauthorized
	}

	seen := make(map[string]struct{}, len(budgets))
	for _, b := range budgets {
		if !domain.IsCatalogCategory(b.Category) {
			return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, b.Category)
		}
		if _, dup := seen[b.Category]; dup {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateCategory, b.Category)
		}
		seen[b.Category] = struct{}{}
		if err := domain.ValidateAmount(b.Limit); err != nil {
			return err
		}
	}

	if len(budgets) == 0 {
		return nil
	}

	if err := s.budgetRepo.UpsertBatch(ctx, userID, budgets); err != nil {
		log.Error().Err(err).Str("user_id", userID).Int("count", len(budgets)).Msg("Failed to save budgets")
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	s.publishEvent(userID, websocket.BudgetUpdated(budgets))
	return nil
}

// DeleteBudgetOverride reverts a category to its catalog default. Failures
// are logged only.
func (s *ReconciliationService) DeleteBudgetOverride(ctx context.Context, userID string, category string) {
	if userID == "" {
		return
	}

	if err := s.budgetRepo.Delete(ctx, userID, category); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("category", category).Msg("Failed to delete budget override")
		return
	}

	s.publishEvent(userID, websocket.BudgetReset(map[string]string{"category": category}))
}

// ClearAllUserData removes every expense and budget override of the user.
// Failures are logged only; the overrides are removed even when the expense
// delete fails.
func (s *ReconciliationService) ClearAllUserData(ctx context.Context, userID string) {
	if userID == "" {
		return
	}

	cleared := true
	if err := s.expenseRepo.DeleteAllByUser(ctx, userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to delete expenses")
		cleared = false
	}
	if err := s.budgetRepo.DeleteAllByUser(ctx, userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to delete budget overrides")
		cleared = false
	}

	if cleared {
		log.Info().Str("user_id", userID).Msg("Cleared all user data")
	}
	s.publishEvent(userID, websocket.AccountCleared(map[string]bool{"complete": cleared}))
}

func (s *ReconciliationService) localize(e *domain.Expense) {
	if e != nil {
		e.Date = e.Date.In(s.location)
	}
}

func validateDescription(raw string) (string, error) {
	description := strings.TrimSpace(raw)
	if description == "" {
		return "", domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return "", domain.ErrDescriptionTooLong
	}
	return description, nil
}
