package testutil

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/websocket"
)

// MockExpenseRepository is a mock implementation of domain.ExpenseRepository
type MockExpenseRepository struct {
	Expenses map[string][]*domain.Expense
	NextID   int64
	Now      time.Time

	// Keys records every key passed to Update, in call order
	Keys []domain.ExpenseKey

	CreateFn          func(ctx context.Context, userID string, expense domain.NewExpense, date *time.Time) (*domain.Expense, error)
	GetAllByUserFn    func(ctx context.Context, userID string) ([]*domain.Expense, error)
	UpdateFn          func(ctx context.Context, userID string, key domain.ExpenseKey, update domain.ExpenseUpdate) (*domain.Expense, error)
	DeleteAllByUserFn func(ctx context.Context, userID string) error

	mu sync.Mutex
}

// NewMockExpenseRepository creates a new MockExpenseRepository
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{
		Expenses: make(map[string][]*domain.Expense),
		NextID:   1,
		Now:      time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
	}
}

// AddExpense adds an expense to the mock under its user
func (m *MockExpenseRepository) AddExpense(expense *domain.Expense) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Expenses[expense.UserID] = append(m.Expenses[expense.UserID], expense)
}

// Create stores an expense with the next numeric id
func (m *MockExpenseRepository) Create(ctx context.Context, userID string, expense domain.NewExpense, date *time.Time) (*domain.Expense, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID, expense, date)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	created := &domain.Expense{
		ID:          strconv.FormatInt(m.NextID, 10),
		UserID:      userID,
		Amount:      expense.Amount,
		Category:    expense.Category,
		Description: expense.Description,
		Date:        m.Now,
	}
	if date != nil {
		created.Date = *date
	}
	m.NextID++
	m.Expenses[userID] = append(m.Expenses[userID], created)

	copied := *created
	return &copied, nil
}

// GetAllByUser returns copies of the user's expenses in insertion order
func (m *MockExpenseRepository) GetAllByUser(ctx context.Context, userID string) ([]*domain.Expense, error) {
	if m.GetAllByUserFn != nil {
		return m.GetAllByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Expense, 0, len(m.Expenses[userID]))
	for _, e := range m.Expenses[userID] {
		copied := *e
		result = append(result, &copied)
	}
	return result, nil
}

// Update merges the set fields into the expense matched by key. Numeric keys
// only match ids that are canonical integers; text keys match the id string.
func (m *MockExpenseRepository) Update(ctx context.Context, userID string, key domain.ExpenseKey, update domain.ExpenseUpdate) (*domain.Expense, error) {
	m.mu.Lock()
	m.Keys = append(m.Keys, key)
	m.mu.Unlock()

	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, key, update)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.Expenses[userID] {
		if !keyMatches(key, e.ID) {
			continue
		}
		if update.Amount != nil {
			e.Amount = *update.Amount
		}
		if update.Category != nil {
			e.Category = *update.Category
		}
		if update.Description != nil {
			e.Description = *update.Description
		}
		if update.Date != nil {
			e.Date = *update.Date
		}
		copied := *e
		return &copied, nil
	}
	return nil, domain.ErrExpenseNotFound
}

func keyMatches(key domain.ExpenseKey, id string) bool {
	switch key.Kind {
	case domain.ExpenseKeyNumeric:
		return strconv.FormatInt(key.Numeric, 10) == id
	case domain.ExpenseKeyText:
		return id == key.Text
	}
	return false
}

// DeleteAllByUser removes every expense of the user
func (m *MockExpenseRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	if m.DeleteAllByUserFn != nil {
		return m.DeleteAllByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Expenses, userID)
	return nil
}

// MockBudgetOverrideRepository is a mock implementation of domain.BudgetOverrideRepository
type MockBudgetOverrideRepository struct {
	Overrides map[string]map[string]*domain.Budget

	GetAllByUserFn    func(ctx context.Context, userID string) ([]*domain.Budget, error)
	UpsertBatchFn     func(ctx context.Context, userID string, budgets []domain.Budget) error
	DeleteFn          func(ctx context.Context, userID string, category string) error
	DeleteAllByUserFn func(ctx context.Context, userID string) error

	mu sync.Mutex
}

// NewMockBudgetOverrideRepository creates a new MockBudgetOverrideRepository
func NewMockBudgetOverrideRepository() *MockBudgetOverrideRepository {
	return &MockBudgetOverrideRepository{
		Overrides: make(map[string]map[string]*domain.Budget),
	}
}

// SetOverride stores an override for a user
func (m *MockBudgetOverrideRepository) SetOverride(userID string, budget domain.Budget) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Overrides[userID] == nil {
		m.Overrides[userID] = make(map[string]*domain.Budget)
	}
	b := budget
	m.Overrides[userID][budget.Category] = &b
}

// GetAllByUser returns the user's overrides sorted by category
func (m *MockBudgetOverrideRepository) GetAllByUser(ctx context.Context, userID string) ([]*domain.Budget, error) {
	if m.GetAllByUserFn != nil {
		return m.GetAllByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Budget, 0, len(m.Overrides[userID]))
	for _, b := range m.Overrides[userID] {
		copied := *b
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result, nil
}

// UpsertBatch stores every budget for the user
func (m *MockBudgetOverrideRepository) UpsertBatch(ctx context.Context, userID string, budgets []domain.Budget) error {
	if m.UpsertBatchFn != nil {
		return m.UpsertBatchFn(ctx, userID, budgets)
	}
	for _, b := range budgets {
		m.SetOverride(userID, b)
	}
	return nil
}

// Delete removes a single override
func (m *MockBudgetOverrideRepository) Delete(ctx context.Context, userID string, category string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, category)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Overrides[userID], category)
	return nil
}

// DeleteAllByUser removes every override of the user
func (m *MockBudgetOverrideRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	if m.DeleteAllByUserFn != nil {
		return m.DeleteAllByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Overrides, userID)
	return nil
}

// MockExtractor is a mock implementation of domain.ExpenseExtractor
type MockExtractor struct {
	Result *domain.ExtractedExpense
	Err    error

	// Calls records the messages passed to Extract
	Calls []string
	Today time.Time

	ExtractFn func(ctx context.Context, message string, today time.Time) (*domain.ExtractedExpense, error)
}

// Extract returns the configured result
func (m *MockExtractor) Extract(ctx context.Context, message string, today time.Time) (*domain.ExtractedExpense, error) {
	m.Calls = append(m.Calls, message)
	m.Today = today
	if m.ExtractFn != nil {
		return m.ExtractFn(ctx, message, today)
	}
	if m.Result == nil {
		return nil, m.Err
	}
	copied := *m.Result
	return &copied, m.Err
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	Events []PublishedEvent
	mu     sync.Mutex
}

// PublishedEvent is one recorded Publish call
type PublishedEvent struct {
	UserID string
	Event  websocket.Event
}

// Publish records the event
func (m *MockEventPublisher) Publish(userID string, event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{UserID: userID, Event: event})
}

// Types returns the recorded event types in order
func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, e := range m.Events {
		types[i] = e.Event.Type
	}
	return types
}

// MockExportStore is an in-memory storage.ExportStore
type MockExportStore struct {
	Objects map[string][]byte
	PutErr  error
	SignErr error
}

// NewMockExportStore creates a new MockExportStore
func NewMockExportStore() *MockExportStore {
	return &MockExportStore{Objects: make(map[string][]byte)}
}

// Put stores data under key
func (m *MockExportStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Objects[key] = data
	return nil
}

// PresignedURL returns a fake signed link
func (m *MockExportStore) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.SignErr != nil {
		return "", m.SignErr
	}
	return fmt.Sprintf("https://exports.test/%s?expires=%d", key, int(expiry.Seconds())), nil
}
