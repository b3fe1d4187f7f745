package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/db/sqlc"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExpenseRepository implements domain.ExpenseRepository using PostgreSQL
type ExpenseRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewExpenseRepository creates a new ExpenseRepository
func NewExpenseRepository(pool *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// Create inserts an expense and returns the stored row. A nil date lets the
// store assign the creation timestamp.
func (r *ExpenseRepository) Create(ctx context.Context, userID string, expense domain.NewExpense, date *time.Time) (*domain.Expense, error) {
	amount, err := decimalToPgNumeric(expense.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	created, err := r.queries.CreateExpense(ctx, sqlc.CreateExpenseParams{
		UserID:      userID,
		Amount:      amount,
		Category:    expense.Category,
		Description: expense.Description,
		CreatedAt:   optionalTimestamptz(date),
	})
	if err != nil {
		return nil, err
	}
	return sqlcExpenseToDomain(created), nil
}

// GetAllByUser returns every expense of the user in creation order
func (r *ExpenseRepository) GetAllByUser(ctx context.Context, userID string) ([]*domain.Expense, error) {
	rows, err := r.queries.ListExpensesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Expense, len(rows))
	for i, row := range rows {
		result[i] = sqlcExpenseToDomain(row)
	}
	return result, nil
}

// Update applies the set fields of update to the expense matched by key
func (r *ExpenseRepository) Update(ctx context.Context, userID string, key domain.ExpenseKey, update domain.ExpenseUpdate) (*domain.Expense, error) {
	amount, err := optionalNumeric(update.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	category := optionalText(update.Category)
	description := optionalText(update.Description)
	createdAt := optionalTimestamptz(update.Date)

	var updated sqlc.Expense
	switch key.Kind {
	case domain.ExpenseKeyNumeric:
		updated, err = r.queries.UpdateExpenseByID(ctx, sqlc.UpdateExpenseByIDParams{
			Amount:      amount,
			Category:    category,
			Description: description,
			CreatedAt:   createdAt,
			UserID:      userID,
			ID:          key.Numeric,
		})
	case domain.ExpenseKeyText:
		updated, err = r.queries.UpdateExpenseByTextID(ctx, sqlc.UpdateExpenseByTextIDParams{
			Amount:      amount,
			Category:    category,
			Description: description,
			CreatedAt:   createdAt,
			UserID:      userID,
			ID:          key.Text,
		})
	default:
		return nil, domain.ErrInvalidExpenseID
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, err
	}
	return sqlcExpenseToDomain(updated), nil
}

// DeleteAllByUser removes every expense of the user
func (r *ExpenseRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	return r.queries.DeleteExpensesByUser(ctx, userID)
}

// Helper functions

func sqlcExpenseToDomain(e sqlc.Expense) *domain.Expense {
	return &domain.Expense{
		ID:          strconv.FormatInt(e.ID, 10),
		UserID:      e.UserID,
		Amount:      pgNumericToDecimal(e.Amount),
		Category:    e.Category,
		Description: e.Description,
		Date:        e.CreatedAt.Time,
	}
}
