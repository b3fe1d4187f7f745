package postgres

import (
	"context"

	"github.com/dineshjasuja/SmartExpenseTracker/db/sqlc"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BudgetOverrideRepository implements domain.BudgetOverrideRepository using PostgreSQL
type BudgetOverrideRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewBudgetOverrideRepository creates a new BudgetOverrideRepository
func NewBudgetOverrideRepository(pool *pgxpool.Pool) *BudgetOverrideRepository {
	return &BudgetOverrideRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// GetAllByUser returns the user's stored overrides
func (r *BudgetOverrideRepository) GetAllByUser(ctx context.Context, userID string) ([]*domain.Budget, error) {
	rows, err := r.queries.ListBudgetOverridesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Budget, len(rows))
	for i, row := range rows {
		result[i] = &domain.Budget{
			Category: row.Category,
			Limit:    pgNumericToDecimal(row.BudgetAmount),
		}
	}
	return result, nil
}

// UpsertBatch creates or updates overrides for every budget atomically
func (r *BudgetOverrideRepository) UpsertBatch(ctx context.Context, userID string, budgets []domain.Budget) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	qtx := r.queries.WithTx(tx)

	for _, budget := range budgets {
		amount, err := decimalToPgNumeric(budget.Limit)
		if err != nil {
			return err
		}

		err = qtx.UpsertBudgetOverride(ctx, sqlc.UpsertBudgetOverrideParams{
			UserID:       userID,
			Category:     budget.Category,
			BudgetAmount: amount,
		})
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete removes one override, reverting the category to its default
func (r *BudgetOverrideRepository) Delete(ctx context.Context, userID string, category string) error {
	return r.queries.DeleteBudgetOverride(ctx, sqlc.DeleteBudgetOverrideParams{
		UserID:   userID,
		Category: category,
	})
}

// DeleteAllByUser removes every override of the user
func (r *BudgetOverrideRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	return r.queries.DeleteBudgetOverridesByUser(ctx, userID)
}
