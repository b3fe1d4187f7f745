package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the canonical expense record. ID is always carried in its string
// form even though the store backs it with a numeric key.
type Expense struct {
	ID          string          `json:"id"`
	UserID      string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// NewExpense holds the fields required to create an expense
type NewExpense struct {
	Amount      decimal.Decimal
	Category    string
	Description string
}

// MaxAmount is the smallest value the NUMERIC(12,2) amount columns cannot hold
var MaxAmount = decimal.New(1, 10)

// ValidateAmount accepts amounts the store keeps exactly: not negative, at
// most two decimal places, below MaxAmount.
func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() || !d.Equal(d.Round(2)) || d.GreaterThanOrEqual(MaxAmount) {
		return ErrInvalidAmount
	}
	return nil
}

// ExpenseUpdate is a partial-field merge. Nil fields are left untouched.
type ExpenseUpdate struct {
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *time.Time
}

// IsEmpty reports whether the update carries no fields
func (u ExpenseUpdate) IsEmpty() bool {
	return u.Amount == nil && u.Category == nil && u.Description == nil && u.Date == nil
}

// ExpenseRepository is the expense record store, scoped by user
type ExpenseRepository interface {
	Create(ctx context.Context, userID string, expense NewExpense, date *time.Time) (*Expense, error)
	GetAllByUser(ctx context.Context, userID string) ([]*Expense, error)
	// Update returns ErrExpenseNotFound when no row matched the key
	Update(ctx context.Context, userID string, key ExpenseKey, update ExpenseUpdate) (*Expense, error)
	DeleteAllByUser(ctx context.Context, userID string) error
}
