package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ExtractedExpense is a best-effort expense guess produced from free text
type ExtractedExpense struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// ExpenseExtractor turns free text into an expense candidate.
// A nil result with a nil error means the text held no usable expense.
type ExpenseExtractor interface {
	Extract(ctx context.Context, message string, today time.Time) (*ExtractedExpense, error)
}
