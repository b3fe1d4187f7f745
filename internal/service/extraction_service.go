package service

import (
	"context"
	"strings"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/util"
	"github.com/rs/zerolog/log"
)

// ExpenseCreator stores a new expense
type ExpenseCreator interface {
	CreateExpense(ctx context.Context, userID string, input CreateExpenseInput, explicitDate *time.Time) (*domain.Expense, error)
}

// ExtractionService turns free text into expense candidates. Extractor
// failures never reach the caller; they are reported as "no result" so the
// client can fall back to manual entry.
type ExtractionService struct {
	extractor domain.ExpenseExtractor
	creator   ExpenseCreator
	location  *time.Location
	now       func() time.Time
}

// NewExtractionService creates a new ExtractionService. A nil extractor
// disables extraction.
func NewExtractionService(extractor domain.ExpenseExtractor, creator ExpenseCreator, loc *time.Location) *ExtractionService {
	if loc == nil {
		loc = time.UTC
	}
	return &ExtractionService{
		extractor: extractor,
		creator:   creator,
		location:  loc,
		now:       time.Now,
	}
}

// Enabled reports whether an extractor is configured
func (s *ExtractionService) Enabled() bool {
	return s.extractor != nil
}

// Extract returns the expense candidate found in message, or nil when there
// is none
func (s *ExtractionService) Extract(ctx context.Context, userID, message string) (*domain.ExtractedExpense, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if s.extractor == nil {
		return nil, domain.ErrExtractionDisabled
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrMessageRequired
	}
	if len(message) > domain.MaxMessageLength {
		return nil, domain.ErrMessageTooLong
	}

	today := util.StartOfDay(s.now().In(s.location))

	candidate, err := s.extractor.Extract(ctx, message, today)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("Expense extraction failed, treating as no result")
		return nil, nil
	}
	if !usableCandidate(candidate) {
		log.Debug().Str("user_id", userID).Msg("Extractor returned no usable expense")
		return nil, nil
	}

	candidate.Amount = candidate.Amount.Round(2)
	candidate.Description = strings.TrimSpace(candidate.Description)
	if candidate.Date.IsZero() {
		candidate.Date = today
	} else {
		candidate.Date = candidate.Date.In(s.location)
	}

	return candidate, nil
}

// QuickCreate extracts a candidate from message and stores it. Both results
// are nil when the text held no usable expense.
func (s *ExtractionService) QuickCreate(ctx context.Context, userID, message string) (*domain.Expense, error) {
	candidate, err := s.Extract(ctx, userID, message)
	if err != nil || candidate == nil {
		return nil, err
	}

	date := candidate.Date
	return s.creator.CreateExpense(ctx, userID, CreateExpenseInput{
		Amount:      candidate.Amount,
		Category:    candidate.Category,
		Description: candidate.Description,
	}, &date)
}

func usableCandidate(c *domain.ExtractedExpense) bool {
	if c == nil {
		return false
	}
	if domain.ValidateAmount(c.Amount.Round(2)) != nil {
		return false
	}
	if !domain.IsCatalogCategory(c.Category) {
		return false
	}
	description := strings.TrimSpace(c.Description)
	return description != "" && len(description) <= domain.MaxDescriptionLength
}
