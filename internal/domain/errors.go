package domain

import "errors"

// Domain errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// Expense errors
var (
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrInvalidExpenseID    = errors.New("invalid expense id")
	ErrInvalidAmount       = errors.New("amount must be zero or positive with at most two decimals")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
	ErrCategoryRequired    = errors.New("category is required")
	ErrInvalidDate         = errors.New("invalid date")
	ErrEmptyUpdate         = errors.New("no fields to update")
)

// Budget errors
var (
	ErrUnknownCategory   = errors.New("category is not in the catalog")
	ErrDuplicateCategory = errors.New("category listed more than once")
)

// Extraction errors
var (
	ErrExtractionDisabled = errors.New("text extraction is not configured")
	ErrMessageRequired    = errors.New("message is required")
	ErrMessageTooLong     = errors.New("message exceeds maximum length")
)

// Export errors
var ErrArchiveDisabled = errors.New("export archiving is not configured")

// Validation constants
const (
	MaxDescriptionLength = 255
	MaxMessageLength     = 500
)
