package handler

import (
	"net/http"
	"time"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/labstack/echo/v4"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation   = "https://smartexpense.app/errors/validation"
	ErrorTypeNotFound     = "https://smartexpense.app/errors/not-found"
	ErrorTypeUnauthorized = "https://smartexpense.app/errors/unauthorized"
	ErrorTypeUnavailable  = "https://smartexpense.app/errors/unavailable"
	ErrorTypeInternal     = "https://smartexpense.app/errors/internal"
)

// retryDetail is shown for every store failure
const retryDetail = "Something went wrong while saving your data, please try again"

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnauthorizedError creates an unauthorized error response
func NewUnauthorizedError(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnauthorized, ProblemDetails{
		Type:     ErrorTypeUnauthorized,
		Title:    "Unauthorized",
		Status:   http.StatusUnauthorized,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnavailableError creates a response for features that are not configured
func NewUnavailableError(c echo.Context, detail string) error {
	return c.JSON(http.StatusServiceUnavailable, ProblemDetails{
		Type:     ErrorTypeUnavailable,
		Title:    "Service Unavailable",
		Status:   http.StatusServiceUnavailable,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Limit    string `json:"limit"`
}

// Expense dates are reported as calendar dates
const dateFormat = "2006-01-02"

func toExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Amount:      e.Amount.StringFixed(2),
		Category:    e.Category,
		Color:       domain.CategoryColor(e.Category),
		Description: e.Description,
		Date:        e.Date.Format(dateFormat),
	}
}

func toExpenseResponses(expenses []*domain.Expense) []ExpenseResponse {
	result := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		if e == nil {
			continue
		}
		result = append(result, toExpenseResponse(e))
	}
	return result
}

func toBudgetResponses(budgets []domain.Budget) []BudgetResponse {
	result := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		result[i] = BudgetResponse{
			Category: b.Category,
			Color:    domain.CategoryColor(b.Category),
			Limit:    b.Limit.StringFixed(2),
		}
	}
	return result
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}
