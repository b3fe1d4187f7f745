package handler

import (
	"errors"
	"net/http"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/middleware"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	reconciliation *service.ReconciliationService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(reconciliation *service.ReconciliationService) *ExpenseHandler {
	return &ExpenseHandler{reconciliation: reconciliation}
}

// CreateExpenseRequest represents the create expense request body
type CreateExpenseRequest struct {
	Amount      string  `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        *string `json:"date,omitempty"`
}

// UpdateExpenseRequest represents the partial update request body. Omitted
// fields are left untouched.
type UpdateExpenseRequest struct {
	Amount      *string `json:"amount,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
}

// CreateExpense godoc
// @Summary Create an expense
// @Description Store a manually entered expense. Without a date the expense is dated now.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "Expense creation request"
// @Success 201 {object} ExpenseResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Sign in to add expenses")
	}

	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	var date string
	if req.Date != nil {
		date = *req.Date
	}

	expense, err := h.reconciliation.CreateExpense(c.Request().Context(), userID, service.CreateExpenseInput{
		Amount:      amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}, nil)
	if err != nil {
		return expenseError(c, err)
	}

	log.Info().Str("user_id", userID).Str("expense_id", expense.ID).Msg("Expense created")

	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// UpdateExpense godoc
// @Summary Update an expense
// @Description Merge the given fields into an existing expense. Unreadable dates are ignored.
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Param request body UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} ExpenseResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Router /expenses/{id} [patch]
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Sign in to edit expenses")
	}

	id := c.Param("id")

	var req UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.UpdateExpenseInput{
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return NewValidationError(c, "Invalid amount", []ValidationError{
				{Field: "amount", Message: "Must be a valid decimal number"},
			})
		}
		input.Amount = &amount
	}

	expense, err := h.reconciliation.UpdateExpense(c.Request().Context(), userID, id, input)
	if err != nil {
		if errors.Is(err, domain.ErrExpenseNotFound) {
			return NewNotFoundError(c, "Expense not found")
		}
		return expenseError(c, err)
	}

	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// expenseError maps expense validation and store errors to responses
func expenseError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return NewUnauthorizedError(c, "Sign in to change expenses")
	case errors.Is(err, domain.ErrInvalidExpenseID):
		return NewValidationError(c, "Invalid expense ID", nil)
	case errors.Is(err, domain.ErrEmptyUpdate):
		return NewValidationError(c, "Nothing to update", nil)
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Amount must be zero or positive, with at most two decimal places"},
		})
	case errors.Is(err, domain.ErrInvalidDate):
		return NewValidationError(c, "Invalid date", []ValidationError{
			{Field: "date", Message: "Must be YYYY-MM-DD or an RFC 3339 timestamp"},
		})
	case errors.Is(err, domain.ErrCategoryRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "category", Message: "Category is required"},
		})
	case errors.Is(err, domain.ErrDescriptionRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "description", Message: "Description is required"},
		})
	case errors.Is(err, domain.ErrDescriptionTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "description", Message: "Description must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrStoreUnavailable):
		return NewInternalError(c, retryDetail)
	}

	log.Error().Err(err).Msg("Unexpected expense error")
	return NewInternalError(c, retryDetail)
}
