package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/middleware"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget override HTTP requests
type BudgetHandler struct {
	reconciliation *service.ReconciliationService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(reconciliation *service.ReconciliationService) *BudgetHandler {
	return &BudgetHandler{reconciliation: reconciliation}
}

// BudgetInput represents a single budget in batch requests
type BudgetInput struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

// SaveBudgetsRequest represents the batch save request body
type SaveBudgetsRequest struct {
	Budgets []BudgetInput `json:"budgets"`
}

// SaveBudgetsResponse lists the budgets that were stored
type SaveBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// SaveBudgets godoc
// @Summary Save budget limits
// @Description Override the monthly limit of one or more catalog categories in a single batch
// @Tags budgets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveBudgetsRequest true "Budgets to save"
// @Success 200 {object} SaveBudgetsResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Router /budgets [put]
func (h *BudgetHandler) SaveBudgets(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Sign in to save budgets")
	}

	var req SaveBudgetsRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	budgets := make([]domain.Budget, len(req.Budgets))
	for i, b := range req.Budgets {
		limit, err := decimal.NewFromString(b.Limit)
		if err != nil {
			return NewValidationError(c, "Invalid limit format", []ValidationError{
				{Field: "limit", Message: "Must be a valid decimal number"},
			})
		}
		budgets[i] = domain.Budget{Category: b.Category, Limit: limit}
	}

	err := h.reconciliation.SaveBudgets(c.Request().Context(), userID, budgets)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			return NewUnauthorizedError(c, "Sign in to save budgets")
		case errors.Is(err, domain.ErrUnknownCategory):
			return NewValidationError(c, "Unknown category", []ValidationError{
				{Field: "category", Message: err.Error()},
			})
		case errors.Is(err, domain.ErrDuplicateCategory):
			return NewValidationError(c, "Duplicate category", []ValidationError{
				{Field: "category", Message: err.Error()},
			})
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Invalid limit", []ValidationError{
				{Field: "limit", Message: "Limit must be zero or positive"},
			})
		}
		return NewInternalError(c, retryDetail)
	}

	log.Info().Str("user_id", userID).Int("count", len(budgets)).Msg("Budgets saved")

	return c.JSON(http.StatusOK, SaveBudgetsResponse{Budgets: toBudgetResponses(budgets)})
}

// DeleteBudgetOverride godoc
// @Summary Reset a budget limit
// @Description Revert a category to its catalog default limit
// @Tags budgets
// @Security BearerAuth
// @Param category path string true "Category name"
// @Success 204
// @Failure 401 {object} ProblemDetails
// @Router /budgets/{category} [delete]
func (h *BudgetHandler) DeleteBudgetOverride(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Sign in to change budgets")
	}

	category, err := url.PathUnescape(c.Param("category"))
	if err != nil || category == "" {
		return NewValidationError(c, "Invalid category", nil)
	}

	h.reconciliation.DeleteBudgetOverride(c.Request().Context(), userID, category)

	return c.NoContent(http.StatusNoContent)
}
