package handler

import (
	"errors"
	"net/http"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/middleware"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExtractHandler turns free text into expenses
type ExtractHandler struct {
	extraction *service.ExtractionService
}

// NewExtractHandler creates a new ExtractHandler
func NewExtractHandler(extraction *service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{extraction: extraction}
}

// ExtractRequest represents the extraction request body
type ExtractRequest struct {
	Message string `json:"message"`
}

// CandidateResponse is an expense guess the client can confirm or edit
type CandidateResponse struct {
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// ExtractResponse carries the candidate, if any. Found is false when the
// client should fall back to manual entry.
type ExtractResponse struct {
	Found     bool               `json:"found"`
	Candidate *CandidateResponse `json:"candidate,omitempty"`
}

// QuickCreateResponse carries the stored expense, if any
type QuickCreateResponse struct {
	Found   bool             `json:"found"`
	Expense *ExpenseResponse `json:"expense,omitempty"`
}

// Extract godoc
// @Summary Extract an expense from text
// @Description Guess amount, category, description and date from a free text message such as "spent 250 on lunch"
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExtractRequest true "Message"
// @Success 200 {object} ExtractResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /expenses/extract [post]
func (h *ExtractHandler) Extract(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Sign in to add expenses")
	}

	var req ExtractRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	candidate, err := h.extraction.Extract(c.Request().Context(), userID, req.Message)
	if err != nil {
		return extractionError(c, err)
	}
	if candidate == nil {
		return c.JSON(http.StatusOK, ExtractResponse{Found: false})
	}

	return c.JSON(http.StatusOK, ExtractResponse{
		Found: true,
		Candidate: &CandidateResponse{
			Amount:      candidate.Amount.StringFixed(2),
			Category:    candidate.Category,
			Color:       domain.CategoryColor(candidate.Category),
			Description: candidate.Description,
			Date:        formatDate(candidate.Date),
		},
	})
}

// QuickCreate godoc
// @Summary Add an expense from text
// @Description Extract an expense from a free text message and store it in one step
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ExtractRequest true "Message"
// @Success 201 {object} QuickCreateResponse
// @Success 200 {object} QuickCreateResponse "No expense found in the message"
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /expenses/quick [post]
func (h *ExtractHandler) QuickCreate(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Sign in to add expenses")
	}

	var req ExtractRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	expense, err := h.extraction.QuickCreate(c.Request().Context(), userID, req.Message)
	if err != nil {
		return extractionError(c, err)
	}
	if expense == nil {
		return c.JSON(http.StatusOK, QuickCreateResponse{Found: false})
	}

	log.Info().Str("user_id", userID).Str("expense_id", expense.ID).Msg("Expense created from text")

	response := toExpenseResponse(expense)
	return c.JSON(http.StatusCreated, QuickCreateResponse{Found: true, Expense: &response})
}

func extractionError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrExtractionDisabled):
		return NewUnavailableError(c, "Text entry is not available, add the expense manually")
	case errors.Is(err, domain.ErrMessageRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "message", Message: "Message is required"},
		})
	case errors.Is(err, domain.ErrMessageTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "message", Message: "Message must be 500 characters or less"},
		})
	}
	return expenseError(c, err)
}
