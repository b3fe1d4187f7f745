package handler

import (
	"net/http"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/aggregation"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/middleware"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/service"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/util"
	"github.com/labstack/echo/v4"
)

// SummaryHandler serves the per-user dataset and its monthly view
type SummaryHandler struct {
	loader         service.StateLoader
	summaryService *service.SummaryService
	formatter      *util.CurrencyFormatter
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(loader service.StateLoader, summaryService *service.SummaryService, formatter *util.CurrencyFormatter) *SummaryHandler {
	return &SummaryHandler{
		loader:         loader,
		summaryService: summaryService,
		formatter:      formatter,
	}
}

// StateResponse is the full dataset the client works from
type StateResponse struct {
	Authenticated bool              `json:"authenticated"`
	Expenses      []ExpenseResponse `json:"expenses"`
	Budgets       []BudgetResponse  `json:"budgets"`
}

// BreakdownEntryResponse represents the spend of one budget category
type BreakdownEntryResponse struct {
	Category   string `json:"category"`
	Color      string `json:"color"`
	Limit      string `json:"limit"`
	Spent      string `json:"spent"`
	Remaining  string `json:"remaining"`
	Percentage string `json:"percentage"`
}

// SummaryDisplay holds currency-formatted amounts ready to render
type SummaryDisplay struct {
	TotalSpent      string `json:"totalSpent"`
	TotalBudget     string `json:"totalBudget"`
	Balance         string `json:"balance"`
	UnbudgetedSpent string `json:"unbudgetedSpent"`
}

// SummaryResponse is the monthly budget view
type SummaryResponse struct {
	Authenticated   bool                     `json:"authenticated"`
	Year            int                      `json:"year"`
	Month           int                      `json:"month"`
	Expenses        []ExpenseResponse        `json:"expenses"`
	TotalSpent      string                   `json:"totalSpent"`
	TotalBudget     string                   `json:"totalBudget"`
	Balance         string                   `json:"balance"`
	DisplayBalance  string                   `json:"displayBalance"`
	Exceeded        bool                     `json:"exceeded"`
	UnbudgetedSpent string                   `json:"unbudgetedSpent"`
	Breakdown       []BreakdownEntryResponse `json:"breakdown"`
	Display         SummaryDisplay           `json:"display"`
}

// GetState godoc
// @Summary Get expenses and budgets
// @Description All expenses of the caller and the effective budget per catalog category. Anonymous callers get the catalog defaults.
// @Tags state
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StateResponse
// @Router /state [get]
func (h *SummaryHandler) GetState(c echo.Context) error {
	userID := middleware.GetUserID(c)
	state := h.loader.FetchAll(c.Request().Context(), userID)

	return c.JSON(http.StatusOK, StateResponse{
		Authenticated: userID != "",
		Expenses:      toExpenseResponses(state.Expenses),
		Budgets:       toBudgetResponses(state.Budgets),
	})
}

// GetSummary godoc
// @Summary Get the current month summary
// @Description Totals, balance and per-category breakdown for the current month in the configured timezone
// @Tags summary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SummaryResponse
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	userID := middleware.GetUserID(c)
	summary := h.summaryService.CurrentMonth(c.Request().Context(), userID)

	response := h.toSummaryResponse(summary)
	response.Authenticated = userID != ""
	return c.JSON(http.StatusOK, response)
}

func (h *SummaryHandler) toSummaryResponse(s *aggregation.Summary) SummaryResponse {
	breakdown := make([]BreakdownEntryResponse, len(s.Breakdown))
	for i, entry := range s.Breakdown {
		breakdown[i] = BreakdownEntryResponse{
			Category:   entry.Category,
			Color:      entry.Color,
			Limit:      entry.Limit.StringFixed(2),
			Spent:      entry.Spent.StringFixed(2),
			Remaining:  entry.Remaining.StringFixed(2),
			Percentage: entry.Percentage.StringFixed(2),
		}
	}

	displayBalance := s.DisplayBalance()

	return SummaryResponse{
		Year:            s.Year,
		Month:           s.Month,
		Expenses:        toExpenseResponses(s.Expenses),
		TotalSpent:      s.TotalSpent.StringFixed(2),
		TotalBudget:     s.TotalBudget.StringFixed(2),
		Balance:         s.Balance.StringFixed(2),
		DisplayBalance:  displayBalance.StringFixed(2),
		Exceeded:        s.Exceeded(),
		UnbudgetedSpent: s.UnbudgetedSpent.StringFixed(2),
		Breakdown:       breakdown,
		Display: SummaryDisplay{
			TotalSpent:      h.formatter.FormatWithSymbol(s.TotalSpent),
			TotalBudget:     h.formatter.FormatWithSymbol(s.TotalBudget),
			Balance:         h.formatter.FormatWithSymbol(displayBalance),
			UnbudgetedSpent: h.formatter.FormatWithSymbol(s.UnbudgetedSpent),
		},
	}
}
