package handler

import (
	"net/http"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/middleware"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/service"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-level HTTP requests
type AccountHandler struct {
	reconciliation *service.ReconciliationService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(reconciliation *service.ReconciliationService) *AccountHandler {
	return &AccountHandler{reconciliation: reconciliation}
}

// ClearData godoc
// @Summary Delete all data
// @Description Remove every expense and budget override of the caller. Partial failures are logged and reported over the realtime channel.
// @Tags account
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} ProblemDetails
// @Router /account/data [delete]
func (h *AccountHandler) ClearData(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Sign in to clear your data")
	}

	h.reconciliation.ClearAllUserData(c.Request().Context(), userID)

	return c.NoContent(http.StatusNoContent)
}
