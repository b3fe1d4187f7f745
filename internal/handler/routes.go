package handler

import (
	"github.com/dineshjasuja/SmartExpenseTracker/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, extractLimiter *middleware.RateLimiter, catalogHandler *CatalogHandler, summaryHandler *SummaryHandler, expenseHandler *ExpenseHandler, extractHandler *ExtractHandler, budgetHandler *BudgetHandler, accountHandler *AccountHandler, exportHandler *ExportHandler, wsHandler *WebSocketHandler) {
	// API docs (public)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// WebSocket authenticates with a query token
	e.GET("/ws", wsHandler.HandleWS)

	// API version 1
	api := e.Group("/api/v1")
	api.GET("/openapi.json", ServeOpenAPI3Spec)

	// Catalog (public)
	api.GET("/catalog", catalogHandler.GetCatalog)

	// State and summary (anonymous callers get defaults)
	optionalAuth := authMiddleware.OptionalAuthenticate()
	api.GET("/state", summaryHandler.GetState, optionalAuth)
	api.GET("/summary", summaryHandler.GetSummary, optionalAuth)

	// Expense routes (protected)
	expenses := api.Group("/expenses")
	expenses.Use(authMiddleware.Authenticate())
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.PATCH("/:id", expenseHandler.UpdateExpense)

	// Text extraction is rate limited per user
	rateLimited := middleware.RateLimitMiddleware(extractLimiter)
	expenses.POST("/extract", extractHandler.Extract, rateLimited)
	expenses.POST("/quick", extractHandler.QuickCreate, rateLimited)

	// Budget routes (protected)
	budgets := api.Group("/budgets")
	budgets.Use(authMiddleware.Authenticate())
	budgets.PUT("", budgetHandler.SaveBudgets)
	budgets.DELETE("/:category", budgetHandler.DeleteBudgetOverride)

	// Account routes (protected)
	account := api.Group("/account")
	account.Use(authMiddleware.Authenticate())
	account.DELETE("/data", accountHandler.ClearData)

	// Export routes (protected)
	exports := api.Group("/export")
	exports.Use(authMiddleware.Authenticate())
	exports.GET("/csv", exportHandler.ExportCSV)
	exports.GET("/xlsx", exportHandler.ExportXLSX)
	exports.POST("/archive", exportHandler.ArchiveExport)
}
