package handler

import (
	"net/http"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/labstack/echo/v4"
)

// CatalogHandler serves the fixed category catalog
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// CatalogEntryResponse represents one catalog category
type CatalogEntryResponse struct {
	Category     string `json:"category"`
	DefaultLimit string `json:"defaultLimit"`
	Color        string `json:"color"`
}

// GetCatalog godoc
// @Summary List categories
// @Description Fixed category catalog with default monthly limits and colors, in display order
// @Tags catalog
// @Produce json
// @Success 200 {array} CatalogEntryResponse
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	catalog := domain.Catalog()
	response := make([]CatalogEntryResponse, len(catalog))
	for i, entry := range catalog {
		response[i] = CatalogEntryResponse{
			Category:     entry.Category,
			DefaultLimit: entry.DefaultLimit.StringFixed(2),
			Color:        entry.Color,
		}
	}
	return c.JSON(http.StatusOK, response)
}
