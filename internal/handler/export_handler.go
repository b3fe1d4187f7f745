package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dineshjasuja/SmartExpenseTracker/internal/domain"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/middleware"
	"github.com/dineshjasuja/SmartExpenseTracker/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExportHandler serves expense downloads
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCSV godoc
// @Summary Download expenses as CSV
// @Description Every expense of the caller as CSV with columns User, Date, Category, Amount (INR), Description
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 401 {object} ProblemDetails
// @Router /export/csv [get]
func (h *ExportHandler) ExportCSV(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Sign in to export expenses")
	}

	file, err := h.exportService.CSV(c.Request().Context(), userID, middleware.GetDisplayName(c))
	if err != nil {
		return exportError(c, userID, err)
	}
	return sendFile(c, file)
}

// ExportXLSX godoc
// @Summary Download expenses as a spreadsheet
// @Description Every expense of the caller as an Excel workbook with the same columns as the CSV export
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 401 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Router /export/xlsx [get]
func (h *ExportHandler) ExportXLSX(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Sign in to export expenses")
	}

	file, err := h.exportService.XLSX(c.Request().Context(), userID, middleware.GetDisplayName(c))
	if err != nil {
		return exportError(c, userID, err)
	}
	return sendFile(c, file)
}

// ArchiveExport godoc
// @Summary Archive a CSV export
// @Description Store a CSV export and return a download link valid for 24 hours
// @Tags export
// @Produce json
// @Security BearerAuth
// @Success 201 {object} service.ArchiveResult
// @Failure 401 {object} ProblemDetails
// @Failure 500 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /export/archive [post]
func (h *ExportHandler) ArchiveExport(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return NewUnauthorizedError(c, "Sign in to export expenses")
	}

	result, err := h.exportService.Archive(c.Request().Context(), userID, middleware.GetDisplayName(c))
	if err != nil {
		return exportError(c, userID, err)
	}

	return c.JSON(http.StatusCreated, result)
}

func sendFile(c echo.Context, file *service.ExportFile) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}

func exportError(c echo.Context, userID string, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return NewUnauthorizedError(c, "Sign in to export expenses")
	case errors.Is(err, domain.ErrArchiveDisabled):
		return NewUnavailableError(c, "Export archiving is not available, download the file instead")
	case errors.Is(err, domain.ErrStoreUnavailable):
		return NewInternalError(c, retryDetail)
	}

	log.Error().Err(err).Str("user_id", userID).Msg("Failed to export expenses")
	return NewInternalError(c, "Failed to export expenses")
}
