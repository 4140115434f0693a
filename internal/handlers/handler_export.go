package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lunnorapp/lunnor_caixa/internal/apperrors"
	portssvc "github.com/lunnorapp/lunnor_caixa/internal/core/ports/services"
	"github.com/lunnorapp/lunnor_caixa/internal/middleware"
)

// exportHandler handles HTTP requests related to exports.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

func newExportHandler(es portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{exportService: es}
}

// registerExportRoutes registers routes related to exports.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	h := newExportHandler(exportService)

	export := rg.Group("/export")
	{
		export.GET("/transactions.csv", h.exportCSV)
		export.POST("/transactions/sheets", h.exportToSheets)
	}
}

// exportCSV godoc
// @Summary Export transactions as CSV
// @Description Streams the user's filtered transactions as a CSV file
// @Tags export
// @Produce text/csv
// @Param startDate query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param endDate query string false "End date (YYYY-MM-DD, inclusive)"
// @Param type query string false "income or expense"
// @Param category query string false "Exact category"
// @Param search query string false "Case-insensitive search"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /export/transactions.csv [get]
func (h *exportHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	filename := fmt.Sprintf("transacoes-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.exportService.WriteCSV(c.Request.Context(), userID, filter, c.Writer); err != nil {
		// Headers may already be out; log and abort the stream.
		logger.Error("Failed to stream CSV export", slog.String("error", err.Error()))
		c.Abort()
		return
	}
}

// exportToSheets godoc
// @Summary Append transactions to Google Sheets
// @Description Appends the user's filtered transactions to the configured spreadsheet
// @Tags export
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD, inclusive)"
// @Param endDate query string false "End date (YYYY-MM-DD, inclusive)"
// @Param type query string false "income or expense"
// @Param category query string false "Exact category"
// @Param search query string false "Case-insensitive search"
// @Success 200 {object} map[string]int
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Sheets export not configured"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /export/transactions/sheets [post]
func (h *exportHandler) exportToSheets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rows, err := h.exportService.AppendToSheet(c.Request.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrSheetsNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Google Sheets export not configured"})
			return
		}
		logger.Error("Failed to export to sheets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export to sheets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rowsAppended": rows})
}
