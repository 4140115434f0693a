package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lunnorapp/lunnor_caixa/internal/apperrors"
	portssvc "github.com/lunnorapp/lunnor_caixa/internal/core/ports/services"
	"github.com/lunnorapp/lunnor_caixa/internal/dto"
	"github.com/lunnorapp/lunnor_caixa/internal/middleware"
)

// peaceFundHandler handles HTTP requests related to the Peace Fund.
type peaceFundHandler struct {
	peaceFundService portssvc.PeaceFundSvcFacade
}

func newPeaceFundHandler(ps portssvc.PeaceFundSvcFacade) *peaceFundHandler {
	return &peaceFundHandler{peaceFundService: ps}
}

// registerPeaceFundRoutes registers routes related to the Peace Fund.
func registerPeaceFundRoutes(rg *gin.RouterGroup, peaceFundService portssvc.PeaceFundSvcFacade) {
	h := newPeaceFundHandler(peaceFundService)

	fund := rg.Group("/peace-fund")
	{
		fund.GET("", h.getPeaceFund)
		fund.PUT("", h.updatePeaceFund)
		fund.GET("/transactions", h.listPeaceFundTransactions)
		fund.POST("/transactions", h.createPeaceFundTransaction)
		fund.GET("/evolution", h.evolution)
	}
}

// getPeaceFund godoc
// @Summary Get the Peace Fund
// @Description Retrieves the user's fund, creating an empty one on first access. The balance is derived from the ledger.
// @Tags peace-fund
// @Produce json
// @Success 200 {object} dto.PeaceFundResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /peace-fund [get]
func (h *peaceFundHandler) getPeaceFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fund, err := h.peaceFundService.GetPeaceFund(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get peace fund", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get peace fund"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPeaceFundResponse(*fund))
}

// updatePeaceFund godoc
// @Summary Update the Peace Fund settings
// @Description Sets the fund's target and optional minimum alert amount
// @Tags peace-fund
// @Accept json
// @Produce json
// @Param fund body dto.UpdatePeaceFundRequest true "Fund settings"
// @Success 200 {object} dto.PeaceFundResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /peace-fund [put]
func (h *peaceFundHandler) updatePeaceFund(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePeaceFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fund, err := h.peaceFundService.UpdatePeaceFund(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update peace fund", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update peace fund"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPeaceFundResponse(*fund))
}

// listPeaceFundTransactions godoc
// @Summary List the Peace Fund ledger
// @Description Retrieves the fund's deposits and withdrawals, oldest first
// @Tags peace-fund
// @Produce json
// @Success 200 {object} dto.ListPeaceFundTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /peace-fund/transactions [get]
func (h *peaceFundHandler) listPeaceFundTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, err := h.peaceFundService.ListPeaceFundTransactions(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list peace fund transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list peace fund transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPeaceFundTransactionsResponse(txns))
}

// createPeaceFundTransaction godoc
// @Summary Record a Peace Fund movement
// @Description Appends a deposit or withdrawal to the ledger and queues the WhatsApp notification
// @Tags peace-fund
// @Accept json
// @Produce json
// @Param transaction body dto.CreatePeaceFundTransactionRequest true "Movement details"
// @Success 201 {object} dto.PeaceFundTransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /peace-fund/transactions [post]
func (h *peaceFundHandler) createPeaceFundTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePeaceFundTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.peaceFundService.CreatePeaceFundTransaction(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create peace fund transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create peace fund transaction"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPeaceFundTransactionResponse(*txn))
}

// evolution godoc
// @Summary Peace Fund monthly evolution
// @Description Produces the fund's running balance per month over the last N months
// @Tags peace-fund
// @Produce json
// @Param months query int false "Window size in months" default(6)
// @Success 200 {object} dto.EvolutionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /peace-fund/evolution [get]
func (h *peaceFundHandler) evolution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	months, err := strconv.Atoi(c.DefaultQuery("months", "6"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "months must be an integer"})
		return
	}

	points, err := h.peaceFundService.Evolution(c.Request.Context(), userID, months, time.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build peace fund evolution", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build peace fund evolution"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEvolutionResponse(points))
}
