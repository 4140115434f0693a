package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lunnorapp/lunnor_caixa/internal/apperrors"
	portssvc "github.com/lunnorapp/lunnor_caixa/internal/core/ports/services"
	"github.com/lunnorapp/lunnor_caixa/internal/dto"
	"github.com/lunnorapp/lunnor_caixa/internal/middleware"
)

// alertHandler handles HTTP requests related to alerts.
type alertHandler struct {
	alertService portssvc.AlertSvcFacade
}

func newAlertHandler(as portssvc.AlertSvcFacade) *alertHandler {
	return &alertHandler{alertService: as}
}

// registerAlertRoutes registers routes related to alerts.
func registerAlertRoutes(rg *gin.RouterGroup, alertService portssvc.AlertSvcFacade) {
	h := newAlertHandler(alertService)

	alerts := rg.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/config", h.getAlertConfig)
		alerts.PUT("/config", h.updateAlertConfig)
	}
}

// listAlerts godoc
// @Summary Evaluate alerts
// @Description Runs every alert rule over the user's current data and returns the fired alerts
// @Tags alerts
// @Produce json
// @Success 200 {object} dto.ListAlertsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /alerts [get]
func (h *alertHandler) listAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	alerts, err := h.alertService.EvaluateAlerts(c.Request.Context(), userID, time.Now())
	if err != nil {
		logger.Error("Failed to evaluate alerts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to evaluate alerts"})
		return
	}

	c.JSON(http.StatusOK, dto.ListAlertsResponse{Alerts: alerts})
}

// getAlertConfig godoc
// @Summary Get alert preferences
// @Description Retrieves the user's alert preferences, falling back to the defaults
// @Tags alerts
// @Produce json
// @Success 200 {object} dto.AlertConfigResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /alerts/config [get]
func (h *alertHandler) getAlertConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cfg, err := h.alertService.GetAlertConfig(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get alert config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get alert config"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAlertConfigResponse(cfg))
}

// updateAlertConfig godoc
// @Summary Update alert preferences
// @Description Creates or replaces the user's alert preferences. Omitted fields take the default values.
// @Tags alerts
// @Accept json
// @Produce json
// @Param config body dto.AlertConfigRequest true "Alert preferences"
// @Success 200 {object} dto.AlertConfigResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /alerts/config [put]
func (h *alertHandler) updateAlertConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AlertConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	cfg, err := h.alertService.UpdateAlertConfig(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update alert config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update alert config"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAlertConfigResponse(*cfg))
}
