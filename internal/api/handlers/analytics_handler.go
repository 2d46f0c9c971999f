package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/invensight/backend-go/internal/service"
)

// AnalyticsHandler serves the forecast engine outputs.
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) GetPredictions(c *gin.Context) {
	predictions, err := h.service.GetPredictions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, predictions)
}

func (h *AnalyticsHandler) GetOptimization(c *gin.Context) {
	optimization, err := h.service.GetOptimization(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, optimization)
}

func (h *AnalyticsHandler) GetABCAnalysis(c *gin.Context) {
	classifications, err := h.service.GetABCAnalysis(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, classifications)
}

func (h *AnalyticsHandler) GetAlerts(c *gin.Context) {
	alerts, err := h.service.GetAlerts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}
