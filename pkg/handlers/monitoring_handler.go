package handlers

import (
	"net/http"
	"strconv"

	"smwu-sales-api/pkg/services"

	"github.com/gin-gonic/gin"
)

// MonitoringHandler serves the request-log endpoint.
type MonitoringHandler struct {
	monitoringService *services.MonitoringService
}

// NewMonitoringHandler creates a monitoring handler.
func NewMonitoringHandler(monitoringService *services.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{monitoringService: monitoringService}
}

// GetLogs handles GET /api/v1/monitoring/logs.
func (mh *MonitoringHandler) GetLogs(c *gin.Context) {
	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	logs := mh.monitoringService.RecentLogs(limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    logs,
		"count":   len(logs),
	})
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "SMWU Sales Data API",
	})
}
