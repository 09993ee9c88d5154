package handlers

import (
	"fmt"
	"net/http"

	"EDMS/internal/services"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	service *services.StatisticsService
}

func NewStatisticsHandler(service *services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// GetSummary returns table sizes and total mutation counts
// GET /api/v1/stats/summary
func (h *StatisticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get statistics: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetEmployeeStats returns mutation counts for one employee
// GET /api/v1/stats/employees/:employeeId
func (h *StatisticsHandler) GetEmployeeStats(c *gin.Context) {
	employeeID := c.Param("employeeId")

	stats, err := h.service.GetEmployeeStats(employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get statistics: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employee_id": employeeID,
		"stats":       stats,
	})
}
