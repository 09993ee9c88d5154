package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"EDMS/internal/services"

	"github.com/gin-gonic/gin"
)

type LogsHandler struct {
	service *services.ActivityLogService
}

func NewLogsHandler(service *services.ActivityLogService) *LogsHandler {
	return &LogsHandler{service: service}
}

// GetAllLogs returns request logs, newest first, optionally filtered by
// method or path substring
// GET /api/v1/logs?method=&path=&limit=&offset=
func (h *LogsHandler) GetAllLogs(c *gin.Context) {
	limit := parseIntQuery(c, "limit", 50)
	offset := parseIntQuery(c, "offset", 0)

	method := c.Query("method")
	path := c.Query("path")

	var (
		logs  interface{}
		total int64
		err   error
	)

	switch {
	case method != "":
		logs, total, err = h.service.GetLogsByMethod(method, limit, offset)
	case path != "":
		logs, total, err = h.service.GetLogsByPath(path, limit, offset)
	default:
		logs, total, err = h.service.GetAllLogs(limit, offset)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get logs: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs":   logs,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func parseIntQuery(c *gin.Context, key string, defaultValue int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return defaultValue
	}
	return value
}
