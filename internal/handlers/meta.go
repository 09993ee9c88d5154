package handlers

import (
	"net/http"

	"EDMS/internal/models"

	"github.com/gin-gonic/gin"
)

// MetaHandler serves the fixed enumerations every form and filter shares.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// GetOptions returns the reference data for the employee and document forms
// GET /api/v1/meta/options
func (h *MetaHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"document_types":    models.DocumentTypes,
		"senders":           models.Senders,
		"receivers":         models.Receivers,
		"divisions":         models.Divisions,
		"employee_statuses": models.EmployeeStatuses,
		"document_statuses": []string{models.DocStatusActive, models.DocStatusCancelled},
	})
}
