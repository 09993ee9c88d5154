package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"EDMS/internal/models"
	"EDMS/internal/services"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	service         *services.DocumentService
	employeeService *services.EmployeeService
	stats           *services.StatisticsService
}

func NewDocumentHandler(service *services.DocumentService, employeeService *services.EmployeeService, stats *services.StatisticsService) *DocumentHandler {
	return &DocumentHandler{
		service:         service,
		employeeService: employeeService,
		stats:           stats,
	}
}

// GetDocuments lists all documents newest first, each joined with the owning
// employee's name
// GET /api/v1/documents?search=
func (h *DocumentHandler) GetDocuments(c *gin.Context) {
	search := c.Query("search")

	documents, err := h.service.ListAll(search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get documents: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": documents,
		"count":     len(documents),
	})
}

// GetEmployeeDocuments lists the documents of one employee ordered by
// running number. Zero documents is a normal answer with count 0.
// GET /api/v1/employees/:employeeId/documents
func (h *DocumentHandler) GetEmployeeDocuments(c *gin.Context) {
	employeeID := c.Param("employeeId")

	employee, err := h.employeeService.Get(employeeID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get employee: %v", err)})
		return
	}

	documents, err := h.service.ListByEmployee(employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get documents: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employee":  employee,
		"documents": documents,
		"count":     len(documents),
	})
}

// GetDocument retrieves a single document
// GET /api/v1/documents/:documentId
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id := c.Param("documentId")

	document, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get document: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": document})
}

// CreateDocument files a new document for an employee
// POST /api/v1/documents
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req services.DocumentPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	document, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create document: %v", err)})
		return
	}

	if h.stats != nil {
		h.stats.RecordDocumentEvent(models.EventDocumentCreate, document.EmployeeID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Document created successfully",
		"document": document,
	})
}

// UpdateDocument edits a document's metadata. The owning employee_id never
// changes, whatever the body carries.
// PUT /api/v1/documents/:documentId
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id := c.Param("documentId")

	var req services.DocumentPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	document, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to update document: %v", err)})
		}
		return
	}

	if h.stats != nil {
		h.stats.RecordDocumentEvent(models.EventDocumentUpdate, document.EmployeeID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Document updated successfully",
		"document": document,
	})
}

// DeleteDocument removes a document
// DELETE /api/v1/documents/:documentId
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id := c.Param("documentId")

	document, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get document: %v", err)})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to delete document: %v", err)})
		return
	}

	if h.stats != nil {
		h.stats.RecordDocumentEvent(models.EventDocumentDelete, document.EmployeeID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
