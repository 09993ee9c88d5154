package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"EDMS/internal/models"
	"EDMS/internal/services"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	service *services.EmployeeService
	stats   *services.StatisticsService
}

func NewEmployeeHandler(service *services.EmployeeService, stats *services.StatisticsService) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		stats:   stats,
	}
}

// GetEmployees lists employees, filtered and in display order
// GET /api/v1/employees?search=
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	search := c.Query("search")

	employees, err := h.service.List(search)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get employees: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employees": employees,
		"count":     len(employees),
	})
}

// GetEmployee retrieves a single employee
// GET /api/v1/employees/:employeeId
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	employee, err := h.service.Get(employeeID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to get employee: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee": employee})
}

// CreateEmployee creates a new employee
// POST /api/v1/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req services.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	employee, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create employee: %v", err)})
		}
		return
	}

	if h.stats != nil {
		h.stats.RecordEmployeeEvent(models.EventEmployeeCreate, employee.EmployeeID)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Employee created successfully",
		"employee": employee,
	})
}

// UpdateEmployee edits name/division/status of an employee. The id in the
// path is authoritative; an employee_id inside the body is ignored.
// PUT /api/v1/employees/:employeeId
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	var req services.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	employee, err := h.service.Update(employeeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		case errors.Is(err, services.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to update employee: %v", err)})
		}
		return
	}

	if h.stats != nil {
		h.stats.RecordEmployeeEvent(models.EventEmployeeUpdate, employeeID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Employee updated successfully",
		"employee": employee,
	})
}

// DeleteEmployee removes an employee. Documents of the employee are not
// touched; there is no cascade.
// DELETE /api/v1/employees/:employeeId
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	if err := h.service.Delete(employeeID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to delete employee: %v", err)})
		return
	}

	if h.stats != nil {
		h.stats.RecordEmployeeEvent(models.EventEmployeeDelete, employeeID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
