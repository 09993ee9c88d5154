package services

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"EDMS/internal/models"
	"EDMS/internal/store"
)

// employeeIDPattern is the id format the office uses: a letter prefix
// followed by a numeric run, e.g. "EMP001". The numeric run may be absent on
// a few legacy ids.
var employeeIDPattern = regexp.MustCompile(`^[A-Za-z]+[0-9]*$`)

type EmployeeService struct {
	store store.RecordStore
}

func NewEmployeeService(st store.RecordStore) *EmployeeService {
	return &EmployeeService{store: st}
}

// CreateEmployeeRequest contains fields for creating an employee. The
// employee_id is supplied by the administrator, not generated.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Division   string `json:"division"`
	Status     string `json:"status"`
}

// UpdateEmployeeRequest contains the editable fields of an employee. The
// employee_id is deliberately not part of this request: the key can never
// change, even when a tampered payload carries one.
type UpdateEmployeeRequest struct {
	Name     string `json:"name"`
	Division string `json:"division"`
	Status   string `json:"status"`
}

// List fetches the full employee set ordered by employee_id, applies the
// free-text filter, and returns it in display order.
func (s *EmployeeService) List(search string) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.store.Query(store.TableEmployees, nil, &store.Order{Column: "employee_id"}, &employees); err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	filtered := FilterEmployees(employees, search)
	SortEmployees(filtered)
	return filtered, nil
}

// Get retrieves one employee by id.
func (s *EmployeeService) Get(employeeID string) (*models.Employee, error) {
	var employees []models.Employee
	filters := []store.Filter{{Column: "employee_id", Value: employeeID}}
	if err := s.store.Query(store.TableEmployees, filters, nil, &employees); err != nil {
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	if len(employees) == 0 {
		return nil, fmt.Errorf("employee '%s': %w", employeeID, ErrNotFound)
	}
	return &employees[0], nil
}

// Create inserts a new employee record.
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*models.Employee, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee_id is required", ErrInvalidInput)
	}
	if !employeeIDPattern.MatchString(employeeID) {
		return nil, fmt.Errorf("%w: employee_id must be letters followed by digits", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !models.IsValidDivision(req.Division) {
		return nil, fmt.Errorf("%w: unknown division '%s'", ErrInvalidInput, req.Division)
	}
	if !models.IsValidEmployeeStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status '%s'", ErrInvalidInput, req.Status)
	}

	// Check if the id is already taken
	if _, err := s.Get(employeeID); err == nil {
		return nil, fmt.Errorf("employee '%s': %w", employeeID, ErrDuplicate)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	employee := &models.Employee{
		EmployeeID: employeeID,
		Name:       strings.TrimSpace(req.Name),
		Division:   req.Division,
		Status:     req.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Insert(store.TableEmployees, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

// Update edits name/division/status of an existing employee and stamps
// updated_at. The key never changes.
func (s *EmployeeService) Update(employeeID string, req *UpdateEmployeeRequest) (*models.Employee, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !models.IsValidDivision(req.Division) {
		return nil, fmt.Errorf("%w: unknown division '%s'", ErrInvalidInput, req.Division)
	}
	if !models.IsValidEmployeeStatus(req.Status) {
		return nil, fmt.Errorf("%w: unknown status '%s'", ErrInvalidInput, req.Status)
	}

	patch := map[string]interface{}{
		"name":       strings.TrimSpace(req.Name),
		"division":   req.Division,
		"status":     req.Status,
		"updated_at": time.Now().UTC(),
	}

	rows, err := s.store.Update(store.TableEmployees, "employee_id", employeeID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("employee '%s': %w", employeeID, ErrNotFound)
	}

	return s.Get(employeeID)
}

// Delete removes an employee by id. Documents belonging to the employee are
// left in place; there is no cascade.
func (s *EmployeeService) Delete(employeeID string) error {
	rows, err := s.store.Delete(store.TableEmployees, "employee_id", employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("employee '%s': %w", employeeID, ErrNotFound)
	}
	return nil
}

// FilterEmployees returns the employees whose id or name contains the query,
// case-insensitively. A blank query means no filter.
func FilterEmployees(list []models.Employee, query string) []models.Employee {
	if strings.TrimSpace(query) == "" {
		return list
	}

	q := strings.ToLower(query)
	filtered := make([]models.Employee, 0, len(list))
	for _, emp := range list {
		if strings.Contains(strings.ToLower(emp.EmployeeID), q) ||
			strings.Contains(strings.ToLower(emp.Name), q) {
			filtered = append(filtered, emp)
		}
	}
	return filtered
}

// SortEmployees orders the list the way humans read the ids: the leading
// alphabetic run compared case-insensitively, then the numeric run compared
// as an integer, so "EMP2" comes before "EMP10". The sort is stable.
func SortEmployees(list []models.Employee) {
	sort.SliceStable(list, func(i, j int) bool {
		aLetters, aNumber := splitEmployeeID(list[i].EmployeeID)
		bLetters, bNumber := splitEmployeeID(list[j].EmployeeID)
		if aLetters != bLetters {
			return aLetters < bLetters
		}
		return aNumber < bNumber
	})
}

var (
	idLetters = regexp.MustCompile(`[A-Za-z]+`)
	idDigits  = regexp.MustCompile(`[0-9]+`)
)

// splitEmployeeID separates the first alphabetic run and the first numeric
// run of an id. A missing numeric run counts as 0.
func splitEmployeeID(id string) (string, int) {
	letters := strings.ToLower(idLetters.FindString(id))
	number := 0
	if digits := idDigits.FindString(id); digits != "" {
		number, _ = strconv.Atoi(digits)
	}
	return letters, number
}
