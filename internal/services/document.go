package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"EDMS/internal/models"
	"EDMS/internal/store"

	"github.com/google/uuid"
)

type DocumentService struct {
	store store.RecordStore
}

func NewDocumentService(st store.RecordStore) *DocumentService {
	return &DocumentService{store: st}
}

// DocumentPayload is the editable field set of a document as the form
// submits it. Dates arrive as "YYYY-MM-DD" strings; empty strings become
// NULL at write time. The employee_id is used on create only and is never
// updatable afterwards.
type DocumentPayload struct {
	EmployeeID string `json:"employee_id"`
	DocType    string `json:"doc_type"`
	DocNumber  int    `json:"doc_number"`
	Sender     string `json:"sender"`
	Receiver   string `json:"receiver"`
	DateFilled string `json:"date_filled"`
	DateSent   string `json:"date_sent"`
	Status     string `json:"status"`
}

// normalizedDocument is a payload after validation and after the
// status-relevance rule has been applied.
type normalizedDocument struct {
	docNumber  int
	status     *string
	dateFilled *time.Time
	dateSent   *time.Time
}

// ListAll fetches every document (newest first) and every employee in
// parallel, joins the employee name onto each document, and applies the
// free-text filter.
func (s *DocumentService) ListAll(search string) ([]models.DocumentWithEmployee, error) {
	var (
		documents []models.Document
		employees []models.Employee
		docsErr   error
		empsErr   error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		docsErr = s.store.Query(store.TableDocuments, nil, &store.Order{Column: "created_at", Desc: true}, &documents)
	}()
	go func() {
		defer wg.Done()
		empsErr = s.store.Query(store.TableEmployees, nil, &store.Order{Column: "employee_id"}, &employees)
	}()
	wg.Wait()

	if docsErr != nil {
		return nil, fmt.Errorf("failed to fetch documents: %w", docsErr)
	}
	if empsErr != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", empsErr)
	}

	joined := JoinDocuments(documents, employees)
	return FilterDocuments(joined, search), nil
}

// ListByEmployee fetches the documents of one employee ordered by their
// running number. An employee with no documents yields an empty list, not an
// error.
func (s *DocumentService) ListByEmployee(employeeID string) ([]models.Document, error) {
	var documents []models.Document
	filters := []store.Filter{{Column: "employee_id", Value: employeeID}}
	if err := s.store.Query(store.TableDocuments, filters, &store.Order{Column: "doc_number"}, &documents); err != nil {
		return nil, fmt.Errorf("failed to fetch documents for employee '%s': %w", employeeID, err)
	}
	return documents, nil
}

// Get retrieves one document by id.
func (s *DocumentService) Get(id string) (*models.Document, error) {
	var documents []models.Document
	filters := []store.Filter{{Column: "id", Value: id}}
	if err := s.store.Query(store.TableDocuments, filters, nil, &documents); err != nil {
		return nil, fmt.Errorf("failed to fetch document: %w", err)
	}
	if len(documents) == 0 {
		return nil, fmt.Errorf("document '%s': %w", id, ErrNotFound)
	}
	return &documents[0], nil
}

// Create inserts a new document for an existing employee.
func (s *DocumentService) Create(req *DocumentPayload) (*models.Document, error) {
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee_id is required", ErrInvalidInput)
	}

	// The documents table carries no foreign key constraint, so the link is
	// verified here before the insert.
	var owners []models.Employee
	ownerFilter := []store.Filter{{Column: "employee_id", Value: employeeID}}
	if err := s.store.Query(store.TableEmployees, ownerFilter, nil, &owners); err != nil {
		return nil, fmt.Errorf("failed to verify employee: %w", err)
	}
	if len(owners) == 0 {
		return nil, fmt.Errorf("%w: employee '%s' does not exist", ErrInvalidInput, employeeID)
	}

	normalized, err := normalizeDocument(req)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	document := &models.Document{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		DocType:    req.DocType,
		DocNumber:  normalized.docNumber,
		Sender:     req.Sender,
		Receiver:   req.Receiver,
		DateFilled: normalized.dateFilled,
		DateSent:   normalized.dateSent,
		Status:     normalized.status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Insert(store.TableDocuments, document); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return document, nil
}

// Update edits a document by id, applying the same normalization as Create.
// The owning employee_id is not part of the patch and can never change.
func (s *DocumentService) Update(id string, req *DocumentPayload) (*models.Document, error) {
	normalized, err := normalizeDocument(req)
	if err != nil {
		return nil, err
	}

	patch := map[string]interface{}{
		"doc_type":    req.DocType,
		"doc_number":  normalized.docNumber,
		"sender":      req.Sender,
		"receiver":    req.Receiver,
		"date_filled": normalized.dateFilled,
		"date_sent":   normalized.dateSent,
		"status":      normalized.status,
		"updated_at":  time.Now().UTC(),
	}

	rows, err := s.store.Update(store.TableDocuments, "id", id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("document '%s': %w", id, ErrNotFound)
	}

	return s.Get(id)
}

// Delete removes a document by id.
func (s *DocumentService) Delete(id string) error {
	rows, err := s.store.Delete(store.TableDocuments, "id", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("document '%s': %w", id, ErrNotFound)
	}
	return nil
}

// normalizeDocument validates a payload and applies the status-relevance
// rule: document types that don't carry a running number get doc_number
// forced to 1 and status forced to NULL, whatever the form sent.
func normalizeDocument(req *DocumentPayload) (*normalizedDocument, error) {
	if !models.IsValidDocType(req.DocType) {
		return nil, fmt.Errorf("%w: unknown document type '%s'", ErrInvalidInput, req.DocType)
	}
	if !models.IsValidSender(req.Sender) {
		return nil, fmt.Errorf("%w: unknown sender '%s'", ErrInvalidInput, req.Sender)
	}
	if !models.IsValidReceiver(req.Receiver) {
		return nil, fmt.Errorf("%w: unknown receiver '%s'", ErrInvalidInput, req.Receiver)
	}

	normalized := &normalizedDocument{docNumber: 1}

	if models.NeedsStatus(req.DocType) {
		if req.DocNumber < 1 {
			return nil, fmt.Errorf("%w: doc_number must be at least 1", ErrInvalidInput)
		}
		normalized.docNumber = req.DocNumber

		status := req.Status
		if status == "" {
			status = models.DocStatusActive
		}
		if status != models.DocStatusActive && status != models.DocStatusCancelled {
			return nil, fmt.Errorf("%w: status must be '%s' or '%s'", ErrInvalidInput, models.DocStatusActive, models.DocStatusCancelled)
		}
		normalized.status = &status
	}

	var err error
	if normalized.dateFilled, err = parseDate(req.DateFilled); err != nil {
		return nil, fmt.Errorf("%w: date_filled: %v", ErrInvalidInput, err)
	}
	if normalized.dateSent, err = parseDate(req.DateSent); err != nil {
		return nil, fmt.Errorf("%w: date_sent: %v", ErrInvalidInput, err)
	}

	return normalized, nil
}

// parseDate turns a form date string into a nullable time. Empty strings
// normalize to NULL.
func parseDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date '%s', expected YYYY-MM-DD", value)
}

// JoinDocuments resolves the employee name for every document. A document
// whose employee no longer exists keeps the raw employee_id as its name.
func JoinDocuments(documents []models.Document, employees []models.Employee) []models.DocumentWithEmployee {
	names := make(map[string]string, len(employees))
	for _, emp := range employees {
		names[emp.EmployeeID] = emp.Name
	}

	joined := make([]models.DocumentWithEmployee, 0, len(documents))
	for _, doc := range documents {
		name, ok := names[doc.EmployeeID]
		if !ok {
			name = doc.EmployeeID
		}
		joined = append(joined, models.DocumentWithEmployee{Document: doc, EmployeeName: name})
	}
	return joined
}

// FilterDocuments returns the documents whose employee_id, resolved employee
// name, or doc_type contains the query, case-insensitively. A blank query
// means no filter.
func FilterDocuments(list []models.DocumentWithEmployee, query string) []models.DocumentWithEmployee {
	if strings.TrimSpace(query) == "" {
		return list
	}

	q := strings.ToLower(query)
	filtered := make([]models.DocumentWithEmployee, 0, len(list))
	for _, doc := range list {
		if strings.Contains(strings.ToLower(doc.EmployeeID), q) ||
			strings.Contains(strings.ToLower(doc.EmployeeName), q) ||
			strings.Contains(strings.ToLower(doc.DocType), q) {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}
