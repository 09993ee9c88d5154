package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"EDMS/internal/models"
	"EDMS/internal/store"
)

// fakeStore is an in-memory RecordStore for service tests. It understands the
// two tables and the filter/order columns the services actually use.
type fakeStore struct {
	mu        sync.Mutex
	employees []models.Employee
	documents []models.Document

	queryErr  error
	insertErr error
	updateErr error
	deleteErr error

	lastPatch map[string]interface{}
}

func (f *fakeStore) Query(table string, filters []store.Filter, order *store.Order, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queryErr != nil {
		return f.queryErr
	}

	switch table {
	case store.TableEmployees:
		out := make([]models.Employee, 0, len(f.employees))
		for _, emp := range f.employees {
			if matchEmployee(emp, filters) {
				out = append(out, emp)
			}
		}
		if order != nil && order.Column == "employee_id" {
			sort.Slice(out, func(i, j int) bool { return out[i].EmployeeID < out[j].EmployeeID })
		}
		*dest.(*[]models.Employee) = out
	case store.TableDocuments:
		out := make([]models.Document, 0, len(f.documents))
		for _, doc := range f.documents {
			if matchDocument(doc, filters) {
				out = append(out, doc)
			}
		}
		if order != nil {
			switch order.Column {
			case "created_at":
				sort.Slice(out, func(i, j int) bool {
					if order.Desc {
						return out[i].CreatedAt.After(out[j].CreatedAt)
					}
					return out[i].CreatedAt.Before(out[j].CreatedAt)
				})
			case "doc_number":
				sort.Slice(out, func(i, j int) bool { return out[i].DocNumber < out[j].DocNumber })
			}
		}
		*dest.(*[]models.Document) = out
	default:
		return fmt.Errorf("unknown table %s", table)
	}
	return nil
}

func (f *fakeStore) Insert(table string, row interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.insertErr != nil {
		return f.insertErr
	}

	switch r := row.(type) {
	case *models.Employee:
		f.employees = append(f.employees, *r)
	case *models.Document:
		f.documents = append(f.documents, *r)
	default:
		return fmt.Errorf("unknown row type %T", row)
	}
	return nil
}

func (f *fakeStore) Update(table string, keyColumn string, keyValue interface{}, patch map[string]interface{}) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return 0, f.updateErr
	}
	f.lastPatch = patch

	var count int64
	switch table {
	case store.TableEmployees:
		for i := range f.employees {
			if f.employees[i].EmployeeID == keyValue {
				applyEmployeePatch(&f.employees[i], patch)
				count++
			}
		}
	case store.TableDocuments:
		for i := range f.documents {
			if f.documents[i].ID == keyValue {
				applyDocumentPatch(&f.documents[i], patch)
				count++
			}
		}
	}
	return count, nil
}

func (f *fakeStore) Delete(table string, keyColumn string, keyValue interface{}) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return 0, f.deleteErr
	}

	var count int64
	switch table {
	case store.TableEmployees:
		kept := f.employees[:0]
		for _, emp := range f.employees {
			if emp.EmployeeID == keyValue {
				count++
				continue
			}
			kept = append(kept, emp)
		}
		f.employees = kept
	case store.TableDocuments:
		kept := f.documents[:0]
		for _, doc := range f.documents {
			if doc.ID == keyValue {
				count++
				continue
			}
			kept = append(kept, doc)
		}
		f.documents = kept
	}
	return count, nil
}

func matchEmployee(emp models.Employee, filters []store.Filter) bool {
	for _, fl := range filters {
		if fl.Column == "employee_id" && emp.EmployeeID != fl.Value {
			return false
		}
	}
	return true
}

func matchDocument(doc models.Document, filters []store.Filter) bool {
	for _, fl := range filters {
		switch fl.Column {
		case "id":
			if doc.ID != fl.Value {
				return false
			}
		case "employee_id":
			if doc.EmployeeID != fl.Value {
				return false
			}
		}
	}
	return true
}

func applyEmployeePatch(emp *models.Employee, patch map[string]interface{}) {
	if v, ok := patch["name"].(string); ok {
		emp.Name = v
	}
	if v, ok := patch["division"].(string); ok {
		emp.Division = v
	}
	if v, ok := patch["status"].(string); ok {
		emp.Status = v
	}
}

func applyDocumentPatch(doc *models.Document, patch map[string]interface{}) {
	if v, ok := patch["doc_type"].(string); ok {
		doc.DocType = v
	}
	if v, ok := patch["doc_number"].(int); ok {
		doc.DocNumber = v
	}
	if v, ok := patch["sender"].(string); ok {
		doc.Sender = v
	}
	if v, ok := patch["receiver"].(string); ok {
		doc.Receiver = v
	}
	if v, ok := patch["status"].(*string); ok {
		doc.Status = v
	}
	if v, ok := patch["date_filled"].(*time.Time); ok {
		doc.DateFilled = v
	}
	if v, ok := patch["date_sent"].(*time.Time); ok {
		doc.DateSent = v
	}
}
