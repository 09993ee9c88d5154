package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"EDMS/internal/models"
	"EDMS/internal/services"
	"EDMS/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeRecordStore backs the real services with in-memory data so handler
// tests exercise the full request path without a database.
type fakeRecordStore struct {
	mu        sync.Mutex
	employees []models.Employee
	documents []models.Document
}

func (f *fakeRecordStore) Query(table string, filters []store.Filter, order *store.Order, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch table {
	case store.TableEmployees:
		out := make([]models.Employee, 0, len(f.employees))
		for _, emp := range f.employees {
			if filterMatch(filters, "employee_id", emp.EmployeeID) {
				out = append(out, emp)
			}
		}
		*dest.(*[]models.Employee) = out
	case store.TableDocuments:
		out := make([]models.Document, 0, len(f.documents))
		for _, doc := range f.documents {
			if filterMatch(filters, "id", doc.ID) && filterMatch(filters, "employee_id", doc.EmployeeID) {
				out = append(out, doc)
			}
		}
		if order != nil && order.Column == "doc_number" {
			sort.Slice(out, func(i, j int) bool { return out[i].DocNumber < out[j].DocNumber })
		}
		*dest.(*[]models.Document) = out
	default:
		return fmt.Errorf("unknown table %s", table)
	}
	return nil
}

func (f *fakeRecordStore) Insert(table string, row interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

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

func (f *fakeRecordStore) Update(table string, keyColumn string, keyValue interface{}, patch map[string]interface{}) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	switch table {
	case store.TableEmployees:
		for i := range f.employees {
			if f.employees[i].EmployeeID == keyValue {
				if v, ok := patch["name"].(string); ok {
					f.employees[i].Name = v
				}
				if v, ok := patch["division"].(string); ok {
					f.employees[i].Division = v
				}
				if v, ok := patch["status"].(string); ok {
					f.employees[i].Status = v
				}
				count++
			}
		}
	case store.TableDocuments:
		for i := range f.documents {
			if f.documents[i].ID == keyValue {
				if v, ok := patch["doc_type"].(string); ok {
					f.documents[i].DocType = v
				}
				if v, ok := patch["doc_number"].(int); ok {
					f.documents[i].DocNumber = v
				}
				if v, ok := patch["status"].(*string); ok {
					f.documents[i].Status = v
				}
				count++
			}
		}
	}
	return count, nil
}

func (f *fakeRecordStore) Delete(table string, keyColumn string, keyValue interface{}) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

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

func filterMatch(filters []store.Filter, column, value string) bool {
	for _, fl := range filters {
		if fl.Column == column && fl.Value != value {
			return false
		}
	}
	return true
}

// newTestRouter wires real services over the fake store, without the
// statistics recorder.
func newTestRouter(st *fakeRecordStore) *gin.Engine {
	employeeService := services.NewEmployeeService(st)
	documentService := services.NewDocumentService(st)

	employeeHandler := NewEmployeeHandler(employeeService, nil)
	documentHandler := NewDocumentHandler(documentService, employeeService, nil)
	metaHandler := NewMetaHandler()

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		v1.GET("/employees", employeeHandler.GetEmployees)
		v1.POST("/employees", employeeHandler.CreateEmployee)
		v1.GET("/employees/:employeeId", employeeHandler.GetEmployee)
		v1.PUT("/employees/:employeeId", employeeHandler.UpdateEmployee)
		v1.DELETE("/employees/:employeeId", employeeHandler.DeleteEmployee)
		v1.GET("/employees/:employeeId/documents", documentHandler.GetEmployeeDocuments)
		v1.GET("/documents", documentHandler.GetDocuments)
		v1.POST("/documents", documentHandler.CreateDocument)
		v1.GET("/documents/:documentId", documentHandler.GetDocument)
		v1.PUT("/documents/:documentId", documentHandler.UpdateDocument)
		v1.DELETE("/documents/:documentId", documentHandler.DeleteDocument)
		v1.GET("/meta/options", metaHandler.GetOptions)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedEmployee(id, name string) models.Employee {
	return models.Employee{
		EmployeeID: id,
		Name:       name,
		Division:   "Finance",
		Status:     "Active",
	}
}
