package models

import "time"

// EventType represents the type of statistical event
type EventType string

const (
	EventEmployeeCreate EventType = "employee_create"
	EventEmployeeUpdate EventType = "employee_update"
	EventEmployeeDelete EventType = "employee_delete"
	EventDocumentCreate EventType = "document_create"
	EventDocumentUpdate EventType = "document_update"
	EventDocumentDelete EventType = "document_delete"
)

// Statistics represents a single statistics record
// Tracks counts per employee per day for detailed analytics
type Statistics struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	EventType  EventType `gorm:"type:varchar(50);not null;index" json:"event_type"`
	EmployeeID string    `gorm:"type:varchar(50);index" json:"employee_id,omitempty"` // Optional: for per-employee stats
	Date       time.Time `gorm:"type:date;not null;index" json:"date"`                // Day-level granularity
	Count      int64     `gorm:"not null;default:0" json:"count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Statistics) TableName() string {
	return "statistics"
}

// StatisticsSummary represents aggregated statistics
type StatisticsSummary struct {
	TotalEmployees   int64 `json:"total_employees"`
	TotalDocuments   int64 `json:"total_documents"`
	EmployeesCreated int64 `json:"employees_created"`
	EmployeesDeleted int64 `json:"employees_deleted"`
	DocumentsCreated int64 `json:"documents_created"`
	DocumentsDeleted int64 `json:"documents_deleted"`
}
