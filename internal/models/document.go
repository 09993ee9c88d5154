package models

import "time"

// Document is the filing metadata for one paper associated with an employee.
// Only metadata is tracked; the physical file stays in the cabinet.
//
// DocNumber and Status are meaningful only for document types whose ordinal
// code falls in [6,10] (see NeedsStatus). For every other type DocNumber is
// persisted as 1 and Status as NULL, whatever the form submitted.
type Document struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	EmployeeID string     `gorm:"column:employee_id;not null;index" json:"employee_id"`
	DocType    string     `gorm:"column:doc_type;not null" json:"doc_type"`
	DocNumber  int        `gorm:"column:doc_number;default:1" json:"doc_number"`
	Sender     string     `json:"sender"`
	Receiver   string     `json:"receiver"`
	DateFilled *time.Time `gorm:"column:date_filled" json:"date_filled"`
	DateSent   *time.Time `gorm:"column:date_sent" json:"date_sent"`
	Status     *string    `gorm:"type:varchar(20)" json:"status"` // "active" / "cancelled", NULL when not relevant
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Document) TableName() string {
	return "documents"
}

// DocumentWithEmployee is a document joined with the owning employee's name
// for the global document table. Name falls back to the raw employee_id when
// the employee record no longer exists.
type DocumentWithEmployee struct {
	Document
	EmployeeName string `json:"employee_name"`
}

// Document status values
const (
	DocStatusActive    = "active"
	DocStatusCancelled = "cancelled"
)
