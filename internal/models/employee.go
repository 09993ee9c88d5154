package models

import "time"

// Employee represents one staff record. The employee_id is supplied by the
// office administrator when the record is created (e.g. "EMP001") and never
// changes afterwards.
type Employee struct {
	EmployeeID string    `gorm:"column:employee_id;primaryKey" json:"employee_id"`
	Name       string    `gorm:"not null" json:"name"`
	Division   string    `gorm:"type:varchar(100)" json:"division"`
	Status     string    `gorm:"type:varchar(20)" json:"status"` // "Active" or "Inactive"
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}
