package store

import (
	"fmt"

	"gorm.io/gorm"
)

// Table names reachable through the record store. Everything else in the
// database (activity logs, statistics) belongs to supporting services and is
// not part of this boundary.
const (
	TableEmployees = "employees"
	TableDocuments = "documents"
)

// Filter is one equality predicate of a query.
type Filter struct {
	Column string
	Value  interface{}
}

// Order is an optional ordering of a query.
type Order struct {
	Column string
	Desc   bool
}

// RecordStore is the four-operation contract every caller uses to reach the
// employees and documents tables. All operations return errors instead of
// panicking, hold no state between calls, and never batch: a non-nil error is
// authoritative and callers must not assume partial success was rolled back.
type RecordStore interface {
	// Query reads all rows matching the filters into dest (a pointer to a
	// slice of models), optionally ordered.
	Query(table string, filters []Filter, order *Order, dest interface{}) error
	// Insert writes a single new row.
	Insert(table string, row interface{}) error
	// Update patches the row(s) whose keyColumn equals keyValue and reports
	// how many rows were touched.
	Update(table string, keyColumn string, keyValue interface{}, patch map[string]interface{}) (int64, error)
	// Delete removes the row(s) whose keyColumn equals keyValue and reports
	// how many rows were removed. No cascade of any kind.
	Delete(table string, keyColumn string, keyValue interface{}) (int64, error)
}

// Client is the production RecordStore backed by GORM.
type Client struct {
	db *gorm.DB
}

func NewClient(db *gorm.DB) *Client {
	return &Client{db: db}
}

func (c *Client) Query(table string, filters []Filter, order *Order, dest interface{}) error {
	query := c.db.Table(table)
	for _, f := range filters {
		query = query.Where(f.Column+" = ?", f.Value)
	}
	if order != nil {
		direction := "ASC"
		if order.Desc {
			direction = "DESC"
		}
		query = query.Order(order.Column + " " + direction)
	}
	if err := query.Find(dest).Error; err != nil {
		return fmt.Errorf("failed to query %s: %w", table, err)
	}
	return nil
}

func (c *Client) Insert(table string, row interface{}) error {
	if err := c.db.Table(table).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func (c *Client) Update(table string, keyColumn string, keyValue interface{}, patch map[string]interface{}) (int64, error) {
	result := c.db.Table(table).Where(keyColumn+" = ?", keyValue).Updates(patch)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update %s: %w", table, result.Error)
	}
	return result.RowsAffected, nil
}

func (c *Client) Delete(table string, keyColumn string, keyValue interface{}) (int64, error) {
	result := c.db.Table(table).Where(keyColumn+" = ?", keyValue).Delete(nil)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", table, result.Error)
	}
	return result.RowsAffected, nil
}
