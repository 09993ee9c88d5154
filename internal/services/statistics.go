package services

import (
	"fmt"
	"time"

	"EDMS/internal"
	"EDMS/internal/models"

	"github.com/google/uuid"
)

type StatisticsService struct{}

func NewStatisticsService() *StatisticsService {
	return &StatisticsService{}
}

// IncrementStat increments the count for a specific event type and optional employee
// It uses upsert logic to either create a new record or increment existing one
func (s *StatisticsService) IncrementStat(eventType models.EventType, employeeID string) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var stat models.Statistics
	query := internal.DB.Where("event_type = ? AND date = ?", eventType, today)

	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	} else {
		query = query.Where("employee_id IS NULL OR employee_id = ''")
	}

	result := query.First(&stat)

	if result.Error != nil {
		// Record doesn't exist, create new one
		stat = models.Statistics{
			ID:         uuid.New().String(),
			EventType:  eventType,
			EmployeeID: employeeID,
			Date:       today,
			Count:      1,
		}
		if err := internal.DB.Create(&stat).Error; err != nil {
			// Handle race condition - another request might have created it
			return s.incrementExisting(eventType, employeeID, today)
		}
		return nil
	}

	return internal.DB.Model(&stat).UpdateColumn("count", stat.Count+1).Error
}

// incrementExisting handles the case where a record was created by another request
func (s *StatisticsService) incrementExisting(eventType models.EventType, employeeID string, date time.Time) error {
	query := internal.DB.Model(&models.Statistics{}).
		Where("event_type = ? AND date = ?", eventType, date)

	if employeeID != "" {
		query = query.Where("employee_id = ?", employeeID)
	} else {
		query = query.Where("employee_id IS NULL OR employee_id = ''")
	}

	return query.UpdateColumn("count", internal.DB.Raw("count + 1")).Error
}

// RecordEmployeeEvent records an employee mutation (create/update/delete).
func (s *StatisticsService) RecordEmployeeEvent(eventType models.EventType, employeeID string) {
	if err := s.IncrementStat(eventType, ""); err != nil {
		fmt.Printf("Warning: failed to record global %s stat: %v\n", eventType, err)
	}
	if employeeID != "" {
		if err := s.IncrementStat(eventType, employeeID); err != nil {
			fmt.Printf("Warning: failed to record %s stat for %s: %v\n", eventType, employeeID, err)
		}
	}
}

// RecordDocumentEvent records a document mutation scoped to the owning employee.
func (s *StatisticsService) RecordDocumentEvent(eventType models.EventType, employeeID string) {
	s.RecordEmployeeEvent(eventType, employeeID)
}

// GetSummary returns current table sizes plus total mutation counts.
func (s *StatisticsService) GetSummary() (*models.StatisticsSummary, error) {
	summary := &models.StatisticsSummary{}

	if err := internal.DB.Model(&models.Employee{}).Count(&summary.TotalEmployees).Error; err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	if err := internal.DB.Model(&models.Document{}).Count(&summary.TotalDocuments).Error; err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	totals := map[models.EventType]*int64{
		models.EventEmployeeCreate: &summary.EmployeesCreated,
		models.EventEmployeeDelete: &summary.EmployeesDeleted,
		models.EventDocumentCreate: &summary.DocumentsCreated,
		models.EventDocumentDelete: &summary.DocumentsDeleted,
	}

	for eventType, dest := range totals {
		var total int64
		if err := internal.DB.Model(&models.Statistics{}).
			Where("event_type = ? AND (employee_id IS NULL OR employee_id = '')", eventType).
			Select("COALESCE(SUM(count), 0)").
			Scan(&total).Error; err != nil {
			return nil, fmt.Errorf("failed to sum %s stats: %w", eventType, err)
		}
		*dest = total
	}

	return summary, nil
}

// GetEmployeeStats returns per-employee mutation counts for one employee.
func (s *StatisticsService) GetEmployeeStats(employeeID string) (map[string]int64, error) {
	type row struct {
		EventType string
		Total     int64
	}

	var rows []row
	if err := internal.DB.Model(&models.Statistics{}).
		Select("event_type, COALESCE(SUM(count), 0) AS total").
		Where("employee_id = ?", employeeID).
		Group("event_type").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to sum stats for %s: %w", employeeID, err)
	}

	stats := make(map[string]int64, len(rows))
	for _, r := range rows {
		stats[r.EventType] = r.Total
	}
	return stats, nil
}
