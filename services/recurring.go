package services

import (
	"errors"
	"fmt"

	"consult_flow_app_go/models"

	"gorm.io/gorm"
)

// CreateRecurringAvailability adds a weekly template window for a
// consultant. Templates describe availability but are not bookable; an
// external job expands active templates into dated slots.
func CreateRecurringAvailability(db *gorm.DB, consultantID string, dayOfWeek int, startTime, endTime string) (*models.RecurringAvailability, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}
	start, err := ParseTimeOfDay(startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	end, err := ParseTimeOfDay(endTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if start >= end {
		return nil, ErrInvalidTimeRange
	}

	pattern := &models.RecurringAvailability{
		ConsultantID: consultantID,
		DayOfWeek:    dayOfWeek,
		StartTime:    start,
		EndTime:      end,
		IsActive:     true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Consultant{}, "id = ?", consultantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrConsultantNotFound
			}
			return err
		}
		return tx.Create(pattern).Error
	})
	if err != nil {
		return nil, err
	}
	return pattern, nil
}

// ListConsultantRecurring fetches a consultant's weekly templates, active
// and inactive, ordered by day of week then start time
func ListConsultantRecurring(db *gorm.DB, consultantID string) ([]models.RecurringAvailability, error) {
	if err := db.First(&models.Consultant{}, "id = ?", consultantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultantNotFound
		}
		return nil, err
	}

	var patterns []models.RecurringAvailability
	err := db.Where("consultant_id = ?", consultantID).
		Order("day_of_week, start_time").
		Find(&patterns).Error
	return patterns, err
}

// ListActivePatterns fetches only the active templates for a consultant.
// This is the read surface the slot-materialization job works from; paired
// with CreateAvailability it is all that job needs.
func ListActivePatterns(db *gorm.DB, consultantID string) ([]models.RecurringAvailability, error) {
	var patterns []models.RecurringAvailability
	err := db.Where("consultant_id = ? AND is_active = ?", consultantID, true).
		Order("day_of_week, start_time").
		Find(&patterns).Error
	return patterns, err
}

// DeactivateRecurring turns a template off without deleting it, so history
// stays queryable. Deactivating an already-inactive template is a no-op.
func DeactivateRecurring(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var pattern models.RecurringAvailability
		if err := tx.First(&pattern, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPatternNotFound
			}
			return err
		}
		if !pattern.IsActive {
			return nil
		}
		return tx.Model(&pattern).Update("is_active", false).Error
	})
}
