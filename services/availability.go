package services

import (
	"errors"
	"fmt"

	"consult_flow_app_go/models"

	"gorm.io/gorm"
)

// CreateAvailability adds a bookable slot for a consultant. The slot must
// have a well-formed time window and must not overlap any existing slot of
// the same consultant on the same date; back-to-back slots are allowed.
func CreateAvailability(db *gorm.DB, consultantID, dateStr, startTime, endTime string) (*models.Availability, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
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

	slot := &models.Availability{
		ConsultantID: consultantID,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		IsBooked:     false,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Consultant{}, "id = ?", consultantID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrConsultantNotFound
			}
			return err
		}

		// Half-open overlap test: existing.start < new.end AND new.start < existing.end
		var overlapping int64
		err := tx.Model(&models.Availability{}).
			Where("consultant_id = ? AND date = ?", consultantID, date).
			Where("start_time < ? AND end_time > ?", end, start).
			Count(&overlapping).Error
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrSlotOverlap
		}

		return tx.Create(slot).Error
	})
	if err != nil {
		return nil, err
	}
	return slot, nil
}

// ListConsultantAvailability fetches all slots for a consultant, booked or
// not, ordered by date then start time
func ListConsultantAvailability(db *gorm.DB, consultantID string) ([]models.Availability, error) {
	if err := db.First(&models.Consultant{}, "id = ?", consultantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultantNotFound
		}
		return nil, err
	}

	var slots []models.Availability
	err := db.Where("consultant_id = ?", consultantID).
		Order("date, start_time").
		Find(&slots).Error
	return slots, err
}

// ListDailyAvailability fetches all slots across consultants for one
// calendar date, ordered by consultant then start time
func ListDailyAvailability(db *gorm.DB, dateStr string) ([]models.Availability, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var slots []models.Availability
	err = db.Where("date = ?", date).
		Order("consultant_id, start_time").
		Find(&slots).Error
	return slots, err
}

// ListMonthlyAvailability fetches all slots whose date falls within the
// given month
func ListMonthlyAvailability(db *gorm.DB, year, month int) ([]models.Availability, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	first, last := MonthBounds(year, month)
	var slots []models.Availability
	err := db.Where("date >= ? AND date <= ?", first, last).
		Order("date, start_time").
		Find(&slots).Error
	return slots, err
}

// ListAvailabilityRange fetches all slots within an inclusive date range
func ListAvailabilityRange(db *gorm.DB, startDateStr, endDateStr string) ([]models.Availability, error) {
	startDate, err := ParseDate(startDateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	endDate, err := ParseDate(endDateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	var slots []models.Availability
	err = db.Where("date >= ? AND date <= ?", startDate, endDate).
		Order("date, start_time").
		Find(&slots).Error
	return slots, err
}

// DeleteAvailability removes an unbooked slot. Deleting a booked slot would
// orphan its booking, so the check and the delete run in one transaction to
// keep a concurrent reserve from slipping in between.
func DeleteAvailability(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var slot models.Availability
		if err := tx.First(&slot, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		if slot.IsBooked {
			return ErrSlotBooked
		}
		return tx.Delete(&slot).Error
	})
}
