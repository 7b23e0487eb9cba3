package services

import (
	"errors"

	"consult_flow_app_go/models"

	"gorm.io/gorm"
)

// CreateConsultant registers a new consultant
func CreateConsultant(db *gorm.DB, firstName, lastName string) (*models.Consultant, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrNameRequired
	}

	consultant := &models.Consultant{
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := db.Create(consultant).Error; err != nil {
		return nil, err
	}
	return consultant, nil
}

// GetConsultantByID fetches a single consultant
func GetConsultantByID(db *gorm.DB, id string) (*models.Consultant, error) {
	var consultant models.Consultant
	err := db.First(&consultant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultantNotFound
		}
		return nil, err
	}
	return &consultant, nil
}

// DeleteConsultant removes a consultant and everything that hangs off them.
// The cascade is spelled out step by step instead of relying on database
// cascade rules so the no-orphaned-booking invariant stays auditable:
// bookings go first, then slots, then templates, then the consultant row.
func DeleteConsultant(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var consultant models.Consultant
		if err := tx.First(&consultant, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrConsultantNotFound
			}
			return err
		}

		// Delete bookings attached to this consultant's slots
		if err := tx.Where(
			"availability_id IN (?)",
			tx.Model(&models.Availability{}).Select("id").Where("consultant_id = ?", id),
		).Delete(&models.Booking{}).Error; err != nil {
			return err
		}

		// Delete availability slots
		if err := tx.Where("consultant_id = ?", id).Delete(&models.Availability{}).Error; err != nil {
			return err
		}

		// Delete recurring templates
		if err := tx.Where("consultant_id = ?", id).Delete(&models.RecurringAvailability{}).Error; err != nil {
			return err
		}

		return tx.Delete(&consultant).Error
	})
}
