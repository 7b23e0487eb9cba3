package services

import (
	"errors"
	"strings"

	"consult_flow_app_go/models"

	"gorm.io/gorm"
)

// ReserveSlot books an open availability slot for a user. The check and the
// flip of is_booked are one conditional UPDATE, so under concurrent calls on
// the same slot exactly one reservation wins; the booking row is written in
// the same transaction, which keeps "booking exists iff slot is booked" true
// on every exit path.
func ReserveSlot(db *gorm.DB, availabilityID, userID string) (*models.Booking, error) {
	// The user check can run outside the critical section: users are never
	// deleted while they hold bookings, and a user deleted between this
	// check and the insert simply fails the insert.
	if _, err := GetUserByID(db, userID); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		AvailabilityID: availabilityID,
		UserID:         userID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Availability{}).
			Where("id = ? AND is_booked = ?", availabilityID, false).
			Update("is_booked", true)
		if result.Error != nil {
			if isLockContention(result.Error) {
				return ErrReserveContended
			}
			return result.Error
		}

		if result.RowsAffected == 0 {
			// Nothing flipped: the slot is gone or someone beat us to it
			var slot models.Availability
			if err := tx.First(&slot, "id = ?", availabilityID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrSlotNotFound
				}
				return err
			}
			return ErrSlotAlreadyBooked
		}

		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// GetBookingByID fetches a single booking with its slot and user loaded
func GetBookingByID(db *gorm.DB, id string) (*models.Booking, error) {
	var booking models.Booking
	err := db.Preload("Availability").Preload("User").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// ListUserBookings fetches a user's bookings, newest first
func ListUserBookings(db *gorm.DB, userID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := db.Preload("Availability").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}

// isLockContention reports whether an error is SQLite giving up on the
// writer lock after the busy timeout. Callers may retry these.
func isLockContention(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "database table is locked")
}
