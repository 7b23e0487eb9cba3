package services

import (
	"errors"

	"consult_flow_app_go/models"

	"gorm.io/gorm"
)

// CreateUser registers a new user
func CreateUser(db *gorm.DB, firstName, lastName string) (*models.User, error) {
	if firstName == "" || lastName == "" {
		return nil, ErrNameRequired
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID fetches a single user
func GetUserByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user. A user who still holds bookings cannot be
// deleted: bookings reference the user and dropping them here would silently
// rewrite booking history, so callers must release the bookings first
// through whatever administrative path owns that decision.
func DeleteUser(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var bookings int64
		if err := tx.Model(&models.Booking{}).Where("user_id = ?", id).Count(&bookings).Error; err != nil {
			return err
		}
		if bookings > 0 {
			return ErrUserHasBookings
		}

		return tx.Delete(&user).Error
	})
}
