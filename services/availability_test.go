package services

import (
	"testing"

	"consult_flow_app_go/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAvailabilityTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.AutoMigrate(&models.Consultant{}, &models.User{}, &models.Availability{}, &models.RecurringAvailability{}, &models.Booking{})
	return db
}

func createTestConsultant(t *testing.T, db *gorm.DB) *models.Consultant {
	t.Helper()
	consultant, err := CreateConsultant(db, "Ada", "Lovelace")
	if err != nil {
		t.Fatalf("failed to create consultant: %v", err)
	}
	return consultant
}

func TestCreateAvailability(t *testing.T) {
	db := setupAvailabilityTestDB()
	consultant := createTestConsultant(t, db)

	t.Run("Success", func(t *testing.T) {
		slot, err := CreateAvailability(db, consultant.ID, "2024-12-25", "09:00", "10:00")
		assert.NoError(t, err)
		assert.NotEmpty(t, slot.ID)
		assert.False(t, slot.IsBooked)
		assert.Equal(t, "09:00", slot.StartTime)
		assert.Equal(t, "10:00", slot.EndTime)
	})

	t.Run("Canonicalizes clock strings", func(t *testing.T) {
		slot, err := CreateAvailability(db, consultant.ID, "2024-12-26", "9:00", "10:00")
		assert.NoError(t, err)
		assert.Equal(t, "09:00", slot.StartTime)
	})

	t.Run("End before start", func(t *testing.T) {
		_, err := CreateAvailability(db, consultant.ID, "2024-12-27", "12:00", "09:00")
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Zero-length slot", func(t *testing.T) {
		_, err := CreateAvailability(db, consultant.ID, "2024-12-27", "09:00", "09:00")
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("Bad date", func(t *testing.T) {
		_, err := CreateAvailability(db, consultant.ID, "25-12-2024", "09:00", "10:00")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Bad time", func(t *testing.T) {
		_, err := CreateAvailability(db, consultant.ID, "2024-12-27", "morning", "10:00")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Unknown consultant", func(t *testing.T) {
		_, err := CreateAvailability(db, "no-such-consultant", "2024-12-27", "09:00", "10:00")
		assert.ErrorIs(t, err, ErrConsultantNotFound)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateAvailabilityOverlap(t *testing.T) {
	db := setupAvailabilityTestDB()
	consultant := createTestConsultant(t, db)
	other := createTestConsultant(t, db)

	_, err := CreateAvailability(db, consultant.ID, "2024-12-25", "09:00", "11:00")
	assert.NoError(t, err)

	t.Run("Inside existing slot", func(t *testing.T) {
		_, err := CreateAvailability(db, consultant.ID, "2024-12-25", "09:30", "10:30")
		assert.ErrorIs(t, err, ErrSlotOverlap)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Straddles existing start", func(t *testing.T) {
		_, err := CreateAvailability(db, consultant.ID, "2024-12-25", "08:00", "09:30")
		assert.ErrorIs(t, err, ErrSlotOverlap)
	})

	t.Run("Covers existing slot", func(t *testing.T) {
		_, err := CreateAvailability(db, consultant.ID, "2024-12-25", "08:00", "12:00")
		assert.ErrorIs(t, err, ErrSlotOverlap)
	})

	t.Run("Back-to-back is allowed", func(t *testing.T) {
		_, err := CreateAvailability(db, consultant.ID, "2024-12-25", "11:00", "12:00")
		assert.NoError(t, err)

		_, err = CreateAvailability(db, consultant.ID, "2024-12-25", "08:00", "09:00")
		assert.NoError(t, err)
	})

	t.Run("Same window on another date", func(t *testing.T) {
		_, err := CreateAvailability(db, consultant.ID, "2024-12-26", "09:00", "11:00")
		assert.NoError(t, err)
	})

	t.Run("Same window for another consultant", func(t *testing.T) {
		_, err := CreateAvailability(db, other.ID, "2024-12-25", "09:00", "11:00")
		assert.NoError(t, err)
	})
}

func TestListConsultantAvailability(t *testing.T) {
	db := setupAvailabilityTestDB()
	consultant := createTestConsultant(t, db)
	other := createTestConsultant(t, db)

	// Created out of order on purpose
	_, err := CreateAvailability(db, consultant.ID, "2024-12-26", "09:00", "10:00")
	assert.NoError(t, err)
	_, err = CreateAvailability(db, consultant.ID, "2024-12-25", "14:00", "15:00")
	assert.NoError(t, err)
	_, err = CreateAvailability(db, consultant.ID, "2024-12-25", "09:00", "10:00")
	assert.NoError(t, err)
	_, err = CreateAvailability(db, other.ID, "2024-12-25", "09:00", "10:00")
	assert.NoError(t, err)

	slots, err := ListConsultantAvailability(db, consultant.ID)
	assert.NoError(t, err)
	assert.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "14:00", slots[1].StartTime)
	assert.Equal(t, 26, slots[2].Date.Day())

	_, err = ListConsultantAvailability(db, "no-such-consultant")
	assert.ErrorIs(t, err, ErrConsultantNotFound)
}

func TestListDailyAvailability(t *testing.T) {
	db := setupAvailabilityTestDB()
	consultant := createTestConsultant(t, db)
	other := createTestConsultant(t, db)

	_, err := CreateAvailability(db, consultant.ID, "2024-12-25", "09:00", "10:00")
	assert.NoError(t, err)
	_, err = CreateAvailability(db, other.ID, "2024-12-25", "08:00", "09:00")
	assert.NoError(t, err)
	_, err = CreateAvailability(db, consultant.ID, "2024-12-26", "09:00", "10:00")
	assert.NoError(t, err)

	slots, err := ListDailyAvailability(db, "2024-12-25")
	assert.NoError(t, err)
	assert.Len(t, slots, 2)
	// Grouped by consultant, then by start time
	assert.LessOrEqual(t, slots[0].ConsultantID, slots[1].ConsultantID)
	for _, slot := range slots {
		assert.Equal(t, 25, slot.Date.Day())
	}

	_, err = ListDailyAvailability(db, "not-a-date")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListMonthlyAvailability(t *testing.T) {
	db := setupAvailabilityTestDB()
	consultant := createTestConsultant(t, db)

	_, err := CreateAvailability(db, consultant.ID, "2024-12-01", "09:00", "10:00")
	assert.NoError(t, err)
	_, err = CreateAvailability(db, consultant.ID, "2024-12-31", "09:00", "10:00")
	assert.NoError(t, err)
	_, err = CreateAvailability(db, consultant.ID, "2024-11-30", "09:00", "10:00")
	assert.NoError(t, err)
	_, err = CreateAvailability(db, consultant.ID, "2025-01-01", "09:00", "10:00")
	assert.NoError(t, err)

	slots, err := ListMonthlyAvailability(db, 2024, 12)
	assert.NoError(t, err)
	assert.Len(t, slots, 2)

	_, err = ListMonthlyAvailability(db, 2024, 0)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = ListMonthlyAvailability(db, 2024, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestListAvailabilityRange(t *testing.T) {
	db := setupAvailabilityTestDB()
	consultant := createTestConsultant(t, db)

	_, err := CreateAvailability(db, consultant.ID, "2024-12-01", "09:00", "10:00")
	assert.NoError(t, err)
	_, err = CreateAvailability(db, consultant.ID, "2024-12-15", "09:00", "10:00")
	assert.NoError(t, err)
	_, err = CreateAvailability(db, consultant.ID, "2024-12-31", "09:00", "10:00")
	assert.NoError(t, err)

	t.Run("Inclusive bounds", func(t *testing.T) {
		slots, err := ListAvailabilityRange(db, "2024-12-01", "2024-12-31")
		assert.NoError(t, err)
		assert.Len(t, slots, 3)

		slots, err = ListAvailabilityRange(db, "2024-12-02", "2024-12-30")
		assert.NoError(t, err)
		assert.Len(t, slots, 1)
	})

	t.Run("Single day range", func(t *testing.T) {
		slots, err := ListAvailabilityRange(db, "2024-12-15", "2024-12-15")
		assert.NoError(t, err)
		assert.Len(t, slots, 1)
	})

	t.Run("Start after end", func(t *testing.T) {
		_, err := ListAvailabilityRange(db, "2024-12-01", "2024-11-30")
		assert.ErrorIs(t, err, ErrInvalidDateRange)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestDeleteAvailability(t *testing.T) {
	db := setupAvailabilityTestDB()
	consultant := createTestConsultant(t, db)
	user, err := CreateUser(db, "Grace", "Hopper")
	assert.NoError(t, err)

	t.Run("Unbooked slot is removed", func(t *testing.T) {
		slot, err := CreateAvailability(db, consultant.ID, "2024-12-25", "09:00", "10:00")
		assert.NoError(t, err)

		err = DeleteAvailability(db, slot.ID)
		assert.NoError(t, err)

		var count int64
		db.Model(&models.Availability{}).Where("id = ?", slot.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Booked slot is protected", func(t *testing.T) {
		slot, err := CreateAvailability(db, consultant.ID, "2024-12-25", "10:00", "11:00")
		assert.NoError(t, err)
		booking, err := ReserveSlot(db, slot.ID, user.ID)
		assert.NoError(t, err)

		err = DeleteAvailability(db, slot.ID)
		assert.ErrorIs(t, err, ErrSlotBooked)
		assert.ErrorIs(t, err, ErrConflict)

		// Slot and booking both survive
		var slotCount, bookingCount int64
		db.Model(&models.Availability{}).Where("id = ?", slot.ID).Count(&slotCount)
		db.Model(&models.Booking{}).Where("id = ?", booking.ID).Count(&bookingCount)
		assert.Equal(t, int64(1), slotCount)
		assert.Equal(t, int64(1), bookingCount)
	})

	t.Run("Missing slot", func(t *testing.T) {
		err := DeleteAvailability(db, "no-such-slot")
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})
}

func TestAvailabilityOverlapsHelper(t *testing.T) {
	slot := models.Availability{StartTime: "09:00", EndTime: "10:00"}
	assert.True(t, slot.Overlaps("09:30", "10:30"))
	assert.True(t, slot.Overlaps("08:30", "09:30"))
	assert.False(t, slot.Overlaps("10:00", "11:00"))
	assert.False(t, slot.Overlaps("08:00", "09:00"))
}
