package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking links a user to exactly one availability slot. The unique index
// on AvailabilityID backs the one-booking-per-slot invariant at the schema
// level; the reserve operation enforces it transactionally.
type Booking struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AvailabilityID string `gorm:"type:uuid;uniqueIndex;not null" json:"availability_id"`
	UserID         string `gorm:"type:uuid;index;not null" json:"user_id"`

	// Relationships
	Availability Availability `gorm:"foreignKey:AvailabilityID" json:"availability,omitempty"`
	User         User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// BeforeCreate hook to generate UUID
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Booking model
func (Booking) TableName() string {
	return "bookings"
}
