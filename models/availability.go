package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability represents a single bookable time slot owned by a consultant
// on a specific date. Once booked it never becomes bookable again through
// this package; freeing a slot is an administrative action.
type Availability struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ConsultantID string    `gorm:"type:uuid;index;not null" json:"consultant_id"`
	Date         time.Time `gorm:"type:date;index;not null" json:"date"`
	StartTime    string    `gorm:"not null" json:"start_time"` // "09:00"
	EndTime      string    `gorm:"not null" json:"end_time"`   // "10:00"
	IsBooked     bool      `gorm:"not null;default:false" json:"is_booked"`

	// Relationships
	Consultant Consultant `gorm:"foreignKey:ConsultantID" json:"consultant,omitempty"`
}

// BeforeCreate hook to generate UUID
func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Availability model
func (Availability) TableName() string {
	return "availabilities"
}

// Overlaps reports whether the slot's time window intersects the given
// half-open interval on the same date. Back-to-back slots do not overlap.
func (a *Availability) Overlaps(startTime, endTime string) bool {
	return a.StartTime < endTime && startTime < a.EndTime
}
