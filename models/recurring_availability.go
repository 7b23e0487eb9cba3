package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecurringAvailability represents a consultant's weekly template window.
// It is not bookable itself: an external job expands active templates into
// dated Availability rows.
type RecurringAvailability struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ConsultantID string `gorm:"type:uuid;index;not null" json:"consultant_id"`
	DayOfWeek    int    `gorm:"not null" json:"day_of_week"` // 0=Sunday...6=Saturday
	StartTime    string `gorm:"not null" json:"start_time"`  // "09:00"
	EndTime      string `gorm:"not null" json:"end_time"`    // "17:00"
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`

	// Relationships
	Consultant Consultant `gorm:"foreignKey:ConsultantID" json:"consultant,omitempty"`
}

// BeforeCreate hook to generate UUID
func (r *RecurringAvailability) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for RecurringAvailability model
func (RecurringAvailability) TableName() string {
	return "recurring_availabilities"
}

// DayName returns the name of the day
func (r *RecurringAvailability) DayName() string {
	days := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if r.DayOfWeek >= 0 && r.DayOfWeek < 7 {
		return days[r.DayOfWeek]
	}
	return ""
}
