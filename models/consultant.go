package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Consultant represents a service provider who publishes bookable time slots
type Consultant struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
}

// BeforeCreate hook to generate UUID
func (c *Consultant) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Consultant model
func (Consultant) TableName() string {
	return "consultants"
}

// FullName returns the consultant's display name
func (c *Consultant) FullName() string {
	return c.FirstName + " " + c.LastName
}
