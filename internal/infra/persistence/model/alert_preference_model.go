package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertPreferenceModel is the GORM-specific struct for the 'alert_preferences' table.
// IsEnabled must not carry a column default: GORM omits zero values on insert
// when one exists, so an opt-out would be stored as enabled.
type AlertPreferenceModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsEnabled bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertPreferenceModel) TableName() string {
	return "alert_preferences"
}
