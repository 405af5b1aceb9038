package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertPreference is a user's opt-in switch for scheduled reminders.
type AlertPreference struct {
	UserID    uuid.UUID `json:"user_id"`
	IsEnabled bool      `json:"is_enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
