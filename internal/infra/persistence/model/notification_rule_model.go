package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationRuleModel is the GORM-specific struct for the 'notification_rules' table.
type NotificationRuleModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	TargetID  *uuid.UUID `gorm:"type:uuid;index"`
	TimeOfDay string     `gorm:"type:varchar(5);not null;index"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Message   string     `gorm:"type:text;not null"`
	URL       string     `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationRuleModel) TableName() string {
	return "notification_rules"
}
