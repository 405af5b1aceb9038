package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscriptionModel is the GORM-specific struct for the 'push_subscriptions' table.
// (user_id, endpoint) carries a unique index so registration can upsert on it.
type PushSubscriptionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_push_subscriptions_user_endpoint,priority:1"`
	Kind       string    `gorm:"type:varchar(16);not null"`
	Endpoint   string    `gorm:"type:text;not null;uniqueIndex:idx_push_subscriptions_user_endpoint,priority:2"`
	P256dh     string    `gorm:"type:text"`
	Auth       string    `gorm:"type:text"`
	DeviceName string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
