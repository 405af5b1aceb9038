package model

import (
	"time"

	"github.com/google/uuid"
)

// DispatchRecordModel is the GORM-specific struct for the 'dispatch_records' table.
// Only aggregate counts are stored.
type DispatchRecordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type      string    `gorm:"type:varchar(32);not null;index"`
	RuleCount int       `gorm:"not null"`
	Sent      int       `gorm:"not null"`
	Failed    int       `gorm:"not null"`
	Pruned    int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DispatchRecordModel) TableName() string {
	return "dispatch_records"
}
