package model

import (
	"github.com/google/uuid"
)

// ClientModel maps the columns of the 'clients' table this service reads.
// The table itself is owned by the profile service.
type ClientModel struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CoachID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}

// CoachClientModel is a row of the many-to-many 'coach_clients' link table.
type CoachClientModel struct {
	CoachID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (CoachClientModel) TableName() string {
	return "coach_clients"
}
