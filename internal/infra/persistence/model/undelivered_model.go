package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// UndeliveredNotificationModel is the GORM-specific struct for the 'undelivered_notifications' table.
// It keeps pushes that failed for transient reasons so they can be replayed.
type UndeliveredNotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key"`
	OwnerKind string            `gorm:"type:text;not null"`
	OwnerID   string            `gorm:"type:text"`
	Tokens    pq.StringArray    `gorm:"type:text[];not null"`
	Title     string            `gorm:"type:text;not null"`
	Body      string            `gorm:"type:text;not null"`
	Data      datatypes.JSONMap `gorm:"type:jsonb"`
	ErrorCode string            `gorm:"type:text;not null"`
	Error     string            `gorm:"type:text"`
	CreatedAt time.Time         `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (UndeliveredNotificationModel) TableName() string {
	return "undelivered_notifications"
}
