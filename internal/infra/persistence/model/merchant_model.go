package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// MerchantModel is the GORM-specific struct for the 'merchants' table.
// Only the columns the engine reads or cleans up are mapped.
type MerchantModel struct {
	ID                string                              `gorm:"type:text;primary_key"`
	Name              string                              `gorm:"type:text"`
	Status            string                              `gorm:"type:text;not null;default:'pending'"`
	Latitude          *float64                            `gorm:"type:decimal(10,8)"`
	Longitude         *float64                            `gorm:"type:decimal(11,8)"`
	FCMToken          string                              `gorm:"column:fcm_token;type:text;not null;default:''"`
	FCMTokens         pq.StringArray                      `gorm:"column:fcm_tokens;type:text[];not null;default:'{}'"`
	NotificationPrefs datatypes.JSONType[map[string]bool] `gorm:"type:jsonb"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}
