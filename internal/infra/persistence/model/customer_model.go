package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID                 string   `gorm:"type:text;primary_key"`
	Mobile             string   `gorm:"type:text;not null"`
	FCMToken           string   `gorm:"column:fcm_token;type:text;not null;default:''"`
	Latitude           *float64 `gorm:"type:decimal(10,8)"`
	Longitude          *float64 `gorm:"type:decimal(11,8)"`
	SelectedDistanceKm float64  `gorm:"type:double precision;not null;default:0"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
