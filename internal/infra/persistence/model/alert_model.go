package model

import "time"

// MerchantAlertModel is the GORM-specific struct for the 'merchant_alerts' table.
// ID is "{merchantId}_{customerId}".
type MerchantAlertModel struct {
	ID             string    `gorm:"type:text;primary_key"`
	MerchantID     string    `gorm:"type:text;not null"`
	CustomerID     string    `gorm:"type:text;not null"`
	LastSent       time.Time `gorm:"type:timestamptz;not null;index"`
	DistanceMeters float64   `gorm:"type:double precision;not null"`
}

// TableName explicitly sets the table name for GORM.
func (MerchantAlertModel) TableName() string {
	return "merchant_alerts"
}
