package model

import (
	"time"

	"github.com/google/uuid"
)

// LeadModel is the GORM-specific struct for the 'leads' table.
type LeadModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID     string    `gorm:"type:text;not null"`
	CustomerMobile string    `gorm:"type:text;not null"`
	CustomerID     string    `gorm:"type:text"`
	CustomerName   string    `gorm:"type:text"`
	OfferID        string    `gorm:"type:text"`
	Type           string    `gorm:"type:text;not null"`
	Distance       *float64  `gorm:"type:double precision"`
	// DedupeKey is a generated column: merchant_id || '_' || customer_mobile || '_' || type.
	DedupeKey   string     `gorm:"type:text;->"`
	Status      string     `gorm:"type:text;not null;default:'pending'"`
	Confirmed   bool       `gorm:"not null;default:false"`
	ConfirmedAt *time.Time `gorm:"type:timestamptz"`
	Notified    bool       `gorm:"not null;default:false"`
	NotifiedAt  *time.Time `gorm:"type:timestamptz"`
	CreatedAt   time.Time  `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "leads"
}
