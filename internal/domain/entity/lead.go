// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeadType is the customer action that produced a lead.
type LeadType string

const (
	// LeadTypeOfferView indicates the customer opened an offer.
	LeadTypeOfferView LeadType = "offer_view"
	// LeadTypeGeoEnter indicates the customer entered the merchant's area.
	LeadTypeGeoEnter LeadType = "geo_enter"
	// LeadTypeRedeem indicates the customer redeemed an offer.
	LeadTypeRedeem LeadType = "redeem"
)

// String returns the string representation of the LeadType.
func (t LeadType) String() string {
	return string(t)
}

// IsValid checks if the LeadType is a known value.
func (t LeadType) IsValid() bool {
	switch t {
	case LeadTypeOfferView, LeadTypeGeoEnter, LeadTypeRedeem:
		return true
	default:
		return false
	}
}

// LeadStatus is the position of a lead in its lifecycle.
type LeadStatus string

const (
	LeadStatusPending   LeadStatus = "pending"
	LeadStatusConfirmed LeadStatus = "confirmed"
	LeadStatusNotified  LeadStatus = "notified"
)

// Discarded leads are deleted, so they have no status of their own.
var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadStatusPending:   {LeadStatusConfirmed},
	LeadStatusConfirmed: {LeadStatusNotified},
}

// CanTransition reports whether a lead may move from s to next.
func (s LeadStatus) CanTransition(next LeadStatus) bool {
	for _, allowed := range leadTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Lead is a record that a customer showed interest in a merchant.
type Lead struct {
	ID             uuid.UUID  `json:"id"`              // The lead identifier.
	MerchantID     string     `json:"merchant_id"`     // The merchant the lead belongs to.
	CustomerMobile string     `json:"customer_mobile"` // The customer's mobile number.
	CustomerID     string     `json:"customer_id"`     // Optional customer identifier.
	CustomerName   string     `json:"customer_name"`   // Optional customer display name.
	OfferID        string     `json:"offer_id"`        // Optional offer the lead refers to.
	Type           LeadType   `json:"type"`            // The action that produced the lead.
	Distance       *float64   `json:"distance"`        // Optional distance in meters (geo_enter).
	Status         LeadStatus `json:"status"`          // Lifecycle status.
	Confirmed      bool       `json:"confirmed"`       // Whether the lead survived deduplication.
	ConfirmedAt    *time.Time `json:"confirmed_at"`    // When the lead was confirmed.
	Notified       bool       `json:"notified"`        // Whether the merchant was notified.
	NotifiedAt     *time.Time `json:"notified_at"`     // When the merchant was notified.
	CreatedAt      time.Time  `json:"created_at"`      // Timestamp of when the lead was written.
}

// DedupeKey builds the duplicate-detection key for a lead triple.
func DedupeKey(merchantID, customerMobile string, leadType LeadType) string {
	return merchantID + "_" + customerMobile + "_" + string(leadType)
}

// DedupeKey returns the lead's duplicate-detection key.
func (l *Lead) DedupeKey() string {
	return DedupeKey(l.MerchantID, l.CustomerMobile, l.Type)
}

// MissingFields lists required fields that are empty.
func (l *Lead) MissingFields() []string {
	var missing []string
	if l.MerchantID == "" {
		missing = append(missing, "merchantId")
	}
	if l.CustomerMobile == "" {
		missing = append(missing, "customerMobile")
	}
	if l.Type == "" {
		missing = append(missing, "type")
	}

	return missing
}

// IsValid reports whether the lead has every required field and a known type.
func (l *Lead) IsValid() bool {
	return len(l.MissingFields()) == 0 && l.Type.IsValid()
}

// Precedes reports whether l was created before other. Equal timestamps fall
// back to the lower id so every handler agrees on one order.
func (l *Lead) Precedes(other *Lead) bool {
	if !l.CreatedAt.Equal(other.CreatedAt) {
		return l.CreatedAt.Before(other.CreatedAt)
	}

	return l.ID.String() < other.ID.String()
}

// Snapshot returns the confirmed/notified pair used by update events.
func (l *Lead) Snapshot() LeadSnapshot {
	return LeadSnapshot{Confirmed: l.Confirmed, Notified: l.Notified}
}

// LeadSnapshot is the part of a lead that drives notification.
type LeadSnapshot struct {
	Confirmed bool `json:"confirmed"`
	Notified  bool `json:"notified"`
}
