package entity

import "time"

// AlertState is the cooldown state of a merchant/customer pair.
type AlertState string

const (
	// AlertStateAbsent means no alert was ever recorded for the pair.
	AlertStateAbsent AlertState = "absent"
	// AlertStateCooling means an alert was sent within the cooldown window.
	AlertStateCooling AlertState = "cooling"
	// AlertStateActive means an alert exists past its cooldown and has not reached retention.
	AlertStateActive AlertState = "active"
	// AlertStateExpired means the alert is old enough to be swept.
	AlertStateExpired AlertState = "expired"
)

// MerchantAlert records the last proximity alert sent to a merchant about a customer.
type MerchantAlert struct {
	MerchantID     string    `json:"merchant_id"`     // The alerted merchant.
	CustomerID     string    `json:"customer_id"`     // The nearby customer.
	LastSent       time.Time `json:"last_sent"`       // When the last alert was sent.
	DistanceMeters float64   `json:"distance_meters"` // Distance at the last alert.
}

// AlertID builds the composite key of an alert.
func AlertID(merchantID, customerID string) string {
	return merchantID + "_" + customerID
}

// ID returns the alert's composite key.
func (a *MerchantAlert) ID() string {
	return AlertID(a.MerchantID, a.CustomerID)
}

// InCooldown reports whether another alert must be suppressed at now.
func (a *MerchantAlert) InCooldown(now time.Time, cooldown time.Duration) bool {
	return now.Sub(a.LastSent) < cooldown
}

// Expired reports whether the alert reached retention at now.
func (a *MerchantAlert) Expired(now time.Time, retention time.Duration) bool {
	return now.Sub(a.LastSent) >= retention
}
