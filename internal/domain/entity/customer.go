package entity

import "time"

// Customer is an end user who can receive offer and broadcast pushes.
type Customer struct {
	ID                 string    `json:"id"`                   // The customer identifier.
	Mobile             string    `json:"mobile"`               // Mobile number.
	FCMToken           string    `json:"fcm_token"`            // Push token.
	Location           *GeoPoint `json:"location"`             // Last known location.
	SelectedDistanceKm float64   `json:"selected_distance_km"` // Preferred offer radius, zero means default.
	UpdatedAt          time.Time `json:"updated_at"`           // Timestamp of the last modification.
}

// PushTarget returns the customer's push target.
func (c *Customer) PushTarget() PushTarget {
	return PushTarget{Owner: OwnerKindCustomer, OwnerID: c.ID, Token: c.FCMToken}
}

// CustomerLocation is a single location write by a customer.
type CustomerLocation struct {
	CustomerID string    `json:"customer_id"` // Optional customer identifier.
	Mobile     string    `json:"mobile"`      // Mobile number.
	Latitude   *float64  `json:"lat"`         // Latitude in degrees.
	Longitude  *float64  `json:"lng"`         // Longitude in degrees.
	UpdatedAt  time.Time `json:"updated_at"`  // When the location was written.
}

// Complete reports whether the write carries a position and a mobile number.
func (l *CustomerLocation) Complete() bool {
	return l.Latitude != nil && l.Longitude != nil && l.Mobile != ""
}

// Key identifies the customer in alert records, falling back to the mobile number.
func (l *CustomerLocation) Key() string {
	if l.CustomerID != "" {
		return l.CustomerID
	}

	return l.Mobile
}
