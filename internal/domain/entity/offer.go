package entity

// Offer is a merchant promotion; creating one pushes to nearby customers.
type Offer struct {
	ID          string    `json:"id"`          // The offer identifier.
	MerchantID  string    `json:"merchant_id"` // The publishing merchant.
	Title       string    `json:"title"`       // Offer title.
	Description string    `json:"description"` // Offer description.
	Location    *GeoPoint `json:"location"`    // Where the offer applies.
}
