package entity

import "time"

// MerchantStatus is the moderation state of a merchant.
type MerchantStatus string

const (
	MerchantStatusPending  MerchantStatus = "pending"
	MerchantStatusApproved MerchantStatus = "approved"
	MerchantStatusRejected MerchantStatus = "rejected"
)

// Merchant is a business that receives lead and proximity alerts.
type Merchant struct {
	ID                string          `json:"id"`                 // The merchant identifier.
	Name              string          `json:"name"`               // Display name.
	Status            MerchantStatus  `json:"status"`             // Moderation state.
	Location          *GeoPoint       `json:"location"`           // Optional storefront location.
	FCMToken          string          `json:"fcm_token"`          // Legacy single push token.
	FCMTokens         []string        `json:"fcm_tokens"`         // Push tokens for every signed-in device.
	NotificationPrefs map[string]bool `json:"notification_prefs"` // Per lead type opt-out; missing means enabled.
	UpdatedAt         time.Time       `json:"updated_at"`         // Timestamp of the last modification.
}

// Tokens returns every distinct, non-empty push token of the merchant.
func (m *Merchant) Tokens() []string {
	seen := make(map[string]struct{}, len(m.FCMTokens)+1)
	tokens := make([]string, 0, len(m.FCMTokens)+1)

	for _, token := range append(append([]string(nil), m.FCMTokens...), m.FCMToken) {
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}

	return tokens
}

// HasToken reports whether the merchant can receive pushes.
func (m *Merchant) HasToken() bool {
	return len(m.Tokens()) > 0
}

// IsApproved reports whether the merchant passed moderation.
func (m *Merchant) IsApproved() bool {
	return m.Status == MerchantStatusApproved
}

// AcceptsLeadType reports whether the merchant wants pushes for t.
func (m *Merchant) AcceptsLeadType(t LeadType) bool {
	enabled, ok := m.NotificationPrefs[string(t)]

	return !ok || enabled
}

// PushTargets expands the merchant tokens into push targets.
func (m *Merchant) PushTargets() []PushTarget {
	tokens := m.Tokens()
	targets := make([]PushTarget, 0, len(tokens))
	for _, token := range tokens {
		targets = append(targets, PushTarget{Owner: OwnerKindMerchant, OwnerID: m.ID, Token: token})
	}

	return targets
}
