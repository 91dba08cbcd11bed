package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnerKind identifies who owns a push token.
type OwnerKind string

const (
	// OwnerKindMerchant indicates the token belongs to a merchant.
	OwnerKindMerchant OwnerKind = "merchant"
	// OwnerKindCustomer indicates the token belongs to a customer.
	OwnerKindCustomer OwnerKind = "customer"
)

// String returns the string representation of the OwnerKind.
func (o OwnerKind) String() string {
	return string(o)
}

// IsValid checks if the OwnerKind is a valid value.
func (o OwnerKind) IsValid() bool {
	switch o {
	case OwnerKindMerchant, OwnerKindCustomer:
		return true
	default:
		return false
	}
}

// PushTarget is a single token and the record that owns it.
type PushTarget struct {
	Owner   OwnerKind `json:"owner"`
	OwnerID string    `json:"owner_id"`
	Token   string    `json:"token"`
}

// PushNotification is the visible part of a push.
type PushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PushMessage is a push addressed to one token or many.
type PushMessage struct {
	Token        string            `json:"token,omitempty"`
	Tokens       []string          `json:"tokens,omitempty"`
	Notification PushNotification  `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

// ForToken returns a copy of m addressed to token.
func (m *PushMessage) ForToken(token string) *PushMessage {
	return &PushMessage{
		Token:        token,
		Notification: m.Notification,
		Data:         m.Data,
	}
}

// ForTokens returns a copy of m addressed to tokens.
func (m *PushMessage) ForTokens(tokens []string) *PushMessage {
	return &PushMessage{
		Tokens:       tokens,
		Notification: m.Notification,
		Data:         m.Data,
	}
}

// MulticastResult summarises a multi-token send.
type MulticastResult struct {
	SuccessCount  int      `json:"success_count"`
	FailureCount  int      `json:"failure_count"`
	InvalidTokens []string `json:"invalid_tokens"`
}

// UndeliveredNotification is a push that failed for a reason other than a bad token.
type UndeliveredNotification struct {
	ID        uuid.UUID   `json:"id"`         // The record identifier.
	Owner     OwnerKind   `json:"owner"`      // Who the push was for.
	OwnerID   string      `json:"owner_id"`   // Owner identifier.
	Tokens    []string    `json:"tokens"`     // Target tokens.
	Message   PushMessage `json:"message"`    // The push that failed.
	ErrorCode string      `json:"error_code"` // Classified failure code.
	Error     string      `json:"error"`      // Provider error text.
	CreatedAt time.Time   `json:"created_at"` // When the failure was recorded.
}
