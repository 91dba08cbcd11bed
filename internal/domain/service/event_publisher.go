package service

import (
	"context"
	"encoding/json"
	"time"

	"geolead/internal/domain/entity"
)

// EventType names a store mutation the engine reacts to.
type EventType string

const (
	EventLeadCreated      EventType = "lead.created"
	EventLeadUpdated      EventType = "lead.updated"
	EventLocationWritten  EventType = "customer_location.written"
	EventOfferCreated     EventType = "offer.created"
	EventBroadcastCreated EventType = "broadcast.created"
)

// Event is the envelope carried by Pub/Sub and pg_notify
type Event struct {
	ID         string          `json:"id" validate:"required"`
	Type       EventType       `json:"type" validate:"required"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload" validate:"required"`
}

// NewEvent marshals payload into an event envelope.
func NewEvent(id string, eventType EventType, payload any, occurredAt time.Time) (*Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:         id,
		Type:       eventType,
		OccurredAt: occurredAt,
		Payload:    raw,
	}, nil
}

// LeadCreatedPayload is the payload of lead.created
type LeadCreatedPayload struct {
	LeadID string `json:"leadId" validate:"required,uuid"`
}

// LeadUpdatedPayload is the payload of lead.updated
type LeadUpdatedPayload struct {
	LeadID string               `json:"leadId" validate:"required,uuid"`
	Before *entity.LeadSnapshot `json:"before"`
	After  entity.LeadSnapshot  `json:"after"`
}

// LocationWrittenPayload is the payload of customer_location.written
type LocationWrittenPayload struct {
	CustomerID string    `json:"customerId"`
	Mobile     string    `json:"mobile" validate:"required"`
	Latitude   *float64  `json:"lat" validate:"required,latitude"`
	Longitude  *float64  `json:"lng" validate:"required,longitude"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OfferCreatedPayload is the payload of offer.created
type OfferCreatedPayload struct {
	ID          string   `json:"id" validate:"required"`
	MerchantID  string   `json:"merchantId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"lat" validate:"required,latitude"`
	Longitude   *float64 `json:"lng" validate:"required,longitude"`
}

// BroadcastCreatedPayload is the payload of broadcast.created
type BroadcastCreatedPayload struct {
	ID     string `json:"id" validate:"required"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Target string `json:"target" validate:"omitempty,oneof=customer merchant all"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish publishes an event for async processing
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}

// DeliveryState is what the deduplicator knows about an event id.
type DeliveryState string

const (
	// DeliveryNew means the caller now holds the processing lease.
	DeliveryNew DeliveryState = "new"
	// DeliveryInProgress means another delivery holds an unexpired lease.
	DeliveryInProgress DeliveryState = "in_progress"
	// DeliveryDone means the event was already handled.
	DeliveryDone DeliveryState = "done"
)

// EventDeduplicator drops redelivered events. A delivery first takes a short
// lease on the event id and marks it done only once it finished, so a delivery
// that dies halfway is picked up again after the lease expires.
type EventDeduplicator interface {
	// Begin takes the processing lease for eventID unless one is held or the event is done.
	Begin(ctx context.Context, eventID string) (DeliveryState, error)

	// Complete marks eventID as handled.
	Complete(ctx context.Context, eventID string) error

	// Forget removes eventID so a later redelivery is processed again.
	Forget(ctx context.Context, eventID string) error
}
