// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"geolead/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for lead persistence.
var (
	// ErrLeadNotFound is returned when a lead is not found.
	ErrLeadNotFound = errors.New("lead not found")
)

// LeadRepository defines the interface for lead-related database operations.
type LeadRepository interface {
	// FindLeadByID retrieves a lead by its unique ID.
	FindLeadByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// FindLeadsByDedupeKey retrieves leads sharing a dedupe key created strictly inside (from, to).
	FindLeadsByDedupeKey(ctx context.Context, dedupeKey string, from, to time.Time) ([]*entity.Lead, error)

	// LockDedupeKey serialises deduplication for a key until the surrounding transaction ends.
	LockDedupeKey(ctx context.Context, dedupeKey string) error

	// ConfirmLead moves a pending lead to confirmed. It reports false when the lead was not pending.
	ConfirmLead(ctx context.Context, id uuid.UUID, confirmedAt time.Time) (bool, error)

	// MarkLeadNotified moves a confirmed, unnotified lead to notified. It reports false when another worker already did.
	MarkLeadNotified(ctx context.Context, id uuid.UUID, notifiedAt time.Time) (bool, error)

	// DeleteLead removes a lead. Deleting a missing lead is not an error.
	DeleteLead(ctx context.Context, id uuid.UUID) error
}
