package repository

import (
	"context"
	"time"

	"geolead/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for alert persistence.
var (
	// ErrAlertNotFound is returned when no alert exists for a pair.
	ErrAlertNotFound = errors.New("merchant alert not found")
)

// AlertRepository defines the interface for merchant alert database operations.
type AlertRepository interface {
	// FindAlert retrieves the alert for a merchant/customer pair.
	FindAlert(ctx context.Context, merchantID, customerID string) (*entity.MerchantAlert, error)

	// ClaimAlert upserts alert if no alert exists or the stored lastSent is at or before cooldownCutoff.
	// It reports whether this caller won the claim.
	ClaimAlert(ctx context.Context, alert *entity.MerchantAlert, cooldownCutoff time.Time) (bool, error)

	// DeleteAlertsSentBefore deletes up to limit alerts with lastSent at or before cutoff.
	DeleteAlertsSentBefore(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}
