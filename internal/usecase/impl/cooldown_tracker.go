package impl

import (
	"context"
	"log/slog"
	"time"

	"geolead/config"
	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/repository"
	"geolead/internal/domain/service"

	"github.com/pkg/errors"
)

// CooldownTracker owns the merchant alert records: it decides whether a
// merchant may be alerted about a customer and sweeps expired records.
type CooldownTracker struct {
	logger    *slog.Logger
	alertRepo repository.AlertRepository
	clock     service.Clock
	cooldown  time.Duration
	retention time.Duration
	batchSize int
}

// NewCooldownTracker creates a tracker using the engine windows.
func NewCooldownTracker(logger *slog.Logger, alertRepo repository.AlertRepository, clock service.Clock, cfg *config.EngineConfig) *CooldownTracker {
	if cfg == nil {
		cfg = &config.EngineConfig{}
	}
	cfg.WithDefaults()

	return &CooldownTracker{
		logger:    logger,
		alertRepo: alertRepo,
		clock:     clock,
		cooldown:  cfg.CooldownWindow,
		retention: cfg.AlertRetention,
		batchSize: cfg.RetentionBatchSize,
	}
}

// State reports the cooldown state of a pair.
func (t *CooldownTracker) State(ctx context.Context, merchantID, customerID string) (entity.AlertState, error) {
	alert, err := t.alertRepo.FindAlert(ctx, merchantID, customerID)
	if errors.Is(err, repository.ErrAlertNotFound) {
		return entity.AlertStateAbsent, nil
	}
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "find merchant alert")
	}

	now := t.clock.Now()
	switch {
	case alert.Expired(now, t.retention):
		return entity.AlertStateExpired, nil
	case alert.InCooldown(now, t.cooldown):
		return entity.AlertStateCooling, nil
	default:
		return entity.AlertStateActive, nil
	}
}

// Acquire claims the right to alert merchantID about customerID. It returns
// true at most once per cooldown window for a pair, across every worker, and
// records distanceMeters with the claim. The claim happens before the push so
// two concurrent location writes can never both notify.
func (t *CooldownTracker) Acquire(ctx context.Context, merchantID, customerID string, distanceMeters float64) (bool, error) {
	now := t.clock.Now()
	alert := &entity.MerchantAlert{
		MerchantID:     merchantID,
		CustomerID:     customerID,
		LastSent:       now,
		DistanceMeters: distanceMeters,
	}

	acquired, err := t.alertRepo.ClaimAlert(ctx, alert, now.Add(-t.cooldown))
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "claim merchant alert")
	}

	return acquired, nil
}

// Sweep deletes every alert whose lastSent is at least the retention window
// old, in bounded batches, and returns how many were removed.
func (t *CooldownTracker) Sweep(ctx context.Context) (int64, error) {
	cutoff := t.clock.Now().Add(-t.retention)

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, errors.Wrap(err, "sweep interrupted")
		}

		deleted, err := t.alertRepo.DeleteAlertsSentBefore(ctx, cutoff, t.batchSize)
		if err != nil {
			return total, domainerrors.NewDatabaseExecuteError(err, "delete expired merchant alerts")
		}
		total += deleted

		if deleted < int64(t.batchSize) {
			break
		}
	}

	t.logger.DebugContext(ctx, "Swept expired merchant alerts",
		slog.Int64("deleted", total),
		slog.Time("cutoff", cutoff),
	)

	return total, nil
}
