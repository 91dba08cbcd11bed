package impl

import (
	"context"
	"log/slog"

	"geolead/internal/usecase"
)

const opRetentionSweep = "alert.retention"

type retentionService struct {
	logger  *slog.Logger
	tracker *CooldownTracker
}

// NewRetentionService creates the alert retention job.
func NewRetentionService(logger *slog.Logger, tracker *CooldownTracker) usecase.RetentionUsecase {
	return &retentionService{
		logger:  logger,
		tracker: tracker,
	}
}

// SweepExpiredAlerts removes every alert that reached retention.
func (s *retentionService) SweepExpiredAlerts(ctx context.Context) usecase.Result {
	deleted, err := s.tracker.Sweep(ctx)
	if err != nil {
		return usecase.Failed(opRetentionSweep, err)
	}

	if deleted == 0 {
		return usecase.Skipped(opRetentionSweep, "no expired alerts")
	}

	s.logger.InfoContext(ctx, "Expired merchant alerts removed", slog.Int64("deleted", deleted))

	return usecase.Done(opRetentionSweep, int(deleted))
}
