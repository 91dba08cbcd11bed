package usecase

import "context"

// RetentionUsecase removes merchant alerts that reached retention.
type RetentionUsecase interface {
	SweepExpiredAlerts(ctx context.Context) Result
}
