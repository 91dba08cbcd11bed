package repository

import (
	"context"

	"geolead/internal/domain/entity"
)

// UndeliveredRepository stores pushes that failed for transient reasons.
type UndeliveredRepository interface {
	// CreateUndelivered persists a failed push.
	CreateUndelivered(ctx context.Context, notification *entity.UndeliveredNotification) error
}
