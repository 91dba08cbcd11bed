package usecase

import (
	"context"

	"geolead/internal/domain/entity"
)

// BroadcastUsecase sends an admin broadcast to its audience.
type BroadcastUsecase interface {
	SendBroadcast(ctx context.Context, broadcast *entity.Broadcast) Result
}
