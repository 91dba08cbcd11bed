package usecase

import (
	"context"

	"geolead/internal/domain/entity"
)

// GeofenceUsecase alerts merchants when a customer comes within range.
type GeofenceUsecase interface {
	HandleLocationWrite(ctx context.Context, location *entity.CustomerLocation) Result
}
