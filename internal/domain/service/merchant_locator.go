package service

import (
	"context"

	"geolead/internal/domain/entity"
)

// MerchantLocator finds alertable merchants near a point.
//
// Results are candidates; callers filter them with the exact distance.
type MerchantLocator interface {
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*entity.Merchant, error)
}
