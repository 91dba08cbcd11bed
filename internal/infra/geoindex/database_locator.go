package geoindex

import (
	"context"

	"geolead/internal/domain/entity"
	"geolead/internal/domain/geo"
	"geolead/internal/domain/repository"
)

// DatabaseLocator answers every lookup with a bounding-box query.
type DatabaseLocator struct {
	merchantRepo repository.MerchantRepository
}

// NewDatabaseLocator creates a locator backed by the merchant repository.
func NewDatabaseLocator(merchantRepo repository.MerchantRepository) *DatabaseLocator {
	return &DatabaseLocator{merchantRepo: merchantRepo}
}

// FindNearby returns alertable merchants inside the bound around the point.
func (l *DatabaseLocator) FindNearby(ctx context.Context, lat, lng, radiusMeters float64) ([]*entity.Merchant, error) {
	return l.merchantRepo.FindAlertableMerchantsInBound(ctx, geo.BoundAround(lat, lng, radiusMeters))
}
