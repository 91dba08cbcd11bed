package usecase

import (
	"context"

	"geolead/internal/domain/entity"
)

// OfferPushUsecase pushes a new offer to customers within their chosen radius.
type OfferPushUsecase interface {
	PushOfferToNearbyCustomers(ctx context.Context, offer *entity.Offer) Result
}
