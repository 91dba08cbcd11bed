package usecase

import (
	"context"

	"geolead/internal/domain/entity"
)

// Delivery is the outcome of a push to one owner.
type Delivery struct {
	Delivered bool
	Err       error
}

// DispatchUsecase sends pushes and cleans up tokens the provider rejects.
type DispatchUsecase interface {
	// Send pushes msg to a single target.
	Send(ctx context.Context, target entity.PushTarget, msg *entity.PushMessage) Delivery

	// SendMulticast pushes msg to every target in provider-sized batches.
	SendMulticast(ctx context.Context, targets []entity.PushTarget, msg *entity.PushMessage) *entity.MulticastResult

	// NotifyMerchant pushes msg to every token of merchant.
	NotifyMerchant(ctx context.Context, merchant *entity.Merchant, msg *entity.PushMessage) Delivery
}
