package service

import (
	"context"

	"geolead/internal/domain/entity"
)

// NotificationService defines the interface for push notification providers.
//
// Errors are classified: token failures wrap errors.ErrTokenUnregistered or
// errors.ErrTokenInvalid, everything else wraps errors.ErrPushUnavailable.
type NotificationService interface {
	// SendBatchNotification sends msg to every token in msg.Tokens.
	SendBatchNotification(ctx context.Context, msg *entity.PushMessage) (*entity.MulticastResult, error)

	// SendSingleNotification sends msg to msg.Token.
	SendSingleNotification(ctx context.Context, msg *entity.PushMessage) error
}
