package notification

import (
	"context"
	"fmt"

	"geolead/internal/domain/constants"
	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messagingClient is the part of *messaging.Client the service uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return newFirebaseService(client), nil
}

func newFirebaseService(client messagingClient) *firebaseService {
	return &firebaseService{client: client}
}

// SendSingleNotification sends msg to msg.Token. Rejected tokens come back as
// token errors, everything else as a transient delivery error.
func (s *firebaseService) SendSingleNotification(ctx context.Context, msg *entity.PushMessage) error {
	message := &messaging.Message{
		Token:        msg.Token,
		Notification: toNotification(msg),
		Data:         msg.Data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return classifyError(err)
	}

	return nil
}

// SendBatchNotification sends msg to every token in msg.Tokens (max 500 tokens).
func (s *firebaseService) SendBatchNotification(ctx context.Context, msg *entity.PushMessage) (*entity.MulticastResult, error) {
	result := &entity.MulticastResult{}
	if len(msg.Tokens) == 0 {
		return result, nil
	}

	if len(msg.Tokens) > constants.MaxMulticastTokens {
		return nil, domainerrors.ErrInternalError.WithDetails(
			fmt.Sprintf("token count exceeds limit: %d (max %d)", len(msg.Tokens), constants.MaxMulticastTokens))
	}

	message := &messaging.MulticastMessage{
		Tokens:       msg.Tokens,
		Notification: toNotification(msg),
		Data:         msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, domainerrors.ErrPushUnavailable.WrapMessage(err.Error())
	}

	result.SuccessCount = response.SuccessCount
	result.FailureCount = response.FailureCount
	result.InvalidTokens = make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse == nil || sendResponse.Error == nil || idx >= len(msg.Tokens) {
			continue
		}
		if isTokenError(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, msg.Tokens[idx])
		}
	}

	return result, nil
}

func toNotification(msg *entity.PushMessage) *messaging.Notification {
	return &messaging.Notification{
		Title: msg.Notification.Title,
		Body:  msg.Notification.Body,
	}
}

func isTokenError(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}

// classifyError maps an FCM error onto the engine error kinds.
func classifyError(err error) error {
	switch {
	case messaging.IsUnregistered(err):
		return domainerrors.ErrTokenUnregistered.WrapMessage(err.Error())
	case messaging.IsInvalidArgument(err):
		return domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
	default:
		return domainerrors.ErrPushUnavailable.WrapMessage(err.Error())
	}
}
