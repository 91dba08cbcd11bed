package notification

import (
	"context"
	"testing"

	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent      []*messaging.Message
	multicast []*messaging.MulticastMessage
	sendErr   error
	batch     *messaging.BatchResponse
	batchErr  error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)
	if f.sendErr != nil {
		return "", f.sendErr
	}

	return "projects/geolead/messages/1", nil
}

func (f *fakeMessagingClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = append(f.multicast, message)

	return f.batch, f.batchErr
}

func leadPush() *entity.PushMessage {
	return &entity.PushMessage{
		Notification: entity.PushNotification{Title: "New Customer Lead", Body: "Customer redeemed your offer"},
		Data:         map[string]string{"type": "redeem"},
	}
}

func TestFirebaseService_SendSingleNotification(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := newFirebaseService(client)

	err := svc.SendSingleNotification(context.Background(), leadPush().ForToken("tok"))

	require.NoError(t, err)
	require.Len(t, client.sent, 1)
	assert.Equal(t, "tok", client.sent[0].Token)
	assert.Equal(t, "Customer redeemed your offer", client.sent[0].Notification.Body)
	assert.Equal(t, "redeem", client.sent[0].Data["type"])
}

func TestFirebaseService_SendSingleNotification_ProviderFailureIsTransient(t *testing.T) {
	svc := newFirebaseService(&fakeMessagingClient{sendErr: errors.New("503 service unavailable")})

	err := svc.SendSingleNotification(context.Background(), leadPush().ForToken("tok"))

	assert.Equal(t, domainerrors.KindTransientDelivery, domainerrors.KindOf(err))
}

func TestFirebaseService_SendBatchNotification(t *testing.T) {
	client := &fakeMessagingClient{batch: &messaging.BatchResponse{
		SuccessCount: 2,
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "1"},
			{Success: true, MessageID: "2"},
		},
	}}
	svc := newFirebaseService(client)

	result, err := svc.SendBatchNotification(context.Background(), leadPush().ForTokens([]string{"a", "b"}))

	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Empty(t, result.InvalidTokens)
	assert.Equal(t, []string{"a", "b"}, client.multicast[0].Tokens)
}

func TestFirebaseService_SendBatchNotification_TooManyTokens(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := newFirebaseService(client)

	_, err := svc.SendBatchNotification(context.Background(), leadPush().ForTokens(make([]string, 501)))

	require.Error(t, err)
	assert.Empty(t, client.multicast)
}

func TestFirebaseService_SendBatchNotification_NoTokens(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := newFirebaseService(client)

	result, err := svc.SendBatchNotification(context.Background(), leadPush())

	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Empty(t, client.multicast)
}

func TestClassifyError_Unknown(t *testing.T) {
	err := classifyError(errors.New("deadline exceeded"))

	assert.True(t, errors.Is(err, domainerrors.ErrPushUnavailable))
}
