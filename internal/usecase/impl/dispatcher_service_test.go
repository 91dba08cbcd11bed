package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"geolead/config"
	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	mockRepo "geolead/internal/mocks/repository"
	mockSvc "geolead/internal/mocks/service"
	mockUsecase "geolead/internal/mocks/usecase"
	"geolead/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherFixtures struct {
	service      usecase.DispatchUsecase
	pushSvc      *mockSvc.MockNotificationService
	merchantRepo *mockRepo.MockMerchantRepository
	customerRepo *mockRepo.MockCustomerRepository
	supervisor   *mockUsecase.MockSupervisor
}

func createTestDispatcherService(t *testing.T) dispatcherFixtures {
	pushSvc := mockSvc.NewMockNotificationService(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	supervisor := mockUsecase.NewMockSupervisor(t)

	svc := NewDispatcherService(
		newDiscardLogger(),
		pushSvc,
		merchantRepo,
		customerRepo,
		supervisor,
		newFakeClock(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		&config.PushConfig{},
	)

	return dispatcherFixtures{
		service:      svc,
		pushSvc:      pushSvc,
		merchantRepo: merchantRepo,
		customerRepo: customerRepo,
		supervisor:   supervisor,
	}
}

func testMessage() *entity.PushMessage {
	return &entity.PushMessage{
		Notification: entity.PushNotification{Title: "New Customer Lead", Body: "Customer viewed your offer"},
		Data:         map[string]string{"merchantId": "m1"},
	}
}

func TestDispatcherService_Send_Success(t *testing.T) {
	fx := createTestDispatcherService(t)
	ctx := context.Background()
	target := entity.PushTarget{Owner: entity.OwnerKindMerchant, OwnerID: "m1", Token: "tok"}

	fx.pushSvc.EXPECT().
		SendSingleNotification(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool {
			return msg.Token == "tok" && msg.Notification.Body == "Customer viewed your offer"
		})).
		Return(nil)

	delivery := fx.service.Send(ctx, target, testMessage())

	assert.True(t, delivery.Delivered)
	assert.NoError(t, delivery.Err)
}

func TestDispatcherService_Send_UnregisteredTokenIsRemoved(t *testing.T) {
	fx := createTestDispatcherService(t)
	ctx := context.Background()
	target := entity.PushTarget{Owner: entity.OwnerKindMerchant, OwnerID: "m1", Token: "stale"}

	fx.pushSvc.EXPECT().SendSingleNotification(ctx, mock.Anything).Return(domainerrors.ErrTokenUnregistered.WrapMessage("send"))
	fx.merchantRepo.EXPECT().RemoveMerchantToken(ctx, "m1", "stale").Return(nil)
	fx.supervisor.EXPECT().
		Resolve(ctx, mock.MatchedBy(func(r usecase.Result) bool { return r.Undelivered == nil })).
		Return(usecase.VerdictAck)

	delivery := fx.service.Send(ctx, target, testMessage())

	assert.False(t, delivery.Delivered)
	assert.Equal(t, domainerrors.KindTokenInvalid, domainerrors.KindOf(delivery.Err))
}

func TestDispatcherService_Send_InvalidCustomerTokenIsCleared(t *testing.T) {
	fx := createTestDispatcherService(t)
	ctx := context.Background()
	target := entity.PushTarget{Owner: entity.OwnerKindCustomer, OwnerID: "c1", Token: "bad"}

	fx.pushSvc.EXPECT().SendSingleNotification(ctx, mock.Anything).Return(domainerrors.ErrTokenInvalid.WrapMessage("send"))
	fx.customerRepo.EXPECT().ClearCustomerToken(ctx, "c1", "bad").Return(nil)
	fx.supervisor.EXPECT().Resolve(ctx, mock.Anything).Return(usecase.VerdictAck)

	delivery := fx.service.Send(ctx, target, testMessage())

	assert.False(t, delivery.Delivered)
}

func TestDispatcherService_Send_TransientFailureIsDeadLettered(t *testing.T) {
	fx := createTestDispatcherService(t)
	ctx := context.Background()
	target := entity.PushTarget{Owner: entity.OwnerKindMerchant, OwnerID: "m1", Token: "tok"}

	fx.pushSvc.EXPECT().SendSingleNotification(ctx, mock.Anything).Return(domainerrors.ErrPushUnavailable.WrapMessage("503"))
	fx.supervisor.EXPECT().
		Resolve(ctx, mock.MatchedBy(func(r usecase.Result) bool {
			return r.Undelivered != nil &&
				r.Undelivered.OwnerID == "m1" &&
				r.Undelivered.ErrorCode == "PUSH_UNAVAILABLE" &&
				assert.ObjectsAreEqual([]string{"tok"}, r.Undelivered.Tokens)
		})).
		Return(usecase.VerdictDeadLetter)

	delivery := fx.service.Send(ctx, target, testMessage())

	assert.False(t, delivery.Delivered)
	assert.Equal(t, domainerrors.KindTransientDelivery, domainerrors.KindOf(delivery.Err))
}

func TestDispatcherService_SendMulticast_BatchesAndCleansInvalidTokens(t *testing.T) {
	fx := createTestDispatcherService(t)
	ctx := context.Background()

	targets := make([]entity.PushTarget, 0, 1001)
	for i := 0; i < 1001; i++ {
		targets = append(targets, entity.PushTarget{Owner: entity.OwnerKindCustomer, OwnerID: fmt.Sprintf("c%d", i), Token: fmt.Sprintf("t%d", i)})
	}

	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool { return len(msg.Tokens) == 500 })).
		Return(&entity.MulticastResult{SuccessCount: 500}, nil).
		Once()
	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool { return len(msg.Tokens) == 500 })).
		Return(&entity.MulticastResult{SuccessCount: 499, FailureCount: 1, InvalidTokens: []string{"t999"}}, nil).
		Once()
	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool { return len(msg.Tokens) == 1 })).
		Return(&entity.MulticastResult{SuccessCount: 1}, nil).
		Once()
	fx.customerRepo.EXPECT().ClearCustomerToken(ctx, "c999", "t999").Return(nil)

	result := fx.service.SendMulticast(ctx, targets, testMessage())

	assert.Equal(t, 1000, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)
	assert.Equal(t, []string{"t999"}, result.InvalidTokens)
}

func TestDispatcherService_NotifyMerchant_MultipleTokensUseMulticast(t *testing.T) {
	fx := createTestDispatcherService(t)
	ctx := context.Background()
	merchant := &entity.Merchant{ID: "m1", FCMToken: "legacy", FCMTokens: []string{"phone", "tablet"}}

	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(msg *entity.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"phone", "tablet", "legacy"}, msg.Tokens)
		})).
		Return(&entity.MulticastResult{SuccessCount: 2, FailureCount: 1, InvalidTokens: []string{"tablet"}}, nil)
	fx.merchantRepo.EXPECT().RemoveMerchantToken(ctx, "m1", "tablet").Return(nil)

	delivery := fx.service.NotifyMerchant(ctx, merchant, testMessage())

	assert.True(t, delivery.Delivered)
}

func TestDispatcherService_NotifyMerchant_NoToken(t *testing.T) {
	fx := createTestDispatcherService(t)

	delivery := fx.service.NotifyMerchant(context.Background(), &entity.Merchant{ID: "m1"}, testMessage())

	assert.False(t, delivery.Delivered)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(delivery.Err))
}

func TestDispatcherService_PushDisabled(t *testing.T) {
	svc := NewDispatcherService(newDiscardLogger(), nil, nil, nil, nil, newFakeClock(time.Now()), nil)

	delivery := svc.Send(context.Background(), entity.PushTarget{Token: "tok"}, testMessage())
	result := svc.SendMulticast(context.Background(), []entity.PushTarget{{Token: "a"}, {Token: "b"}}, testMessage())

	require.False(t, delivery.Delivered)
	assert.Equal(t, 2, result.FailureCount)
}
