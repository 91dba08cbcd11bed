package impl

import (
	"context"
	"testing"

	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	mockRepo "geolead/internal/mocks/repository"
	mockUsecase "geolead/internal/mocks/usecase"
	"geolead/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBroadcastService_SendBroadcast(t *testing.T) {
	customerTargets := []entity.PushTarget{
		{Owner: entity.OwnerKindCustomer, OwnerID: "c1", Token: "ct1"},
		{Owner: entity.OwnerKindCustomer, OwnerID: "c2", Token: "ct2"},
	}
	merchantTargets := []entity.PushTarget{
		{Owner: entity.OwnerKindMerchant, OwnerID: "m1", Token: "mt1"},
	}

	tests := []struct {
		name          string
		target        entity.BroadcastTarget
		wantCustomers bool
		wantMerchants bool
		wantTargets   int
	}{
		{name: "default audience is customers", target: "", wantCustomers: true, wantTargets: 2},
		{name: "customers", target: entity.BroadcastTargetCustomer, wantCustomers: true, wantTargets: 2},
		{name: "merchants", target: entity.BroadcastTargetMerchant, wantMerchants: true, wantTargets: 1},
		{name: "everyone", target: entity.BroadcastTargetAll, wantCustomers: true, wantMerchants: true, wantTargets: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merchantRepo := mockRepo.NewMockMerchantRepository(t)
			customerRepo := mockRepo.NewMockCustomerRepository(t)
			dispatcher := mockUsecase.NewMockDispatchUsecase(t)
			svc := NewBroadcastService(newDiscardLogger(), merchantRepo, customerRepo, dispatcher)
			ctx := context.Background()

			if tt.wantCustomers {
				customerRepo.EXPECT().FindCustomerPushTargets(ctx).Return(customerTargets, nil)
			}
			if tt.wantMerchants {
				merchantRepo.EXPECT().FindMerchantPushTargets(ctx).Return(merchantTargets, nil)
			}
			dispatcher.EXPECT().
				SendMulticast(ctx, mock.MatchedBy(func(targets []entity.PushTarget) bool { return len(targets) == tt.wantTargets }), mock.MatchedBy(func(msg *entity.PushMessage) bool {
					return msg.Notification.Title == "Notification" && msg.Notification.Body == "Diwali week deals"
				})).
				Return(&entity.MulticastResult{SuccessCount: tt.wantTargets})

			result := svc.SendBroadcast(ctx, &entity.Broadcast{ID: "b1", Body: "Diwali week deals", Target: tt.target})

			assert.True(t, result.OK())
			assert.Equal(t, tt.wantTargets, result.Count)
		})
	}
}

func TestBroadcastService_NoAudience(t *testing.T) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	svc := NewBroadcastService(newDiscardLogger(), mockRepo.NewMockMerchantRepository(t), customerRepo, mockUsecase.NewMockDispatchUsecase(t))
	ctx := context.Background()

	customerRepo.EXPECT().FindCustomerPushTargets(ctx).Return(nil, nil)

	result := svc.SendBroadcast(ctx, &entity.Broadcast{ID: "b1", Body: "hello"})

	assert.Equal(t, usecase.OutcomeSkipped, result.Outcome)
}

func TestBroadcastService_StoreFailure(t *testing.T) {
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	svc := NewBroadcastService(newDiscardLogger(), merchantRepo, mockRepo.NewMockCustomerRepository(t), mockUsecase.NewMockDispatchUsecase(t))
	ctx := context.Background()

	merchantRepo.EXPECT().FindMerchantPushTargets(ctx).Return(nil, errors.New("timeout"))

	result := svc.SendBroadcast(ctx, &entity.Broadcast{ID: "b1", Target: entity.BroadcastTargetMerchant})

	assert.Equal(t, domainerrors.KindStore, result.Kind())
}
