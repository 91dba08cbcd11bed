package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"geolead/config"
	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/repository"
	"geolead/internal/domain/service"
	mockRepo "geolead/internal/mocks/repository"
	mockSvc "geolead/internal/mocks/service"
	"geolead/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var dedupT0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type dedupFixtures struct {
	service   usecase.DeduplicationUsecase
	txManager *mockRepo.MockTransactionManager
	leadRepo  *mockRepo.MockLeadRepository
	publisher *mockSvc.MockEventPublisher
	clock     *fakeClock
}

func createTestDeduplicationService(t *testing.T) dedupFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	leadRepo := mockRepo.NewMockLeadRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	clock := newFakeClock(dedupT0)

	svc := NewDeduplicationService(newDiscardLogger(), txManager, leadRepo, publisher, clock, &config.EngineConfig{})

	return dedupFixtures{
		service:   svc,
		txManager: txManager,
		leadRepo:  leadRepo,
		publisher: publisher,
		clock:     clock,
	}
}

func newPendingLead(createdAt time.Time) *entity.Lead {
	return &entity.Lead{
		ID:             uuid.New(),
		MerchantID:     "m1",
		CustomerMobile: "+15550100",
		Type:           entity.LeadTypeOfferView,
		Status:         entity.LeadStatusPending,
		CreatedAt:      createdAt,
	}
}

func TestDeduplicationService_DeduplicateLead_ConfirmsFirstLead(t *testing.T) {
	fx := createTestDeduplicationService(t)
	ctx := context.Background()
	lead := newPendingLead(dedupT0)

	fx.leadRepo.EXPECT().FindLeadByID(ctx, lead.ID).Return(lead, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txLeadRepo := mockRepo.NewMockLeadRepository(t)

			mockFactory.EXPECT().NewLeadRepository().Return(txLeadRepo)
			txLeadRepo.EXPECT().LockDedupeKey(ctx, lead.DedupeKey()).Return(nil)
			txLeadRepo.EXPECT().
				FindLeadsByDedupeKey(ctx, lead.DedupeKey(), dedupT0.Add(-15*time.Minute), dedupT0.Add(15*time.Minute)).
				Return([]*entity.Lead{lead}, nil)
			txLeadRepo.EXPECT().ConfirmLead(ctx, lead.ID, dedupT0).Return(true, nil)

			return fn(mockFactory)
		})
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.Event) bool {
			return event.Type == service.EventLeadUpdated
		})).
		Return(nil)

	result := fx.service.DeduplicateLead(ctx, lead.ID)

	require.True(t, result.OK())
	assert.Equal(t, usecase.OutcomeDone, result.Outcome)
	assert.Equal(t, 1, result.Count)
}

func TestDeduplicationService_DeduplicateLead_DeletesDuplicate(t *testing.T) {
	fx := createTestDeduplicationService(t)
	ctx := context.Background()
	lead := newPendingLead(dedupT0)
	earlier := newPendingLead(dedupT0.Add(-5 * time.Minute))
	earlier.Confirmed = true
	earlier.Status = entity.LeadStatusConfirmed

	fx.leadRepo.EXPECT().FindLeadByID(ctx, lead.ID).Return(lead, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txLeadRepo := mockRepo.NewMockLeadRepository(t)

			mockFactory.EXPECT().NewLeadRepository().Return(txLeadRepo)
			txLeadRepo.EXPECT().LockDedupeKey(ctx, lead.DedupeKey()).Return(nil)
			txLeadRepo.EXPECT().
				FindLeadsByDedupeKey(ctx, lead.DedupeKey(), mock.Anything, mock.Anything).
				Return([]*entity.Lead{earlier, lead}, nil)
			txLeadRepo.EXPECT().DeleteLead(ctx, lead.ID).Return(nil)

			return fn(mockFactory)
		})

	result := fx.service.DeduplicateLead(ctx, lead.ID)

	assert.Equal(t, domainerrors.KindDuplicate, result.Kind())
	assert.ErrorIs(t, result.Err, domainerrors.ErrLeadDuplicate)
}

func TestDeduplicationService_DeduplicateLead_DeletesInvalidLead(t *testing.T) {
	fx := createTestDeduplicationService(t)
	ctx := context.Background()
	lead := newPendingLead(dedupT0)
	lead.CustomerMobile = ""

	fx.leadRepo.EXPECT().FindLeadByID(ctx, lead.ID).Return(lead, nil)
	fx.leadRepo.EXPECT().DeleteLead(ctx, lead.ID).Return(nil)

	result := fx.service.DeduplicateLead(ctx, lead.ID)

	assert.Equal(t, domainerrors.KindValidation, result.Kind())
	assert.ErrorIs(t, result.Err, domainerrors.ErrLeadInvalid)
}

func TestDeduplicationService_DeduplicateLead_UnknownTypeIsInvalid(t *testing.T) {
	fx := createTestDeduplicationService(t)
	ctx := context.Background()
	lead := newPendingLead(dedupT0)
	lead.Type = "walk_in"

	fx.leadRepo.EXPECT().FindLeadByID(ctx, lead.ID).Return(lead, nil)
	fx.leadRepo.EXPECT().DeleteLead(ctx, lead.ID).Return(nil)

	result := fx.service.DeduplicateLead(ctx, lead.ID)

	assert.Equal(t, domainerrors.KindValidation, result.Kind())
}

func TestDeduplicationService_DeduplicateLead_AlreadyConfirmedIsNoop(t *testing.T) {
	fx := createTestDeduplicationService(t)
	ctx := context.Background()
	lead := newPendingLead(dedupT0)
	lead.Confirmed = true
	lead.Status = entity.LeadStatusConfirmed

	fx.leadRepo.EXPECT().FindLeadByID(ctx, lead.ID).Return(lead, nil)

	result := fx.service.DeduplicateLead(ctx, lead.ID)

	assert.True(t, result.OK())
	assert.Equal(t, usecase.OutcomeSkipped, result.Outcome)
}

func TestDeduplicationService_DeduplicateLead_NotFound(t *testing.T) {
	fx := createTestDeduplicationService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.leadRepo.EXPECT().FindLeadByID(ctx, id).Return(nil, repository.ErrLeadNotFound)

	result := fx.service.DeduplicateLead(ctx, id)

	assert.Equal(t, domainerrors.KindNotFound, result.Kind())
}

func TestDeduplicationService_DeduplicateLead_StoreFailure(t *testing.T) {
	fx := createTestDeduplicationService(t)
	ctx := context.Background()
	lead := newPendingLead(dedupT0)

	fx.leadRepo.EXPECT().FindLeadByID(ctx, lead.ID).Return(lead, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	result := fx.service.DeduplicateLead(ctx, lead.ID)

	assert.Equal(t, domainerrors.KindStore, result.Kind())
}

func TestDeduplicationService_DeduplicateLead_PublishFailureStillConfirms(t *testing.T) {
	store := newMemoryLeadStore()
	lead := newPendingLead(dedupT0)
	store.leads[lead.ID] = lead

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	svc := NewDeduplicationService(newDiscardLogger(), store, store, publisher, newFakeClock(dedupT0), nil)

	result := svc.DeduplicateLead(context.Background(), lead.ID)

	require.True(t, result.OK())
	assert.Len(t, store.confirmed(), 1)
}

func TestDeduplicationService_ConcurrentLeadsConfirmOnce(t *testing.T) {
	store := newMemoryLeadStore()
	var ids []uuid.UUID
	for i := 0; i < 8; i++ {
		lead := newPendingLead(dedupT0.Add(time.Duration(i) * time.Minute))
		store.leads[lead.ID] = lead
		ids = append(ids, lead.ID)
	}

	svc := NewDeduplicationService(newDiscardLogger(), store, store, nil, newFakeClock(dedupT0.Add(8*time.Minute)), nil)

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.DeduplicateLead(context.Background(), id)
		}()
	}
	wg.Wait()

	confirmed := store.confirmed()
	require.Len(t, confirmed, 1)
	assert.Equal(t, ids[0], confirmed[0].ID)
	assert.Equal(t, 1, store.count())
}

func TestDeduplicationService_RedeliveryIsNoop(t *testing.T) {
	lead := newPendingLead(dedupT0)
	store := newMemoryLeadStore(lead)
	svc := NewDeduplicationService(newDiscardLogger(), store, store, nil, newFakeClock(dedupT0), nil)

	first := svc.DeduplicateLead(context.Background(), lead.ID)
	second := svc.DeduplicateLead(context.Background(), lead.ID)

	assert.Equal(t, usecase.OutcomeDone, first.Outcome)
	assert.Equal(t, usecase.OutcomeSkipped, second.Outcome)
	assert.Len(t, store.confirmed(), 1)
}

func TestDeduplicationService_LeadsOutsideWindowBothConfirm(t *testing.T) {
	first := newPendingLead(dedupT0)
	second := newPendingLead(dedupT0.Add(16 * time.Minute))
	store := newMemoryLeadStore(first, second)
	clock := newFakeClock(dedupT0)
	svc := NewDeduplicationService(newDiscardLogger(), store, store, nil, clock, nil)

	require.True(t, svc.DeduplicateLead(context.Background(), first.ID).OK())
	clock.Set(dedupT0.Add(16 * time.Minute))
	require.True(t, svc.DeduplicateLead(context.Background(), second.ID).OK())

	assert.Len(t, store.confirmed(), 2)
}

func TestDeduplicationService_DelayedHandlerStillSeesEarlierLead(t *testing.T) {
	first := newPendingLead(dedupT0)
	second := newPendingLead(dedupT0.Add(10 * time.Minute))
	store := newMemoryLeadStore(first, second)
	clock := newFakeClock(dedupT0)
	svc := NewDeduplicationService(newDiscardLogger(), store, store, nil, clock, nil)

	require.True(t, svc.DeduplicateLead(context.Background(), first.ID).OK())

	// The second handler runs long after the first lead left a now-relative window.
	clock.Set(dedupT0.Add(40 * time.Minute))
	result := svc.DeduplicateLead(context.Background(), second.ID)

	assert.Equal(t, domainerrors.KindDuplicate, result.Kind())
	assert.Len(t, store.confirmed(), 1)
}

func TestDeduplicationService_EarlierLeadWinsWhenLaterHandlerRunsFirst(t *testing.T) {
	earlier := newPendingLead(dedupT0)
	later := newPendingLead(dedupT0.Add(time.Minute))
	store := newMemoryLeadStore(earlier, later)
	svc := NewDeduplicationService(newDiscardLogger(), store, store, nil, newFakeClock(dedupT0.Add(time.Minute)), nil)
	ctx := context.Background()

	laterResult := svc.DeduplicateLead(ctx, later.ID)
	earlierResult := svc.DeduplicateLead(ctx, earlier.ID)

	assert.Equal(t, domainerrors.KindDuplicate, laterResult.Kind())
	require.True(t, earlierResult.OK())
	assert.Equal(t, usecase.OutcomeDone, earlierResult.Outcome)

	confirmed := store.confirmed()
	require.Len(t, confirmed, 1)
	assert.Equal(t, earlier.ID, confirmed[0].ID)
	assert.Equal(t, dedupT0, confirmed[0].CreatedAt)
	assert.Equal(t, 1, store.count())
}

func TestDeduplicationService_SameInstantFallsBackToLowerID(t *testing.T) {
	low := newPendingLead(dedupT0)
	low.ID = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	high := newPendingLead(dedupT0)
	high.ID = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	store := newMemoryLeadStore(low, high)
	svc := NewDeduplicationService(newDiscardLogger(), store, store, nil, newFakeClock(dedupT0), nil)
	ctx := context.Background()

	assert.Equal(t, domainerrors.KindDuplicate, svc.DeduplicateLead(ctx, high.ID).Kind())
	assert.True(t, svc.DeduplicateLead(ctx, low.ID).OK())

	confirmed := store.confirmed()
	require.Len(t, confirmed, 1)
	assert.Equal(t, low.ID, confirmed[0].ID)
}
