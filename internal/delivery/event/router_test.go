package event

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/service"
	mockService "geolead/internal/mocks/service"
	mockUsecase "geolead/internal/mocks/usecase"
	"geolead/internal/usecase"
	"geolead/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testLeadID = "6f1c2a4e-9d3b-4c7a-8e21-5b0f3d9a7c10"

type routerFixtures struct {
	router       *Router
	deduplicator *mockService.MockEventDeduplicator
	leadDedup    *mockUsecase.MockDeduplicationUsecase
	leadNotify   *mockUsecase.MockLeadNotificationUsecase
	geofence     *mockUsecase.MockGeofenceUsecase
	offerPush    *mockUsecase.MockOfferPushUsecase
	broadcast    *mockUsecase.MockBroadcastUsecase
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := routerFixtures{
		deduplicator: mockService.NewMockEventDeduplicator(t),
		leadDedup:    mockUsecase.NewMockDeduplicationUsecase(t),
		leadNotify:   mockUsecase.NewMockLeadNotificationUsecase(t),
		geofence:     mockUsecase.NewMockGeofenceUsecase(t),
		offerPush:    mockUsecase.NewMockOfferPushUsecase(t),
		broadcast:    mockUsecase.NewMockBroadcastUsecase(t),
	}
	f.router = NewRouter(RouterParams{
		Logger:       logger,
		Deduplicator: f.deduplicator,
		Supervisor:   impl.NewSupervisor(logger, nil),
		LeadDedup:    f.leadDedup,
		LeadNotify:   f.leadNotify,
		Geofence:     f.geofence,
		OfferPush:    f.offerPush,
		Broadcast:    f.broadcast,
	})

	return f
}

func newTestEvent(t *testing.T, eventType service.EventType, payload any) *service.Event {
	t.Helper()

	event, err := service.NewEvent("evt-1", eventType, payload, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return event
}

// expectFreshDelivery leases evt-1 and expects it to be marked done.
func (f routerFixtures) expectFreshDelivery(ctx context.Context) {
	f.deduplicator.EXPECT().Begin(ctx, "evt-1").Return(service.DeliveryNew, nil)
	f.deduplicator.EXPECT().Complete(ctx, "evt-1").Return(nil)
}

func TestRouter_LeadCreated(t *testing.T) {
	ctx := context.Background()
	f := createTestRouter(t)
	f.expectFreshDelivery(ctx)
	f.leadDedup.EXPECT().DeduplicateLead(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) usecase.Result {
			assert.Equal(t, testLeadID, id.String())

			return usecase.Done("lead.dedupe", 0)
		})

	verdict := f.router.Route(ctx, newTestEvent(t, service.EventLeadCreated, service.LeadCreatedPayload{LeadID: testLeadID}))

	assert.Equal(t, usecase.VerdictAck, verdict)
}

func TestRouter_LeadUpdatedCarriesTransition(t *testing.T) {
	ctx := context.Background()
	f := createTestRouter(t)
	f.expectFreshDelivery(ctx)
	f.leadNotify.EXPECT().NotifyLeadConfirmed(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, change *usecase.LeadChange) usecase.Result {
			require.NotNil(t, change.Before)
			assert.False(t, change.Before.Confirmed)
			assert.True(t, change.After.Confirmed)
			assert.True(t, change.BecameConfirmed())

			return usecase.Done("lead.notify", 1)
		})

	payload := service.LeadUpdatedPayload{
		LeadID: testLeadID,
		Before: &entity.LeadSnapshot{},
		After:  entity.LeadSnapshot{Confirmed: true},
	}

	assert.Equal(t, usecase.VerdictAck, f.router.Route(ctx, newTestEvent(t, service.EventLeadUpdated, payload)))
}

func TestRouter_LocationWritten(t *testing.T) {
	ctx := context.Background()
	f := createTestRouter(t)
	f.expectFreshDelivery(ctx)
	f.geofence.EXPECT().HandleLocationWrite(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, location *entity.CustomerLocation) usecase.Result {
			assert.Equal(t, "+919800000001", location.Key())
			assert.InDelta(t, 12.9716, *location.Latitude, 1e-9)
			assert.InDelta(t, 77.5946, *location.Longitude, 1e-9)

			return usecase.Done("geofence.match", 1)
		})

	lat, lng := 12.9716, 77.5946
	payload := service.LocationWrittenPayload{Mobile: "+919800000001", Latitude: &lat, Longitude: &lng}

	assert.Equal(t, usecase.VerdictAck, f.router.Route(ctx, newTestEvent(t, service.EventLocationWritten, payload)))
}

func TestRouter_OfferCreated(t *testing.T) {
	ctx := context.Background()
	f := createTestRouter(t)
	f.expectFreshDelivery(ctx)
	f.offerPush.EXPECT().PushOfferToNearbyCustomers(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, offer *entity.Offer) usecase.Result {
			assert.Equal(t, "o1", offer.ID)
			require.NotNil(t, offer.Location)
			assert.InDelta(t, 12.9716, offer.Location.Latitude, 1e-9)

			return usecase.Done("offer.push", 3)
		})

	lat, lng := 12.9716, 77.5946
	payload := service.OfferCreatedPayload{ID: "o1", MerchantID: "m1", Title: "2 for 1", Latitude: &lat, Longitude: &lng}

	assert.Equal(t, usecase.VerdictAck, f.router.Route(ctx, newTestEvent(t, service.EventOfferCreated, payload)))
}

func TestRouter_BroadcastCreated(t *testing.T) {
	ctx := context.Background()
	f := createTestRouter(t)
	f.expectFreshDelivery(ctx)
	f.broadcast.EXPECT().SendBroadcast(ctx, &entity.Broadcast{
		ID:     "b1",
		Title:  "Diwali sale",
		Body:   "Up to 50% off",
		Target: entity.BroadcastTargetAll,
	}).Return(usecase.Done("broadcast.send", 10))

	payload := service.BroadcastCreatedPayload{ID: "b1", Title: "Diwali sale", Body: "Up to 50% off", Target: "all"}

	assert.Equal(t, usecase.VerdictAck, f.router.Route(ctx, newTestEvent(t, service.EventBroadcastCreated, payload)))
}

func TestRouter_DiscardsInvalidEvents(t *testing.T) {
	tests := []struct {
		name  string
		event func(t *testing.T) *service.Event
	}{
		{
			name: "unknown type",
			event: func(t *testing.T) *service.Event {
				return newTestEvent(t, service.EventType("order.created"), map[string]string{"id": "x"})
			},
		},
		{
			name: "lead id is not a uuid",
			event: func(t *testing.T) *service.Event {
				return newTestEvent(t, service.EventLeadCreated, service.LeadCreatedPayload{LeadID: "lead-1"})
			},
		},
		{
			name: "location without coordinates",
			event: func(t *testing.T) *service.Event {
				return newTestEvent(t, service.EventLocationWritten, service.LocationWrittenPayload{Mobile: "+15550100"})
			},
		},
		{
			name: "broadcast audience unknown",
			event: func(t *testing.T) *service.Event {
				return newTestEvent(t, service.EventBroadcastCreated, service.BroadcastCreatedPayload{ID: "b1", Target: "admins"})
			},
		},
		{
			name: "payload is not an object",
			event: func(t *testing.T) *service.Event {
				event := newTestEvent(t, service.EventOfferCreated, nil)
				event.Payload = json.RawMessage(`"offer"`)

				return event
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			f := createTestRouter(t)
			f.expectFreshDelivery(ctx)

			assert.Equal(t, usecase.VerdictDiscard, f.router.Route(ctx, tt.event(t)))
		})
	}
}

func TestRouter_DiscardsEnvelopeWithoutID(t *testing.T) {
	f := createTestRouter(t)
	event := newTestEvent(t, service.EventLeadCreated, service.LeadCreatedPayload{LeadID: testLeadID})
	event.ID = ""

	assert.Equal(t, usecase.VerdictDiscard, f.router.Route(context.Background(), event))
}

func TestRouter_DropsRedelivery(t *testing.T) {
	ctx := context.Background()
	f := createTestRouter(t)
	f.deduplicator.EXPECT().Begin(ctx, "evt-1").Return(service.DeliveryDone, nil)

	verdict := f.router.Route(ctx, newTestEvent(t, service.EventLeadCreated, service.LeadCreatedPayload{LeadID: testLeadID}))

	assert.Equal(t, usecase.VerdictDiscard, verdict)
}

func TestRouter_DefersEventLeasedElsewhere(t *testing.T) {
	ctx := context.Background()
	f := createTestRouter(t)
	f.deduplicator.EXPECT().Begin(ctx, "evt-1").Return(service.DeliveryInProgress, nil)

	verdict := f.router.Route(ctx, newTestEvent(t, service.EventLeadCreated, service.LeadCreatedPayload{LeadID: testLeadID}))

	// Retry without releasing the other delivery's lease.
	assert.Equal(t, usecase.VerdictRetry, verdict)
	f.deduplicator.AssertNotCalled(t, "Forget", mock.Anything, mock.Anything)
}

func TestRouter_ProcessesWhenIdempotencyStoreFails(t *testing.T) {
	ctx := context.Background()
	f := createTestRouter(t)
	f.deduplicator.EXPECT().Begin(ctx, "evt-1").Return("", errors.New("connection refused"))
	f.deduplicator.EXPECT().Complete(ctx, "evt-1").Return(errors.New("connection refused"))
	f.leadDedup.EXPECT().DeduplicateLead(ctx, mock.Anything).Return(usecase.Skipped("lead.dedupe", "already confirmed"))

	verdict := f.router.Route(ctx, newTestEvent(t, service.EventLeadCreated, service.LeadCreatedPayload{LeadID: testLeadID}))

	assert.Equal(t, usecase.VerdictAck, verdict)
}

func TestRouter_ForgetsEventOnRetry(t *testing.T) {
	ctx := context.Background()
	f := createTestRouter(t)
	f.deduplicator.EXPECT().Begin(ctx, "evt-1").Return(service.DeliveryNew, nil)
	f.deduplicator.EXPECT().Forget(ctx, "evt-1").Return(nil)
	f.leadDedup.EXPECT().DeduplicateLead(ctx, mock.Anything).
		Return(usecase.Failed("lead.dedupe", domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "lock dedupe key")))

	verdict := f.router.Route(ctx, newTestEvent(t, service.EventLeadCreated, service.LeadCreatedPayload{LeadID: testLeadID}))

	assert.Equal(t, usecase.VerdictRetry, verdict)
	f.deduplicator.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestRouter_UnfinishedDeliveryIsProcessedAgain(t *testing.T) {
	ctx := context.Background()
	f := createTestRouter(t)
	event := newTestEvent(t, service.EventLeadCreated, service.LeadCreatedPayload{LeadID: testLeadID})

	// The first delivery took the lease and died before completing, so the
	// event is not marked done and the redelivery after the lease runs.
	f.deduplicator.EXPECT().Begin(ctx, "evt-1").Return(service.DeliveryInProgress, nil).Once()
	assert.Equal(t, usecase.VerdictRetry, f.router.Route(ctx, event))

	f.deduplicator.EXPECT().Begin(ctx, "evt-1").Return(service.DeliveryNew, nil).Once()
	f.deduplicator.EXPECT().Complete(ctx, "evt-1").Return(nil).Once()
	f.leadDedup.EXPECT().DeduplicateLead(ctx, mock.Anything).Return(usecase.Done("lead.dedupe", 1)).Once()

	assert.Equal(t, usecase.VerdictAck, f.router.Route(ctx, event))
}
