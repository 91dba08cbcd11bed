package event

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "geolead/internal/delivery/context"
	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/service"
	"geolead/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const opEventReceive = "event.receive"

// Router decodes mutation events and hands them to the matching use case.
// Every transport (Pub/Sub push, pg_notify) goes through Route.
type Router struct {
	logger       *slog.Logger
	validate     *validator.Validate
	deduplicator service.EventDeduplicator
	supervisor   usecase.Supervisor
	leadDedup    usecase.DeduplicationUsecase
	leadNotify   usecase.LeadNotificationUsecase
	geofence     usecase.GeofenceUsecase
	offerPush    usecase.OfferPushUsecase
	broadcast    usecase.BroadcastUsecase
}

// RouterParams holds dependencies for the Router
type RouterParams struct {
	fx.In

	Logger       *slog.Logger
	Deduplicator service.EventDeduplicator
	Supervisor   usecase.Supervisor
	LeadDedup    usecase.DeduplicationUsecase
	LeadNotify   usecase.LeadNotificationUsecase
	Geofence     usecase.GeofenceUsecase
	OfferPush    usecase.OfferPushUsecase
	Broadcast    usecase.BroadcastUsecase
}

// NewRouter creates the event router
func NewRouter(params RouterParams) *Router {
	return &Router{
		logger:       params.Logger,
		validate:     validator.New(),
		deduplicator: params.Deduplicator,
		supervisor:   params.Supervisor,
		leadDedup:    params.LeadDedup,
		leadNotify:   params.LeadNotify,
		geofence:     params.Geofence,
		offerPush:    params.OfferPush,
		broadcast:    params.Broadcast,
	}
}

// Route processes one event and returns what the transport should do with it.
func (r *Router) Route(ctx context.Context, event *service.Event) usecase.Verdict {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	if err := r.validate.Struct(event); err != nil {
		return r.supervisor.Resolve(ctx, usecase.Failed(opEventReceive, domainerrors.ErrEventInvalid.WithDetails(err.Error())))
	}

	state, err := r.deduplicator.Begin(ctx, event.ID)
	if err != nil {
		// Handlers are idempotent on their own; losing the fast path only costs work.
		logger.Warn("[Router] Event idempotency check failed, processing anyway",
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
		state = service.DeliveryNew
	}
	switch state {
	case service.DeliveryDone:
		return r.supervisor.Resolve(ctx, usecase.Failed(opEventReceive, domainerrors.ErrEventDuplicate.WithDetails(event.ID)))
	case service.DeliveryInProgress:
		// The holder may die; come back once its lease has run out.
		return r.supervisor.Resolve(ctx, usecase.Failed(opEventReceive, domainerrors.ErrEventInProgress.WithDetails(event.ID)))
	}

	logger.Debug("[Router] Routing event",
		slog.String("event_id", event.ID),
		slog.String("event_type", string(event.Type)),
	)

	verdict := r.supervisor.Resolve(ctx, r.dispatch(ctx, event))
	r.settle(ctx, logger, event.ID, verdict)

	return verdict
}

// settle releases the lease of an event that will be retried and marks every
// other event done.
func (r *Router) settle(ctx context.Context, logger *slog.Logger, eventID string, verdict usecase.Verdict) {
	if verdict == usecase.VerdictRetry {
		if err := r.deduplicator.Forget(ctx, eventID); err != nil {
			logger.Warn("[Router] Failed to forget event before retry",
				slog.String("event_id", eventID),
				slog.Any("error", err),
			)
		}

		return
	}

	if err := r.deduplicator.Complete(ctx, eventID); err != nil {
		logger.Warn("[Router] Failed to mark event done",
			slog.String("event_id", eventID),
			slog.Any("error", err),
		)
	}
}

func (r *Router) dispatch(ctx context.Context, event *service.Event) usecase.Result {
	switch event.Type {
	case service.EventLeadCreated:
		var payload service.LeadCreatedPayload
		if err := r.decode(event, &payload); err != nil {
			return usecase.Failed(opEventReceive, err)
		}

		return r.leadDedup.DeduplicateLead(ctx, uuid.MustParse(payload.LeadID))

	case service.EventLeadUpdated:
		var payload service.LeadUpdatedPayload
		if err := r.decode(event, &payload); err != nil {
			return usecase.Failed(opEventReceive, err)
		}

		return r.leadNotify.NotifyLeadConfirmed(ctx, &usecase.LeadChange{
			LeadID: uuid.MustParse(payload.LeadID),
			Before: payload.Before,
			After:  payload.After,
		})

	case service.EventLocationWritten:
		var payload service.LocationWrittenPayload
		if err := r.decode(event, &payload); err != nil {
			return usecase.Failed(opEventReceive, err)
		}

		return r.geofence.HandleLocationWrite(ctx, &entity.CustomerLocation{
			CustomerID: payload.CustomerID,
			Mobile:     payload.Mobile,
			Latitude:   payload.Latitude,
			Longitude:  payload.Longitude,
			UpdatedAt:  payload.UpdatedAt,
		})

	case service.EventOfferCreated:
		var payload service.OfferCreatedPayload
		if err := r.decode(event, &payload); err != nil {
			return usecase.Failed(opEventReceive, err)
		}

		return r.offerPush.PushOfferToNearbyCustomers(ctx, &entity.Offer{
			ID:          payload.ID,
			MerchantID:  payload.MerchantID,
			Title:       payload.Title,
			Description: payload.Description,
			Location: &entity.GeoPoint{
				Latitude:  *payload.Latitude,
				Longitude: *payload.Longitude,
			},
		})

	case service.EventBroadcastCreated:
		var payload service.BroadcastCreatedPayload
		if err := r.decode(event, &payload); err != nil {
			return usecase.Failed(opEventReceive, err)
		}

		return r.broadcast.SendBroadcast(ctx, &entity.Broadcast{
			ID:     payload.ID,
			Title:  payload.Title,
			Body:   payload.Body,
			Target: entity.BroadcastTarget(payload.Target),
		})

	default:
		return usecase.Failed(opEventReceive, domainerrors.ErrEventTypeUnknown.WithDetails(string(event.Type)))
	}
}

// decode unmarshals and validates the event payload.
func (r *Router) decode(event *service.Event, payload any) error {
	if err := json.Unmarshal(event.Payload, payload); err != nil {
		return domainerrors.ErrEventInvalid.WithDetails(err.Error())
	}

	if err := r.validate.Struct(payload); err != nil {
		return domainerrors.ErrEventInvalid.WithDetails(err.Error())
	}

	return nil
}
