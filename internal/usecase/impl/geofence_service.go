package impl

import (
	"context"
	"log/slog"

	"geolead/config"
	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/geo"
	"geolead/internal/domain/service"
	"geolead/internal/usecase"
)

const opGeofence = "geofence.match"

type geofenceService struct {
	logger     *slog.Logger
	locator    service.MerchantLocator
	tracker    *CooldownTracker
	dispatcher usecase.DispatchUsecase
	radius     float64
}

// NewGeofenceService creates the geofence matcher.
func NewGeofenceService(
	logger *slog.Logger,
	locator service.MerchantLocator,
	tracker *CooldownTracker,
	dispatcher usecase.DispatchUsecase,
	cfg *config.EngineConfig,
) usecase.GeofenceUsecase {
	if cfg == nil {
		cfg = &config.EngineConfig{}
	}
	cfg.WithDefaults()

	return &geofenceService{
		logger:     logger,
		locator:    locator,
		tracker:    tracker,
		dispatcher: dispatcher,
		radius:     cfg.GeofenceRadiusMeters,
	}
}

// HandleLocationWrite alerts every approved merchant within the geofence
// radius of the customer, at most once per merchant/customer per cooldown.
func (s *geofenceService) HandleLocationWrite(ctx context.Context, location *entity.CustomerLocation) usecase.Result {
	if !location.Complete() {
		return usecase.Failed(opGeofence, domainerrors.ErrLocationInvalid)
	}

	lat, lng := *location.Latitude, *location.Longitude

	candidates, err := s.locator.FindNearby(ctx, lat, lng, s.radius)
	if err != nil {
		return usecase.Failed(opGeofence, domainerrors.NewDatabaseExecuteError(err, "find nearby merchants"))
	}

	var (
		notified int
		claimErr error
	)
	for _, merchant := range candidates {
		if merchant.Location == nil || !merchant.IsApproved() || !merchant.HasToken() {
			continue
		}

		distance := geo.DistanceMeters(lat, lng, merchant.Location.Latitude, merchant.Location.Longitude)
		if distance > s.radius {
			continue
		}

		// Pairs still cooling down are skipped without a write; Acquire settles races.
		if state, err := s.tracker.State(ctx, merchant.ID, location.Key()); err == nil && state == entity.AlertStateCooling {
			continue
		}

		acquired, err := s.tracker.Acquire(ctx, merchant.ID, location.Key(), distance)
		if err != nil {
			claimErr = err
			s.logger.ErrorContext(ctx, "Failed to claim merchant alert",
				slog.String("merchantID", merchant.ID),
				slog.String("customerID", location.Key()),
				slog.Any("error", err),
			)

			continue
		}
		if !acquired {
			continue
		}

		delivery := s.dispatcher.NotifyMerchant(ctx, merchant, BuildGeoAlertMessage(merchant.ID, location, distance))
		if delivery.Delivered {
			notified++
		}
	}

	if claimErr != nil && notified == 0 {
		return usecase.Failed(opGeofence, claimErr)
	}

	if notified == 0 {
		return usecase.Skipped(opGeofence, "no merchant to alert")
	}

	return usecase.Done(opGeofence, notified)
}
