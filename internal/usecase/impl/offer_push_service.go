package impl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"geolead/config"
	"geolead/internal/domain/entity"
	domainerrors "geolead/internal/domain/errors"
	"geolead/internal/domain/geo"
	"geolead/internal/domain/repository"
	"geolead/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const opOfferPush = "offer.push"

type offerPushService struct {
	logger       *slog.Logger
	customerRepo repository.CustomerRepository
	dispatcher   usecase.DispatchUsecase
	cfg          *config.OfferPushConfig
}

// NewOfferPushService creates the offer push fan-out.
func NewOfferPushService(
	logger *slog.Logger,
	customerRepo repository.CustomerRepository,
	dispatcher usecase.DispatchUsecase,
	cfg *config.OfferPushConfig,
) usecase.OfferPushUsecase {
	if cfg == nil {
		cfg = &config.OfferPushConfig{}
	}
	cfg.WithDefaults()

	return &offerPushService{
		logger:       logger,
		customerRepo: customerRepo,
		dispatcher:   dispatcher,
		cfg:          cfg,
	}
}

// PushOfferToNearbyCustomers pushes the offer to every customer whose chosen
// radius, capped at the configured maximum, contains the offer location.
func (s *offerPushService) PushOfferToNearbyCustomers(ctx context.Context, offer *entity.Offer) usecase.Result {
	if offer.Location == nil {
		return usecase.Failed(opOfferPush, domainerrors.ErrOfferInvalid.WithDetails(offer.ID))
	}

	lat, lng := offer.Location.Latitude, offer.Location.Longitude

	customers, err := s.customerRepo.FindCustomersWithTokenInBound(ctx, geo.BoundAround(lat, lng, s.cfg.MaxRadiusKm*1000))
	if err != nil {
		return usecase.Failed(opOfferPush, domainerrors.NewDatabaseExecuteError(err, "find customers near offer"))
	}

	msg := BuildOfferMessage(offer)

	var sent atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.Concurrency)

	for _, customer := range customers {
		if customer.FCMToken == "" || customer.Location == nil {
			continue
		}

		distanceKm := geo.DistanceKm(lat, lng, customer.Location.Latitude, customer.Location.Longitude)
		if distanceKm > s.radiusKm(customer) {
			continue
		}

		group.Go(func() error {
			if s.dispatcher.Send(groupCtx, customer.PushTarget(), msg).Delivered {
				sent.Add(1)
			}

			return nil
		})
	}
	_ = group.Wait()

	s.logger.InfoContext(ctx, "Offer pushed to nearby customers",
		slog.String("offerID", offer.ID),
		slog.Int64("sent", sent.Load()),
	)

	if sent.Load() == 0 {
		return usecase.Skipped(opOfferPush, "no customer in range")
	}

	return usecase.Done(opOfferPush, int(sent.Load()))
}

func (s *offerPushService) radiusKm(customer *entity.Customer) float64 {
	radius := customer.SelectedDistanceKm
	if radius <= 0 {
		radius = s.cfg.DefaultRadiusKm
	}

	return min(radius, s.cfg.MaxRadiusKm)
}
