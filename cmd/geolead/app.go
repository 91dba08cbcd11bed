package main

import (
	"context"
	"log/slog"
	"os"

	"geolead/config"
	"geolead/internal/delivery"
	"geolead/internal/delivery/event"
	"geolead/internal/delivery/listener"
	"geolead/internal/delivery/scheduler"
	"geolead/internal/delivery/worker"
	"geolead/internal/delivery/worker/handler"
	"geolead/internal/domain/service"
	"geolead/internal/infra/cache"
	"geolead/internal/infra/geoindex"
	logs "geolead/internal/infra/log"
	"geolead/internal/infra/notification"
	"geolead/internal/infra/persistence/postgres"
	"geolead/internal/infra/pubsub"
	"geolead/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

// engineOptions provides everything below the delivery layer.
func engineOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		func(cfg *config.Config) *config.EngineConfig { return cfg.Engine },
		func(cfg *config.Config) *config.PushConfig { return cfg.Push },
		func(cfg *config.Config) *config.OfferPushConfig { return cfg.OfferPush },
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewLeadRepository,
			postgres.NewMerchantRepository,
			postgres.NewCustomerRepository,
			postgres.NewAlertRepository,
			postgres.NewUndeliveredRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewSystemClock,
			newFirebaseService,
			pubsub.NewEventPublisher,
			cache.NewEventDeduplicator,
			geoindex.NewMerchantLocator,
		),
	)
}

// newFirebaseService creates the push service. Without Firebase
// configuration pushes are logged and dropped.
func newFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		logger.Warn("Firebase not configured, pushes will be dropped")

		return nil, nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSupervisor,
			impl.NewCooldownTracker,
			impl.NewDispatcherService,
			impl.NewDeduplicationService,
			impl.NewLeadNotificationService,
			impl.NewGeofenceService,
			impl.NewOfferPushService,
			impl.NewBroadcastService,
			impl.NewRetentionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			event.NewRouter,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				listener.NewListener,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewRetentionScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start delivery", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
