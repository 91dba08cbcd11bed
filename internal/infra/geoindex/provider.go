package geoindex

import (
	"context"
	"log/slog"
	"time"

	"geolead/config"
	"geolead/internal/domain/constants"
	"geolead/internal/domain/lifecycle"
	"geolead/internal/domain/repository"
	"geolead/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the merchant locator, injected by Fx
type Params struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	Logger       *slog.Logger
	MerchantRepo repository.MerchantRepository
}

// NewMerchantLocator picks the locator named by geoIndex.provider. The
// quadtree locator is loaded on start and refreshed in the background.
func NewMerchantLocator(params Params) (service.MerchantLocator, error) {
	cfg := params.Config.GeoIndex

	switch cfg.Provider {
	case constants.GeoIndexProviderDatabase:
		params.Logger.Info("Using database merchant locator")

		return NewDatabaseLocator(params.MerchantRepo), nil

	case constants.GeoIndexProviderQuadtree, "":
		locator := NewQuadtreeLocator(params.Logger, params.MerchantRepo)
		refreshCtx, cancelRefresh := context.WithCancel(context.Background())

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := locator.Refresh(ctx); err != nil {
					params.Logger.Warn("[GeoIndex] Initial load failed, answering from the database until the next refresh",
						slog.Any("error", err),
					)
				}

				go runRefresher(refreshCtx, params.Logger, locator, cfg.RefreshInterval)

				return nil
			},
			OnStop: func(_ context.Context) error {
				cancelRefresh()

				return nil
			},
		})

		params.Logger.Info("Using quadtree merchant locator",
			slog.Duration("refreshInterval", cfg.RefreshInterval),
		)

		return locator, nil

	default:
		return nil, errors.Errorf("unknown geo index provider: %s", cfg.Provider)
	}
}

func runRefresher(ctx context.Context, logger *slog.Logger, locator *QuadtreeLocator, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultGeoIndexRefresh
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := locator.Refresh(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("[GeoIndex] Refresh failed, keeping previous index", slog.Any("error", err))
			}
		}
	}
}
