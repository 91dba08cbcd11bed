// Package cache holds the Redis-backed stores that sit in front of the event router.
package cache

import (
	"context"
	"log/slog"
	"time"

	"geolead/config"
	"geolead/internal/domain/lifecycle"
	"geolead/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	eventKeyPrefix = "geolead:event:"

	eventProcessing = "processing"
	eventDone       = "done"
)

// eventStore is the part of *redis.Client the deduplicator uses.
type eventStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisEventDeduplicator struct {
	store  eventStore
	ttl    time.Duration
	lease  time.Duration
	logger *slog.Logger
}

type noopEventDeduplicator struct{}

func (noopEventDeduplicator) Begin(context.Context, string) (service.DeliveryState, error) {
	return service.DeliveryNew, nil
}

func (noopEventDeduplicator) Complete(context.Context, string) error {
	return nil
}

func (noopEventDeduplicator) Forget(context.Context, string) error {
	return nil
}

// Params holds dependencies for the deduplicator, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventDeduplicator returns the Redis deduplicator, or a pass-through one
// when Redis is not configured.
func NewEventDeduplicator(params Params) service.EventDeduplicator {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, inbound events are not deduplicated")

		return noopEventDeduplicator{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return newRedisEventDeduplicator(client, cfg.EventTTL, cfg.EventLease, params.Logger)
}

func newRedisEventDeduplicator(store eventStore, ttl, lease time.Duration, logger *slog.Logger) *redisEventDeduplicator {
	if ttl <= 0 {
		ttl = config.DefaultEventTTL
	}
	if lease <= 0 {
		lease = config.DefaultEventLease
	}

	return &redisEventDeduplicator{store: store, ttl: ttl, lease: lease, logger: logger}
}

// Begin takes the processing lease for eventID. When the key already exists
// its value tells a finished event apart from one still being handled.
func (d *redisEventDeduplicator) Begin(ctx context.Context, eventID string) (service.DeliveryState, error) {
	key := eventKeyPrefix + eventID

	acquired, err := d.store.SetNX(ctx, key, eventProcessing, d.lease).Result()
	if err != nil {
		return "", errors.Wrap(err, "failed to lease event delivery")
	}
	if acquired {
		return service.DeliveryNew, nil
	}

	value, err := d.store.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// The lease expired between the two calls; the next redelivery takes it.
		return service.DeliveryInProgress, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to read event delivery")
	}

	if value == eventDone {
		d.logger.DebugContext(ctx, "[Dedup] Event already delivered", slog.String("event_id", eventID))

		return service.DeliveryDone, nil
	}

	d.logger.DebugContext(ctx, "[Dedup] Event delivery in progress", slog.String("event_id", eventID))

	return service.DeliveryInProgress, nil
}

// Complete replaces the lease with the done mark for the full TTL.
func (d *redisEventDeduplicator) Complete(ctx context.Context, eventID string) error {
	if err := d.store.Set(ctx, eventKeyPrefix+eventID, eventDone, d.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to complete event delivery")
	}

	return nil
}

// Forget drops the mark so a retried delivery is processed. A missing key is fine.
func (d *redisEventDeduplicator) Forget(ctx context.Context, eventID string) error {
	if err := d.store.Del(ctx, eventKeyPrefix+eventID).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return errors.Wrap(err, "failed to forget event delivery")
	}

	return nil
}
