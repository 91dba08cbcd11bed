// Package listener consumes store mutation events published with pg_notify.
//
// It holds one dedicated pgx connection outside the gorm pool, LISTENs on
// the configured channel and hands every notification to the event router.
// Table triggers emit the same envelope the Pub/Sub worker receives.
package listener

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"geolead/config"
	"geolead/internal/delivery"
	deliverycontext "geolead/internal/delivery/context"
	"geolead/internal/delivery/event"
	"geolead/internal/domain/lifecycle"
	"geolead/internal/domain/service"
	"geolead/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/semaphore"
)

const (
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
	maxInFlight      = 16
	maxAttempts      = 3
	retryBackoff     = time.Second
)

// EventRouter routes a decoded event and returns the verdict.
type EventRouter interface {
	Route(ctx context.Context, event *service.Event) usecase.Verdict
}

// notificationConn is the part of *pgx.Conn the listener needs.
type notificationConn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

type connectFunc func(ctx context.Context, dsn string) (notificationConn, error)

func connectPgx(ctx context.Context, dsn string) (notificationConn, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

type pgListener struct {
	dsn          string
	channel      string
	logger       *slog.Logger
	router       EventRouter
	connect      connectFunc
	inFlight     *semaphore.Weighted
	retryBackoff time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Params holds dependencies for the listener
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Router *event.Router
}

// NewListener creates the pg_notify delivery. When the listener is disabled
// Serve returns immediately.
func NewListener(params Params) (delivery.Delivery, error) {
	cfg := params.Config.Listener
	if cfg == nil || !cfg.Enabled {
		return disabled{logger: params.Logger}, nil
	}
	if cfg.DSN == "" {
		return nil, errors.New("listener.dsn is required when the listener is enabled")
	}

	l := newListener(cfg.DSN, cfg.Channel, params.Logger, params.Router, connectPgx)
	params.Lc.Append(fx.Hook{
		OnStop: l.stop,
	})

	return l, nil
}

func newListener(dsn, channel string, logger *slog.Logger, router EventRouter, connect connectFunc) *pgListener {
	ctx, cancel := context.WithCancel(context.Background())

	return &pgListener{
		dsn:          dsn,
		channel:      channel,
		logger:       logger,
		router:       router,
		connect:      connect,
		inFlight:     semaphore.NewWeighted(maxInFlight),
		retryBackoff: retryBackoff,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Serve listens until stopped, reconnecting with backoff when the connection drops.
func (l *pgListener) Serve(_ context.Context) error {
	backoff := reconnectBackoff

	for {
		err := l.listen(l.ctx)
		if l.ctx.Err() != nil {
			l.logger.Info("[Listener] Stopped", slog.String("channel", l.channel))

			return nil
		}

		l.logger.Error("[Listener] Disconnected, reconnecting",
			slog.String("channel", l.channel),
			slog.Duration("backoff", backoff),
			slog.Any("error", err),
		)

		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, maxReconnect)
		case <-l.ctx.Done():
			return nil
		}
	}
}

// listen runs one session and returns when the connection drops or ctx ends.
func (l *pgListener) listen(ctx context.Context) error {
	conn, err := l.connect(ctx, l.dsn)
	if err != nil {
		return errors.Wrap(err, "connect")
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return errors.Wrapf(err, "LISTEN %s", l.channel)
	}
	l.logger.Info("[Listener] Connected", slog.String("channel", l.channel))

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return errors.Wrap(err, "wait for notification")
		}

		var evt service.Event
		if err := json.Unmarshal([]byte(notification.Payload), &evt); err != nil {
			l.logger.Warn("[Listener] Failed to parse event",
				slog.String("payload", notification.Payload),
				slog.Any("error", err),
			)

			continue
		}

		// Blocks when maxInFlight handlers are running so the backlog stays in Postgres
		if err := l.inFlight.Acquire(ctx, 1); err != nil {
			return errors.WithStack(err)
		}
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			defer l.inFlight.Release(1)
			l.handle(context.WithoutCancel(ctx), &evt)
		}()
	}
}

// handle routes one event, retrying in process because pg_notify never
// redelivers. A started handler finishes even when the listener stops.
func (l *pgListener) handle(ctx context.Context, evt *service.Event) {
	requestID := evt.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ctx, logger := deliverycontext.WithRequest(ctx, requestID, l.logger)

	for attempt := 1; ; attempt++ {
		verdict := l.router.Route(ctx, evt)
		if verdict != usecase.VerdictRetry {
			return
		}

		if attempt == maxAttempts {
			logger.Error("[Listener] Giving up on event",
				slog.String("event_id", evt.ID),
				slog.String("event_type", string(evt.Type)),
				slog.Int("attempts", attempt),
			)

			return
		}

		select {
		case <-time.After(l.retryBackoff * time.Duration(attempt)):
		case <-l.ctx.Done():
			return
		}
	}
}

// stop cancels the session and waits for in-flight handlers.
func (l *pgListener) stop(ctx context.Context) error {
	l.cancel()

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done:
		return nil
	case <-waitCtx.Done():
		return errors.New("listener handlers did not finish before shutdown")
	}
}

type disabled struct {
	logger *slog.Logger
}

func (d disabled) Serve(_ context.Context) error {
	d.logger.Info("[Listener] Disabled")

	return nil
}
