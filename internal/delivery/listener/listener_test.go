package listener

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"geolead/internal/domain/service"
	"geolead/internal/usecase"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	notifications chan *pgconn.Notification
	mu            sync.Mutex
	executed      []string
}

func (c *fakeConn) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.executed = append(c.executed, sql)

	return pgconn.CommandTag{}, nil
}

func (c *fakeConn) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	select {
	case n := <-c.notifications:
		return n, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *fakeConn) Close(context.Context) error {
	return nil
}

type countingRouter struct {
	mu       sync.Mutex
	verdicts []usecase.Verdict
	routed   []string
	done     chan struct{}
	expect   int
}

func (r *countingRouter) Route(_ context.Context, event *service.Event) usecase.Verdict {
	r.mu.Lock()
	defer r.mu.Unlock()

	verdict := usecase.VerdictAck
	if len(r.verdicts) > 0 {
		verdict = r.verdicts[0]
		r.verdicts = r.verdicts[1:]
	}
	r.routed = append(r.routed, event.ID)
	if len(r.routed) == r.expect {
		close(r.done)
	}

	return verdict
}

func startTestListener(t *testing.T, router EventRouter) (*pgListener, *fakeConn) {
	t.Helper()

	conn := &fakeConn{notifications: make(chan *pgconn.Notification, 8)}
	l := newListener("postgres://localhost/geolead", "geolead_events",
		slog.New(slog.NewTextHandler(io.Discard, nil)), router,
		func(context.Context, string) (notificationConn, error) { return conn, nil })
	l.retryBackoff = time.Millisecond

	served := make(chan struct{})
	go func() {
		_ = l.Serve(context.Background())
		close(served)
	}()
	t.Cleanup(func() {
		require.NoError(t, l.stop(context.Background()))
		<-served
	})

	return l, conn
}

func waitFor(t *testing.T, done chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}
}

func TestListener_RoutesNotifications(t *testing.T) {
	router := &countingRouter{done: make(chan struct{}), expect: 2}
	_, conn := startTestListener(t, router)

	conn.notifications <- &pgconn.Notification{Channel: "geolead_events", Payload: `not json`}
	conn.notifications <- &pgconn.Notification{Channel: "geolead_events",
		Payload: `{"id":"evt-1","type":"lead.created","payload":{"leadId":"6f1c2a4e-9d3b-4c7a-8e21-5b0f3d9a7c10"}}`}
	conn.notifications <- &pgconn.Notification{Channel: "geolead_events",
		Payload: `{"id":"evt-2","type":"offer.created","payload":{"id":"o1","lat":12.97,"lng":77.59}}`}

	waitFor(t, router.done)

	router.mu.Lock()
	defer router.mu.Unlock()
	assert.ElementsMatch(t, []string{"evt-1", "evt-2"}, router.routed)

	conn.mu.Lock()
	defer conn.mu.Unlock()
	assert.Equal(t, []string{`LISTEN "geolead_events"`}, conn.executed)
}

func TestListener_RetriesUntilAcknowledged(t *testing.T) {
	router := &countingRouter{
		verdicts: []usecase.Verdict{usecase.VerdictRetry, usecase.VerdictRetry, usecase.VerdictAck},
		done:     make(chan struct{}),
		expect:   3,
	}
	_, conn := startTestListener(t, router)

	conn.notifications <- &pgconn.Notification{Payload: `{"id":"evt-1","type":"lead.created","payload":{}}`}

	waitFor(t, router.done)

	router.mu.Lock()
	defer router.mu.Unlock()
	assert.Equal(t, []string{"evt-1", "evt-1", "evt-1"}, router.routed)
}

func TestListener_GivesUpAfterMaxAttempts(t *testing.T) {
	router := &countingRouter{
		verdicts: []usecase.Verdict{usecase.VerdictRetry, usecase.VerdictRetry, usecase.VerdictRetry, usecase.VerdictRetry},
		done:     make(chan struct{}),
		expect:   maxAttempts,
	}
	l, conn := startTestListener(t, router)

	conn.notifications <- &pgconn.Notification{Payload: `{"id":"evt-1","type":"lead.created","payload":{}}`}

	waitFor(t, router.done)
	l.wg.Wait()

	router.mu.Lock()
	defer router.mu.Unlock()
	assert.Len(t, router.routed, maxAttempts)
}
