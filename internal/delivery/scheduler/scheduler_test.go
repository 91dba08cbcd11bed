package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUsecase "geolead/internal/mocks/usecase"
	"geolead/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRetentionScheduler_SweepsOnEveryTick(t *testing.T) {
	retention := mockUsecase.NewMockRetentionUsecase(t)
	supervisor := mockUsecase.NewMockSupervisor(t)

	s := newRetentionScheduler(24*time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)), retention, supervisor)
	ticks := make(chan time.Time)
	var requested time.Duration
	s.newTicker = func(d time.Duration) (<-chan time.Time, func()) {
		requested = d

		return ticks, func() {}
	}

	swept := make(chan struct{}, 3)
	retention.EXPECT().SweepExpiredAlerts(mock.Anything).Return(usecase.Done("alert.retention", 3)).Times(3)
	supervisor.EXPECT().Resolve(mock.Anything, usecase.Done("alert.retention", 3)).
		Run(func(context.Context, usecase.Result) { swept <- struct{}{} }).
		Return(usecase.VerdictAck).Times(3)

	served := make(chan error)
	go func() { served <- s.Serve(context.Background()) }()

	// Initial sweep before any tick.
	<-swept

	for range 2 {
		ticks <- time.Now()
		<-swept
	}

	assert.NoError(t, s.stop(context.Background()))
	assert.NoError(t, <-served)
	assert.Equal(t, 24*time.Hour, requested)
}

func TestRetentionScheduler_SweepsOnStart(t *testing.T) {
	retention := mockUsecase.NewMockRetentionUsecase(t)
	supervisor := mockUsecase.NewMockSupervisor(t)

	s := newRetentionScheduler(24*time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)), retention, supervisor)
	s.newTicker = func(time.Duration) (<-chan time.Time, func()) {
		return make(chan time.Time), func() {}
	}

	swept := make(chan struct{}, 1)
	retention.EXPECT().SweepExpiredAlerts(mock.Anything).Return(usecase.Done("alert.retention", 0)).Once()
	supervisor.EXPECT().Resolve(mock.Anything, usecase.Done("alert.retention", 0)).
		Run(func(context.Context, usecase.Result) { swept <- struct{}{} }).
		Return(usecase.VerdictAck).Once()

	served := make(chan error)
	go func() { served <- s.Serve(context.Background()) }()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("no sweep without a tick")
	}

	assert.NoError(t, s.stop(context.Background()))
	assert.NoError(t, <-served)
}

func TestRetentionScheduler_DefaultsInterval(t *testing.T) {
	s := newRetentionScheduler(0, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil)

	assert.Equal(t, 24*time.Hour, s.interval)
}
