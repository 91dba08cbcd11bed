package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"geolead/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn(`SELECT * FROM "merchants"`), nil)

	assert.Contains(t, buf.String(), "[Store] slow query")
}

func TestGormSlogLogger_AdvisoryLockWaitIsNotSlow(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT pg_advisory_xact_lock(hashtext('m1_+91_offer_view'))"), nil)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_Errors(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT * FROM "leads"`), gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn(`UPDATE "leads"`), errors.New("connection reset"))
	assert.Contains(t, buf.String(), "[Store] query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(true)

	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT * FROM "customers"`), nil)

	assert.Contains(t, buf.String(), "[Store] query")
}
