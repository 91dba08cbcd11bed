package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"engine": map[string]any{
			"cooldownWindow":       "30m",
			"geofenceRadiusMeters": 500,
		},
		"geoIndex": map[string]any{
			"refreshInterval": "1m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "ENGINE_COOLDOWNWINDOW", want: "engine.cooldownWindow"},
		{envKey: "ENGINE_GEOFENCERADIUSMETERS", want: "engine.geofenceRadiusMeters"},
		{envKey: "GEOINDEX_REFRESHINTERVAL", want: "geoIndex.refreshInterval"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsEngineWindows(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Engine)
	assert.Equal(t, 15*time.Minute, cfg.Engine.DedupWindow)
	assert.Equal(t, 30*time.Minute, cfg.Engine.CooldownWindow)
	assert.Equal(t, 24*time.Hour, cfg.Engine.AlertRetention)
	assert.Equal(t, 500.0, cfg.Engine.GeofenceRadiusMeters)
	assert.Equal(t, 500, cfg.Engine.RetentionBatchSize)
	assert.Equal(t, "quadtree", cfg.GeoIndex.Provider)
	assert.Equal(t, 3.0, cfg.OfferPush.DefaultRadiusKm)
	assert.Equal(t, 10.0, cfg.OfferPush.MaxRadiusKm)
	assert.Nil(t, cfg.Redis)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Engine:   &EngineConfig{CooldownWindow: time.Minute},
		Redis:    &RedisConfig{Addr: "localhost:6379"},
		Listener: &ListenerConfig{Enabled: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.Engine.CooldownWindow)
	assert.Equal(t, 15*time.Minute, cfg.Engine.DedupWindow)
	assert.Equal(t, DefaultEventTTL, cfg.Redis.EventTTL)
	assert.Equal(t, DefaultListenerChannel, cfg.Listener.Channel)
}
