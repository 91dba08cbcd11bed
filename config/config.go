package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

const (
	DefaultDedupWindow            = 15 * time.Minute
	DefaultCooldownWindow         = 30 * time.Minute
	DefaultAlertRetention         = 24 * time.Hour
	DefaultAlertRetentionInterval = 24 * time.Hour
	DefaultRetentionBatchSize     = 500
	DefaultGeofenceRadiusMeters   = 500.0

	DefaultEventTTL        = 24 * time.Hour
	DefaultEventLease      = 2 * time.Minute
	DefaultListenerChannel = "geolead_events"

	DefaultPushRatePerSecond = 50.0
	DefaultPushBurst         = 10

	DefaultGeoIndexRefresh = time.Minute

	DefaultOfferRadiusKm   = 3.0
	DefaultOfferMaxRadius  = 10.0
	DefaultOfferPushWorker = 8
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing and push authentication
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis backs inbound event idempotency
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Listener consumes pg_notify mutation events
	Listener *ListenerConfig `json:"listener" yaml:"listener"`

	// Engine holds the dedup, cooldown and retention windows
	Engine *EngineConfig `json:"engine" yaml:"engine"`

	// Push throttles outbound push sends
	Push *PushConfig `json:"push" yaml:"push"`

	// GeoIndex selects the merchant proximity lookup
	GeoIndex *GeoIndexConfig `json:"geoIndex" yaml:"geoIndex"`

	// OfferPush configures offer-created pushes to nearby customers
	OfferPush *OfferPushConfig `json:"offerPush" yaml:"offerPush"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "none" to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push OIDC tokens; empty disables verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// RedisConfig defines the idempotency store. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `json:"addr" yaml:"addr"`
	Password string        `json:"password" yaml:"password"`
	DB       int           `json:"db" yaml:"db"`
	EventTTL time.Duration `json:"eventTTL" yaml:"eventTTL"`
	// EventLease bounds how long an unfinished delivery blocks redeliveries
	EventLease time.Duration `json:"eventLease" yaml:"eventLease"`
}

// ListenerConfig defines the pg_notify consumer
type ListenerConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Channel string `json:"channel" yaml:"channel"`
	// DSN of the dedicated LISTEN connection; required when Enabled
	DSN string `json:"dsn" yaml:"dsn"`
}

// EngineConfig defines the engine windows
type EngineConfig struct {
	DedupWindow            time.Duration `json:"dedupWindow" yaml:"dedupWindow"`
	CooldownWindow         time.Duration `json:"cooldownWindow" yaml:"cooldownWindow"`
	AlertRetention         time.Duration `json:"alertRetention" yaml:"alertRetention"`
	AlertRetentionInterval time.Duration `json:"alertRetentionInterval" yaml:"alertRetentionInterval"`
	RetentionBatchSize     int           `json:"retentionBatchSize" yaml:"retentionBatchSize"`
	GeofenceRadiusMeters   float64       `json:"geofenceRadiusMeters" yaml:"geofenceRadiusMeters"`
}

// PushConfig defines the outbound push token bucket
type PushConfig struct {
	RatePerSecond float64 `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int     `json:"burst" yaml:"burst"`
}

// GeoIndexConfig defines the merchant proximity lookup
type GeoIndexConfig struct {
	// Provider: "quadtree" for the in-memory index, "database" for bounding-box queries
	Provider        string        `json:"provider" yaml:"provider"`
	RefreshInterval time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
}

// OfferPushConfig defines offer push radii
type OfferPushConfig struct {
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MaxRadiusKm     float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
	Concurrency     int     `json:"concurrency" yaml:"concurrency"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

// applyDefaults fills zero values with the engine defaults.
func applyDefaults(cfg *Config) {
	if cfg.Engine == nil {
		cfg.Engine = &EngineConfig{}
	}
	cfg.Engine.WithDefaults()

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.RatePerSecond <= 0 {
		cfg.Push.RatePerSecond = DefaultPushRatePerSecond
	}
	if cfg.Push.Burst <= 0 {
		cfg.Push.Burst = DefaultPushBurst
	}

	if cfg.GeoIndex == nil {
		cfg.GeoIndex = &GeoIndexConfig{}
	}
	if cfg.GeoIndex.Provider == "" {
		cfg.GeoIndex.Provider = "quadtree"
	}
	if cfg.GeoIndex.RefreshInterval <= 0 {
		cfg.GeoIndex.RefreshInterval = DefaultGeoIndexRefresh
	}

	if cfg.OfferPush == nil {
		cfg.OfferPush = &OfferPushConfig{}
	}
	cfg.OfferPush.WithDefaults()

	if cfg.Redis != nil {
		if cfg.Redis.EventTTL <= 0 {
			cfg.Redis.EventTTL = DefaultEventTTL
		}
		if cfg.Redis.EventLease <= 0 {
			cfg.Redis.EventLease = DefaultEventLease
		}
	}

	if cfg.Listener != nil && cfg.Listener.Channel == "" {
		cfg.Listener.Channel = DefaultListenerChannel
	}
}

// WithDefaults fills unset windows and returns the receiver.
func (c *EngineConfig) WithDefaults() *EngineConfig {
	if c.DedupWindow <= 0 {
		c.DedupWindow = DefaultDedupWindow
	}
	if c.CooldownWindow <= 0 {
		c.CooldownWindow = DefaultCooldownWindow
	}
	if c.AlertRetention <= 0 {
		c.AlertRetention = DefaultAlertRetention
	}
	if c.AlertRetentionInterval <= 0 {
		c.AlertRetentionInterval = DefaultAlertRetentionInterval
	}
	if c.RetentionBatchSize <= 0 {
		c.RetentionBatchSize = DefaultRetentionBatchSize
	}
	if c.GeofenceRadiusMeters <= 0 {
		c.GeofenceRadiusMeters = DefaultGeofenceRadiusMeters
	}

	return c
}

// WithDefaults fills unset radii and returns the receiver.
func (c *OfferPushConfig) WithDefaults() *OfferPushConfig {
	if c.DefaultRadiusKm <= 0 {
		c.DefaultRadiusKm = DefaultOfferRadiusKm
	}
	if c.MaxRadiusKm <= 0 {
		c.MaxRadiusKm = DefaultOfferMaxRadius
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultOfferPushWorker
	}

	return c
}
