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

	defaultDispatchConcurrency = 8
	defaultDispatchTimeout     = 2 * time.Minute
	defaultSMSPreamble         = "SOS Guardian Alert!"
	defaultLocationMaxAge      = 10 * time.Minute
	defaultLocationDistance    = 10.0
	defaultLocationHistory     = 100
	defaultLocationRetention   = 24 * time.Hour
	defaultTimerMaxMinutes     = 24 * 60
	defaultTimerSweepSchedule  = "@every 1m"
	defaultLiveAlertRetention  = 24 * time.Hour
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

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Push selects and configures the push delivery channel
	Push *PushConfig `json:"push" yaml:"push"`

	// Firebase configuration for the fcm push provider
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// SMS selects and configures the SMS delivery channel
	SMS *SMSConfig `json:"sms" yaml:"sms"`

	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	Location *LocationConfig `json:"location" yaml:"location"`

	Timer *TimerConfig `json:"timer" yaml:"timer"`

	// PubSub configuration for alert event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig holds the connection used for the live alert projection and location history
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	// How long a resolved alert stays in the live projection
	LiveAlertRetention time.Duration `json:"liveAlertRetention" yaml:"liveAlertRetention"`
}

// PushConfig defines the push channel
type PushConfig struct {
	// Provider type: "expo", "fcm" or "mock"
	Provider     string        `json:"provider" yaml:"provider"`
	ExpoEndpoint string        `json:"expoEndpoint" yaml:"expoEndpoint"`
	AccessToken  string        `json:"accessToken" yaml:"accessToken"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// SMSConfig defines the SMS channel
type SMSConfig struct {
	// Provider type: "http" for the SMS relay endpoint or "mock"
	Provider string        `json:"provider" yaml:"provider"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// GeocodingConfig defines the reverse geocoding collaborator
type GeocodingConfig struct {
	APIKey   string        `json:"apiKey" yaml:"apiKey"`
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Language string        `json:"language" yaml:"language"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// DispatchConfig tunes the per-contact alert fan-out
type DispatchConfig struct {
	// Upper bound of contacts dispatched at the same time for one alert
	MaxConcurrency int `json:"maxConcurrency" yaml:"maxConcurrency"`

	// Deadline for the whole background fan-out of one alert
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Log the failed push attempt in addition to the SMS fallback
	AuditFallback bool `json:"auditFallback" yaml:"auditFallback"`

	// First line of every alert SMS
	SMSPreamble string `json:"smsPreamble" yaml:"smsPreamble"`
}

// LocationConfig defines how last known locations are kept and trusted
type LocationConfig struct {
	MaxAge            time.Duration `json:"maxAge" yaml:"maxAge"`
	MinDistanceMeters float64       `json:"minDistanceMeters" yaml:"minDistanceMeters"`
	HistorySize       int64         `json:"historySize" yaml:"historySize"`

	// History expiry for users who never chose one in their settings
	Retention time.Duration `json:"retention" yaml:"retention"`
}

// TimerConfig defines the safety timer engine limits
type TimerConfig struct {
	MaxDurationMinutes int `json:"maxDurationMinutes" yaml:"maxDurationMinutes"`

	// Cron expression for the overdue timer sweep
	SweepSchedule string `json:"sweepSchedule" yaml:"sweepSchedule"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
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

// applyDefaults fills optional sections so that consumers never see a nil section
func applyDefaults(cfg *Config) {
	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}
	if cfg.Redis.LiveAlertRetention <= 0 {
		cfg.Redis.LiveAlertRetention = defaultLiveAlertRetention
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.SMS == nil {
		cfg.SMS = &SMSConfig{}
	}
	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{}
	}

	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	if cfg.Dispatch.MaxConcurrency <= 0 {
		cfg.Dispatch.MaxConcurrency = defaultDispatchConcurrency
	}
	if cfg.Dispatch.Timeout <= 0 {
		cfg.Dispatch.Timeout = defaultDispatchTimeout
	}
	if strings.TrimSpace(cfg.Dispatch.SMSPreamble) == "" {
		cfg.Dispatch.SMSPreamble = defaultSMSPreamble
	}

	if cfg.Location == nil {
		cfg.Location = &LocationConfig{}
	}
	if cfg.Location.MaxAge <= 0 {
		cfg.Location.MaxAge = defaultLocationMaxAge
	}
	if cfg.Location.MinDistanceMeters <= 0 {
		cfg.Location.MinDistanceMeters = defaultLocationDistance
	}
	if cfg.Location.HistorySize <= 0 {
		cfg.Location.HistorySize = defaultLocationHistory
	}
	if cfg.Location.Retention <= 0 {
		cfg.Location.Retention = defaultLocationRetention
	}

	if cfg.Timer == nil {
		cfg.Timer = &TimerConfig{}
	}
	if cfg.Timer.MaxDurationMinutes <= 0 {
		cfg.Timer.MaxDurationMinutes = defaultTimerMaxMinutes
	}
	if strings.TrimSpace(cfg.Timer.SweepSchedule) == "" {
		cfg.Timer.SweepSchedule = defaultTimerSweepSchedule
	}
}
