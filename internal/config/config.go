package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"github.com/riskibarqy/matchvision/internal/platform/logging"
	"github.com/riskibarqy/matchvision/internal/platform/resilience"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"

	IdentityMemory   = "memory"
	IdentitySupabase = "supabase"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv           string        `envconfig:"APP_ENV" default:"dev" validate:"oneof=dev stage prod"`
	ServiceName      string        `envconfig:"APP_SERVICE_NAME" default:"matchvision-api" validate:"required"`
	ServiceVersion   string        `envconfig:"APP_SERVICE_VERSION" default:"dev"`
	HTTPAddr         string        `envconfig:"APP_HTTP_ADDR" default:":8080" validate:"required"`
	ReadTimeout      time.Duration `envconfig:"APP_READ_TIMEOUT" default:"10s" validate:"gt=0"`
	WriteTimeout     time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"45s" validate:"gt=0"`
	LogLevelName     string        `envconfig:"APP_LOG_LEVEL" default:"info"`
	CORSOrigins      string        `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	DBURL            string        `envconfig:"DB_URL"`
	IdentityProvider string        `envconfig:"IDENTITY_PROVIDER" default:"memory" validate:"oneof=memory supabase"`
	OTLPHeaders      string        `envconfig:"OTEL_EXPORTER_OTLP_HEADERS"`

	APISports APISportsConfig `envconfig:"APISPORTS"`
	NewsAPI   NewsAPIConfig   `envconfig:"NEWSAPI"`
	Supabase  SupabaseConfig  `envconfig:"SUPABASE"`
	Uptrace   UptraceConfig   `envconfig:"UPTRACE"`
	Pyroscope PyroscopeConfig `envconfig:"PYROSCOPE"`
	Pprof     PprofConfig     `envconfig:"PPROF"`

	LogLevel           logging.Level `ignored:"true"`
	CORSAllowedOrigins []string      `ignored:"true"`
}

type CircuitConfig struct {
	Enabled        bool          `envconfig:"ENABLED" default:"true"`
	FailureCount   int           `envconfig:"FAILURE_COUNT" default:"5" validate:"min=1"`
	OpenTimeout    time.Duration `envconfig:"OPEN_TIMEOUT" default:"15s" validate:"gt=0"`
	HalfOpenMaxReq int           `envconfig:"HALF_OPEN_MAX_REQ" default:"2" validate:"min=1"`
}

func (c CircuitConfig) Breaker() resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		Enabled:          c.Enabled,
		FailureThreshold: c.FailureCount,
		OpenTimeout:      c.OpenTimeout,
		HalfOpenMaxReq:   c.HalfOpenMaxReq,
	}
}

type APISportsConfig struct {
	BaseURL   string        `envconfig:"BASE_URL" default:"https://v3.football.api-sports.io" validate:"required,url"`
	Key       string        `envconfig:"KEY"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"20s" validate:"gt=0"`
	RateLimit float64       `envconfig:"RATE_LIMIT" default:"5" validate:"gte=0"`
	RateBurst int           `envconfig:"RATE_BURST" default:"5" validate:"gte=0"`
	Circuit   CircuitConfig `envconfig:"CIRCUIT"`
}

type NewsAPIConfig struct {
	BaseURL string        `envconfig:"BASE_URL" default:"https://newsapi.org" validate:"required,url"`
	Key     string        `envconfig:"KEY"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"20s" validate:"gt=0"`
	Circuit CircuitConfig `envconfig:"CIRCUIT"`
}

type SupabaseConfig struct {
	URL     string        `envconfig:"URL" validate:"omitempty,url"`
	AnonKey string        `envconfig:"ANON_KEY"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
	Circuit CircuitConfig `envconfig:"CIRCUIT"`
}

type UptraceConfig struct {
	Enabled            bool   `envconfig:"ENABLED" default:"false"`
	DSN                string `envconfig:"DSN" validate:"required_if=Enabled true"`
	LogsEnabled        bool   `envconfig:"LOGS_ENABLED" default:"true"`
	RequestBodyMaxSize int    `envconfig:"REQUEST_BODY_MAX_BYTES" default:"8192" validate:"gt=0"`
}

type PyroscopeConfig struct {
	Enabled           bool          `envconfig:"ENABLED" default:"false"`
	ServerAddress     string        `envconfig:"SERVER_ADDRESS" validate:"required_if=Enabled true"`
	AppName           string        `envconfig:"APP_NAME"`
	AuthToken         string        `envconfig:"AUTH_TOKEN"`
	BasicAuthUser     string        `envconfig:"BASIC_AUTH_USER"`
	BasicAuthPassword string        `envconfig:"BASIC_AUTH_PASSWORD"`
	UploadRate        time.Duration `envconfig:"UPLOAD_RATE" default:"15s" validate:"gt=0"`
}

type PprofConfig struct {
	Enabled bool   `envconfig:"ENABLED" default:"false"`
	Addr    string `envconfig:"ADDR" default:":6060" validate:"required_if=Enabled true"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.IdentityProvider = strings.ToLower(strings.TrimSpace(cfg.IdentityProvider))
	cfg.DBURL = strings.TrimSpace(cfg.DBURL)
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)
	cfg.CORSAllowedOrigins = splitCSV(cfg.CORSOrigins)
	if strings.TrimSpace(cfg.Uptrace.DSN) == "" {
		cfg.Uptrace.DSN = parseUptraceDSNFromOTLPHeaders(cfg.OTLPHeaders)
	}
	if strings.TrimSpace(cfg.Pyroscope.AppName) == "" {
		cfg.Pyroscope.AppName = cfg.ServiceName
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.IdentityProvider == IdentitySupabase && (cfg.Supabase.URL == "" || cfg.Supabase.AnonKey == "") {
		return Config{}, fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY are required when IDENTITY_PROVIDER=supabase")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}
