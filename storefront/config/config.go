// Package config reads the VITE_* environment surface shared with the
// storefront UI. Problems are warnings in development and fatal in production.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

const Prefix = "VITE_"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

type Config struct {
	AppEnv     string `env:"APP_ENV" envDefault:"development" validate:"oneof=development production test"`
	AppVersion string `env:"APP_VERSION" envDefault:"1.0.0" validate:"required"`

	SupabaseURL       string `env:"SUPABASE_URL" validate:"required,url"`
	SupabaseAnonKey   string `env:"SUPABASE_ANON_KEY" validate:"required"`
	SupabaseJWTSecret string `env:"SUPABASE_JWT_SECRET" validate:"required,min=32"`

	// OTelEndpoint is the OTLP/HTTP URL of the error tracker.
	OTelEndpoint  string `env:"OTEL_ENDPOINT" validate:"omitempty,url"`
	RazorpayKeyID string `env:"RAZORPAY_KEY_ID" validate:"omitempty,startswith=rzp_"`

	EnableAnalytics     bool `env:"ENABLE_ANALYTICS" envDefault:"true"`
	EnableRemoteLogging bool `env:"ENABLE_REMOTE_LOGGING" envDefault:"false"`

	RateLimitRequests int   `env:"RATE_LIMIT_REQUESTS" envDefault:"100" validate:"gt=0"`
	RateLimitWindowMs int64 `env:"RATE_LIMIT_WINDOW" envDefault:"60000" validate:"gt=0"`

	CacheTTLMs    int64  `env:"CACHE_TTL" envDefault:"300000" validate:"gt=0"`
	CacheDir      string `env:"CACHE_DIR" envDefault:".cache/naaz"`
	CacheDBPath   string `env:"CACHE_DB_PATH" envDefault:".cache/naaz-cache.db"`
	CacheSecret   string `env:"CACHE_SECRET"`
	CacheMaxBytes int64  `env:"CACHE_MAX_BYTES" envDefault:"5242880" validate:"gte=0"`
	RedisURL      string `env:"REDIS_URL" validate:"omitempty,url"`

	MaxFileSize      int64    `env:"MAX_FILE_SIZE" envDefault:"5242880" validate:"gt=0"`
	AllowedFileTypes []string `env:"ALLOWED_FILE_TYPES" envSeparator:"," envDefault:"image/jpeg,image/png,image/webp"`

	TemporalHost     string `env:"TEMPORAL_HOST" envDefault:"localhost:7233" validate:"required,hostname_port"`
	EmailFunctionURL string `env:"EMAIL_FUNCTION_URL" validate:"omitempty,url"`
	LogFile          string `env:"LOG_FILE" envDefault:".cache/app_logs.jsonl"`
}

func (c Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}

func (c Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowMs) * time.Millisecond
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMs) * time.Millisecond
}

// RemoteLogging reports whether errors are forwarded to the error tracker.
func (c Config) RemoteLogging() bool {
	return c.OTelEndpoint != "" && (c.IsProduction() || c.EnableRemoteLogging)
}

// EmailFunction is the send-email edge function URL, derived from the
// Supabase URL when not set explicitly.
func (c Config) EmailFunction() string {
	if c.EmailFunctionURL != "" {
		return c.EmailFunctionURL
	}
	if c.SupabaseURL == "" {
		return ""
	}
	return strings.TrimRight(c.SupabaseURL, "/") + "/functions/v1/send-email"
}

// AllowsFileType reports whether an upload of the given MIME type is accepted.
func (c Config) AllowsFileType(mime string) bool {
	for _, t := range c.AllowedFileTypes {
		if strings.EqualFold(strings.TrimSpace(t), mime) {
			return true
		}
	}
	return false
}

var validate = validator.New()

// ErrInvalid wraps every problem found in a production config.
var ErrInvalid = errors.New("invalid configuration")

// Load parses the environment. environ overrides the process environment
// when non-nil. In production any problem is returned as an error; otherwise
// problems are returned for the caller to log and a variable that does not
// parse falls back to its default without affecting the others.
func Load(environ map[string]string) (Config, []string, error) {
	opts := env.Options{Prefix: Prefix}
	if environ != nil {
		opts.Environment = environ
	}

	// Fields that fail to parse keep their default
	cfg := Defaults()
	var problems []string
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		problems = append(problems, parseProblems(err)...)
	}
	problems = append(problems, check(cfg)...)

	if cfg.IsProduction() && len(problems) > 0 {
		return cfg, problems, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return cfg, problems, nil
}

// Defaults is the configuration with every default applied and nothing else set.
func Defaults() Config {
	var cfg Config
	_ = env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix, Environment: map[string]string{}})
	return cfg
}

func parseProblems(err error) []string {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return []string{err.Error()}
	}
	problems := make([]string, 0, len(agg.Errors))
	for _, e := range agg.Errors {
		var pe env.ParseError
		if errors.As(e, &pe) {
			problems = append(problems, fmt.Sprintf("%s: %v", envName(pe.Name), pe.Err))
			continue
		}
		problems = append(problems, e.Error())
	}
	return problems
}

func check(cfg Config) []string {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s: failed %q", envName(fe.StructField()), fe.Tag()))
	}
	return problems
}

var envNames = map[string]string{}

func init() {
	for _, f := range fieldsOf(Config{}) {
		envNames[f.name] = Prefix + f.env
	}
}

func envName(field string) string {
	if n, ok := envNames[field]; ok {
		return n
	}
	return field
}
