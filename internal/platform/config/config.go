package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Exchange rates
	RatesAPIURL         string
	RatesBaseCurrency   string
	RatesCacheFile      string
	RatesMaxAge         time.Duration // 0 = cached table never expires
	RatesFetchTimeout   time.Duration
	RatesFetchRetries   uint64
	RatesRetryBackoff   time.Duration
	RatesFetchPerSecond int

	// Sessions and history
	HistoryCapacity    int
	HistoryMaxSessions int // 0 = unbounded
	SessionCookieName  string
	SessionSecret      string
	SessionIdleTimeout time.Duration // 0 = sessions never expire

	// HTTP edge
	RateLimit          string
	CORSAllowedOrigins []string
	PosthogAPIKey      string
}

// defaultSessionSecret signs session cookies outside production only.
const defaultSessionSecret = "smart-converter-dev-secret"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("RATES_API_URL", "https://api.exchangerate-api.com/v4/latest")
	v.SetDefault("RATES_BASE_CURRENCY", "USD")
	v.SetDefault("RATES_CACHE_FILE", "currency_rates.json")
	v.SetDefault("RATES_MAX_AGE", "0")
	v.SetDefault("RATES_FETCH_TIMEOUT", "10s")
	v.SetDefault("RATES_FETCH_RETRIES", "0")
	v.SetDefault("RATES_RETRY_BACKOFF", "500ms")
	v.SetDefault("RATES_FETCH_PER_SECOND", "1")
	v.SetDefault("HISTORY_CAPACITY", "10")
	v.SetDefault("HISTORY_MAX_SESSIONS", "10000")
	v.SetDefault("SESSION_COOKIE_NAME", "sc_session")
	v.SetDefault("SESSION_SECRET", defaultSessionSecret)
	v.SetDefault("SESSION_IDLE_TIMEOUT", "24h")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("POSTHOG_API_KEY", "")
}

// LoadConfig loads configuration from environment variables and .env file if present.
// Every invalid value is reported in the returned error.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var errs *multierror.Error
	p := parser{v: v, errs: &errs}

	cfg := &Config{
		Port:                strings.TrimSpace(v.GetString("PORT")),
		IsProduction:        p.bool("IS_PRODUCTION"),
		LogLevel:            p.level("LOG_LEVEL"),
		RatesAPIURL:         strings.TrimSpace(v.GetString("RATES_API_URL")),
		RatesBaseCurrency:   strings.ToUpper(strings.TrimSpace(v.GetString("RATES_BASE_CURRENCY"))),
		RatesCacheFile:      strings.TrimSpace(v.GetString("RATES_CACHE_FILE")),
		RatesMaxAge:         p.duration("RATES_MAX_AGE"),
		RatesFetchTimeout:   p.duration("RATES_FETCH_TIMEOUT"),
		RatesFetchRetries:   uint64(p.nonNegativeInt("RATES_FETCH_RETRIES")),
		RatesRetryBackoff:   p.duration("RATES_RETRY_BACKOFF"),
		RatesFetchPerSecond: p.nonNegativeInt("RATES_FETCH_PER_SECOND"),
		HistoryCapacity:     p.nonNegativeInt("HISTORY_CAPACITY"),
		HistoryMaxSessions:  p.nonNegativeInt("HISTORY_MAX_SESSIONS"),
		SessionCookieName:   strings.TrimSpace(v.GetString("SESSION_COOKIE_NAME")),
		SessionSecret:       v.GetString("SESSION_SECRET"),
		SessionIdleTimeout:  p.duration("SESSION_IDLE_TIMEOUT"),
		RateLimit:           strings.TrimSpace(v.GetString("RATE_LIMIT")),
		CORSAllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:       strings.TrimSpace(v.GetString("POSTHOG_API_KEY")),
	}

	if cfg.Port == "" {
		errs = multierror.Append(errs, fmt.Errorf("PORT must not be empty"))
	}
	if cfg.RatesAPIURL == "" {
		errs = multierror.Append(errs, fmt.Errorf("RATES_API_URL must not be empty"))
	}
	if len(cfg.RatesBaseCurrency) != 3 {
		errs = multierror.Append(errs, fmt.Errorf("RATES_BASE_CURRENCY %q must be a 3-letter code", cfg.RatesBaseCurrency))
	}
	if cfg.RatesCacheFile == "" {
		errs = multierror.Append(errs, fmt.Errorf("RATES_CACHE_FILE must not be empty"))
	}
	if cfg.SessionCookieName == "" {
		errs = multierror.Append(errs, fmt.Errorf("SESSION_COOKIE_NAME must not be empty"))
	}
	if cfg.SessionSecret == "" {
		errs = multierror.Append(errs, fmt.Errorf("SESSION_SECRET must not be empty"))
	} else if cfg.IsProduction && cfg.SessionSecret == defaultSessionSecret {
		errs = multierror.Append(errs, fmt.Errorf("SESSION_SECRET must be set in production"))
	}
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("RATE_LIMIT %q: %w", cfg.RateLimit, err))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

type parser struct {
	v    *viper.Viper
	errs **multierror.Error
}

func (p parser) fail(key, raw string, err error) {
	*p.errs = multierror.Append(*p.errs, fmt.Errorf("%s %q: %w", key, raw, err))
}

func (p parser) bool(key string) bool {
	raw := strings.TrimSpace(p.v.GetString(key))
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, raw, err)
	}
	return b
}

func (p parser) duration(key string) time.Duration {
	raw := strings.TrimSpace(p.v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, raw, err)
		return 0
	}
	if d < 0 {
		p.fail(key, raw, fmt.Errorf("must not be negative"))
		return 0
	}
	return d
}

func (p parser) nonNegativeInt(key string) int {
	raw := strings.TrimSpace(p.v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw, err)
		return 0
	}
	if n < 0 {
		p.fail(key, raw, fmt.Errorf("must not be negative"))
		return 0
	}
	return n
}

func (p parser) level(key string) slog.Level {
	raw := strings.TrimSpace(p.v.GetString(key))
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		p.fail(key, raw, err)
		return slog.LevelInfo
	}
	return lvl
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
