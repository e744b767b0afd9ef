package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAppName         = "intasend-relay"
	defaultAppEnv          = "development"
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultShutdownDelay   = 10 * time.Second
	defaultIdempotencyTTL  = 24 * time.Hour
	defaultGatewayTimeout  = 30 * time.Second
	defaultBankCodesTTL    = 24 * time.Hour
	defaultRateLimit       = 120
	defaultQRSize          = 256
	idemTTLSecondsEnvVar   = "IDEMPOTENCY_TTL_SECONDS"
	idemTTLDurEnvVar       = "IDEMPOTENCY_TTL"
	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	DatabaseURL    string
	RedisURL       string
	ShutdownPeriod time.Duration
	IdempotencyTTL time.Duration

	Gateway Gateway

	RelayKeyHashes     []string
	RateLimitPerMinute int
	BankCodesTTL       time.Duration
	QRSize             int
}

// Gateway holds the IntaSend credentials and transport settings.
type Gateway struct {
	PublishableKey string
	SecretKey      string
	TestMode       bool
	BaseURL        string
	Timeout        time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		AppName:            getEnv("APP_NAME", defaultAppName),
		AppEnv:             getEnv("APP_ENV", defaultAppEnv),
		Port:               getEnv("PORT", defaultPort),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		ShutdownPeriod:     defaultShutdownDelay,
		IdempotencyTTL:     defaultIdempotencyTTL,
		RelayKeyHashes:     splitList(os.Getenv("RELAY_KEY_HASHES")),
		RateLimitPerMinute: defaultRateLimit,
		BankCodesTTL:       defaultBankCodesTTL,
		QRSize:             defaultQRSize,
		Gateway: Gateway{
			PublishableKey: os.Getenv("INTASEND_PUBLISHABLE_KEY"),
			SecretKey:      os.Getenv("INTASEND_SECRET_KEY"),
			TestMode:       true,
			BaseURL:        os.Getenv("INTASEND_BASE_URL"),
			Timeout:        defaultGatewayTimeout,
		},
	}

	var err error
	if cfg.ShutdownPeriod, err = secondsOrDuration(shutdownSecondsEnvVar, shutdownDurationEnvVar, cfg.ShutdownPeriod); err != nil {
		return Config{}, err
	}
	if cfg.IdempotencyTTL, err = secondsOrDuration(idemTTLSecondsEnvVar, idemTTLDurEnvVar, cfg.IdempotencyTTL); err != nil {
		return Config{}, err
	}
	if cfg.BankCodesTTL, err = duration("BANK_CODES_TTL", cfg.BankCodesTTL); err != nil {
		return Config{}, err
	}
	if cfg.Gateway.Timeout, err = duration("INTASEND_TIMEOUT", cfg.Gateway.Timeout); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitPerMinute, err = integer("RATE_LIMIT_PER_MINUTE", cfg.RateLimitPerMinute); err != nil {
		return Config{}, err
	}
	if cfg.QRSize, err = integer("QR_SIZE", cfg.QRSize); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("INTASEND_TEST_MODE"); v != "" {
		testMode, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid INTASEND_TEST_MODE: %w", err)
		}
		cfg.Gateway.TestMode = testMode
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Gateway.PublishableKey == "" {
		return fmt.Errorf("INTASEND_PUBLISHABLE_KEY must be set")
	}
	if c.Gateway.SecretKey == "" {
		return fmt.Errorf("INTASEND_SECRET_KEY must be set")
	}
	if c.IsDev() {
		return nil
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", c.AppEnv)
	}
	if c.RedisURL == "" {
		return fmt.Errorf("REDIS_URL must be set when APP_ENV=%s", c.AppEnv)
	}
	if len(c.RelayKeyHashes) == 0 {
		return fmt.Errorf("RELAY_KEY_HASHES must be set when APP_ENV=%s", c.AppEnv)
	}
	return nil
}

// IsDev reports whether the service runs in a local or development environment.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func secondsOrDuration(secondsKey, durationKey string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(secondsKey); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", secondsKey, err)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	return duration(durationKey, fallback)
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func integer(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
