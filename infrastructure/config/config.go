package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is used when JWT_SECRET is unset. Tokens signed with it are
// forgeable by anyone who knows the constant; the server warns at startup.
const DefaultJWTSecret = "changeme"

type Config struct {
	DatabaseURL string

	JWTSecret          string
	JWTSecretIsDefault bool
	JWTExpiration      time.Duration

	ServerPort  string
	ServerHost  string
	Environment string

	RedisURL               string
	RateLimitEnabled       bool
	RateLimitIPAttempts    int
	RateLimitIPWindow      time.Duration
	RateLimitBlockDuration time.Duration

	LogLevel               string
	LogFormat              string
	LogCorrelationIDHeader string
	LogEnableRequestLog    bool

	CORSEnabled          bool
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	BannedWords       []string
	AuditWriteTimeout time.Duration
	MaxBodyBytes      int64
	BcryptCost        int
	MetricsEnabled    bool
}

var (
	ErrMissingDatabaseURL  = errors.New("DATABASE_URL is required")
	ErrInvalidDuration     = errors.New("invalid duration format")
	ErrInvalidBcryptCost   = errors.New("BCRYPT_COST must be between 4 and 31")
	ErrInvalidAuditTimeout = errors.New("AUDIT_WRITE_TIMEOUT must be positive")
	ErrInvalidBodyLimit    = errors.New("MAX_BODY_BYTES must be positive")
)

// Load reads the configuration from the environment, loading .env first when
// it exists.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		ServerPort:             getEnvOrDefault("SERVER_PORT", "3000"),
		ServerHost:             getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
		Environment:            getEnvOrDefault("ENV", "development"),
		RedisURL:               os.Getenv("REDIS_URL"),
		RateLimitEnabled:       getEnvOrDefaultBool("RATE_LIMIT_ENABLED", false),
		RateLimitIPAttempts:    getEnvOrDefaultInt("RATE_LIMIT_IP_ATTEMPTS", 5),
		LogLevel:               getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:              getEnvOrDefault("LOG_FORMAT", "json"),
		LogCorrelationIDHeader: getEnvOrDefault("LOG_CORRELATION_ID_HEADER", "X-Correlation-ID"),
		LogEnableRequestLog:    getEnvOrDefaultBool("LOG_ENABLE_REQUEST_LOG", true),
		CORSEnabled:            getEnvOrDefaultBool("CORS_ENABLED", true),
		CORSAllowCredentials:   getEnvOrDefaultBool("CORS_ALLOW_CREDENTIALS", true),
		CORSAllowedOrigins:     parseList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "")),
		BannedWords:            parseList(strings.ToLower(os.Getenv("BANNED_WORDS"))),
		MaxBodyBytes:           int64(getEnvOrDefaultInt("MAX_BODY_BYTES", 1<<20)),
		BcryptCost:             getEnvOrDefaultInt("BCRYPT_COST", 10),
		MetricsEnabled:         getEnvOrDefaultBool("METRICS_ENABLED", true),
	}

	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DefaultJWTSecret
		cfg.JWTSecretIsDefault = true
	}

	var err error
	if cfg.JWTExpiration, err = parseDuration(getEnvOrDefault("JWT_EXPIRATION", "8h")); err != nil {
		return nil, err
	}
	if cfg.RateLimitIPWindow, err = parseDuration(getEnvOrDefault("RATE_LIMIT_IP_WINDOW", "900")); err != nil {
		return nil, err
	}
	if cfg.RateLimitBlockDuration, err = parseDuration(getEnvOrDefault("RATE_LIMIT_BLOCK_DURATION", "1800")); err != nil {
		return nil, err
	}
	if cfg.AuditWriteTimeout, err = parseDuration(getEnvOrDefault("AUDIT_WRITE_TIMEOUT", "5s")); err != nil {
		return nil, err
	}
	if cfg.AuditWriteTimeout <= 0 {
		return nil, ErrInvalidAuditTimeout
	}

	if cfg.MaxBodyBytes <= 0 {
		return nil, ErrInvalidBodyLimit
	}

	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, ErrInvalidBcryptCost
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

// parseDuration accepts plain seconds ("900") or a Go duration ("8h").
func parseDuration(value string) (time.Duration, error) {
	if n, err := strconv.Atoi(value); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, ErrInvalidDuration
	}
	return d, nil
}

func parseList(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}
