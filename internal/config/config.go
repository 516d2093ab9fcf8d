// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"
)

// Supported cipher text policies.
const (
	TextPolicyStrict      = "strict"
	TextPolicyPassthrough = "passthrough"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int

	// DBDriver is the database driver to use ("postgres" or "mysql"). Empty disables the envelope store.
	DBDriver string
	// DBConnectionString is the connection string for the database.
	DBConnectionString string
	// DBMaxOpenConnections is the maximum number of open connections to the database.
	DBMaxOpenConnections int
	// DBMaxIdleConnections is the maximum number of idle connections in the database pool.
	DBMaxIdleConnections int
	// DBConnMaxLifetime is the maximum amount of time a connection may be reused.
	DBConnMaxLifetime time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// RateLimitEnabled indicates whether per-IP rate limiting of the API is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for the per-IP rate limiter.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int

	// CipherFillSymbol pads the last plaintext block.
	CipherFillSymbol string
	// CipherTextPolicy is "strict" (reject non-letters) or "passthrough" (keep them in place).
	CipherTextPolicy string
	// CipherMaxMessageLength bounds the message size accepted by the API (0 disables the limit).
	CipherMaxMessageLength int

	// KeyGenerationMaxAttempts bounds the random sampling of invertible key matrices.
	KeyGenerationMaxAttempts int

	// ShutdownTimeout is how long the servers wait for in-flight requests on shutdown.
	ShutdownTimeout time.Duration
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost: env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort: env.GetInt("SERVER_PORT", 8080),

		// Database configuration
		DBDriver:             env.GetString("DB_DRIVER", ""),
		DBConnectionString:   env.GetString("DB_CONNECTION_STRING", ""),
		DBMaxOpenConnections: env.GetInt("DB_MAX_OPEN_CONNECTIONS", 25),
		DBMaxIdleConnections: env.GetInt("DB_MAX_IDLE_CONNECTIONS", 5),
		DBConnMaxLifetime:    env.GetDuration("DB_CONN_MAX_LIFETIME_MINUTES", 5, time.Minute),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Rate Limiting (IP-based)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "hybridcrypt"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),

		// Cipher
		CipherFillSymbol:       env.GetString("CIPHER_FILL_SYMBOL", "X"),
		CipherTextPolicy:       env.GetString("CIPHER_TEXT_POLICY", TextPolicyStrict),
		CipherMaxMessageLength: env.GetInt("CIPHER_MAX_MESSAGE_LENGTH", 65536),

		// Key generation
		KeyGenerationMaxAttempts: env.GetInt("KEY_GENERATION_MAX_ATTEMPTS", 1000),

		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),
	}
}

// Validate checks the configuration values that cannot be defaulted silently.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.DBDriver, validation.In("postgres", "mysql")),
		validation.Field(&c.DBConnectionString, validation.When(c.DBDriver != "", validation.Required)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.CipherFillSymbol,
			validation.Required,
			validation.By(validateFillSymbol),
		),
		validation.Field(&c.CipherTextPolicy,
			validation.Required,
			validation.In(TextPolicyStrict, TextPolicyPassthrough),
		),
		validation.Field(&c.CipherMaxMessageLength, validation.Min(0)),
		validation.Field(&c.KeyGenerationMaxAttempts, validation.Required, validation.Min(1)),
	)
}

// validateFillSymbol accepts exactly one uppercase letter of the cipher alphabet.
func validateFillSymbol(value interface{}) error {
	s, _ := value.(string)
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || r < 'A' || r > 'Z' {
		return validation.NewError("validation_fill_symbol", "must be a single letter between A and Z")
	}
	return nil
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
