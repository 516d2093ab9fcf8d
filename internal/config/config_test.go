package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, "", cfg.DBDriver)
				assert.Equal(t, "", cfg.DBConnectionString)
				assert.Equal(t, 25, cfg.DBMaxOpenConnections)
				assert.Equal(t, 5, cfg.DBMaxIdleConnections)
				assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "X", cfg.CipherFillSymbol)
				assert.Equal(t, TextPolicyStrict, cfg.CipherTextPolicy)
				assert.Equal(t, 65536, cfg.CipherMaxMessageLength)
				assert.Equal(t, 1000, cfg.KeyGenerationMaxAttempts)
				assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
				assert.True(t, cfg.RateLimitEnabled)
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "hybridcrypt", cfg.MetricsNamespace)
			},
		},
		{
			name: "load custom server configuration",
			envVars: map[string]string{
				"SERVER_HOST": "localhost",
				"SERVER_PORT": "9090",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
			},
		},
		{
			name: "load custom database configuration",
			envVars: map[string]string{
				"DB_DRIVER":                    "mysql",
				"DB_CONNECTION_STRING":         "user:password@tcp(localhost:3306)/testdb",
				"DB_MAX_OPEN_CONNECTIONS":      "50",
				"DB_MAX_IDLE_CONNECTIONS":      "10",
				"DB_CONN_MAX_LIFETIME_MINUTES": "10",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mysql", cfg.DBDriver)
				assert.Equal(t, "user:password@tcp(localhost:3306)/testdb", cfg.DBConnectionString)
				assert.Equal(t, 50, cfg.DBMaxOpenConnections)
				assert.Equal(t, 10, cfg.DBMaxIdleConnections)
				assert.Equal(t, 10*time.Minute, cfg.DBConnMaxLifetime)
			},
		},
		{
			name: "load custom cipher configuration",
			envVars: map[string]string{
				"CIPHER_FILL_SYMBOL":          "Z",
				"CIPHER_TEXT_POLICY":          "passthrough",
				"CIPHER_MAX_MESSAGE_LENGTH":   "128",
				"KEY_GENERATION_MAX_ATTEMPTS": "50",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Z", cfg.CipherFillSymbol)
				assert.Equal(t, TextPolicyPassthrough, cfg.CipherTextPolicy)
				assert.Equal(t, 128, cfg.CipherMaxMessageLength)
				assert.Equal(t, 50, cfg.KeyGenerationMaxAttempts)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				err := os.Setenv(key, value)
				require.NoError(t, err)
			}

			// Load configuration
			cfg := Load()

			// Validate
			tt.validate(t, cfg)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort:               8080,
			LogLevel:                 "info",
			CipherFillSymbol:         "X",
			CipherTextPolicy:         TextPolicyStrict,
			CipherMaxMessageLength:   1024,
			KeyGenerationMaxAttempts: 1000,
		}
	}

	tests := []struct {
		name      string
		mutate    func(cfg *Config)
		shouldErr bool
	}{
		{name: "defaults are valid", mutate: func(cfg *Config) {}, shouldErr: false},
		{name: "postgres with connection string", mutate: func(cfg *Config) {
			cfg.DBDriver = "postgres"
			cfg.DBConnectionString = "postgres://localhost/db"
		}, shouldErr: false},
		{name: "driver without connection string", mutate: func(cfg *Config) {
			cfg.DBDriver = "postgres"
		}, shouldErr: true},
		{name: "unknown driver", mutate: func(cfg *Config) {
			cfg.DBDriver = "sqlite"
			cfg.DBConnectionString = "file.db"
		}, shouldErr: true},
		{name: "lowercase fill symbol", mutate: func(cfg *Config) { cfg.CipherFillSymbol = "x" }, shouldErr: true},
		{name: "two fill symbols", mutate: func(cfg *Config) { cfg.CipherFillSymbol = "XY" }, shouldErr: true},
		{name: "non letter fill symbol", mutate: func(cfg *Config) { cfg.CipherFillSymbol = "1" }, shouldErr: true},
		{name: "unknown text policy", mutate: func(cfg *Config) { cfg.CipherTextPolicy = "lenient" }, shouldErr: true},
		{name: "zero generation attempts", mutate: func(cfg *Config) { cfg.KeyGenerationMaxAttempts = 0 }, shouldErr: true},
		{name: "unknown log level", mutate: func(cfg *Config) { cfg.LogLevel = "trace" }, shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetGinMode(t *testing.T) {
	assert.Equal(t, "debug", (&Config{LogLevel: "debug"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: "info"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: ""}).GetGinMode())
}
