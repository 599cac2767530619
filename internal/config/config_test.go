package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LIGHTBNB_PRIMARY__ENV", "development")
	t.Setenv("LIGHTBNB_SERVER__PORT", "8080")
	t.Setenv("LIGHTBNB_SERVER__CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	t.Setenv("LIGHTBNB_DATABASE__HOST", "localhost")
	t.Setenv("LIGHTBNB_DATABASE__USER", "vagrant")
	t.Setenv("LIGHTBNB_DATABASE__PASSWORD", "123")
	t.Setenv("LIGHTBNB_DATABASE__NAME", "lightbnb")
	t.Setenv("LIGHTBNB_AUTH__SECRET_KEY", "0123456789abcdef0123")
}

func validBaseConfig() *Config {
	cfg := &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "8080",
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Host: "localhost",
			User: "vagrant",
			Name: "lightbnb",
		},
		Auth: AuthConfig{SecretKey: "0123456789abcdef0123"},
	}
	cfg.applyDefaults()
	return cfg
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "database.host", envKey("LIGHTBNB_DATABASE__HOST"))
	assert.Equal(t, "database.pool_size", envKey("LIGHTBNB_DATABASE__POOL_SIZE"))
	assert.Equal(t, "observability.logging.slow_query_threshold",
		envKey("LIGHTBNB_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD"))
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "lightbnb", cfg.Database.Name)
	assert.Equal(t, DefaultDatabasePort, cfg.Database.Port)
	assert.Equal(t, int32(DefaultPoolSize), cfg.Database.PoolSize)
	assert.Equal(t, DefaultConnectionTimeout, cfg.Database.ConnectionTimeout)
	assert.Equal(t, DefaultSSLMode, cfg.Database.SSLMode)
	assert.Equal(t, DefaultTokenTTL, cfg.Auth.TokenTTL)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_ReadsPoolOptions(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LIGHTBNB_DATABASE__PORT", "6543")
	t.Setenv("LIGHTBNB_DATABASE__POOL_SIZE", "25")
	t.Setenv("LIGHTBNB_DATABASE__CONNECTION_TIMEOUT", "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, int32(25), cfg.Database.PoolSize)
	assert.Equal(t, 2*time.Second, cfg.Database.ConnectionTimeout)
}

func TestLoadConfig_MissingDatabaseHost(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LIGHTBNB_DATABASE__HOST", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Host")
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validBaseConfig().Validate())
}

func TestConfig_Validate_InvalidEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Primary.Env = "moon"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Env")
}

func TestConfig_Validate_ShortSecret(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Auth.SecretKey = "short"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SecretKey")
}

func TestObservabilityConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ObservabilityConfig)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(c *ObservabilityConfig) {}},
		{
			name:    "unknown level",
			mutate:  func(c *ObservabilityConfig) { c.Logging.Level = "loud" },
			wantErr: "invalid logging level",
		},
		{
			name:    "negative slow query threshold",
			mutate:  func(c *ObservabilityConfig) { c.Logging.SlowQueryThreshold = -time.Second },
			wantErr: "slow_query_threshold",
		},
		{
			name:    "health check timeout too small",
			mutate:  func(c *ObservabilityConfig) { c.HealthChecks.Timeout = time.Millisecond },
			wantErr: "health_checks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultObservabilityConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}
