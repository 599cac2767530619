// Package config manages environment variables.
//
// It reads variables from the process environment (and the `.env`
// file when present), loads them into structured Go types, and
// validates that required values are present so they can be reused
// across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Fill defaults for optional values (pool size, timeouts, observability).
//   - Validate required values so the app fails fast on bad/missing config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix LIGHTBNB_.
	The remainder is lowercased and every double underscore becomes a
	koanf nesting delimiter, so

		LIGHTBNB_DATABASE__HOST       -> database.host       -> Config.Database.Host
		LIGHTBNB_DATABASE__POOL_SIZE  -> database.pool_size  -> Config.Database.PoolSize

	Single underscores stay inside the key name.
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "LIGHTBNB_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// RateLimit is the sustained number of requests per second allowed per
	// client IP. Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// DatabaseConfig contains the PostgreSQL connection parameters.
//
// These are the recognized connection options: host, port, user,
// password, database name, pool size and connection timeout.
type DatabaseConfig struct {
	Host              string        `koanf:"host" validate:"required"`
	Port              int           `koanf:"port" validate:"required,min=1,max=65535"`
	User              string        `koanf:"user" validate:"required"`
	Password          string        `koanf:"password"`
	Name              string        `koanf:"name" validate:"required"`
	SSLMode           string        `koanf:"ssl_mode" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	PoolSize          int32         `koanf:"pool_size" validate:"min=1"`
	ConnectionTimeout time.Duration `koanf:"connection_timeout" validate:"min=0"`
}

// AuthConfig stores session-token settings.
//
// SecretKey signs the session JWTs handed out at login. Keep it out of
// version control.
type AuthConfig struct {
	SecretKey string        `koanf:"secret_key" validate:"required,min=16"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"min=1m"`
}

// Default values applied when the matching variable is absent.
const (
	DefaultDatabasePort      = 5432
	DefaultSSLMode           = "disable"
	DefaultPoolSize          = 10
	DefaultConnectionTimeout = 5 * time.Second
	DefaultTokenTTL          = 24 * time.Hour
	DefaultReadTimeout       = 30
	DefaultWriteTimeout      = 30
	DefaultIdleTimeout       = 60
)

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, applies defaults, validates it, and returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix LIGHTBNB_
//   - Converts "__" into "." to express nesting
//   - Unmarshals into Config
//   - Applies defaults (database, server, auth, observability)
//   - Validates struct tags and the observability block
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	mainConfig.applyDefaults()

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}

	return mainConfig, nil
}

// envKey maps LIGHTBNB_DATABASE__POOL_SIZE to database.pool_size.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// applyDefaults fills every optional value the environment left empty.
//
// Observability is forced to carry the service name and the primary env
// so logs and traces are always tagged consistently.
func (c *Config) applyDefaults() {
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDatabasePort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultSSLMode
	}
	if c.Database.PoolSize == 0 {
		c.Database.PoolSize = DefaultPoolSize
	}
	if c.Database.ConnectionTimeout == 0 {
		c.Database.ConnectionTimeout = DefaultConnectionTimeout
	}

	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = DefaultIdleTimeout
	}

	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = DefaultTokenTTL
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env
	if c.Observability.Logging.Level == "" {
		c.Observability.Logging.Level = c.Observability.GetLogLevel()
	}
	if c.Observability.Logging.Format == "" {
		c.Observability.Logging.Format = "json"
	}
	if c.Observability.HealthChecks.Timeout == 0 {
		c.Observability.HealthChecks.Timeout = 5 * time.Second
	}
}

// Validate runs struct-tag validation and then the observability rules.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Observability != nil {
		if err := c.Observability.Validate(); err != nil {
			return fmt.Errorf("invalid observability config: %w", err)
		}
	}

	return nil
}

// IsLocal reports whether the app runs on a developer machine.
// Local mode turns on SQL trace logging.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
