package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "BOOKSTORE"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	// PasswordPlaceholder is the token a configured connection string may
	// carry in place of the real database password.
	PasswordPlaceholder = "{DB_PASSWORD}"

	// EnvDBPassword supplies the substituted password. It is deliberately
	// unprefixed: deployment tooling injects it independently of app config.
	EnvDBPassword = "DB_PASSWORD"
)

// Environment variable names consumed via envconfig, kept as constants so
// tests can set and unset them without stringly-typed drift.
const (
	EnvAppEnv           = "BOOKSTORE_APP_ENV"
	EnvPort             = "BOOKSTORE_APP_PORT"
	EnvLogLevel         = "BOOKSTORE_LOG_LEVEL"
	EnvDBConnString     = "BOOKSTORE_DB_CONNECTION_STRING"
	EnvDBName           = "BOOKSTORE_DB_NAME"
	EnvDBSecretID       = "BOOKSTORE_DB_SECRET_ID"
	EnvSecretStoreURL   = "BOOKSTORE_SECRET_STORE_URL"
	EnvSecretTimeout    = "BOOKSTORE_SECRET_STORE_TIMEOUT"
	EnvUseSQLite        = "BOOKSTORE_USE_SQLITE"
	EnvSQLitePath       = "BOOKSTORE_SQLITE_PATH"
	EnvAutoMigrate      = "BOOKSTORE_AUTO_MIGRATE"
	EnvDBMaxOpenConns   = "BOOKSTORE_DB_MAX_OPEN_CONNS"
	EnvDBMaxIdleConns   = "BOOKSTORE_DB_MAX_IDLE_CONNS"
	EnvDBConnMaxLife    = "BOOKSTORE_DB_CONN_MAX_LIFETIME"
	EnvDBConnMaxIdle    = "BOOKSTORE_DB_CONN_MAX_IDLE_TIME"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	SecretStore  SecretStoreConfig
	FeatureFlags FeatureFlagsConfig
}

// Load builds the process-wide configuration exactly once. The result is
// treated as immutable; nothing re-reads the environment after startup.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BOOKSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"BOOKSTORE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BOOKSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BOOKSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// ConnectionString is used as-is when set, after optional password
	// placeholder substitution. When empty the secret store is consulted.
	ConnectionString string `envconfig:"BOOKSTORE_DB_CONNECTION_STRING"`
	Name             string `envconfig:"BOOKSTORE_DB_NAME" default:"bobsusedbookstore"`
	SecretID         string `envconfig:"BOOKSTORE_DB_SECRET_ID"`
	SSLMode          string `envconfig:"BOOKSTORE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BOOKSTORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BOOKSTORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BOOKSTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BOOKSTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type SecretStoreConfig struct {
	BaseURL string        `envconfig:"BOOKSTORE_SECRET_STORE_URL"`
	Timeout time.Duration `envconfig:"BOOKSTORE_SECRET_STORE_TIMEOUT" default:"10s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool   `envconfig:"BOOKSTORE_USE_SQLITE" default:"false"`
	SQLitePath  string `envconfig:"BOOKSTORE_SQLITE_PATH" default:"file::memory:?cache=shared"`
	AutoMigrate bool   `envconfig:"BOOKSTORE_AUTO_MIGRATE" default:"false"`
}
