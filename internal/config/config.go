package config

import (
	"fmt"
	"time"
)

// Environment variable names for the database settings. The diagnostics
// endpoint probes these with os.LookupEnv to report presence flags, so they
// are exported alongside the fallback defaults.
const (
	EnvDBHost     = "STORAGE_DB_HOST"
	EnvDBPort     = "STORAGE_DB_PORT"
	EnvDBUser     = "STORAGE_DB_USER"
	EnvDBPassword = "STORAGE_DB_PASSWORD"
	EnvDBName     = "STORAGE_DB_NAME"
)

// Hardcoded fallback defaults, applied after all sources are merged.
// A deployment concern rather than core logic, but the diagnostics endpoint
// echoes them back with a "NOT SET - using fallback" marker.
const (
	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBName     = "qrlogix"
	DefaultDBSSLMode  = "disable"

	DefaultHTTPAddress   = ":8080"
	DefaultIdentityTable = "users"
	DefaultUserType      = "user"

	DefaultTokenIssuer   = "qrlogix"
	DefaultTokenSignKey  = "qrlogix-insecure-dev-key"
	DefaultTokenDuration = 24 * time.Hour

	DefaultVersion = "2.0"

	DefaultMaxOpenConns    = 10
	DefaultMaxIdleConns    = 4
	DefaultConnMaxLifetime = 5 * time.Minute
)

// StructuredConfig is the top-level configuration container for the qrlogix
// server. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and the
	// application version.
	App App `envPrefix:"APP_"`

	// Identity selects which identity deployment this instance serves
	// (end users or employees) and whether the QR endpoints are enabled.
	Identity Identity `envPrefix:"IDENTITY_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values controlling token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign JWT tokens issued on login.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the version string of the running application, exposed by
	// the diagnostics endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Identity unifies the two historical deployments of this API (the "qrlogix"
// user variant and the "chronyx" employee variant) into one configurable
// service: the identity table name and the QR endpoint set are deployment
// parameters instead of parallel code bases.
type Identity struct {
	// Table is the identity table name, either "users" or "employees".
	// Validated against an allowlist because it is interpolated into SQL
	// identifiers.
	// Env: IDENTITY_TABLE
	Table string `env:"TABLE"`

	// UserType is the classification written into every identity record
	// created by this instance and echoed in login responses
	// (e.g. "user", "employee").
	// Env: IDENTITY_USER_TYPE
	UserType string `env:"USER_TYPE"`

	// QREndpoints controls whether the create-qr and check-qr endpoints are
	// registered. A pointer so that an explicit "false" survives config
	// merging; unset means enabled.
	// Env: IDENTITY_QR_ENDPOINTS
	QREndpoints *bool `env:"QR_ENDPOINTS"`
}

// QREnabled reports whether the QR issuance and lookup endpoints should be
// served. Defaults to true when the setting is absent.
func (i Identity) QREnabled() bool {
	return i.QREndpoints == nil || *i.QREndpoints
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// Server holds network settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// DB holds connection settings for the PostgreSQL backend. The individual
// host/port/user/password/name fields mirror the original deployment's
// environment contract; DSN, when set, overrides them wholesale.
type DB struct {
	// Host is the database server hostname.
	// Env: STORAGE_DB_HOST
	Host string `env:"HOST"`

	// Port is the database server TCP port.
	// Env: STORAGE_DB_PORT
	Port int `env:"PORT"`

	// User is the database role used for all connections.
	// Env: STORAGE_DB_USER
	User string `env:"USER"`

	// Password is the database role's password.
	// Env: STORAGE_DB_PASSWORD
	Password string `env:"PASSWORD"`

	// Name is the database name.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`

	// SSLMode is the libpq sslmode parameter ("disable", "require", ...).
	// Env: STORAGE_DB_SSL_MODE
	SSLMode string `env:"SSL_MODE"`

	// DSN is a full connection string. When non-empty it takes precedence
	// over the individual fields above.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns bounds the connection pool size. Acquisition blocks when
	// the pool is exhausted and fails with the driver's timeout.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns is the number of idle connections kept in the pool.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`

	// ConnMaxLifetime is the maximum age of a pooled connection before it is
	// closed and replaced.
	// Env: STORAGE_DB_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`
}

// ConnectionString returns the effective pgx connection string: the DSN
// override when present, otherwise a URI assembled from the individual
// fields.
func (d DB) ConnectionString() string {
	if d.DSN != "" {
		return d.DSN
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fallback defaults are applied to any field still unset after the merge.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
