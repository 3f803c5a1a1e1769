package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidIdentityTable indicates that the configured identity table
	// name is not in the allowlist ("users", "employees").
	ErrInvalidIdentityTable = errors.New("invalid identity table configuration")
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, missing host, port, or database name without a DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or zero token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
