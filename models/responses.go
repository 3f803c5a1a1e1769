package models

import "time"

// Every endpoint answers with a JSON envelope carrying at least a `success`
// flag; failures add `message` and, for database errors, the driver-provided
// `error` text and PostgreSQL `code`. The response types below are the
// concrete per-endpoint shapes of that envelope.

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// Error carries the underlying error text verbatim when the failure
	// originated in the database or an uncaught handler error.
	Error string `json:"error,omitempty"`

	// Code carries the PostgreSQL error code (e.g. "23505") when available.
	Code string `json:"code,omitempty"`
}

// SignupResponse is returned with HTTP 201 after a successful signup.
type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginResponse is returned with HTTP 200 after a successful login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// User is the sanitized identity record: id, names, email, user type.
	User User `json:"user"`

	// Token is a signed JWT issued for the session. Informational for the
	// current mobile client; no endpoint requires it yet.
	Token string `json:"token,omitempty"`
}

// CreateQRResponse is returned by the create-qr endpoint with HTTP 201 when
// a fresh identifier was issued, or HTTP 200 when the user already had one
// (the call is idempotent and both payloads carry the same code).
type CreateQRResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	QRCode  string `json:"qrCode"`
}

// CheckQRResponse is returned by the check-qr endpoint, always with HTTP 200
// unless the lookup itself fails. QRCode is null when no identifier has been
// issued; IsActive and CreatedAt are present only alongside a code.
type CheckQRResponse struct {
	Success   bool       `json:"success"`
	HasQR     bool       `json:"hasQR"`
	QRCode    *string    `json:"qrCode"`
	IsActive  *bool      `json:"isActive,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// EnvCheck reports, per configuration value, whether it was supplied through
// the environment and the effective value in use. Absent values are rendered
// with a "NOT SET - using fallback: <default>" marker so a deployment can be
// debugged from the diagnostics endpoint alone. The password is reported as
// a presence flag only.
type EnvCheck struct {
	HasHost     bool   `json:"hasHost"`
	HasPort     bool   `json:"hasPort"`
	HasUser     bool   `json:"hasUser"`
	HasPassword bool   `json:"hasPassword"`
	HasDatabase bool   `json:"hasDatabase"`
	Host        string `json:"host"`
	Port        string `json:"port"`
	User        string `json:"user"`
	Database    string `json:"database"`
}

// PoolStats is a snapshot of the database connection pool taken while
// serving a diagnostics request.
type PoolStats struct {
	Open  int `json:"open"`
	InUse int `json:"inUse"`
	Idle  int `json:"idle"`
}

// DiagnosticsResponse is the body of the test endpoint. Diagnostics never
// fail the request: connection problems are reported inside
// DatabaseConnection with HTTP 200.
type DiagnosticsResponse struct {
	Success            bool      `json:"success"`
	Message            string    `json:"message"`
	Timestamp          time.Time `json:"timestamp"`
	Version            string    `json:"version"`
	EnvCheck           EnvCheck  `json:"envCheck"`
	DatabaseConnection string    `json:"databaseConnection"`
	Pool               PoolStats `json:"pool"`
}
