package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a new
	// identity record fails because a record with the same email already
	// exists. Raised both by the optimistic pre-insert check and by the
	// database's unique constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one identity record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrQRCodeAlreadyExists is returned when inserting a QR record collides
	// with the one-record-per-user unique constraint. Callers treat this as
	// "already issued" and re-read the existing record.
	ErrQRCodeAlreadyExists = errors.New("qr code already exists for user")

	// ErrNoQRCodeFound is returned when a user has no issued QR record.
	ErrNoQRCodeFound = errors.New("no qr code was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
