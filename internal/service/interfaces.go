package service

import (
	"context"

	"github.com/qrlogix/qrlogix-server/models"
)

// AuthService handles identity creation and credential verification.
type AuthService interface {
	// Signup validates the request and creates a new identity record.
	// Returns ErrInvalidDataProvided before any store access when a
	// required field is missing, store.ErrEmailAlreadyExists on a
	// duplicate email, or the persisted user on success.
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)

	// Login validates the request and authenticates the credentials.
	// Returns ErrInvalidDataProvided on missing fields, ErrWrongPassword or
	// store.ErrNoUserWasFound on credential failure, or the stored user.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
}

// QRService handles issuance and lookup of per-user QR identifiers.
type QRService interface {
	// IssueQRCode returns the user's QR record, creating it first if none
	// exists. The created flag reports whether this call performed the
	// insert; repeated calls for the same user return the same record with
	// created=false, making issuance idempotent.
	IssueQRCode(ctx context.Context, req models.CreateQRRequest) (qr models.QRCode, created bool, err error)

	// GetQRCode looks up the QR record for userID. found=false with a nil
	// error means no identifier has been issued yet.
	GetQRCode(ctx context.Context, userID int64) (qr models.QRCode, found bool, err error)
}

// DiagnosticsService produces the health/configuration report served by the
// test endpoint. Reporting never fails; connectivity problems are embedded
// in the report itself.
type DiagnosticsService interface {
	Report(ctx context.Context) models.DiagnosticsResponse
}
