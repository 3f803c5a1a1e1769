package store

import (
	"context"

	"github.com/qrlogix/qrlogix-server/models"
)

// UserRepository is the data-access contract for identity records.
type UserRepository interface {
	// CreateUser inserts a new identity record and returns it with the
	// server-assigned UserID and timestamps populated.
	// Returns ErrEmailAlreadyExists when the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up an identity record by exact email match.
	// Returns ErrNoUserWasFound when no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// QRCodeRepository is the data-access contract for issued QR identifiers.
type QRCodeRepository interface {
	// CreateQRCode inserts a new QR record and returns it with the
	// server-assigned id and creation timestamp populated.
	// Returns ErrQRCodeAlreadyExists when the user already has a record.
	CreateQRCode(ctx context.Context, qr models.QRCode) (models.QRCode, error)

	// FindQRCodeByUserID looks up the QR record owned by the given user.
	// Returns ErrNoQRCodeFound when none has been issued.
	FindQRCodeByUserID(ctx context.Context, userID int64) (models.QRCode, error)
}
