package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/models"
)

// qrCodeRepository is the PostgreSQL-backed implementation of
// [QRCodeRepository] over the qr_codes table.
//
// The table carries a UNIQUE constraint on user_id, so the
// one-record-per-user invariant holds even under concurrent issuance
// requests; the constraint violation is mapped to [ErrQRCodeAlreadyExists]
// and resolved by the service layer as an idempotent success.
type qrCodeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQRCodeRepository constructs a [QRCodeRepository] backed by the provided
// database connection.
func NewQRCodeRepository(db *DB, logger *logger.Logger) QRCodeRepository {
	logger.Debug().Msg("creating qr code repository")
	return &qrCodeRepository{
		db:     db,
		logger: logger,
	}
}

// CreateQRCode persists a new QR record and returns the fully populated
// [models.QRCode] with server-assigned fields (QRCodeID, IsActive,
// CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrQRCodeAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped [ErrScanningRow].
func (r *qrCodeRepository) CreateQRCode(ctx context.Context, qr models.QRCode) (models.QRCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := insertQRCodeQuery(qr)
	if err != nil {
		log.Err(err).Str("func", "*qrCodeRepository.CreateQRCode").Msg("error: building insert query")
		return models.QRCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*qrCodeRepository.CreateQRCode").Msg("error: insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.QRCode{}, ErrQRCodeAlreadyExists
		default:
			return models.QRCode{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved qr code from db
	if err := row.Scan(&qr.QRCodeID, &qr.UserID, &qr.Code, &qr.FirstName, &qr.LastName, &qr.Email, &qr.IsActive, &qr.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.QRCode{}, ErrQRCodeAlreadyExists
		}
		log.Err(err).Str("func", "*qrCodeRepository.CreateQRCode").Msg("error: scanning error")
		return models.QRCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return qr, nil
}

// FindQRCodeByUserID retrieves the QR record owned by userID.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrNoQRCodeFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *qrCodeRepository) FindQRCodeByUserID(ctx context.Context, userID int64) (models.QRCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectQRCodeByUserIDQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*qrCodeRepository.FindQRCodeByUserID").Msg("error: building select query")
		return models.QRCode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var qr models.QRCode
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&qr.QRCodeID, &qr.UserID, &qr.Code, &qr.FirstName, &qr.LastName, &qr.Email, &qr.IsActive, &qr.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QRCode{}, ErrNoQRCodeFound
		}
		log.Err(err).Str("func", "*qrCodeRepository.FindQRCodeByUserID").Msg("error: scanning error")
		return models.QRCode{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return qr, nil
}
