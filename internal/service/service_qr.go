package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/store"
	"github.com/qrlogix/qrlogix-server/models"
)

// qrService is the concrete implementation of QRService.
//
// Issuance is idempotent per user: the fast path is a lookup, and the
// qr_codes unique constraint resolves the lookup-then-insert race by turning
// the losing insert into a re-read of the winner's record.
type qrService struct {
	qrRepository store.QRCodeRepository
	logger       *logger.Logger
}

// NewQRService constructs a QRService wired to the given repository.
func NewQRService(qrRepository store.QRCodeRepository, logger *logger.Logger) QRService {
	return &qrService{
		qrRepository: qrRepository,
		logger:       logger,
	}
}

// buildQRCode derives the identifier string for a fresh issuance:
// "QL-" + user id + "-" + milliseconds since epoch. The format is opaque to
// clients; uniqueness per user is guaranteed by the table constraint, not by
// the format.
func buildQRCode(userID int64, issuedAt time.Time) string {
	return "QL-" + strconv.FormatInt(userID, 10) + "-" + strconv.FormatInt(issuedAt.UnixMilli(), 10)
}

// IssueQRCode returns the QR record for the requested user, creating one on
// first call.
//
// Returns:
//   - ErrInvalidDataProvided if any required field is missing.
//   - (existing record, created=false) when the user already has a code —
//     including when a concurrent request won the insert race.
//   - (new record, created=true) after a successful insert.
//   - A wrapped storage error on any other repository failure.
func (s *qrService) IssueQRCode(ctx context.Context, req models.CreateQRRequest) (models.QRCode, bool, error) {
	log := logger.FromContext(ctx)

	if req.UserID <= 0 || req.FirstName == "" || req.LastName == "" || req.Email == "" {
		log.Error().Int64("userId", req.UserID).Msg("invalid qr issuance data provided")
		return models.QRCode{}, false, ErrInvalidDataProvided
	}

	existing, err := s.qrRepository.FindQRCodeByUserID(ctx, req.UserID)
	if err == nil {
		log.Debug().Int64("userId", req.UserID).Str("qrCode", existing.Code).Msg("user already has a qr code")
		return existing, false, nil
	}
	if !errors.Is(err, store.ErrNoQRCodeFound) {
		log.Err(err).Int64("userId", req.UserID).Msg("qr code lookup failed")
		return models.QRCode{}, false, fmt.Errorf("qr code lookup failed: %w", err)
	}

	qr := models.QRCode{
		UserID:    req.UserID,
		Code:      buildQRCode(req.UserID, time.Now()),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	created, err := s.qrRepository.CreateQRCode(ctx, qr)
	if err != nil {
		// lost the issuance race: another request inserted first
		if errors.Is(err, store.ErrQRCodeAlreadyExists) {
			winner, findErr := s.qrRepository.FindQRCodeByUserID(ctx, req.UserID)
			if findErr != nil {
				log.Err(findErr).Int64("userId", req.UserID).Msg("re-read after issuance race failed")
				return models.QRCode{}, false, fmt.Errorf("re-read after issuance race failed: %w", findErr)
			}
			return winner, false, nil
		}

		log.Err(err).Int64("userId", req.UserID).Msg("qr code creation ended with error")
		return models.QRCode{}, false, fmt.Errorf("qr code creation ended with error: %w", err)
	}

	log.Info().Int64("userId", req.UserID).Str("qrCode", created.Code).Msg("qr code created successfully")

	return created, true, nil
}

// GetQRCode looks up the QR record owned by userID.
//
// Returns:
//   - ErrInvalidDataProvided if userID is not positive.
//   - (zero record, found=false, nil error) when nothing has been issued.
//   - (record, found=true) when a record exists.
//   - A wrapped storage error on repository failure.
func (s *qrService) GetQRCode(ctx context.Context, userID int64) (models.QRCode, bool, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("userId", userID).Msg("invalid qr lookup data provided")
		return models.QRCode{}, false, ErrInvalidDataProvided
	}

	qr, err := s.qrRepository.FindQRCodeByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoQRCodeFound) {
			return models.QRCode{}, false, nil
		}
		log.Err(err).Int64("userId", userID).Msg("qr code lookup failed")
		return models.QRCode{}, false, fmt.Errorf("qr code lookup failed: %w", err)
	}

	return qr, true, nil
}
