package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/store"
	"github.com/qrlogix/qrlogix-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockQRCodeRepository struct {
	createQRCodeFn     func(ctx context.Context, qr models.QRCode) (models.QRCode, error)
	findQRCodeByUserFn func(ctx context.Context, userID int64) (models.QRCode, error)
}

func (m *mockQRCodeRepository) CreateQRCode(ctx context.Context, qr models.QRCode) (models.QRCode, error) {
	return m.createQRCodeFn(ctx, qr)
}

func (m *mockQRCodeRepository) FindQRCodeByUserID(ctx context.Context, userID int64) (models.QRCode, error) {
	return m.findQRCodeByUserFn(ctx, userID)
}

func validCreateQRRequest() models.CreateQRRequest {
	return models.CreateQRRequest{
		UserID:    42,
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@x.com",
	}
}

func TestIssueQRCode_CreatesOnFirstCall(t *testing.T) {
	repo := &mockQRCodeRepository{
		findQRCodeByUserFn: func(ctx context.Context, userID int64) (models.QRCode, error) {
			return models.QRCode{}, store.ErrNoQRCodeFound
		},
		createQRCodeFn: func(ctx context.Context, qr models.QRCode) (models.QRCode, error) {
			qr.QRCodeID = 1
			qr.IsActive = true
			return qr, nil
		},
	}

	qr, created, err := NewQRService(repo, logger.Nop()).IssueQRCode(context.Background(), validCreateQRRequest())
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, int64(42), qr.UserID)
	assert.Regexp(t, regexp.MustCompile(`^QL-42-\d+$`), qr.Code)
}

func TestIssueQRCode_IdempotentForExistingCode(t *testing.T) {
	existing := models.QRCode{QRCodeID: 1, UserID: 42, Code: "QL-42-1700000000000", IsActive: true}
	repo := &mockQRCodeRepository{
		findQRCodeByUserFn: func(ctx context.Context, userID int64) (models.QRCode, error) {
			return existing, nil
		},
		createQRCodeFn: func(ctx context.Context, qr models.QRCode) (models.QRCode, error) {
			t.Fatal("CreateQRCode must not be called when a code already exists")
			return models.QRCode{}, nil
		},
	}

	qr, created, err := NewQRService(repo, logger.Nop()).IssueQRCode(context.Background(), validCreateQRRequest())
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, existing.Code, qr.Code)
}

func TestIssueQRCode_LostRaceReturnsWinner(t *testing.T) {
	winner := models.QRCode{QRCodeID: 1, UserID: 42, Code: "QL-42-1699999999999", IsActive: true}
	lookups := 0
	repo := &mockQRCodeRepository{
		findQRCodeByUserFn: func(ctx context.Context, userID int64) (models.QRCode, error) {
			lookups++
			if lookups == 1 {
				// first lookup sees nothing; a concurrent request inserts in between
				return models.QRCode{}, store.ErrNoQRCodeFound
			}
			return winner, nil
		},
		createQRCodeFn: func(ctx context.Context, qr models.QRCode) (models.QRCode, error) {
			return models.QRCode{}, store.ErrQRCodeAlreadyExists
		},
	}

	qr, created, err := NewQRService(repo, logger.Nop()).IssueQRCode(context.Background(), validCreateQRRequest())
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, winner.Code, qr.Code)
	assert.Equal(t, 2, lookups)
}

func TestIssueQRCode_MissingFields(t *testing.T) {
	repo := &mockQRCodeRepository{
		findQRCodeByUserFn: func(ctx context.Context, userID int64) (models.QRCode, error) {
			t.Fatal("FindQRCodeByUserID must not be called for invalid input")
			return models.QRCode{}, nil
		},
	}
	svc := NewQRService(repo, logger.Nop())

	tests := []struct {
		name   string
		mutate func(*models.CreateQRRequest)
	}{
		{"no user id", func(r *models.CreateQRRequest) { r.UserID = 0 }},
		{"negative user id", func(r *models.CreateQRRequest) { r.UserID = -1 }},
		{"no first name", func(r *models.CreateQRRequest) { r.FirstName = "" }},
		{"no last name", func(r *models.CreateQRRequest) { r.LastName = "" }},
		{"no email", func(r *models.CreateQRRequest) { r.Email = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateQRRequest()
			tt.mutate(&req)

			_, _, err := svc.IssueQRCode(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestIssueQRCode_StorageError(t *testing.T) {
	repo := &mockQRCodeRepository{
		findQRCodeByUserFn: func(ctx context.Context, userID int64) (models.QRCode, error) {
			return models.QRCode{}, fmt.Errorf("unexpected DB error: %w", errors.New("db is down"))
		},
	}

	_, _, err := NewQRService(repo, logger.Nop()).IssueQRCode(context.Background(), validCreateQRRequest())
	assert.Error(t, err)
}

func TestGetQRCode_Found(t *testing.T) {
	existing := models.QRCode{QRCodeID: 1, UserID: 42, Code: "QL-42-1700000000000", IsActive: true}
	repo := &mockQRCodeRepository{
		findQRCodeByUserFn: func(ctx context.Context, userID int64) (models.QRCode, error) {
			return existing, nil
		},
	}

	qr, found, err := NewQRService(repo, logger.Nop()).GetQRCode(context.Background(), 42)
	require.NoError(t, err)

	assert.True(t, found)
	assert.Equal(t, existing.Code, qr.Code)
}

func TestGetQRCode_NotFoundIsNotAnError(t *testing.T) {
	repo := &mockQRCodeRepository{
		findQRCodeByUserFn: func(ctx context.Context, userID int64) (models.QRCode, error) {
			return models.QRCode{}, store.ErrNoQRCodeFound
		},
	}

	qr, found, err := NewQRService(repo, logger.Nop()).GetQRCode(context.Background(), 42)
	require.NoError(t, err)

	assert.False(t, found)
	assert.Zero(t, qr)
}

func TestGetQRCode_InvalidUserID(t *testing.T) {
	svc := NewQRService(&mockQRCodeRepository{}, logger.Nop())

	_, _, err := svc.GetQRCode(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestBuildQRCode_Format(t *testing.T) {
	code := buildQRCode(42, time.UnixMilli(1700000000000))
	assert.Equal(t, "QL-42-1700000000000", code)
}
