package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/models"
)

func newTestQRRepo(t *testing.T) (*qrCodeRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &qrCodeRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func qrRows(qr models.QRCode, id int64, now time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"qr_code_id", "user_id", "qr_code", "first_name", "last_name", "email", "is_active", "created_at"}).
		AddRow(id, qr.UserID, qr.Code, qr.FirstName, qr.LastName, qr.Email, true, now)
}

func TestCreateQRCode_Success(t *testing.T) {
	repo, mock, db := newTestQRRepo(t)
	defer db.Close()

	qr := models.QRCode{
		UserID:    42,
		Code:      "QL-42-1700000000000",
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "ann@x.com",
	}

	mock.ExpectQuery("INSERT INTO qr_codes").
		WithArgs(qr.UserID, qr.Code, qr.FirstName, qr.LastName, qr.Email).
		WillReturnRows(qrRows(qr, 5, time.Now()))

	created, err := repo.CreateQRCode(context.Background(), qr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.QRCodeID != 5 {
		t.Errorf("expected QRCodeID=5, got %d", created.QRCodeID)
	}
	if !created.IsActive {
		t.Error("expected created record to be active")
	}
	if created.Code != qr.Code {
		t.Errorf("expected code %s, got %s", qr.Code, created.Code)
	}
}

func TestCreateQRCode_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestQRRepo(t)
	defer db.Close()

	qr := models.QRCode{UserID: 42, Code: "QL-42-1700000000000"}

	mock.ExpectQuery("INSERT INTO qr_codes").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateQRCode(context.Background(), qr)
	if !errors.Is(err, ErrQRCodeAlreadyExists) {
		t.Fatalf("expected ErrQRCodeAlreadyExists, got %v", err)
	}
}

func TestCreateQRCode_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestQRRepo(t)
	defer db.Close()

	qr := models.QRCode{UserID: 42, Code: "QL-42-1700000000000"}

	mock.ExpectQuery("INSERT INTO qr_codes").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateQRCode(context.Background(), qr)
	if err == nil || errors.Is(err, ErrQRCodeAlreadyExists) {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindQRCodeByUserID_Success(t *testing.T) {
	repo, mock, db := newTestQRRepo(t)
	defer db.Close()

	qr := models.QRCode{UserID: 42, Code: "QL-42-1700000000000", FirstName: "Ann", LastName: "Lee", Email: "ann@x.com"}

	mock.ExpectQuery("SELECT (.+) FROM qr_codes").
		WithArgs(int64(42)).
		WillReturnRows(qrRows(qr, 5, time.Now()))

	found, err := repo.FindQRCodeByUserID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", found.UserID)
	}
	if found.Code != qr.Code {
		t.Errorf("expected code %s, got %s", qr.Code, found.Code)
	}
}

func TestFindQRCodeByUserID_NotFound(t *testing.T) {
	repo, mock, db := newTestQRRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM qr_codes").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindQRCodeByUserID(context.Background(), 99)
	if !errors.Is(err, ErrNoQRCodeFound) {
		t.Fatalf("expected ErrNoQRCodeFound, got %v", err)
	}
}
