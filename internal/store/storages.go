package store

import (
	"github.com/qrlogix/qrlogix-server/internal/config"
	"github.com/qrlogix/qrlogix-server/internal/logger"
)

// Storages aggregates every repository plus the shared pooled connection,
// constructed once at startup and injected into the service layer.
type Storages struct {
	UserRepository   UserRepository
	QRCodeRepository QRCodeRepository

	// DB is the shared pool handle, exposed so the diagnostics service can
	// run connectivity probes and report pool statistics.
	DB *DB
}

// NewStorages wires all repositories onto the given database connection.
// The identity repository is bound to the configured identity table.
func NewStorages(db *DB, cfg config.Identity, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, cfg.Table, logger),
		QRCodeRepository: NewQRCodeRepository(db, logger),
		DB:               db,
	}
}
