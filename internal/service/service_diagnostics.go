package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/qrlogix/qrlogix-server/internal/config"
	"github.com/qrlogix/qrlogix-server/internal/logger"
	"github.com/qrlogix/qrlogix-server/internal/store"
	"github.com/qrlogix/qrlogix-server/models"
)

// diagnosticsService implements DiagnosticsService. It reports which
// database settings were supplied through the environment (with the
// effective fallback values for the ones that were not), probes the
// connection pool, and snapshots pool statistics.
//
// The report never fails: a broken database shows up inside the report as a
// "Connection failed" status, not as an error.
type diagnosticsService struct {
	db      *store.DB
	version string
	logger  *logger.Logger
}

// NewDiagnosticsService constructs a DiagnosticsService probing the given
// pool handle.
func NewDiagnosticsService(db *store.DB, cfg config.App, logger *logger.Logger) DiagnosticsService {
	return &diagnosticsService{
		db:      db,
		version: cfg.Version,
		logger:  logger,
	}
}

// envValue returns the environment variable's value when set, or a marker
// naming the fallback in use. The historical deployment reported its
// configuration exactly this way.
func envValue(name, fallback string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	return "NOT SET - using fallback: " + fallback, false
}

// Report assembles the diagnostics body for the test endpoint.
func (s *diagnosticsService) Report(ctx context.Context) models.DiagnosticsResponse {
	log := logger.FromContext(ctx)

	var check models.EnvCheck
	check.Host, check.HasHost = envValue(config.EnvDBHost, config.DefaultDBHost)
	check.Port, check.HasPort = envValue(config.EnvDBPort, strconv.Itoa(config.DefaultDBPort))
	check.User, check.HasUser = envValue(config.EnvDBUser, config.DefaultDBUser)
	check.Database, check.HasDatabase = envValue(config.EnvDBName, config.DefaultDBName)
	_, check.HasPassword = os.LookupEnv(config.EnvDBPassword)

	dbStatus := "Connected successfully!"
	if err := s.db.PingContext(ctx); err != nil {
		log.Err(err).Msg("diagnostics ping failed")
		dbStatus = fmt.Sprintf("Connection failed: %v", err)
	}

	stats := s.db.Stats()

	return models.DiagnosticsResponse{
		Success:            true,
		Message:            "API is working! (full diagnostics)",
		Timestamp:          time.Now().UTC(),
		Version:            s.version,
		EnvCheck:           check,
		DatabaseConnection: dbStatus,
		Pool: models.PoolStats{
			Open:  stats.OpenConnections,
			InUse: stats.InUse,
			Idle:  stats.Idle,
		},
	}
}
