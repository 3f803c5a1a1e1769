package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/qrlogix/qrlogix-server/internal/config"
	"github.com/qrlogix/qrlogix-server/internal/logger"
)

// DB wraps the pooled *sql.DB handle together with the application logger.
// The pool is the only resource shared between requests; it is constructed
// once at startup, injected into the repositories, and closed on shutdown.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectPostgres opens a bounded connection pool to PostgreSQL using the
// pgx stdlib driver and verifies connectivity with a ping.
//
// Pool limits come from cfg: MaxOpenConns bounds concurrent connections
// (acquisition queues when exhausted), MaxIdleConns controls how many are
// kept warm, and ConnMaxLifetime recycles aged connections.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connection pool
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:     conn,
		logger: log,
	}

	return db, nil
}

// postgresError extracts the PostgreSQL error code from a driver error, or
// returns the empty string when err is not a *pgconn.PgError.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
