package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-novel-hub/internal/config"
	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/migrations"
)

// DB bundles the connection pool with everything that differs between the
// supported SQL engines: placeholder style and driver error classification.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, dialect string, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Dialect returns the goose dialect name of the underlying engine.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies all pending schema migrations for the engine in use.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect, db.logger)
}

// isUniqueViolation reports whether err was caused by a UNIQUE constraint.
func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator.IsUniqueViolation(err)
}

// retryable reports whether the failed operation could succeed on retry.
// Nothing is retried internally; the flag only ends up in the logs.
func (db *DB) retryable(err error) bool {
	return db.errorClassificator.Classify(err) == Retryable
}

func affectedRows(result sql.Result) (int64, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
