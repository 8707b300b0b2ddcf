// Package migrations holds the schema of go-novel-hub for every supported
// SQL engine and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

// dialectDirs maps a goose dialect to the directory of its migrations.
var dialectDirs = map[string]string{
	"postgres": "postgres",
	"sqlite3":  "sqlite",
}

// goose keeps its configuration in package-level state.
var gooseMu sync.Mutex

// Migrate applies all pending migrations of dialect ("postgres" or "sqlite3") to db.
func Migrate(ctx context.Context, db *sql.DB, dialect string, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, dialect)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{log})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	log.Info().Str("func", "migrations.Migrate").Str("dialect", dialect).Msg("migrations applied")
	return nil
}

// gooseLogger routes goose output into zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Str("func", "goose").Msgf(format, v...)
}

// Fatalf logs at error level; goose must not terminate the server process.
func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("func", "goose").Msgf(format, v...)
}
