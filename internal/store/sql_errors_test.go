package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sqliteError(code sqlite3.ErrNo, extended sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: code, ExtendedCode: extended}
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name      string
		err       error
		want      ErrorClassification
		wantUnique bool
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable, wantUnique: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), want: NonRetryable, wantUnique: true},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
		{name: "not null violation", err: pgError(pgerrcode.NotNullViolation), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
			assert.Equal(t, tt.wantUnique, c.IsUniqueViolation(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name       string
		err        error
		want       ErrorClassification
		wantUnique bool
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "unique", err: sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintUnique), want: NonRetryable, wantUnique: true},
		{name: "primary key", err: sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintPrimaryKey), want: NonRetryable, wantUnique: true},
		{name: "not null", err: sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintNotNull), want: NonRetryable},
		{name: "busy", err: sqliteError(sqlite3.ErrBusy, 0), want: Retryable},
		{name: "wrapped locked", err: fmt.Errorf("exec: %w", sqliteError(sqlite3.ErrLocked, 0)), want: Retryable},
		{name: "postgres error", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
			assert.Equal(t, tt.wantUnique, c.IsUniqueViolation(tt.err))
		})
	}
}
