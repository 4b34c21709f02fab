// Package pg provides core PostgreSQL primitives shared by storage layers.
//
// Core Components:
//   - Querier: transaction-agnostic query interface (*sqlx.DB and *sqlx.Tx)
//   - Connect: pooled connection setup from the shared config
//   - WithTx: begin/commit/rollback boilerplate
//   - EscapeLike and error classification helpers
package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodways/goodways/shared/config"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Querier is satisfied by both *sqlx.DB and *sqlx.Tx, so query code works the
// same inside and outside a transaction.
type Querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

var (
	_ Querier = (*sqlx.DB)(nil)
	_ Querier = (*sqlx.Tx)(nil)
)

// ConnectionConfig holds database connection pool settings.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig suits the API server.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

// LightweightConnectionConfig suits one-shot tools and tests.
func LightweightConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 1 * time.Minute,
	}
}

func DSN(pg config.Pg) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		pg.Host, pg.Port, pg.User, pg.Password, pg.Dbname)
}

// Connect opens a pool and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config, connCfg ConnectionConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", DSN(cfg.Private.Pg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(connCfg.MaxOpenConns)
	db.SetMaxIdleConns(connCfg.MaxIdleConns)
	db.SetConnMaxLifetime(connCfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(connCfg.ConnMaxIdleTime)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// WithTx runs fn inside a transaction. An error from fn rolls back,
// otherwise the transaction is committed.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike makes s match literally inside a LIKE/ILIKE pattern.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern builds a case-insensitive substring pattern for ILIKE.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}

const foreignKeyViolation = "23503"

func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
