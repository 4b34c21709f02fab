package pg

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate brings the schema up to date. It runs on a dedicated connection so
// closing the migrator leaves the pool open.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	log := storageLog()

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to get migration connection: %w", err)
	}

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{})
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create database migrate driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer migrator.Close()

	switch v, dirty, err := migrator.Version(); {
	case err == nil:
		log.Info("database version", "version", v, "dirty", dirty)
	case errors.Is(err, migrate.ErrNilVersion):
		log.Info("database version: nil")
	default:
		return fmt.Errorf("failed to get version: %w", err)
	}

	switch err := migrator.Up(); {
	case err == nil:
		log.Info("database was migrated")
	case errors.Is(err, migrate.ErrNoChange):
		log.Info("database is up-to-date")
	default:
		return fmt.Errorf("failed to migrate db: %w", err)
	}

	return nil
}
