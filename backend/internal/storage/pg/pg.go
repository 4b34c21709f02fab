// Package pg is the PostgreSQL store for posts and comments.
package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goodways/goodways/shared/config"
	"github.com/goodways/goodways/shared/logger"
	shared_pg "github.com/goodways/goodways/shared/storage/pg"
	"github.com/jmoiron/sqlx"
)

type Storage struct {
	db  *sqlx.DB
	cfg *config.Config
}

func storageLog() *slog.Logger {
	return logger.Component("storage")
}

// New connects, applies migrations and returns a ready store.
func New(ctx context.Context, cfg *config.Config, connCfg shared_pg.ConnectionConfig) (*Storage, error) {
	log := storageLog()

	log.Info("connecting to db", "host", cfg.Private.Pg.Host, "db", cfg.Private.Pg.Dbname)
	db, err := shared_pg.Connect(ctx, cfg, connCfg)
	if err != nil {
		return nil, err
	}
	log.Info("successfully connected to db")

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Storage{db: db, cfg: cfg}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping: %w", err)
	}
	return nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
