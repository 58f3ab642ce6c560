package main

import (
	"context"
	"log/slog"

	"nutria/config"
	"nutria/internal/domain/lifecycle"
	"nutria/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func runMigrate(ctx context.Context, cfg *config.Config) error {
	if cfg.Postgres == nil {
		return errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := postgres.Migrate(db.WithContext(ctx)); err != nil {
		return err
	}

	slog.Info("Database schema migrated")

	return nil
}
