package main

import (
	"context"
	"database/sql"
	"fmt"
	root "midcar"
	"midcar/internal/config"
	"midcar/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSchema brings the dealership tables up to the embedded goose version.
func migrateSchema(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}

	before, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("could not read schema version: %w", err)
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not apply schema migrations: %w", err)
	}
	after, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("could not read schema version: %w", err)
	}

	logger.Info(ctx, "schema migrated", zap.Int64("from", before), zap.Int64("to", after))

	return nil
}

// migrateQueue installs the river job tables the worker and AddJob rely on.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not list queue migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if current >= latest {
		logger.Info(ctx, "queue schema up to date", zap.Int("version", current))

		return nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		return fmt.Errorf("could not migrate queue schema: %w", err)
	}
	logger.Info(ctx, "queue schema migrated", zap.Int("from", current), zap.Int("to", latest))

	return nil
}

func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Applies dealership and job queue migrations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db := strg.DB.(*sql.DB)
			if err := migrateSchema(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			if err := migrateQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river", zap.Error(err))
			}
		},
	}

	return cmd
}
