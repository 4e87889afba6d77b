// Package main is the midcar command: the API server and job worker of the
// dealership backend plus the operator commands around them.
package main

import (
	"context"
	"fmt"
	"midcar/internal/config"
	"midcar/pkg/logger"
	"midcar/pkg/storage/postgres"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const configEnv = "MIDCAR_CONFIG"

// getPostgres opens the pooled storage or exits. The returned func closes it.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	db := cfg.Database
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           db.Username,
		Password:           db.Password,
		Host:               db.Host,
		Port:               db.Port,
		Database:           db.DatabaseName,
		SslMode:            db.SslMode,
		MaxOpenConnections: db.MaxOpenConnections,
		MaxIdleConnections: db.MaxIdleConnections,
		ConnMaxLifetime:    db.ConnMaxLifetime,
		ConnMaxIdleTime:    db.ConnMaxIdleTime,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to postgres", zap.String("host", db.Host), zap.Error(err))
	}

	return pgsql, func() {
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres", zap.Error(err))
		}
	}
}

func defaultConfigPath() string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}

	return "config.yml"
}

func rootCommand(cfg *config.Config) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "midcar",
		Short:         "MidCar dealership backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		// subcommands are built with cfg and read it when they run, after this
		// hook has filled it in
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			logger.Setup(cfg.Environment)
			logger.Debug(cmd.Context(), "config loaded", zap.String("path", configPath), zap.String("env", cfg.Environment))

			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(),
		"config file path, also read from "+configEnv)

	root.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		JWTCommand(cfg),
		vinCommand(cfg),
		policiesCommand(cfg),
	)

	return root
}

func main() {
	ctx := context.Background()
	cfg := &config.Config{}

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "panic", zap.Any("panic", p), zap.Stack("stack"))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	err := rootCommand(cfg).ExecuteContext(ctx)
	logger.Sync(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "midcar:", err) //nolint: forbidigo
		os.Exit(1) //nolint: gocritic
	}
}
