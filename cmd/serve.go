package main

import (
	"context"
	"errors"
	"midcar/internal/api"
	"midcar/internal/config"
	"midcar/internal/worker"
	"midcar/pkg/logger"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorker(ctx context.Context, cfg *config.Config,
	svc *services) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	options := worker.NewOptions(cfg)
	riverClient, err := worker.Start(ctx, svc.storage.Pool, svc.Inventory, options)
	if err != nil {
		logger.Fatal(ctx, "could not start background workers", zap.Error(err))
	}
	if options.Work {
		logger.Info(ctx, "background workers started", zap.Int("maxWorkers", options.MaxWorkers))
	}

	return riverClient, func(ctx context.Context) {
		if !options.Work {
			return
		}
		logger.Info(ctx, "stopping background workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop background workers", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := newServices(ctx, cfg, strg)

			riverClient, stopWorker := setupWorker(ctx, cfg, svc)
			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:        svc.Deps,
				Database:    strg,
				RiverClient: riverClient,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
		},
	}

	return cmd
}
