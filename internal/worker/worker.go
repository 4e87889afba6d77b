package worker

import (
	"context"
	"fmt"
	"log/slog"
	"midcar/internal/config"
	"midcar/internal/inventory"
	"midcar/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the background job client.
type Options struct {
	// MaxWorkers is the number of jobs worked concurrently on the default queue.
	MaxWorkers int
	// Work starts the job fetchers. A client with Work unset only inserts jobs,
	// which is what the API and CLI need when workers run elsewhere.
	Work bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
		Work:       cfg.Worker.Enabled,
	}
}

// Start creates the River client with every worker registered and, when
// options.Work is set, starts working jobs.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	inv inventory.Inventory,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewVINDecodeWorker(inv))

	cfg := &river.Config{
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	}
	if options.Work {
		cfg.Queues = map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(options.MaxWorkers, 1)},
		}
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}
	if !options.Work {
		return riverClient, nil
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
