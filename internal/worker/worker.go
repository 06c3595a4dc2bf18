// Package worker runs the River background workers of FoodTrace.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"foodtrace/internal/catalog"
	"foodtrace/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Options configure the River client.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently on the default queue.
	MaxWorkers int
}

// NewClient builds a River client with every FoodTrace worker registered. The
// client is not started.
func NewClient(ctx context.Context,
	dbPool *pgxpool.Pool,
	catalog catalog.Catalog,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewRecallNoticeWorker(catalog))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return riverClient, nil
}

// Start builds the River client and starts processing jobs.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	catalog catalog.Catalog,
	options Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := NewClient(ctx, dbPool, catalog, options)
	if err != nil {
		return nil, err
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
