package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"foodtrace/internal/account"
	"foodtrace/internal/api"
	"foodtrace/internal/api/handler/v1handler"
	"foodtrace/internal/catalog"
	"foodtrace/internal/config"
	"foodtrace/internal/traceability"
	"foodtrace/internal/worker"
	"foodtrace/pkg/auth"
	"foodtrace/pkg/logger"
	"foodtrace/pkg/publisher"
	"foodtrace/pkg/publisher/kafka"

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

// getPublisher returns a Kafka producer, or a log publisher when no brokers
// are configured.
func getPublisher(ctx context.Context, cfg *config.Config) (publisher.Publisher, func()) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warn(ctx, "no kafka brokers configured, events will be logged")

		return publisher.NewLogPublisher(), func() {}
	}

	producer, err := kafka.NewProducer(kafka.Options{
		Brokers:      cfg.Kafka.Brokers,
		WriteTimeout: cfg.Kafka.WriteTimeout,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create kafka producer", zap.Error(err))
	}

	return producer, func() {
		logger.Info(ctx, "closing kafka producer...")
		if err := producer.Close(); err != nil {
			logger.Warn(ctx, "could not close kafka producer", zap.Error(err))
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

			pub, closePub := getPublisher(ctx, cfg)
			defer closePub()

			issuer, err := auth.NewIssuer(cfg.JWT.PrivateKey, cfg.JWT.TTL)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}

			accounts := account.New(strg, issuer)
			products := catalog.New(strg, pub, catalog.NewOptions(cfg))
			ledger := traceability.New(strg)

			riverClient, err := worker.Start(ctx, strg.Pool, products, worker.Options{
				MaxWorkers: cfg.Worker.MaxWorkers,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Accounts: accounts,
					Catalog:  products,
					Ledger:   ledger,
				},
				Storage:     strg,
				RiverClient: riverClient,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx, riverClient)
		},
	}

	return cmd
}

func stopWorkers(ctx context.Context, riverClient *river.Client[pgx.Tx]) {
	logger.Info(ctx, "stopping workers...")
	if err := riverClient.Stop(ctx); err != nil {
		logger.Error(ctx, "could not stop workers gracefully", zap.Error(err))
	}
}
