// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the FoodTrace service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"foodtrace/internal/api/handler/v1handler"
	"foodtrace/internal/config"
	"foodtrace/pkg/controller"
	"foodtrace/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	riverUIPrefix = "/riverui"
	meterName     = "foodtrace/api"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the security handler (authn/authz) for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MaxBodyBytes caps JSON and form request bodies.
	MaxBodyBytes int64
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins are the portal origins allowed to call the API cross-origin.
	AllowedOrigins []string
	// RiverUI mounts the job dashboard when a River client is provided.
	RiverUI bool

	// RateLimitRPS is the sustained per-IP request rate. Zero disables limiting.
	RateLimitRPS     float64
	RateLimitBurst   int
	RateLimitIdleTTL time.Duration
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		RiverUI:           cfg.HTTP.RiverUI,

		RateLimitRPS:     cfg.RateLimit.RPS,
		RateLimitBurst:   cfg.RateLimit.Burst,
		RateLimitIdleTTL: cfg.RateLimit.IdleTTL,
	}
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	v1handler.Deps

	// Storage backs the readiness probe. It may be nil.
	Storage Pinger
	// RiverClient backs the River UI. It may be nil.
	RiverClient *river.Client[pgx.Tx]
	// Registerer receives the OpenTelemetry exporter metrics. Defaults to
	// prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes
// - liveness and readiness probes
// - River UI, when enabled
// - pprof endpoints for profiling
// It also wraps the mux with CORS, logging, rate limiting and request metrics
// middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	registerer := deps.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	// prometheus metrics server
	mux.Handle(opts.MetricsPath, promhttp.Handler())

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Bharat FoodTrace",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1handler.New(deps.Deps, v1handler.Options{MaxBodyBytes: opts.MaxBodyBytes}).Register(mux, secHandler)

	// probes
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /readyz", readiness(deps.Storage))

	// river ui
	if opts.RiverUI && deps.RiverClient != nil {
		ui, err := newRiverUI(ctx, deps.RiverClient)
		if err != nil {
			return nil, err
		}
		mux.Handle(riverUIPrefix+"/", ui)
	}

	// pprof
	mux.Handle(controller.PprofPrefix, controller.PprofMux())

	// request metrics, must see the pattern matched by mux
	withMetrics, err := controller.WithMetrics(mp.Meter(meterName))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}
	handler := withMetrics(mux)

	// rate limit
	if opts.RateLimitRPS > 0 {
		handler = controller.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, opts.RateLimitIdleTTL).
			Middleware(handler)
	}

	// logger
	handler = controller.WithLogger(handler)

	// cors
	handler = controller.WithCORS(opts.AllowedOrigins)(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"UNAVAILABLE","detail":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func readiness(storage Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if storage != nil {
			if err := storage.Ping(r.Context()); err != nil {
				logger.Warn(r.Context(), "readiness check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)

				return
			}
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func newRiverUI(ctx context.Context, client *river.Client[pgx.Tx]) (http.Handler, error) {
	handler, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(client, nil),
		Logger:    slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
		Prefix:    riverUIPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river ui handler: %w", err)
	}
	if err := handler.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river ui handler: %w", err)
	}

	return handler, nil
}
