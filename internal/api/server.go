// Package api assembles the HTTP server of the dealership backend: the gin v1
// router, API docs, metrics, the job dashboard and the probes around it.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"midcar/internal/api/handler/v1handler"
	"midcar/internal/config"
	"midcar/pkg/controller"
	"midcar/pkg/logger"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
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

//go:embed specs/v1.yaml
var v1Spec []byte

const (
	specPath     = "/specs/v1.yaml"
	docsPath     = "/v1/docs/"
	riverUIPath  = "/riverui"
	healthPath   = "/healthz"
	pprofPath    = "/debug/pprof"
	timeoutReply = `{"code":"TIMEOUT","message":"request timed out"}`
)

// Options configures the server. Zero durations leave the net/http defaults.
type Options struct {
	SecHandlerOptions *v1handler.SecHandlerOptions

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds every request through http.TimeoutHandler.
	RequestTimeout time.Duration
	MaxHeaderBytes int

	MetricsPath string
	// Registry receives the request metrics and is served at MetricsPath.
	// Nil means the prometheus default registry.
	Registry *prometheus.Registry
	// AllowedOrigins restricts CORS to the public site; empty allows any.
	AllowedOrigins []string
}

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
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	v1handler.Deps

	// Database backs the health probe.
	Database Pinger
	// RiverClient enables the job dashboard when set.
	RiverClient *river.Client[pgx.Tx]
}

func metricsHandler(opts Options) (http.Handler, prometheus.Registerer) {
	if opts.Registry == nil {
		return promhttp.Handler(), prometheus.DefaultRegisterer
	}

	return promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}), opts.Registry
}

// healthHandler answers 200 while the database answers pings.
func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				logger.Warn(r.Context(), "health check failed", zap.Error(err))
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)

				return
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}

func mountDocs(mux *http.ServeMux) {
	mux.HandleFunc(specPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	mux.Handle(docsPath, v5emb.New("MidCar API", specPath, docsPath))
}

func mountRiverUI(ctx context.Context, mux *http.ServeMux, client *river.Client[pgx.Tx]) error {
	ui, err := riverui.NewHandler(&riverui.HandlerOpts{
		Endpoints: riverui.NewEndpoints(client, nil),
		Logger:    slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
		Prefix:    riverUIPath,
	})
	if err != nil {
		return fmt.Errorf("could not create river ui: %w", err)
	}
	if err := ui.Start(ctx); err != nil {
		return fmt.Errorf("could not start river ui: %w", err)
	}
	mux.Handle(riverUIPath+"/", ui)

	return nil
}

// NewServer builds the server. ctx bounds background work of the job
// dashboard and should live as long as the server.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	metrics, registerer := metricsHandler(opts)
	mux.Handle(opts.MetricsPath, metrics)

	exporter, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	withMetrics, err := controller.WithMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter)), "v1")
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	gin.SetMode(gin.ReleaseMode)
	mux.Handle(v1handler.BasePath+"/", withMetrics(v1handler.New(deps.Deps).Router(secHandler)))

	mountDocs(mux)
	if deps.RiverClient != nil {
		if err := mountRiverUI(ctx, mux, deps.RiverClient); err != nil {
			return nil, err
		}
	}
	mux.Handle(healthPath, healthHandler(deps.Database))
	mux.Handle(pprofPath+"/", controller.PprofMux(pprofPath))

	handler := controller.WithCORS(opts.AllowedOrigins)(mux)
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutReply)
	}
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
