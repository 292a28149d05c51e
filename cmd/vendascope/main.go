// Command vendascope runs the authorization sidecar: an HTTP service that
// answers permission checks, point-wise access validation and collection
// filtering for callers that cannot link the engine packages directly.
package main

import (
	"context"
	"net"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/vendascope/vendascope/pkg/api"
	"github.com/vendascope/vendascope/pkg/config"
	"github.com/vendascope/vendascope/pkg/middleware"
	"github.com/vendascope/vendascope/pkg/observability"
)

const serviceVersion = "1.0.0"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := observability.NewLogger(cfg.Observability.LogLevel, os.Stdout)
	logger.Infof("Starting vendascope authorization service version %s", serviceVersion)

	ctx := context.Background()
	providers, err := observability.InitOTel(ctx, observability.OTelConfig{
		Enabled:        cfg.Observability.OTelEnabled,
		Endpoint:       cfg.Observability.OTelEndpoint,
		ServiceName:    cfg.Observability.OTelServiceName,
		ServiceVersion: cfg.Observability.OTelServiceVersion,
		Insecure:       cfg.Observability.OTelInsecure,
	}, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize OpenTelemetry")
		os.Exit(1)
	}

	metrics := observability.NewMetrics(nil)

	apiLogger := logrus.New()
	apiLogger.SetFormatter(&logrus.JSONFormatter{})

	router := mux.NewRouter()
	router.Use(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logging(logger, metrics),
		middleware.ScopeContext(metrics),
		middleware.RoutePermissions(metrics),
	)
	api.NewAuthzHandlers(apiLogger, metrics).RegisterRoutes(router)

	var handler http.Handler = router
	if cfg.Observability.OTelEnabled {
		handler = otelhttp.NewHandler(router, "vendascope")
	}

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	healthServer := newHealthServer(cfg, metrics)

	sm := observability.NewShutdownManager(logger, server, cfg.Server.ShutdownTimeout)
	sm.RegisterShutdownFunc(func(ctx context.Context) error {
		return healthServer.Shutdown(ctx)
	})
	if providers != nil {
		sm.RegisterShutdownFunc(func(ctx context.Context) error {
			return observability.ShutdownOTel(ctx, providers, logger)
		})
	}

	go func() {
		logger.Infof("Health and metrics server listening on %s", healthServer.Addr)
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Health server failed")
		}
	}()

	go func() {
		logger.Infof("Authorization server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Server failed")
			os.Exit(1)
		}
	}()

	if err := sm.WaitForShutdown(); err != nil {
		logger.WithError(err).Error("Shutdown finished with errors")
		os.Exit(1)
	}
	logger.Info("Shutdown complete")
}

// newHealthServer serves liveness, readiness and metrics on a separate port
// so probes and scrapes bypass the authorization middleware chain.
func newHealthServer(cfg *config.Config, metrics *observability.Metrics) *http.Server {
	health := observability.NewHealthChecker(serviceVersion)

	healthMux := http.NewServeMux()
	healthMux.HandleFunc("/healthz", health.Liveness)
	healthMux.HandleFunc("/readyz", health.Readiness)
	if cfg.Observability.MetricsEnabled {
		healthMux.Handle("/metrics", metrics.Handler())
	}

	return &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, cfg.Server.HealthPort),
		Handler: healthMux,
	}
}
