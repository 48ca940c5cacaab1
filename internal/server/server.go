// Package server wires configuration, providers, storage, the poller,
// and the HTTP API into one runnable unit.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/alerting"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/app/advice"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/app/athletes"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/app/team"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/config"
	httpapi "github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/http"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/http/handlers"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/logging"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/metrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/poller"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns every long-lived component of the service.
type Server struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Recorder
	store   *store.MemoryStore
	storage storageComponents

	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
	airLimited    *providers.RateLimitedAirProvider
}

// New constructs a fully wired server from configuration.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	storage, err := buildStorage(cfg, logger)
	if err != nil {
		return nil, err
	}

	memoryStore := store.NewMemoryStore(cfg.Synthetic.Days)
	providerSet := newProviderFactory(logger, recorder).build(cfg, storage.cache)

	engine := alerting.NewEngine(storage.alerts, memoryStore, logger, recorder)
	if err := engine.WarmStart(context.Background()); err != nil && logger != nil {
		logger.Warn("alert warm start failed", "err", err)
	}

	snaps := buildSnapshots(cfg, providerSet.team, memoryStore, logger)

	plr := poller.New(poller.Deps{
		Provider: providerSet.team,
		Air:      providerSet.air,
		Store:    memoryStore,
		Alerts:   engine,
		Writer:   snaps.writer,
		Logger:   logger,
		Metrics:  recorder,
	}, cfg.PollInterval)

	httpSrv := buildHTTPServer(cfg, memoryStore, storage, snaps, providerSet, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		storage:       storage,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
		airLimited:    providerSet.airLimited,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, storage storageComponents, snaps snapshotComponents, providerSet providerSet, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	athleteSvc := athletes.NewService(memoryStore)
	teamSvc := team.NewService(memoryStore, storage.alerts)
	adviceSvc := advice.NewService(memoryStore, storage.catalog)

	handler := handlers.NewHandler(handlers.Deps{
		Athletes: athleteSvc,
		Team:     teamSvc,
		Advice:   adviceSvc,
		Alerts:   storage.alerts,
		Snaps:    snaps.store,
		Logger:   logger,
		StatusFn: statusFn,
	})
	admin := handlers.NewAdminHandler(snaps.writer, providerSet.team, storage.catalog, logger)
	auth := handlers.NewAuthHandler(cfg.Auth, logger)

	router := httpapi.NewRouter(httpapi.RouterConfig{
		Handler:    handler,
		Auth:       auth,
		Admin:      admin,
		JWTSecret:  cfg.Auth.JWTSecret,
		AdminToken: cfg.Auth.AdminToken,
		Logger:     logger,
		Metrics:    recorder,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Release the air provider ticker and close persistence handles.
	if s.airLimited != nil {
		s.airLimited.Close()
	}
	if s.storage.alerts != nil {
		if err := s.storage.alerts.Close(); err != nil && s.logger != nil {
			s.logger.Warn("alert log close failed", "error", err)
		}
	}
	if s.storage.cacheClose != nil {
		if err := s.storage.cacheClose(); err != nil && s.logger != nil {
			s.logger.Warn("cache close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
