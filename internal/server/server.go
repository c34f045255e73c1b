package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	appteams "github.com/preston-bernstein/nfl-hq-service/internal/app/teams"
	"github.com/preston-bernstein/nfl-hq-service/internal/config"
	httpserver "github.com/preston-bernstein/nfl-hq-service/internal/http"
	"github.com/preston-bernstein/nfl-hq-service/internal/http/handlers"
	"github.com/preston-bernstein/nfl-hq-service/internal/logging"
	"github.com/preston-bernstein/nfl-hq-service/internal/metrics"
	"github.com/preston-bernstein/nfl-hq-service/internal/poller"
	"github.com/preston-bernstein/nfl-hq-service/internal/providers"
	"github.com/preston-bernstein/nfl-hq-service/internal/retry"
	"github.com/preston-bernstein/nfl-hq-service/internal/standings"
	"github.com/preston-bernstein/nfl-hq-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.TeamStore
	teamsService  *appteams.Service
	standings     *standings.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured provider and cache warmer.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ScheduleProvider) (*Server, error) {
	return newServerWithMetrics(cfg, logger, provider, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provider providers.ScheduleProvider, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	teamStore, err := store.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("load team reference table: %w", err)
	}

	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	providerName := normalizeProviderName(cfg.Provider, provider)
	if provider == nil {
		provider, providerName = newProviderFactory(logger).build(cfg)
	}

	teamSvc := appteams.NewService(teamStore)
	standingsSvc := standings.NewService(standingsConfig(cfg, providerName), teamStore, provider, logger, recorder)
	plr := poller.New(standingsSvc, logger, recorder, cfg.WarmInterval)
	httpSrv := buildHTTPServer(cfg, standingsSvc, teamSvc, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         teamStore,
		teamsService:  teamSvc,
		standings:     standingsSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
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

func standingsConfig(cfg config.Config, providerName string) standings.Config {
	sc := cfg.Standings
	return standings.Config{
		CacheTTL:     sc.CacheTTL,
		BatchSize:    sc.BatchSize,
		BatchDelay:   sc.BatchDelay,
		FetchTimeout: sc.FetchTimeout,
		Retry: retry.Policy{
			MaxRetries: sc.MaxRetries,
			BaseDelay:  sc.RetryBaseDelay,
			Multiplier: retry.DefaultMultiplier,
		},
		ComputeTimeout: sc.ComputeTimeout,
		ProviderName:   providerName,
	}
}

func buildHTTPServer(cfg config.Config, standingsSvc *standings.Service, teamSvc *appteams.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(standingsSvc, teamSvc, logger, statusFn)
	router := httpserver.NewRouter(handler, httpserver.RouterConfig{
		Logger:      logger,
		Recorder:    recorder,
		CORSOrigins: cfg.CORSOrigins,
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

// Run starts the warmer and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.poller.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop cache warmer", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", slog.Any(logging.FieldError, err))
		}
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", slog.Any(logging.FieldError, err))
		}
	}

	logging.Info(s.logger, "shutdown complete")
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
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any(logging.FieldError, err))
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(logger, name+" server failed", err)
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

// Standings exposes the standings service (useful for tests).
func (s *Server) Standings() *standings.Service {
	return s.standings
}
