package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"draft-companion/internal/boardstore"
	"draft-companion/internal/config"
	"draft-companion/internal/draft"
	"draft-companion/internal/httpapi"
	"draft-companion/internal/logging"
	"draft-companion/internal/metrics"
	"draft-companion/internal/poller"
	"draft-companion/internal/providers"
	"draft-companion/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg            config.Config
	logger         *slog.Logger
	metrics        *metrics.Recorder
	store          *store.MemoryStore
	platform       providers.DataProvider
	playerProvider providers.PlayerProvider
	adpProvider    providers.ADPProvider
	httpServer     httpServer
	metricsServer  httpServer
	metricsStop    func(context.Context) error

	// The poller and board store exist only after bootstrap resolves the
	// draft, which happens inside Run. The mutex covers both.
	mu      sync.RWMutex
	poller  Poller
	boardDB *boardstore.Store
}

// New constructs a server with default provider wiring. The draft itself
// is resolved when Run starts, not here.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	platform, playerProvider, adpProvider := newProviderFactory(logger, recorder).build(cfg)

	s := &Server{
		cfg:            cfg,
		logger:         logger,
		metrics:        recorder,
		store:          store.NewMemoryStore(),
		platform:       platform,
		playerProvider: playerProvider,
		adpProvider:    adpProvider,
		metricsServer:  metricsSrv,
		metricsStop:    metricsShutdown,
	}
	s.httpServer = buildHTTPServer(cfg, s.store, s.pollerStatus, logger, recorder)
	return s
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, memoryStore *store.MemoryStore, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      memoryStore,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, memoryStore *store.MemoryStore, statusFn func() poller.Status, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	handler := httpapi.NewHandler(memoryStore, statusFn, logger)
	router := httpapi.NewRouter(handler)
	wrapped := httpapi.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP and metrics servers, bootstraps the draft, and runs
// the poll loop until the context is cancelled.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	if err := s.startPolling(ctx); err != nil {
		logging.Error(s.logger, "startup failed", err)
		if stop != nil {
			stop()
		}
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

// startPolling resolves the draft and launches the poll loop.
func (s *Server) startPolling(ctx context.Context) error {
	res, err := s.bootstrap(ctx)
	if err != nil {
		return err
	}

	tracker := draft.NewTracker(s.platform, res.draftID, s.logger)
	var sink poller.SnapshotSink
	if res.sink != nil {
		sink = res.sink
	}
	plr := poller.New(tracker, res.catalog, res.registry, s.store, sink, s.logger, s.metrics, time.Duration(s.cfg.PollInterval))

	s.mu.Lock()
	s.poller = plr
	s.boardDB = res.sink
	s.mu.Unlock()

	plr.Start(ctx)
	return nil
}

func (s *Server) pollerStatus() poller.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.poller == nil {
		return poller.Status{}
	}
	return s.poller.Status()
}

func (s *Server) startServer(stop context.CancelFunc) {
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
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	s.mu.RLock()
	plr := s.poller
	boardDB := s.boardDB
	s.mu.RUnlock()

	if plr != nil {
		if err := plr.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop poller", err)
		}
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			logging.Error(s.logger, "graceful shutdown failed", err)
		}
	}

	if boardDB != nil {
		if err := boardDB.Close(); err != nil {
			logging.Warn(s.logger, "board store close failed", "error", err)
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
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
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
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
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
