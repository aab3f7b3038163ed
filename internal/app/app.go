package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/courtside/external/predictor"
	"github.com/riskibarqy/courtside/internal/config"
	"github.com/riskibarqy/courtside/internal/controller/recent"
	"github.com/riskibarqy/courtside/internal/infrastructure/export"
	"github.com/riskibarqy/courtside/internal/infrastructure/recentsearch"
	"github.com/riskibarqy/courtside/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/courtside/internal/platform/id"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/platform/resilience"
	"github.com/riskibarqy/courtside/internal/platform/runner"
	"github.com/riskibarqy/courtside/internal/usecase"
	"github.com/riskibarqy/courtside/internal/view/anim"
)

// App owns every long-lived resource behind the HTTP server.
type App struct {
	Server   *http.Server
	Sessions *usecase.SessionManager

	cfg       config.Config
	logger    *logging.Logger
	pool      *runner.Pool
	scheduler *anim.TickerScheduler
	db        *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{cfg: cfg, logger: logger}
	ok := false
	defer func() {
		if !ok {
			a.Close()
		}
	}()

	client := predictor.NewClient(predictor.ClientConfig{
		BaseURL:        cfg.PredictorBaseURL,
		Username:       cfg.PredictorUsername,
		Password:       cfg.PredictorPassword,
		Timeout:        cfg.PredictorTimeout,
		MaxRetries:     cfg.PredictorMaxRetries,
		RetryBackoff:   cfg.PredictorRetryBackoff,
		TokenTTL:       cfg.PredictorTokenTTL,
		ModelsCacheTTL: cfg.CacheTTL,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.PredictorCircuitEnabled,
			FailureThreshold: cfg.PredictorCircuitFailureCount,
			OpenTimeout:      cfg.PredictorCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.PredictorCircuitHalfOpenMaxReq,
		},
	})

	pool, err := runner.NewPool(cfg.WorkerPoolSize, logger)
	if err != nil {
		return nil, fmt.Errorf("build worker pool: %w", err)
	}
	a.pool = pool

	var scheduler anim.Scheduler
	if cfg.AnimationDuration > 0 {
		a.scheduler = anim.NewTickerScheduler(cfg.FrameInterval)
		scheduler = a.scheduler
	}

	store, err := a.recentStore(ctx)
	if err != nil {
		return nil, err
	}

	deps := usecase.PageDeps{
		Port:              client,
		Runner:            pool,
		Scheduler:         scheduler,
		Recent:            usecase.NewRecentSearches(store, logger),
		Exporter:          export.NewXLSXExporter(),
		Logger:            logger,
		AnimationDuration: cfg.AnimationDuration,
		PortTimeout:       cfg.PortTimeout,
		SearchLimit:       cfg.SearchLimit,
	}
	a.Sessions = usecase.NewSessionManager(deps, idgen.NewUUIDGenerator(), cfg.SessionTTL)

	handler := httpapi.NewHandler(a.Sessions, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ok = true
	return a, nil
}

func (a *App) recentStore(ctx context.Context) (recent.Store, error) {
	switch a.cfg.RecentStore {
	case config.RecentStorePostgres:
		db, err := openDB(ctx, a.cfg.DBURL, a.cfg.DBDisablePreparedBinary)
		if err != nil {
			return nil, fmt.Errorf("recent search store: %w", err)
		}
		a.db = db
		a.logger.Info("recent searches stored in postgres", "db", dbNameFromURL(a.cfg.DBURL))
		return recentsearch.NewPostgresStore(db), nil
	case config.RecentStoreMemory:
		a.logger.Warn("recent searches kept in memory only")
		return recentsearch.NewMemoryStore(), nil
	default:
		store, err := recentsearch.NewFileStore(a.cfg.RecentFilePath)
		if err != nil {
			return nil, fmt.Errorf("recent search store: %w", err)
		}
		a.logger.Info("recent searches stored on disk", "path", a.cfg.RecentFilePath)
		return store, nil
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (a *App) Run(ctx context.Context) error {
	go a.Sessions.RunSweeper(ctx, a.cfg.SessionSweepInterval)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	a.logger.Info("http server stopped")
	return nil
}

// Close releases background workers and storage. It is safe on a partially built App.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Release()
	}
	if a.scheduler != nil {
		a.scheduler.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("close database failed", "error", err)
		}
	}
}
