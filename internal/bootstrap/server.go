package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/core"
	"github.com/mozilla/zamboni-sub003/internal/metrics"
	"github.com/mozilla/zamboni-sub003/internal/middleware"
	"github.com/mozilla/zamboni-sub003/internal/store"

	"github.com/appleboy/graceful"
	"go.uber.org/zap"
)

// createHTTPServer creates the HTTP server instance. Method override wraps
// the router so the overridden method takes part in routing.
func createHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           middleware.MethodOverride(handler),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// addServerRunningJob adds the HTTP server running job
func addServerRunningJob(m *graceful.Manager, srv *http.Server, log *zap.Logger) {
	m.AddRunningJob(func(ctx context.Context) error {
		go func() {
			log.Info("server listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal("failed to start server", zap.Error(err))
			}
		}()
		<-ctx.Done()
		return nil
	})
}

// addServerShutdownJob adds HTTP server shutdown handler
func addServerShutdownJob(
	m *graceful.Manager,
	srv *http.Server,
	cfg *config.Config,
	log *zap.Logger,
) {
	m.AddShutdownJob(func() error {
		log.Info("shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("server forced to shutdown", zap.Error(err))
			return err
		}

		log.Info("server exited")
		return nil
	})
}

// addNonceCleanupJob periodically drops nonce ledger rows that fall
// outside the retention window. Replays of older requests are already
// refused by the timestamp check.
func addNonceCleanupJob(
	m *graceful.Manager,
	cfg *config.Config,
	db *store.Store,
	log *zap.Logger,
) {
	if cfg.NonceCleanupInterval <= 0 || cfg.NonceRetention <= 0 {
		return
	}
	log = log.With(zap.String("component", "nonces"))

	m.AddRunningJob(func(ctx context.Context) error {
		ticker := time.NewTicker(cfg.NonceCleanupInterval)
		defer ticker.Stop()

		// Run cleanup immediately on startup
		cleanupNonces(ctx, db, cfg.NonceRetention, time.Now(), log)

		for {
			select {
			case now := <-ticker.C:
				cleanupNonces(ctx, db, cfg.NonceRetention, now, log)
			case <-ctx.Done():
				return nil
			}
		}
	})
}

func cleanupNonces(
	ctx context.Context,
	db *store.Store,
	retention time.Duration,
	now time.Time,
	log *zap.Logger,
) {
	deleted, err := db.DeleteNoncesBefore(ctx, now.Add(-retention).Unix())
	switch {
	case err != nil:
		log.Warn("failed to clean up nonces", zap.Error(err))
	case deleted > 0:
		log.Info("cleaned up old nonces", zap.Int64("deleted", deleted))
	}
}

// addMetricsGaugeUpdateJob adds periodic metrics gauge update job
func addMetricsGaugeUpdateJob(
	m *graceful.Manager,
	cfg *config.Config,
	db *store.Store,
	rec metrics.Recorder,
	gaugeCache core.Cache[int64],
	log *zap.Logger,
) {
	if !cfg.MetricsEnabled || gaugeCache == nil {
		return
	}
	interval := cfg.MetricsGaugeUpdateInterval

	m.AddRunningJob(func(ctx context.Context) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		cacheWrapper := metrics.NewCacheWrapper(db, gaugeCache)

		// Update immediately on startup
		metrics.UpdateGauges(ctx, rec, cacheWrapper, interval, log)

		for {
			select {
			case <-ticker.C:
				metrics.UpdateGauges(ctx, rec, cacheWrapper, interval, log)
			case <-ctx.Done():
				return nil
			}
		}
	})
}
