package bootstrap

import (
	"context"
	"fmt"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/store"

	"go.uber.org/zap"
)

// initializeDatabase creates and initializes the database connection
func initializeDatabase(ctx context.Context, cfg *config.Config, log *zap.Logger) (*store.Store, error) {
	// Create timeout context for this specific operation
	if cfg.DBInitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DBInitTimeout)
		defer cancel()
	}

	db, err := store.New(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN, cfg, log.With(zap.String("component", "store")))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Info("database ready",
		zap.String("driver", cfg.DatabaseDriver),
		zap.Bool("replica", cfg.DatabaseReplicaDSN != ""))
	return db, nil
}
