package bootstrap

import (
	"context"
	"fmt"

	"github.com/mozilla/zamboni-sub003/internal/cache"
	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/core"
	"github.com/mozilla/zamboni-sub003/internal/metrics"

	"go.uber.org/zap"
)

const (
	pinningKeyPrefix = "mkt:"
	gaugeKeyPrefix   = "mkt:metrics:"
)

// initializeMetrics initializes Prometheus metrics
func initializeMetrics(cfg *config.Config, log *zap.Logger) metrics.Recorder {
	recorder := metrics.Init(cfg.MetricsEnabled)
	if cfg.MetricsEnabled {
		log.Info("prometheus metrics initialized")
	} else {
		log.Info("metrics disabled (using noop implementation)")
	}
	return recorder
}

// newCache builds a memory or rueidis cache. The pinning flags and the
// gauge counts both follow PINNING_CACHE_TYPE.
func newCache[T any](
	ctx context.Context,
	cfg *config.Config,
	log *zap.Logger,
	name, prefix string,
) (core.Cache[T], error) {
	switch cfg.PinningCacheType {
	case config.PinningCacheTypeRedis:
		ctx, cancel := context.WithTimeout(ctx, cfg.RedisConnTimeout)
		defer cancel()
		c, err := cache.NewRueidisCache[T](ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, prefix)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis %s cache: %w", name, err)
		}
		log.Info("cache ready",
			zap.String("cache", name),
			zap.String("type", "redis"),
			zap.String("addr", cfg.RedisAddr),
			zap.Int("db", cfg.RedisDB))
		return c, nil

	default: // memory
		log.Info("cache ready",
			zap.String("cache", name),
			zap.String("type", "memory"),
			zap.String("note", "single instance only"))
		return cache.NewMemoryCache[T](), nil
	}
}

// initializePinningCache backs the api-pinning:<user> flags.
func initializePinningCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (core.Cache[bool], error) {
	return newCache[bool](ctx, cfg, log, "pinning", pinningKeyPrefix)
}

// initializeGaugeCache is nil when the gauge job is disabled.
func initializeGaugeCache(ctx context.Context, cfg *config.Config, log *zap.Logger) (core.Cache[int64], error) {
	if !cfg.MetricsEnabled || cfg.MetricsGaugeUpdateInterval <= 0 {
		return nil, nil //nolint:nilnil // cache not needed in this configuration
	}
	return newCache[int64](ctx, cfg, log, "metrics", gaugeKeyPrefix)
}
