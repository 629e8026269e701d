package metrics

import (
	"context"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/core"

	"go.uber.org/zap"
)

// CacheWrapper reads gauge counts through a cache so several API instances
// do not all run the same COUNT queries every interval.
type CacheWrapper struct {
	store core.MetricsStore
	cache core.Cache[int64]
}

func NewCacheWrapper(store core.MetricsStore, cache core.Cache[int64]) *CacheWrapper {
	return &CacheWrapper{
		store: store,
		cache: cache,
	}
}

func (m *CacheWrapper) GetAccessCount(ctx context.Context, ttl time.Duration) (int64, error) {
	return m.cache.GetWithFetch(ctx, "access:total", ttl,
		func(context.Context, string) (int64, error) {
			return m.store.CountAccess()
		})
}

// GetActiveTokensCount counts stored tokens of tokenType (request, access).
func (m *CacheWrapper) GetActiveTokensCount(
	ctx context.Context,
	tokenType string,
	ttl time.Duration,
) (int64, error) {
	return m.cache.GetWithFetch(ctx, "tokens:"+tokenType, ttl,
		func(context.Context, string) (int64, error) {
			return m.store.CountTokensByType(tokenType)
		})
}

// UpdateGauges refreshes the periodic gauges. Query failures are counted
// and logged; the previous gauge value is kept.
func UpdateGauges(ctx context.Context, r Recorder, w *CacheWrapper, ttl time.Duration, log *zap.Logger) {
	if n, err := w.GetAccessCount(ctx, ttl); err != nil {
		r.RecordDatabaseQueryError("count_access")
		log.Warn("failed to count api access", zap.Error(err))
	} else {
		r.SetAccessCount(int(n))
	}

	for _, typ := range []string{"request", "access"} {
		n, err := w.GetActiveTokensCount(ctx, typ, ttl)
		if err != nil {
			r.RecordDatabaseQueryError("count_" + typ + "_tokens")
			log.Warn("failed to count tokens", zap.String("token_type", typ), zap.Error(err))
			continue
		}
		r.SetActiveTokensCount(typ, int(n))
	}
}
