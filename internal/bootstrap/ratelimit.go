package bootstrap

import (
	"fmt"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// rateLimitMiddlewares holds rate limiting middlewares for different endpoints
type rateLimitMiddlewares struct {
	requestToken gin.HandlerFunc
	accessToken  gin.HandlerFunc
	authorize    gin.HandlerFunc
	login        gin.HandlerFunc
}

// setupRateLimiting configures rate limiting middlewares based on configuration
func setupRateLimiting(
	cfg *config.Config,
	redisClient *redis.Client,
	log *zap.Logger,
) (rateLimitMiddlewares, error) {
	if !cfg.EnableRateLimit {
		noOp := func(c *gin.Context) { c.Next() }
		log.Info("rate limiting disabled")
		return rateLimitMiddlewares{
			requestToken: noOp,
			accessToken:  noOp,
			authorize:    noOp,
			login:        noOp,
		}, nil
	}

	storeType := middleware.RateLimitStoreType(cfg.RateLimitStore)
	log.Info("rate limiting enabled", zap.String("store", cfg.RateLimitStore))

	var firstErr error
	createLimiter := func(name string, requestsPerMinute int) gin.HandlerFunc {
		limiter, err := middleware.NewRateLimiter(middleware.RateLimitConfig{
			Name:              name,
			RequestsPerMinute: requestsPerMinute,
			StoreType:         storeType,
			RedisClient:       redisClient,
			CleanupInterval:   cfg.RateLimitCleanupInterval,
			Logger:            log,
		})
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to create rate limiter %s: %w", name, err)
		}
		return limiter
	}

	limiters := rateLimitMiddlewares{
		requestToken: createLimiter("request_token", cfg.TokenRequestRateLimit),
		accessToken:  createLimiter("access_token", cfg.AccessRequestRateLimit),
		authorize:    createLimiter("authorize", cfg.AuthorizeRateLimit),
		login:        createLimiter("login", cfg.LoginRateLimit),
	}
	return limiters, firstErr
}
