package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	limiterRedis "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"
)

// RateLimitStoreType selects where counters live.
type RateLimitStoreType string

const (
	// RateLimitStoreMemory keeps counters per process.
	RateLimitStoreMemory RateLimitStoreType = "memory"
	// RateLimitStoreRedis shares counters between instances.
	RateLimitStoreRedis RateLimitStoreType = "redis"
)

// ErrRedisClientRequired is returned for a redis store without a client.
var ErrRedisClientRequired = errors.New("redis rate limit store requires a client")

// RateLimitConfig configures one limiter. Limiters for different
// endpoints share a single RedisClient and are told apart by Name.
type RateLimitConfig struct {
	Name              string
	RequestsPerMinute int
	StoreType         RateLimitStoreType
	CleanupInterval   time.Duration
	RedisClient       *redis.Client
	Logger            *zap.Logger
}

// NewRateLimiter limits requests per client IP.
func NewRateLimiter(cfg RateLimitConfig) (gin.HandlerFunc, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	prefix := "ratelimit"
	if cfg.Name != "" {
		prefix += ":" + cfg.Name
	}

	var (
		store limiter.Store
		err   error
	)
	switch cfg.StoreType {
	case RateLimitStoreRedis:
		if cfg.RedisClient == nil {
			return nil, ErrRedisClientRequired
		}
		store, err = limiterRedis.NewStoreWithOptions(cfg.RedisClient, limiter.StoreOptions{
			Prefix:          prefix,
			CleanUpInterval: cfg.CleanupInterval,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}
	default:
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          prefix,
			CleanUpInterval: cfg.CleanupInterval,
		})
	}

	instance := limiter.New(store, limiter.Rate{
		Period: time.Minute,
		Limit:  int64(cfg.RequestsPerMinute),
	})

	return mgin.NewMiddleware(instance, mgin.WithLimitReachedHandler(func(c *gin.Context) {
		log.Warn("rate limit exceeded",
			zap.String("limiter", cfg.Name),
			zap.String("client_ip", c.ClientIP()),
			zap.String("path", c.Request.URL.Path))

		if strings.Contains(c.GetHeader("Accept"), "text/html") {
			c.HTML(http.StatusTooManyRequests, "error.html", gin.H{
				"error":   "Rate Limit Exceeded",
				"message": "Too many requests. Please try again later.",
			})
		} else {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":             "rate_limit_exceeded",
				"error_description": "Too many requests. Please try again later.",
			})
		}
		c.Abort()
	})), nil
}

// NewRedisClient connects to redis and pings it within timeout.
func NewRedisClient(addr, password string, db int, timeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return client, nil
}
