package bootstrap

import (
	"context"
	"net/http"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/core"
	"github.com/mozilla/zamboni-sub003/internal/metrics"
	"github.com/mozilla/zamboni-sub003/internal/payments"
	"github.com/mozilla/zamboni-sub003/internal/regions"
	"github.com/mozilla/zamboni-sub003/internal/services"
	"github.com/mozilla/zamboni-sub003/internal/store"

	"github.com/appleboy/graceful"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Application holds all initialized components
type Application struct {
	Config *config.Config
	Logger *zap.Logger

	// Core infrastructure
	DB              *store.Store
	MetricsRecorder metrics.Recorder
	PinningCache    core.Cache[bool]
	GaugeCache      core.Cache[int64]
	RedisClient     *redis.Client
	GeoIP           regions.GeoIP

	// Services
	UserService   *services.UserService
	AccessService *services.AccessService
	OAuthService  *services.OAuthService
	Payments      *payments.Registry

	// HTTP
	HandlerSet handlerSet
	Router     *gin.Engine
	Server     *http.Server
}

// Run initializes and starts the application
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	app, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	app.startWithGracefulShutdown(ctx)
	return nil
}

// New wires every component without starting the server. Resources opened
// before a failure are released.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Application, error) {
	if log == nil {
		log = zap.NewNop()
	}
	app := &Application{Config: cfg, Logger: log}

	// Phase 1: Validate configuration
	if err := validateConfiguration(cfg); err != nil {
		return nil, err
	}

	// Phase 2: Initialize infrastructure
	if err := app.initializeInfrastructure(ctx); err != nil {
		app.Close()
		return nil, err
	}

	// Phase 3: Initialize business layer
	if err := app.initializeBusinessLayer(); err != nil {
		app.Close()
		return nil, err
	}

	// Phase 4: Initialize HTTP layer
	if err := app.initializeHTTPLayer(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// initializeInfrastructure sets up database, metrics, caches, Redis and GeoIP
func (app *Application) initializeInfrastructure(ctx context.Context) error {
	var err error
	cfg := app.Config

	app.DB, err = initializeDatabase(ctx, cfg, app.Logger)
	if err != nil {
		return err
	}

	app.MetricsRecorder = initializeMetrics(cfg, app.Logger)
	app.GaugeCache, err = initializeGaugeCache(ctx, cfg, app.Logger)
	if err != nil {
		return err
	}
	app.PinningCache, err = initializePinningCache(ctx, cfg, app.Logger)
	if err != nil {
		return err
	}

	app.RedisClient, err = initializeRateLimitRedisClient(cfg, app.Logger)
	if err != nil {
		return err
	}

	app.GeoIP, err = regions.NewGeoIP(cfg, app.Logger.With(zap.String("component", "regions")))
	return err
}

// initializeBusinessLayer sets up services and the payment providers
func (app *Application) initializeBusinessLayer() error {
	var err error
	app.UserService, app.AccessService, app.OAuthService = initializeServices(
		app.Config,
		app.DB,
		app.MetricsRecorder,
		app.Logger,
	)
	app.Payments, err = initializePayments(app.Config, app.DB, app.MetricsRecorder, app.Logger)
	return err
}

// initializeHTTPLayer sets up handlers, router, and server
func (app *Application) initializeHTTPLayer() error {
	app.HandlerSet = initializeHandlers(app)

	var err error
	app.Router, err = setupRouter(app)
	if err != nil {
		return err
	}
	app.Server = createHTTPServer(app.Config, app.Router)
	return nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func (app *Application) startWithGracefulShutdown(ctx context.Context) {
	m := graceful.NewManager(
		graceful.WithContext(ctx),
		graceful.WithLogger(app.Logger.Sugar()),
	)

	// Add jobs
	addServerRunningJob(m, app.Server, app.Logger)
	addServerShutdownJob(m, app.Server, app.Config, app.Logger)
	addNonceCleanupJob(m, app.Config, app.DB, app.Logger)
	addMetricsGaugeUpdateJob(m, app.Config, app.DB, app.MetricsRecorder, app.GaugeCache, app.Logger)
	m.AddShutdownJob(func() error {
		app.Close()
		return nil
	})

	// Wait for graceful shutdown
	<-m.Done()
}

// Close releases caches, the Redis client, the GeoIP reader and the
// database. It tolerates a partially initialized Application.
func (app *Application) Close() {
	log := app.Logger
	closeWith := func(name string, fn func() error) {
		if err := fn(); err != nil {
			log.Warn("close failed", zap.String("resource", name), zap.Error(err))
		}
	}

	if app.PinningCache != nil {
		closeWith("pinning cache", app.PinningCache.Close)
	}
	if app.GaugeCache != nil {
		closeWith("gauge cache", app.GaugeCache.Close)
	}
	if app.RedisClient != nil {
		closeWith("redis", app.RedisClient.Close)
	}
	if c, ok := app.GeoIP.(interface{ Close() error }); ok {
		closeWith("geoip", c.Close)
	}
	if app.DB != nil {
		closeWith("database", app.DB.Close)
	}
}
