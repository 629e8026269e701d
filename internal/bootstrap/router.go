package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/mozilla/zamboni-sub003/internal/config"
	"github.com/mozilla/zamboni-sub003/internal/metrics"
	"github.com/mozilla/zamboni-sub003/internal/middleware"
	"github.com/mozilla/zamboni-sub003/internal/store"
	"github.com/mozilla/zamboni-sub003/internal/templates"
	"github.com/mozilla/zamboni-sub003/internal/util"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const sessionName = "mkt_session"

var corsPreflightMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// setupRouter configures the Gin router with all routes and middleware
func setupRouter(app *Application) (*gin.Engine, error) {
	cfg := app.Config
	log := app.Logger

	// Setup Gin mode
	setupGinMode(cfg)
	r := gin.New()

	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	// Setup middleware
	r.Use(metrics.HTTPMetricsMiddleware(app.MetricsRecorder))
	r.Use(ginzap.Ginzap(log, time.RFC3339, true), ginzap.RecoveryWithZap(log, true))
	r.Use(util.IPMiddleware())

	// Setup session middleware
	setupSessionMiddleware(r, cfg)

	// API middleware; each one is a no-op outside /api/
	r.Use(
		middleware.APIBase(cfg.APICurrentVersion),
		middleware.CORS(),
		middleware.APIGzip(),
		middleware.RestOAuth(app.OAuthService, app.MetricsRecorder, log),
		middleware.RestSharedSecret(app.UserService, cfg.SecretKey, app.MetricsRecorder, log),
		middleware.APIPinning(app.PinningCache, cfg.PinningSeconds, app.MetricsRecorder, log),
		middleware.Region(app.GeoIP, app.UserService, app.MetricsRecorder, log),
		middleware.APIFilter(),
	)

	// Health check endpoint
	r.GET("/health", createHealthCheckHandler(app.DB))

	// Setup metrics endpoint
	setupMetricsEndpoint(r, cfg, log)

	// Setup rate limiting
	rateLimiters, err := setupRateLimiting(cfg, app.RedisClient, log)
	if err != nil {
		return nil, err
	}

	// Setup all routes
	setupAllRoutes(r, app.HandlerSet, app.UserService, rateLimiters)

	log.Info("router ready",
		zap.String("addr", cfg.ServerAddr),
		zap.String("site_url", cfg.SiteURL),
		zap.Int("api_version", cfg.APICurrentVersion))
	return r, nil
}

// setupGinMode sets Gin mode based on environment
func setupGinMode(cfg *config.Config) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
}

// setupSessionMiddleware configures session handling middleware
func setupSessionMiddleware(r *gin.Engine, cfg *config.Config) {
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, sessionStore))
}

// setupMetricsEndpoint configures the Prometheus metrics endpoint
func setupMetricsEndpoint(r *gin.Engine, cfg *config.Config, log *zap.Logger) {
	switch {
	case !cfg.MetricsEnabled:
		log.Info("prometheus metrics disabled")
	case cfg.MetricsToken != "":
		log.Info("prometheus metrics enabled at /metrics with bearer token authentication")
		r.GET("/metrics", middleware.MetricsAuth(cfg.MetricsToken), gin.WrapH(promhttp.Handler()))
	default:
		log.Info("prometheus metrics enabled at /metrics (no authentication)")
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

// setupAllRoutes configures all application routes
func setupAllRoutes(
	r *gin.Engine,
	h handlerSet,
	users middleware.UserByID,
	rateLimiters rateLimitMiddlewares,
) {
	unauthorized := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }

	// OAuth endpoints called by API consumers. Each one answers with and
	// without the trailing slash.
	for _, suffix := range []string{"/", ""} {
		r.POST("/oauth/token"+suffix, rateLimiters.requestToken, h.oauth.RequestToken)
		r.POST("/oauth/register"+suffix, rateLimiters.accessToken, h.oauth.AccessToken)
	}

	// Browser pages (session + CSRF)
	browser := r.Group("/", middleware.CSRF())
	{
		browser.GET("/login", h.session.LoginPage)
		browser.POST("/login", rateLimiters.login, h.session.Login)
		browser.GET("/logout", h.session.Logout)
	}

	authorize := browser.Group("/oauth/authorize", middleware.RequireLogin(users))
	for _, suffix := range []string{"/", ""} {
		authorize.GET(suffix, h.oauth.AuthorizePage)
		authorize.POST(suffix, rateLimiters.authorize, h.oauth.Authorize)
		for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
			authorize.Handle(method, suffix, unauthorized)
		}
	}

	// JSON API
	r.OPTIONS("/api/*path", func(c *gin.Context) {
		middleware.AllowCORS(c, corsPreflightMethods...)
		c.Status(http.StatusNoContent)
	})

	api := r.Group("/api/v2", middleware.RequireAPIUser())
	{
		account := api.Group("/account")
		account.GET("/whoami/", h.account.WhoAmI)
		account.GET("/access/", h.account.ListAccess)
		account.POST("/access/", h.account.CreateAccess)
		account.DELETE("/access/:id/", h.account.DeleteAccess)

		pay := api.Group("/payments")
		pay.GET("/providers/", h.payments.ListProviders)
		pay.GET("/accounts/", h.payments.ListAccounts)
		pay.POST("/accounts/", h.payments.CreateAccount)
		pay.GET("/accounts/:id/", h.payments.GetAccount)
		pay.PATCH("/accounts/:id/", h.payments.UpdateAccount)
		pay.DELETE("/accounts/:id/", h.payments.DeleteAccount)
		pay.GET("/accounts/:id/terms/", h.payments.GetTerms)
		pay.POST("/accounts/:id/terms/", h.payments.AgreeTerms)
		pay.POST("/apps/:app_id/payment-accounts/", h.payments.LinkApp)
	}
}

// createHealthCheckHandler creates a health check handler
func createHealthCheckHandler(db *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.Health(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
				"error":    err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": "connected",
		})
	}
}
