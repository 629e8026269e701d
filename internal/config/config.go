package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database driver constants
const (
	DatabaseDriverSQLite   = "sqlite"
	DatabaseDriverPostgres = "postgres"
)

// Pinning cache type constants
const (
	PinningCacheTypeMemory = "memory"
	PinningCacheTypeRedis  = "redis"
)

// Rate limit store constants
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// Log format constants
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Payment provider names accepted in PAYMENT_PROVIDERS.
var knownPaymentProviders = []string{"bango", "reference"}

const defaultSecretKey = "please change this"

type Config struct {
	// Server settings
	ServerAddr   string
	SiteURL      string // Absolute base URL used to rebuild signed request URIs
	Domain       string // Used when minting external product ids
	IsProduction bool

	// Secrets
	SecretKey     string // Shared-secret HMAC key and at-rest encryption root
	SessionSecret string
	SessionMaxAge int // seconds

	// Database
	DatabaseDriver     string // "sqlite" or "postgres"
	DatabaseDSN        string
	DatabaseReplicaDSN string // Optional read replica, unused when empty
	DBInitTimeout      time.Duration
	DBCloseTimeout     time.Duration

	// API
	APICurrentVersion int

	// OAuth 1.0a
	OAuthTwoLeggedEnabled  bool
	OAuthTimestampWindow   time.Duration
	NonceRetention         time.Duration
	NonceCleanupInterval   time.Duration
	DefaultAdminEmail      string
	DefaultAdminPassword   string
	BootstrapAdminsEnabled bool

	// DB pinning
	PinningSeconds   time.Duration
	PinningCacheType string // "memory" or "redis"

	// Redis
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	RedisConnTimeout  time.Duration
	RedisCloseTimeout time.Duration

	// Rate limiting
	EnableRateLimit          bool
	RateLimitStore           string // "memory" or "redis"
	RateLimitCleanupInterval time.Duration
	TokenRequestRateLimit    int // requests per minute
	AccessRequestRateLimit   int
	AuthorizeRateLimit       int
	LoginRateLimit           int

	// GeoIP
	GeoIPURL        string // geodude style lookup service
	GeoIPDBPath     string // MaxMind country database
	GeoIPDefaultVal string
	GeoIPTimeout    time.Duration

	// Payment gateway (Solitude)
	SolitudeURL                string
	SolitudeTimeout            time.Duration
	SolitudeInsecureSkipVerify bool
	SolitudeAuthMode           string // "none", "simple" or "hmac"
	SolitudeAuthSecret         string
	SolitudeAuthHeader         string
	SolitudeMaxRetries         int
	SolitudeRetryDelay         time.Duration
	SolitudeMaxRetryDelay      time.Duration

	// Payment providers
	PaymentProviders       []string
	DefaultPaymentProvider string

	// Metrics
	MetricsEnabled             bool
	MetricsToken               string
	MetricsGaugeUpdateInterval time.Duration // 0 disables the gauge job

	// Logging
	LogLevel  string
	LogFormat string

	// Server shutdown
	ServerShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	driver := getEnv("DATABASE_DRIVER", DatabaseDriverSQLite)
	var dsn string
	if driver == DatabaseDriverSQLite {
		dsn = getEnv("DATABASE_DSN", getEnv("DATABASE_PATH", "mkt.db"))
	} else {
		dsn = getEnv("DATABASE_DSN", "")
	}

	environment := getEnv("ENVIRONMENT", "development")

	return &Config{
		ServerAddr:   getEnv("SERVER_ADDR", ":8080"),
		SiteURL:      strings.TrimRight(getEnv("SITE_URL", "http://localhost:8080"), "/"),
		Domain:       getEnv("DOMAIN", "marketplace-dev"),
		IsProduction: environment == "production",

		SecretKey:     getEnv("SECRET_KEY", defaultSecretKey),
		SessionSecret: getEnv("SESSION_SECRET", "session-secret-change-in-production"),
		SessionMaxAge: getEnvInt("SESSION_MAX_AGE", 3600),

		DatabaseDriver:     driver,
		DatabaseDSN:        dsn,
		DatabaseReplicaDSN: getEnv("DATABASE_REPLICA_DSN", ""),
		DBInitTimeout:      getEnvDuration("DB_INIT_TIMEOUT", 30*time.Second),
		DBCloseTimeout:     getEnvDuration("DB_CLOSE_TIMEOUT", 5*time.Second),

		APICurrentVersion: getEnvInt("API_CURRENT_VERSION", 1),

		OAuthTwoLeggedEnabled:  getEnvBool("OAUTH_TWO_LEGGED_ENABLED", true),
		OAuthTimestampWindow:   getEnvDuration("OAUTH_TIMESTAMP_WINDOW", 600*time.Second),
		NonceRetention:         getEnvDuration("NONCE_RETENTION", 24*time.Hour),
		NonceCleanupInterval:   getEnvDuration("NONCE_CLEANUP_INTERVAL", time.Hour),
		DefaultAdminEmail:      getEnv("DEFAULT_ADMIN_EMAIL", "admin@example.com"),
		DefaultAdminPassword:   getEnv("DEFAULT_ADMIN_PASSWORD", ""),
		BootstrapAdminsEnabled: getEnvBool("BOOTSTRAP_ADMINS_ENABLED", true),

		PinningSeconds:   getEnvDuration("MULTIDB_PINNING_SECONDS", 15*time.Second),
		PinningCacheType: getEnv("PINNING_CACHE_TYPE", PinningCacheTypeMemory),

		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisConnTimeout:  getEnvDuration("REDIS_CONN_TIMEOUT", 5*time.Second),
		RedisCloseTimeout: getEnvDuration("REDIS_CLOSE_TIMEOUT", 5*time.Second),

		EnableRateLimit:          getEnvBool("ENABLE_RATE_LIMIT", true),
		RateLimitStore:           getEnv("RATE_LIMIT_STORE", RateLimitStoreMemory),
		RateLimitCleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		TokenRequestRateLimit:    getEnvInt("TOKEN_REQUEST_RATE_LIMIT", 20),
		AccessRequestRateLimit:   getEnvInt("ACCESS_REQUEST_RATE_LIMIT", 20),
		AuthorizeRateLimit:       getEnvInt("AUTHORIZE_RATE_LIMIT", 30),
		LoginRateLimit:           getEnvInt("LOGIN_RATE_LIMIT", 5),

		GeoIPURL:        getEnv("GEOIP_URL", ""),
		GeoIPDBPath:     getEnv("GEOIP_DB_PATH", ""),
		GeoIPDefaultVal: getEnv("GEOIP_DEFAULT_VAL", "restofworld"),
		GeoIPTimeout:    getEnvDuration("GEOIP_TIMEOUT", 200*time.Millisecond),

		SolitudeURL:                strings.TrimRight(getEnv("SOLITUDE_URL", ""), "/"),
		SolitudeTimeout:            getEnvDuration("SOLITUDE_TIMEOUT", 10*time.Second),
		SolitudeInsecureSkipVerify: getEnvBool("SOLITUDE_INSECURE_SKIP_VERIFY", false),
		SolitudeAuthMode:           getEnv("SOLITUDE_AUTH_MODE", "none"),
		SolitudeAuthSecret:         getEnv("SOLITUDE_AUTH_SECRET", ""),
		SolitudeAuthHeader:         getEnv("SOLITUDE_AUTH_HEADER", "X-API-Secret"),
		SolitudeMaxRetries:         getEnvInt("SOLITUDE_MAX_RETRIES", 3),
		SolitudeRetryDelay:         getEnvDuration("SOLITUDE_RETRY_DELAY", 1*time.Second),
		SolitudeMaxRetryDelay:      getEnvDuration("SOLITUDE_MAX_RETRY_DELAY", 10*time.Second),

		PaymentProviders:       getEnvSlice("PAYMENT_PROVIDERS", []string{"reference"}),
		DefaultPaymentProvider: getEnv("DEFAULT_PAYMENT_PROVIDER", "reference"),

		MetricsEnabled:             getEnvBool("METRICS_ENABLED", true),
		MetricsToken:               getEnv("METRICS_TOKEN", ""),
		MetricsGaugeUpdateInterval: getEnvDuration("METRICS_GAUGE_UPDATE_INTERVAL", 5*time.Minute),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", LogFormatJSON),

		ServerShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

// Validate checks enumerated settings and cross-field requirements.
func (c *Config) Validate() error {
	if c.DatabaseDriver != DatabaseDriverSQLite && c.DatabaseDriver != DatabaseDriverPostgres {
		return fmt.Errorf(
			"invalid DATABASE_DRIVER value: %q (must be %q or %q)",
			c.DatabaseDriver, DatabaseDriverSQLite, DatabaseDriverPostgres,
		)
	}

	if c.PinningCacheType != PinningCacheTypeMemory && c.PinningCacheType != PinningCacheTypeRedis {
		return fmt.Errorf(
			"invalid PINNING_CACHE_TYPE value: %q (must be %q or %q)",
			c.PinningCacheType, PinningCacheTypeMemory, PinningCacheTypeRedis,
		)
	}

	if c.RateLimitStore != RateLimitStoreMemory && c.RateLimitStore != RateLimitStoreRedis {
		return fmt.Errorf(
			"invalid RATE_LIMIT_STORE value: %q (must be %q or %q)",
			c.RateLimitStore, RateLimitStoreMemory, RateLimitStoreRedis,
		)
	}

	if (c.PinningCacheType == PinningCacheTypeRedis ||
		(c.EnableRateLimit && c.RateLimitStore == RateLimitStoreRedis)) && c.RedisAddr == "" {
		return errors.New("REDIS_ADDR is required when a redis backed store is configured")
	}

	if len(c.PaymentProviders) == 0 {
		return errors.New("PAYMENT_PROVIDERS must list at least one provider")
	}
	for _, name := range c.PaymentProviders {
		if !slices.Contains(knownPaymentProviders, name) {
			return fmt.Errorf("invalid PAYMENT_PROVIDERS entry: %q", name)
		}
	}
	if !slices.Contains(c.PaymentProviders, c.DefaultPaymentProvider) {
		return fmt.Errorf(
			"DEFAULT_PAYMENT_PROVIDER %q is not one of PAYMENT_PROVIDERS",
			c.DefaultPaymentProvider,
		)
	}

	if c.APICurrentVersion < 1 {
		return fmt.Errorf("invalid API_CURRENT_VERSION value: %d", c.APICurrentVersion)
	}

	if c.IsProduction && c.SecretKey == defaultSecretKey {
		return errors.New("SECRET_KEY must be changed in production")
	}

	if c.SiteURL == "" {
		return errors.New("SITE_URL is not specified")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Bare integers are seconds, matching MULTIDB_PINNING_SECONDS=15
		var secs int
		if _, err := fmt.Sscanf(value, "%d", &secs); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		if parts := splitAndTrim(value, ","); len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}

func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
