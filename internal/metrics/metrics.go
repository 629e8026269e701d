package metrics

import (
	"sync"

	"github.com/mozilla/zamboni-sub003/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is re-exported so callers only import this package.
type Recorder = core.Recorder

var _ Recorder = (*Metrics)(nil)

// Metrics holds all Prometheus metrics for the API.
type Metrics struct {
	// OAuth 1.0a
	OAuthValidationTotal    *prometheus.CounterVec
	OAuthValidationDuration *prometheus.HistogramVec
	TokensIssuedTotal       *prometheus.CounterVec
	TokensActive            *prometheus.GaugeVec
	TokenAuthorizationTotal *prometheus.CounterVec
	AccessActive            prometheus.Gauge

	// API authentication
	AuthAttemptsTotal *prometheus.CounterVec
	LoginTotal        *prometheus.CounterVec

	// Routing state
	DBPinningTotal *prometheus.CounterVec
	RegionTotal    *prometheus.CounterVec

	// Payments
	GatewayRequestsTotal   *prometheus.CounterVec
	GatewayRequestDuration *prometheus.HistogramVec
	AccountsCancelledTotal *prometheus.CounterVec

	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	DatabaseQueryErrorsTotal *prometheus.CounterVec
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// Init returns the Prometheus recorder when enabled and NoopMetrics
// otherwise. Collectors are registered once per process.
func Init(enabled bool) Recorder {
	if !enabled {
		return NewNoopMetrics()
	}

	once.Do(func() {
		defaultMetrics = initMetrics()
	})
	return defaultMetrics
}

func initMetrics() *Metrics {
	return &Metrics{
		OAuthValidationTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oauth1_validations_total",
				Help: "Total number of OAuth 1.0a request validations",
			},
			[]string{"flow", "result"}, // flow: request_token, access_token, resource, two_legged
		),
		OAuthValidationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "oauth1_validation_duration_seconds",
				Help:    "Time taken to validate an OAuth 1.0a request",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"flow"},
		),
		TokensIssuedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oauth1_tokens_issued_total",
				Help: "Total number of OAuth tokens issued",
			},
			[]string{"token_type"}, // request, access
		),
		TokensActive: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "oauth1_tokens_active",
				Help: "Current number of stored OAuth tokens",
			},
			[]string{"token_type"},
		),
		TokenAuthorizationTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oauth1_token_authorizations_total",
				Help: "Total number of consent decisions on the authorize page",
			},
			[]string{"decision"}, // grant, deny
		),
		AccessActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "api_access_active",
				Help: "Current number of registered API consumers",
			},
		),

		AuthAttemptsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_auth_attempts_total",
				Help: "Total number of API authentication attempts",
			},
			[]string{"scheme", "result"}, // scheme: RestOAuth, RestSharedSecret
		),
		LoginTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_login_total",
				Help: "Total number of browser login attempts",
			},
			[]string{"result"},
		),

		DBPinningTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_db_pinning_total",
				Help: "API requests by database pinning state",
			},
			[]string{"state"}, // pinned, unpinned
		),
		RegionTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_region_total",
				Help: "Region resolutions by source",
			},
			[]string{"source"}, // url, geoip, default
		),

		GatewayRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_gateway_requests_total",
				Help: "Total number of payment gateway requests",
			},
			[]string{"operation", "result"},
		),
		GatewayRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_gateway_request_duration_seconds",
				Help:    "Payment gateway request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		AccountsCancelledTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_accounts_cancelled_total",
				Help: "Total number of payment accounts cancelled",
			},
			[]string{"disable_refs"},
		),

		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request latency in seconds",
				Buckets: []float64{
					0.001, 0.005, 0.010, 0.025, 0.050, 0.100,
					0.250, 0.500, 1.0, 2.5, 5.0, 10.0,
				},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Current number of HTTP requests being served",
			},
		),

		DatabaseQueryErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "database_query_errors_total",
				Help: "Total number of database query errors during metric collection",
			},
			[]string{"operation"}, // count_access, count_request_tokens, count_access_tokens
		),
	}
}
