package core

import "time"

// Recorder records application metrics. Implementations are the
// Prometheus-backed metrics.Metrics and metrics.NoopMetrics.
type Recorder interface {
	// OAuth 1.0a flows: flow is request_token, access_token, resource or
	// two_legged.
	RecordOAuthValidation(flow string, valid bool, duration time.Duration)
	RecordTokenIssued(tokenType string)
	RecordTokenAuthorization(decision string)

	// API authentication, per scheme (RestOAuth, RestSharedSecret).
	RecordAuthAttempt(scheme string, success bool)
	RecordLogin(success bool)

	// Request routing state.
	RecordDBPinning(pinned bool)
	RecordRegion(source string)

	// Payment gateway.
	RecordGatewayCall(operation string, success bool, duration time.Duration)
	RecordAccountCancelled(disableRefs bool)

	// Gauges refreshed periodically.
	SetAccessCount(count int)
	SetActiveTokensCount(tokenType string, count int)

	RecordDatabaseQueryError(operation string)
}

// MetricsStore is the DB access the gauge updater needs.
type MetricsStore interface {
	CountAccess() (int64, error)
	CountTokensByType(tokenType string) (int64, error)
}
