package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

func result(ok bool) string {
	if ok {
		return resultSuccess
	}
	return resultFailure
}

// HTTPMetricsMiddleware records request counts and latency per route.
func HTTPMetricsMiddleware(m Recorder) gin.HandlerFunc {
	metrics, ok := m.(*Metrics)
	if !ok {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		method := c.Request.Method
		path := normalizePath(c.FullPath())
		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// normalizePath returns the route pattern, or "unknown" for unrouted
// requests so arbitrary paths do not become label values.
func normalizePath(fullPath string) string {
	if fullPath == "" {
		return "unknown"
	}
	return fullPath
}

func (m *Metrics) RecordOAuthValidation(flow string, valid bool, duration time.Duration) {
	m.OAuthValidationTotal.WithLabelValues(flow, result(valid)).Inc()
	m.OAuthValidationDuration.WithLabelValues(flow).Observe(duration.Seconds())
}

func (m *Metrics) RecordTokenIssued(tokenType string) {
	m.TokensIssuedTotal.WithLabelValues(tokenType).Inc()
	m.TokensActive.WithLabelValues(tokenType).Inc()
}

// RecordTokenAuthorization counts consent decisions (grant, deny).
func (m *Metrics) RecordTokenAuthorization(decision string) {
	m.TokenAuthorizationTotal.WithLabelValues(decision).Inc()
}

func (m *Metrics) RecordAuthAttempt(scheme string, success bool) {
	m.AuthAttemptsTotal.WithLabelValues(scheme, result(success)).Inc()
}

func (m *Metrics) RecordLogin(success bool) {
	m.LoginTotal.WithLabelValues(result(success)).Inc()
}

func (m *Metrics) RecordDBPinning(pinned bool) {
	state := "unpinned"
	if pinned {
		state = "pinned"
	}
	m.DBPinningTotal.WithLabelValues(state).Inc()
}

func (m *Metrics) RecordRegion(source string) {
	m.RegionTotal.WithLabelValues(source).Inc()
}

func (m *Metrics) RecordGatewayCall(operation string, success bool, duration time.Duration) {
	m.GatewayRequestsTotal.WithLabelValues(operation, result(success)).Inc()
	m.GatewayRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *Metrics) RecordAccountCancelled(disableRefs bool) {
	m.AccountsCancelledTotal.WithLabelValues(strconv.FormatBool(disableRefs)).Inc()
}

func (m *Metrics) SetAccessCount(count int) {
	m.AccessActive.Set(float64(count))
}

func (m *Metrics) SetActiveTokensCount(tokenType string, count int) {
	m.TokensActive.WithLabelValues(tokenType).Set(float64(count))
}

func (m *Metrics) RecordDatabaseQueryError(operation string) {
	m.DatabaseQueryErrorsTotal.WithLabelValues(operation).Inc()
}
