package metrics

import "time"

// NoopMetrics discards everything; used when METRICS_ENABLED is false.
type NoopMetrics struct{}

var _ Recorder = (*NoopMetrics)(nil)

func NewNoopMetrics() Recorder {
	return &NoopMetrics{}
}

func (n *NoopMetrics) RecordOAuthValidation(flow string, valid bool, duration time.Duration) {}
func (n *NoopMetrics) RecordTokenIssued(tokenType string)                                    {}
func (n *NoopMetrics) RecordTokenAuthorization(decision string)                              {}
func (n *NoopMetrics) RecordAuthAttempt(scheme string, success bool)                         {}
func (n *NoopMetrics) RecordLogin(success bool)                                              {}
func (n *NoopMetrics) RecordDBPinning(pinned bool)                                           {}
func (n *NoopMetrics) RecordRegion(source string)                                            {}

func (n *NoopMetrics) RecordGatewayCall(operation string, success bool, duration time.Duration) {
}

func (n *NoopMetrics) RecordAccountCancelled(disableRefs bool)          {}
func (n *NoopMetrics) SetAccessCount(count int)                         {}
func (n *NoopMetrics) SetActiveTokensCount(tokenType string, count int) {}
func (n *NoopMetrics) RecordDatabaseQueryError(operation string)        {}
