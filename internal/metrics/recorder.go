// Package metrics records upstream call and aggregation metrics.
//
// Components receive a Recorder by injection. NoopRecorder is the default and
// does nothing; PrometheusRecorder forwards to a Prometheus registry that is
// exposed on /metrics.
package metrics

import "time"

// Outcome labels for aggregation metrics
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// Recorder defines the observability hooks used by the upstream client and the aggregation service
type Recorder interface {
	// ObserveUpstreamRequest records one GitHub call by stage and HTTP status.
	ObserveUpstreamRequest(stage string, status int, d time.Duration)
	// ObserveAggregation records one /api/data aggregation and how many repositories it returned.
	ObserveAggregation(outcome string, repositories int, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveUpstreamRequest(string, int, time.Duration) {}
func (NoopRecorder) ObserveAggregation(string, int, time.Duration)     {}
