package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg              *prom.Registry
	upstreamRequests *prom.CounterVec
	upstreamDuration *prom.HistogramVec
	aggDuration      *prom.HistogramVec
	aggRepositories  prom.Histogram
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A fresh registry is created when reg is nil.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.upstreamRequests = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "fourmile",
		Name:      "upstream_requests_total",
		Help:      "GitHub API requests by stage and response status",
	}, []string{"stage", "status"})
	pr.upstreamDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "fourmile",
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of GitHub API requests",
		Buckets:   prom.DefBuckets,
	}, []string{"stage"})
	pr.aggDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "fourmile",
		Name:      "aggregation_duration_seconds",
		Help:      "Duration of repository aggregations by outcome",
		Buckets:   prom.DefBuckets,
	}, []string{"outcome"})
	pr.aggRepositories = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "fourmile",
		Name:      "aggregation_repositories",
		Help:      "Repositories returned per aggregation",
		Buckets:   []float64{1, 5, 10, 20, 30, 50, 100},
	})
	reg.MustRegister(pr.upstreamRequests, pr.upstreamDuration, pr.aggDuration, pr.aggRepositories)
	return pr
}

// ObserveUpstreamRequest counts the call and observes its latency.
func (p *PrometheusRecorder) ObserveUpstreamRequest(stage string, status int, d time.Duration) {
	if p == nil || p.upstreamRequests == nil {
		return
	}
	p.upstreamRequests.WithLabelValues(stage, strconv.Itoa(status)).Inc()
	p.upstreamDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// ObserveAggregation observes the aggregation latency and result size.
func (p *PrometheusRecorder) ObserveAggregation(outcome string, repositories int, d time.Duration) {
	if p == nil || p.aggDuration == nil {
		return
	}
	p.aggDuration.WithLabelValues(outcome).Observe(d.Seconds())
	if outcome == OutcomeSuccess {
		p.aggRepositories.Observe(float64(repositories))
	}
}

// Handler returns an http.Handler that serves the recorder's registry.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
