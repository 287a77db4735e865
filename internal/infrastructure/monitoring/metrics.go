package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "spike"

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Bridge metrics
	BridgeCalls    *prometheus.CounterVec
	BridgeDuration *prometheus.HistogramVec
	BridgeErrors   *prometheus.CounterVec

	// Capability metrics
	Resolutions   *prometheus.CounterVec
	Registrations prometheus.Gauge

	startTime time.Time
	snapshot  Snapshot
	mu        sync.RWMutex
}

// Snapshot holds current values for the JSON API
type Snapshot struct {
	TotalRequests   int64   `json:"total_requests"`
	TotalErrors     int64   `json:"total_errors"`
	BridgeCalls     int64   `json:"bridge_calls"`
	BridgeFailures  int64   `json:"bridge_failures"`
	ResolveMisses   int64   `json:"resolve_misses"`
	AvgLatencyMs    float64 `json:"avg_latency_ms"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
	totalDurationMs float64
}

// NewMetrics creates a collector with its own registry
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{
		registry:  reg,
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		RequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_size_bytes",
				Help:      "HTTP request size in bytes",
				Buckets:   []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),
		ResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "HTTP response size in bytes",
				Buckets:   []float64{100, 1000, 10000, 100000, 1000000},
			},
			[]string{"method", "path"},
		),

		BridgeCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bridge_calls_total",
				Help:      "Total number of bridge method calls",
			},
			[]string{"module", "method", "status"},
		),
		BridgeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "bridge_call_duration_seconds",
				Help:      "Bridge call duration in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"module", "method"},
		),
		BridgeErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bridge_errors_total",
				Help:      "Bridge calls that failed or errored",
			},
			[]string{"module", "method", "status"},
		),

		Resolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "capability_resolutions_total",
				Help:      "Capability lookups by name and outcome",
			},
			[]string{"capability", "result"},
		),
		Registrations: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "capabilities_registered",
				Help:      "Number of bound capabilities",
			},
		),
	}

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "uptime_seconds",
			Help:      "Host uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// Registry returns the underlying Prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.totalDurationMs += float64(duration) / float64(time.Millisecond)
	if status != "" && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordBridgeCall records one bridge invocation. status is success, failure or error.
func (m *Metrics) RecordBridgeCall(module, method, status string, duration time.Duration) {
	m.BridgeCalls.WithLabelValues(module, method, status).Inc()
	m.BridgeDuration.WithLabelValues(module, method).Observe(duration.Seconds())
	if status != "success" {
		m.BridgeErrors.WithLabelValues(module, method, status).Inc()
	}

	m.mu.Lock()
	m.snapshot.BridgeCalls++
	if status != "success" {
		m.snapshot.BridgeFailures++
	}
	m.mu.Unlock()
}

// Resolved records a capability lookup
func (m *Metrics) Resolved(name string, found bool) {
	result := "hit"
	if !found {
		result = "miss"
		m.mu.Lock()
		m.snapshot.ResolveMisses++
		m.mu.Unlock()
	}
	m.Resolutions.WithLabelValues(name, result).Inc()
}

// SetRegistered sets the number of bound capabilities
func (m *Metrics) SetRegistered(count int) {
	m.Registrations.Set(float64(count))
}

// Snapshot returns current values for the JSON API
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	s := m.snapshot
	m.mu.RUnlock()

	if s.TotalRequests > 0 {
		s.AvgLatencyMs = s.totalDurationMs / float64(s.TotalRequests)
	}
	s.UptimeSeconds = time.Since(m.startTime).Seconds()
	return s
}
