package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/linkchart/pkg/observability"
)

// Metrics holds the server's Prometheus collectors. It implements the
// observability hook interfaces so the pipeline reports into it without
// importing Prometheus.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	LayoutsTotal      *prometheus.CounterVec
	LayoutDuration    *prometheus.HistogramVec
	LayoutItems       *prometheus.HistogramVec
	CacheRequestTotal *prometheus.CounterVec
	CacheWrittenBytes *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a metrics set on a fresh registry, including the Go
// runtime and process collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: reg}
	m.initHTTPMetrics()
	m.initLayoutMetrics()
	return m
}

func (m *Metrics) initHTTPMetrics() {
	m.HTTPRequestsTotal = promauto.With(m.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkchart_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.HTTPRequestDuration = promauto.With(m.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "linkchart_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.HTTPRequestsInFlight = promauto.With(m.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "linkchart_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)
}

func (m *Metrics) initLayoutMetrics() {
	m.LayoutsTotal = promauto.With(m.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkchart_layouts_total",
			Help: "Total number of computed layouts",
		},
		[]string{"layout", "status"},
	)

	m.LayoutDuration = promauto.With(m.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "linkchart_layout_duration_seconds",
			Help:    "Layout computation time in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"layout"},
	)

	m.LayoutItems = promauto.With(m.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "linkchart_layout_items",
			Help:    "Number of items per layout request",
			Buckets: []float64{1, 10, 50, 100, 250, 500, 1000},
		},
		[]string{"layout"},
	)

	m.CacheRequestTotal = promauto.With(m.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkchart_cache_requests_total",
			Help: "Cache lookups by result",
		},
		[]string{"key_type", "result"},
	)

	m.CacheWrittenBytes = promauto.With(m.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "linkchart_cache_written_bytes_total",
			Help: "Bytes written to the cache",
		},
		[]string{"key_type"},
	)
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Register installs m as the process-wide layout, cache and HTTP hooks.
func (m *Metrics) Register() {
	observability.SetLayoutHooks(m)
	observability.SetCacheHooks(m)
	observability.SetHTTPHooks(m)
}

// OnLayoutStart implements observability.LayoutHooks.
func (m *Metrics) OnLayoutStart(_ context.Context, name string, items, _ int) {
	m.LayoutItems.WithLabelValues(name).Observe(float64(items))
}

// OnLayoutComplete implements observability.LayoutHooks.
func (m *Metrics) OnLayoutComplete(_ context.Context, name string, _ int, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.LayoutsTotal.WithLabelValues(name, status).Inc()
	m.LayoutDuration.WithLabelValues(name).Observe(duration.Seconds())
}

// OnCacheHit implements observability.CacheHooks.
func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.CacheRequestTotal.WithLabelValues(keyType, "hit").Inc()
}

// OnCacheMiss implements observability.CacheHooks.
func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.CacheRequestTotal.WithLabelValues(keyType, "miss").Inc()
}

// OnCacheSet implements observability.CacheHooks.
func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.CacheWrittenBytes.WithLabelValues(keyType).Add(float64(size))
}

// OnRequest implements observability.HTTPHooks.
func (m *Metrics) OnRequest(context.Context, string, string) {
	m.HTTPRequestsInFlight.Inc()
}

// OnResponse implements observability.HTTPHooks.
func (m *Metrics) OnResponse(_ context.Context, method, route string, statusCode int, duration time.Duration) {
	m.HTTPRequestsInFlight.Dec()
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

var (
	_ observability.LayoutHooks = (*Metrics)(nil)
	_ observability.CacheHooks  = (*Metrics)(nil)
	_ observability.HTTPHooks   = (*Metrics)(nil)
)
