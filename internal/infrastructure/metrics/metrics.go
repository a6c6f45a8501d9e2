// Package metrics exposes Prometheus instrumentation for the HTTP API
// and the database pool.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anmds2025/roomify/internal/infrastructure/storage/postgres"
)

// Metrics holds the registry and application collectors.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SlipsCreatedTotal   prometheus.Counter
	BulkRunsTotal       *prometheus.CounterVec
}

// New creates a registry with application and runtime collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roomify_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roomify_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		SlipsCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roomify_money_slips_created_total",
			Help: "Money slips created, single and bulk combined.",
		}),
		BulkRunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roomify_bulk_runs_total",
			Help: "Bulk slip runs by outcome.",
		}, []string{"outcome"}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SlipsCreatedTotal,
		m.BulkRunsTotal,
	)

	return m
}

// RegisterPool adds connection pool gauges for the given pool.
func (m *Metrics) RegisterPool(pool *postgres.Pool) {
	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "roomify_db_pool_total_conns",
			Help: "Total connections in the pool.",
		}, func() float64 {
			return float64(pool.Stat().TotalConns())
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "roomify_db_pool_idle_conns",
			Help: "Idle connections in the pool.",
		}, func() float64 {
			return float64(pool.Stat().IdleConns())
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "roomify_db_pool_acquired_conns",
			Help: "Connections currently acquired from the pool.",
		}, func() float64 {
			return float64(pool.Stat().AcquiredConns())
		}),
	)
}

// Handler returns the /metrics HTTP handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
