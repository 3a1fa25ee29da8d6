// Package metrics exposes Prometheus metrics for the portfolio server.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pbhende/portfolio/internal/services/portfolio/domain/integrity"
)

const namespace = "portfolio"

// Transition events counted by RecordTransition.
const (
	EventSelect      = "select"
	EventClear       = "clear"
	EventToggleTheme = "toggle_theme"
)

// Metrics holds the portfolio's collectors and the registry serving them.
type Metrics struct {
	registry *prometheus.Registry

	integrityResults *prometheus.GaugeVec // By check and status (pass/fail)
	integrityPassed  prometheus.Gauge
	transitions      *prometheus.CounterVec // By event
	requestDuration  *prometheus.HistogramVec
}

// New creates a registry with process and Go runtime collectors plus the
// portfolio metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		integrityResults: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "integrity",
			Name:      "results",
			Help:      "Number of startup integrity results by check and status",
		}, []string{"check", "status"}),
		integrityPassed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "integrity",
			Name:      "passed",
			Help:      "1 when every startup integrity check passed, 0 otherwise",
		}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ui",
			Name:      "transitions_total",
			Help:      "Total number of UI state transitions applied",
		}, []string{"event"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "code", "method"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.integrityResults,
		m.integrityPassed,
		m.transitions,
		m.requestDuration,
	)
	return m
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordReport publishes an integrity report.
func (m *Metrics) RecordReport(report integrity.Report) {
	if m == nil {
		return
	}
	m.integrityResults.Reset()
	for _, result := range report.Results {
		status := "fail"
		if result.Passed {
			status = "pass"
		}
		m.integrityResults.WithLabelValues(string(result.Check), status).Inc()
	}
	if report.Passed() {
		m.integrityPassed.Set(1)
	} else {
		m.integrityPassed.Set(0)
	}
}

// RecordTransition counts one applied UI transition.
func (m *Metrics) RecordTransition(event string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(event).Inc()
}

// WatchSessions registers a gauge reporting the live session count.
func (m *Metrics) WatchSessions(count func() int) error {
	if m == nil {
		return nil
	}
	if count == nil {
		return fmt.Errorf("session count function is required")
	}
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "sessions",
		Name:      "active",
		Help:      "Number of visitor sessions currently held in memory",
	}, func() float64 { return float64(count()) })
	if err := m.registry.Register(gauge); err != nil {
		return fmt.Errorf("register session gauge: %w", err)
	}
	return nil
}

// Instrument observes request durations for one route.
func (m *Metrics) Instrument(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		observer := m.requestDuration.MustCurryWith(prometheus.Labels{"route": route})
		return promhttp.InstrumentHandlerDuration(observer, next)
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
