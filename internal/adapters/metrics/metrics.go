// Package metrics exposes Prometheus metrics for the events manager.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventsmanager/internal/domain"
)

// Geocode outcomes.
const (
	OutcomeOK             = "ok"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeTransportError = "transport_error"
)

// Manager owns the registry and every collector of the service.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	geocodeRequests *prometheus.CounterVec
	geocodeDuration prometheus.Histogram

	invitesCreated      prometheus.Counter
	inviteStatusChanges *prometheus.CounterVec
}

var _ domain.InviteRecorder = (*Manager)(nil)

// NewManager creates a Manager on a fresh registry unless WithRegistry is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "eventsmanager",
		histogramBuckets: prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests by route, method and status code",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})

	m.geocodeRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "geocoder",
		Name:      "requests_total",
		Help:      "Geocoder lookups by outcome",
	}, []string{"outcome"})

	m.geocodeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "geocoder",
		Name:      "request_duration_seconds",
		Help:      "Geocoder lookup latency in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.invitesCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "invites",
		Name:      "created_total",
		Help:      "Total number of invites created",
	})

	m.inviteStatusChanges = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "invites",
		Name:      "status_changes_total",
		Help:      "Invite status updates by new status",
	}, []string{"status"})
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest counts one request and observes its latency.
func (m *Manager) RecordHTTPRequest(route, method string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// RecordGeocode counts one geocoder lookup.
func (m *Manager) RecordGeocode(outcome string, d time.Duration) {
	m.geocodeRequests.WithLabelValues(outcome).Inc()
	m.geocodeDuration.Observe(d.Seconds())
}

func (m *Manager) InvitesCreated(n int) {
	m.invitesCreated.Add(float64(n))
}

func (m *Manager) InviteStatusChanged(status domain.InviteStatus) {
	m.inviteStatusChanges.WithLabelValues(status.String()).Inc()
}
