// Package metrics holds the Prometheus collectors of one onboarding server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "onboarding"

type Metrics struct {
	registry *prometheus.Registry

	MaskRequests       *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	ToastsPosted       *prometheus.CounterVec
	ToastsActive       prometheus.Gauge
	HTTPDuration       *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry, so several servers can
// coexist in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		MaskRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mask_requests_total",
			Help:      "Total number of mask requests by mask spec",
		}, []string{"spec"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of field validation failures by field",
		}, []string{"field"}),
		ToastsPosted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "toasts_posted_total",
			Help:      "Total number of toasts posted by variant",
		}, []string{"variant"}),
		ToastsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "toasts_active",
			Help:      "Current number of visible toasts",
		}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern, method and status",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

// Registry exposes the underlying registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) IncrementMask(spec string) {
	if spec == "" {
		spec = "none"
	}
	m.MaskRequests.WithLabelValues(spec).Inc()
}

func (m *Metrics) IncrementValidationFailure(field string) {
	m.ValidationFailures.WithLabelValues(field).Inc()
}

func (m *Metrics) IncrementToast(variant string) {
	m.ToastsPosted.WithLabelValues(variant).Inc()
}

func (m *Metrics) SetActiveToasts(count int) {
	m.ToastsActive.Set(float64(count))
}

func (m *Metrics) ObserveHTTP(route, method string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.HTTPDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(d.Seconds())
}
