package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "site"

// Metrics holds the site's Prometheus collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	ContentFetchFailures *prometheus.CounterVec
	HomepageFallbacks    prometheus.Counter
	ContactSubmissions   *prometheus.CounterVec
}

// NewMetrics registers the collectors on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		ContentFetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "content_fetch_failures_total",
			Help:      "Content API requests that failed and degraded to an empty result.",
		}, []string{"endpoint"}),
		HomepageFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "homepage_fallback_total",
			Help:      "Homepage configuration loads served from the local fallback document.",
		}),
		ContactSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Contact submissions by outcome.",
		}, []string{"outcome"}),
	}
	registry.MustRegister(m.ContentFetchFailures, m.HomepageFallbacks, m.ContactSubmissions)
	return m
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ContentFetchFailed(endpoint string) {
	if m == nil {
		return
	}
	m.ContentFetchFailures.WithLabelValues(endpoint).Inc()
}

func (m *Metrics) HomepageFellBack() {
	if m == nil {
		return
	}
	m.HomepageFallbacks.Inc()
}

func (m *Metrics) ContactSubmitted(outcome string) {
	if m == nil {
		return
	}
	m.ContactSubmissions.WithLabelValues(outcome).Inc()
}
