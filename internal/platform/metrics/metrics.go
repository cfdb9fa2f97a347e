package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"growbraz/internal/ports/telemetry"
)

const namespace = "growbraz"

// Metrics agrupa los collectors del servicio.
// Implementa telemetry.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	Mutations     *prometheus.CounterVec
	PersistFailed *prometheus.CounterVec
	AdviceTotal   *prometheus.CounterVec
}

var _ telemetry.Recorder = (*Metrics)(nil)

// New registra todo en un registry propio (no el global), para que los tests
// puedan crear instancias independientes.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "CRUD mutations by collection, operation and result.",
		}, []string{"collection", "op", "result"}),
		PersistFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persist_failures_total",
			Help:      "Failed write-through saves by collection.",
		}, []string{"collection"}),
		AdviceTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advice_requests_total",
			Help:      "Advisory requests by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.Mutations,
		m.PersistFailed,
		m.AdviceTotal,
	)
	return m
}

func (m *Metrics) Mutation(collection, op, result string) {
	m.Mutations.WithLabelValues(collection, op, result).Inc()
}

func (m *Metrics) PersistFailure(collection string) {
	m.PersistFailed.WithLabelValues(collection).Inc()
}

func (m *Metrics) Advice(result string) {
	m.AdviceTotal.WithLabelValues(result).Inc()
}

// Handler expone /metrics para este registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
