// Package metrics expone los contadores de Prometheus de la API: veredictos
// de la compuerta de disponibilidad, duplicados rechazados y peticiones HTTP.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/khohang-api/internal/application/ports"
)

const namespace = "khohang"

var _ ports.InventoryMetrics = (*Recorder)(nil)

// Recorder agrupa los colectores en un registro propio.
type Recorder struct {
	registry *prometheus.Registry

	decisions       *prometheus.CounterVec
	duplicates      prometheus.Counter
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewRecorder crea y registra los colectores, más los de proceso y runtime.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.decisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_decisions_total",
			Help:      "Veredictos de la compuerta de disponibilidad por resultado.",
		},
		[]string{"outcome"},
	)
	r.duplicates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_combinations_total",
			Help:      "Líneas rechazadas por repetir producto, color y talla en el mismo documento.",
		},
	)
	r.requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas.",
		},
		[]string{"method", "route", "status"},
	)
	r.requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP en segundos.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	r.registry.MustRegister(
		r.decisions,
		r.duplicates,
		r.requestsTotal,
		r.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveDecision cuenta un veredicto (accepted, warned, rejected).
func (r *Recorder) ObserveDecision(outcome string) {
	r.decisions.WithLabelValues(outcome).Inc()
}

// ObserveDuplicate cuenta una combinación duplicada rechazada.
func (r *Recorder) ObserveDuplicate() {
	r.duplicates.Inc()
}

// ObserveRequest registra una petición HTTP. route es el patrón de la ruta,
// no la URL, para acotar la cardinalidad.
func (r *Recorder) ObserveRequest(method, route, status string, elapsed time.Duration) {
	r.requestsTotal.WithLabelValues(method, route, status).Inc()
	r.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler sirve el registro en formato de exposición de Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry devuelve el registro (tests).
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
