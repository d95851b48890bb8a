package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los contadores de la aplicación. Se registran en un
// Registry propio para que cada router (y cada test) tenga el suyo.
type Metrics struct {
	registry *prometheus.Registry

	PatientsCreated    prometheus.Counter
	EntriesCreated     *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	NotFound           *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PatientsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "patientor_patients_created_total",
			Help: "Total number of patients created",
		}),
		EntriesCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "patientor_entries_created_total",
			Help: "Total number of entries appended, by entry type",
		}, []string{"type"}),
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "patientor_validation_failures_total",
			Help: "Rejected payloads, by resource and reason",
		}, []string{"resource", "reason"}),
		NotFound: f.NewCounterVec(prometheus.CounterOpts{
			Name: "patientor_not_found_total",
			Help: "Lookups of missing resources",
		}, []string{"resource"}),
	}
}

// Los Inc* aceptan receptor nil (router sin métricas).
func (m *Metrics) IncPatientsCreated() {
	if m == nil {
		return
	}
	m.PatientsCreated.Inc()
}

func (m *Metrics) IncEntriesCreated(entryType string) {
	if m == nil {
		return
	}
	m.EntriesCreated.WithLabelValues(entryType).Inc()
}

func (m *Metrics) IncValidationFailure(resource, reason string) {
	if m == nil {
		return
	}
	m.ValidationFailures.WithLabelValues(resource, reason).Inc()
}

func (m *Metrics) IncNotFound(resource string) {
	if m == nil {
		return
	}
	m.NotFound.WithLabelValues(resource).Inc()
}

// Handler expone /metrics para este registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
