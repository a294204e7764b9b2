package store

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	queryDuration    *prometheus.HistogramVec
	validationsTotal *prometheus.CounterVec
)

// RegisterMetrics registra las métricas del store en el registry dado
// (DefaultRegisterer si es nil). Idempotente.
func RegisterMetrics(registry prometheus.Registerer) {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	metricsOnce.Do(func() {
		queryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "userfed_query_duration_seconds",
			Help:    "Duración de las queries contra la base legada",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation", "result"}) // result: ok|error|unavailable

		validationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "userfed_credential_validations_total",
			Help: "Validaciones de credenciales por resultado",
		}, []string{"result"}) // result: match|no_match|error

		registry.MustRegister(queryDuration, validationsTotal)
	})
}

func observeQuery(operation, result string, d time.Duration) {
	if queryDuration == nil {
		return
	}
	queryDuration.WithLabelValues(operation, result).Observe(d.Seconds())
}

func countValidation(result string) {
	if validationsTotal == nil {
		return
	}
	validationsTotal.WithLabelValues(result).Inc()
}
