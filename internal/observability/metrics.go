package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	Vents             *prometheus.CounterVec
	CrisisDetections  prometheus.Counter
	GeneratorRequests *prometheus.CounterVec
	GeneratorLatency  prometheus.Histogram
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Vents: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vents_total",
			Help:      "Processed vents by detected mood.",
		}, []string{"mood"}),
		CrisisDetections: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crisis_detections_total",
			Help:      "Vents that triggered the crisis-intervention reply.",
		}),
		GeneratorRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generator_requests_total",
			Help:      "External generation attempts by outcome.",
		}, []string{"outcome"}),
		GeneratorLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generator_latency_seconds",
			Help:      "Latency of external generation calls in seconds.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 12},
		}),
	}
}

func (m *Metrics) ObserveGeneratorLatency(d time.Duration) {
	if m == nil {
		return
	}
	m.GeneratorLatency.Observe(d.Seconds())
}

// CountVent records one processed vent. Nil-safe so services can run without
// metrics in tests.
func (m *Metrics) CountVent(mood string, crisis bool) {
	if m == nil {
		return
	}
	m.Vents.WithLabelValues(mood).Inc()
	if crisis {
		m.CrisisDetections.Inc()
	}
}

// CountGenerator records one external generation attempt outcome.
func (m *Metrics) CountGenerator(outcome string) {
	if m == nil {
		return
	}
	m.GeneratorRequests.WithLabelValues(outcome).Inc()
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
