package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the sanction pipeline. All methods are
// safe on a nil receiver so tests can wire use cases without a registry.
type Metrics struct {
	// Letters issued end to end
	LettersIssued prometheus.Counter

	// Validation failures by field
	ValidationFailures *prometheus.CounterVec

	// Full render latency including QR encode and logo fetch
	RenderLatency prometheus.Histogram

	// Pre-qualification advisories by decision
	Prequalifications *prometheus.CounterVec

	// SMTP dispatches by outcome
	EmailDispatches *prometheus.CounterVec
}

// New registers all sanction pipeline metrics on the default registry. Call
// once at startup.
func New() *Metrics {
	return &Metrics{
		LettersIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sanction_letters_issued_total",
			Help: "Total provisional sanction letters issued",
		}),

		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sanction_validation_failures_total",
			Help: "Total input validation failures by field",
		}, []string{"field"}),

		RenderLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "sanction_render_duration_seconds",
			Help:    "Duration of the encode-fetch-render pipeline per letter",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		Prequalifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sanction_prequalifications_total",
			Help: "Total pre-qualification advisories by decision",
		}, []string{"decision"}),

		EmailDispatches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sanction_email_dispatches_total",
			Help: "Total letter mail dispatches by outcome",
		}, []string{"outcome"}),
	}
}

// IncrementIssued records a successfully issued letter.
func (m *Metrics) IncrementIssued() {
	if m != nil {
		m.LettersIssued.Inc()
	}
}

// IncrementValidationFailure records one failed field of a rejected request.
func (m *Metrics) IncrementValidationFailure(field string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(field).Inc()
	}
}

// ObserveRenderLatency records how long one letter took to produce.
func (m *Metrics) ObserveRenderLatency(d time.Duration) {
	if m != nil {
		m.RenderLatency.Observe(d.Seconds())
	}
}

// IncrementPrequalification records an advisory outcome.
func (m *Metrics) IncrementPrequalification(decision string) {
	if m != nil {
		m.Prequalifications.WithLabelValues(decision).Inc()
	}
}

// IncrementEmailDispatch records a dispatch outcome ("sent" or "failed").
func (m *Metrics) IncrementEmailDispatch(outcome string) {
	if m != nil {
		m.EmailDispatches.WithLabelValues(outcome).Inc()
	}
}
