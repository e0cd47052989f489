package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exposes routing outcome metrics
type Recorder struct {
	verifications *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewRecorder creates the verifier metrics and registers them with reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		verifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "verifier",
			Name:      "verifications_total",
			Help:      "Total routed verifications by domain and verdict",
		}, []string{"domain", "verdict"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "verifier",
			Name:      "verification_duration_seconds",
			Help:      "Duration of routed verifications by domain",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"domain"}),
	}
	if reg != nil {
		reg.MustRegister(r.verifications, r.duration)
	}
	return r
}

// Observe records one verification. A nil Recorder is a no-op.
func (r *Recorder) Observe(domain, verdict string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.verifications.WithLabelValues(domain, verdict).Inc()
	r.duration.WithLabelValues(domain).Observe(elapsed.Seconds())
}
