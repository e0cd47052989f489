package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.Observe("price", "true", 10*time.Millisecond)
	r.Observe("price", "true", 20*time.Millisecond)
	r.Observe("sports", "unknown", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.verifications.WithLabelValues("price", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.verifications.WithLabelValues("sports", "unknown")))

	count, err := testutil.GatherAndCount(reg, "verifier_verification_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() { r.Observe("price", "true", time.Second) })
}

func TestRecorderWithoutRegisterer(t *testing.T) {
	r := NewRecorder(nil)
	r.Observe("politics", "false", time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.verifications.WithLabelValues("politics", "false")))
}
