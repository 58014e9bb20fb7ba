package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.GateDecision(OutcomeAllowed)
	m.GateDecision(OutcomeInvalid)
	m.GateDecision(OutcomeInvalid)
	m.TokenIssued()
	m.StoreError("login")
	m.TokenSignError()
	m.ObserveRequest("GET", "/api/auth", 200, 5*time.Millisecond)
	m.ObserveRequest("GET", "", 404, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.gate.WithLabelValues(OutcomeAllowed)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.gate.WithLabelValues(OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.tokens))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeFails.WithLabelValues("login")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.signFails))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/auth", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "unmatched", "404")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 6)
}

func TestNew_NilRegistry(t *testing.T) {
	assert.NotPanics(t, func() {
		New(nil)
		New(nil)
	})
}
