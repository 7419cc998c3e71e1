package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveLookup(t *testing.T) {
	m := New()

	m.ObserveLookup("ok")
	m.ObserveLookup("ok")
	m.ObserveLookup("not_found")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.lookups.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookups.WithLabelValues("not_found")))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/heroes/", http.StatusOK, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/heroes/", "200")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveLookup("ok")
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveLookup("technical")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `heroes_repository_lookups_total{outcome="technical"} 1`))
}
