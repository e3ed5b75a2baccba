package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Instrument(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()
	r := chi.NewRouter()
	r.Use(metrics.Instrument)
	r.Get("/users/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/users/1", "/users/2", "/ok", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(
		metrics.requestTotal.WithLabelValues(http.MethodGet, "/users/{id}", "404")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.requestTotal.WithLabelValues(http.MethodGet, "/ok", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.requestTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	metrics := NewMetrics()
	metrics.RecordRateLimitHit("register")

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `hoa_api_rate_limit_hits_total{route="register"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNewMetrics_Independent(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		NewMetrics()
		NewMetrics()
	})
}
