package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"exercise-tracker/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	r := mux.NewRouter()
	r.Use(c.Middleware)
	r.HandleFunc("/api/exercise/log", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}).Methods(http.MethodGet)
	r.NotFoundHandler = c.Middleware(http.NotFoundHandler())

	for _, path := range []string{"/api/exercise/log?userId=1", "/api/exercise/log", "/nope"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP exercise_tracker_http_requests_total HTTP requests by route, method and status code.
# TYPE exercise_tracker_http_requests_total counter
exercise_tracker_http_requests_total{method="GET",route="/api/exercise/log",status="400"} 2
exercise_tracker_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "exercise_tracker_http_requests_total"))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	c.ObserveHTTPRequest("/health", http.MethodGet, http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `exercise_tracker_http_request_duration_seconds_count{method="GET",route="/health"} 1`)
}
