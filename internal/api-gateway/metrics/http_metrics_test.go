package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetrics_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m, err := NewHTTPMetrics(HTTPMetricsOptions{Registerer: reg})
	require.NoError(t, err)

	router := gin.New()
	router.Use(m.Handler())
	router.GET("/api/v1/results/:job_id", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	for _, path := range []string{"/api/v1/results/1", "/api/v1/results/2", "/nowhere"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Requests.With(prometheus.Labels{
		"method": http.MethodGet,
		"route":  "/api/v1/results/:job_id",
		"status": "201",
	})))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests.With(prometheus.Labels{
		"method": http.MethodGet,
		"route":  UnmatchedRoute,
		"status": "404",
	})))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.InFlight))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Duration))

	names := []string{}
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"gateway_http_requests_total",
		"gateway_http_request_duration_seconds",
		"gateway_http_in_flight_requests",
	}, names)
}

func TestHTTPMetrics_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewHTTPMetrics(HTTPMetricsOptions{Registerer: reg})
	require.NoError(t, err)
	second, err := NewHTTPMetrics(HTTPMetricsOptions{Registerer: reg})
	require.NoError(t, err)

	assert.Same(t, first.Requests, second.Requests)
	assert.Same(t, first.Duration, second.Duration)
}

func TestHTTPMetrics_NilHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use((*HTTPMetrics)(nil).Handler())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
