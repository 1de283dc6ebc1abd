package routes

import (
	mock_handler "GenoFlow_Gateway/internal/api-gateway/mocks/api/handler"
	mock_middleware "GenoFlow_Gateway/internal/api-gateway/mocks/api/middleware"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetUpServiceRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockProxy := mock_handler.NewMockProxyHandler(ctrl)
	mockMiddleware := mock_middleware.NewMockAuthMiddleware(ctrl)
	timeouts := ForwardTimeouts{Default: 30 * time.Second, Upload: 300 * time.Second}

	gin.SetMode(gin.TestMode)
	r := gin.New()

	guard := func(resource string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Header("X-Resource", resource)
			c.Next()
		}
	}
	for _, resource := range []string{
		model.ResourceIngestion, model.ResourceQC, model.ResourcePipelines,
		model.ResourceExecution, model.ResourceResults, model.ResourceMonitoring,
	} {
		mockMiddleware.EXPECT().RequirePermission(resource).Return(guard(resource))
	}
	forward := func(service, prefix string, timeout time.Duration) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.String(http.StatusOK, "%s %s %s", service, prefix, timeout)
		}
	}
	mockProxy.EXPECT().Forward(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(forward).AnyTimes()

	SetUpServiceRoutes(r, mockProxy, mockMiddleware, timeouts)

	testCases := []struct {
		method           string
		path             string
		expectedResource string
		expectedBody     string
	}{
		{http.MethodPost, "/api/v1/ingestion/upload", model.ResourceIngestion, "data_ingestion /api/v1/ingestion 5m0s"},
		{http.MethodGet, "/api/v1/ingestion/upload/up-1", model.ResourceIngestion, "data_ingestion /api/v1/ingestion 30s"},
		{http.MethodPost, "/api/v1/qc/analyze", model.ResourceQC, "qc /api/v1/qc 30s"},
		{http.MethodGet, "/api/v1/qc/results/qc-1", model.ResourceQC, "qc /api/v1/qc 30s"},
		{http.MethodGet, "/api/v1/pipelines", model.ResourcePipelines, "pipeline /api/v1 30s"},
		{http.MethodPost, "/api/v1/pipelines/p-1/configurations", model.ResourcePipelines, "pipeline /api/v1 30s"},
		{http.MethodPost, "/api/v1/execution/jobs", model.ResourceExecution, "execution /api/v1/execution 30s"},
		{http.MethodGet, "/api/v1/execution/jobs/j-1", model.ResourceExecution, "execution /api/v1/execution 30s"},
		{http.MethodGet, "/api/v1/results/j-1", model.ResourceResults, "results /api/v1/results 30s"},
		{http.MethodPost, "/api/v1/results/j-1/download-links", model.ResourceResults, "results /api/v1/results 30s"},
		{http.MethodGet, "/api/v1/monitoring/metrics", model.ResourceMonitoring, "monitoring /api/v1/monitoring 30s"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.expectedResource, w.Header().Get("X-Resource"))
			assert.Equal(t, tc.expectedBody, w.Body.String())
		})
	}

	t.Run("Unregistered method", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodDelete, "/api/v1/results/j-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

}
