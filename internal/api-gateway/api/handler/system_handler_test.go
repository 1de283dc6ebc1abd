package handler

import (
	"GenoFlow_Gateway/internal/api-gateway/api/dto/response"
	mockregistry "GenoFlow_Gateway/internal/api-gateway/mocks/registry"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSystemHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mockregistry.NewMockRegistry(ctrl)
	mockRegistry.EXPECT().Snapshot().Return(map[string][]model.ServiceInstance{
		"qc":      {{URL: "http://qc-1:8002", HealthScore: 0.9}},
		"results": {{URL: "http://results-1:8005", HealthScore: 0.2}},
	})
	mockRegistry.EXPECT().IsServiceHealthy("qc").Return(true)
	mockRegistry.EXPECT().IsServiceHealthy("results").Return(false)

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	handler := &systemHandler{registry: mockRegistry, version: "1.2.3", now: func() time.Time { return now }}
	router := gin.New()
	router.GET("/health", handler.Health())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res response.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, StatusHealthy, res.Status)
	assert.Equal(t, "1.2.3", res.Version)
	assert.True(t, now.Equal(res.Timestamp))
	assert.Equal(t, map[string]string{"qc": StatusHealthy, "results": StatusDegraded}, res.Services)
}

func TestSystemHandler_Root(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSystemHandler(nil, "1.0.0")
	router := gin.New()
	router.GET("/", handler.Root())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"GenoFlow API Gateway","version":"1.0.0","docs":"/docs"}`, w.Body.String())
}
