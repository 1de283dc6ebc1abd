package routes

import (
	"GenoFlow_Gateway/internal/api-gateway/api/handler"
	"GenoFlow_Gateway/internal/api-gateway/api/middleware"
	"GenoFlow_Gateway/internal/api-gateway/config"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"time"

	"github.com/gin-gonic/gin"
)

const APIPrefix = "/api/v1"

type ForwardTimeouts struct {
	Default time.Duration
	Upload  time.Duration
}

// SetUpServiceRoutes registers the routes relayed to backend services. Each group checks the permission of its
// resource before forwarding.
func SetUpServiceRoutes(r *gin.Engine, proxy handler.ProxyHandler, m middleware.AuthMiddleware, timeouts ForwardTimeouts) {
	api := r.Group(APIPrefix)

	ingestion := api.Group("/ingestion", m.RequirePermission(model.ResourceIngestion))
	ingestion.POST("/upload", proxy.Forward(config.ServiceDataIngestion, APIPrefix+"/ingestion", timeouts.Upload))
	ingestion.GET("/upload/:upload_id", proxy.Forward(config.ServiceDataIngestion, APIPrefix+"/ingestion", timeouts.Default))

	qc := api.Group("/qc", m.RequirePermission(model.ResourceQC))
	qcForward := proxy.Forward(config.ServiceQC, APIPrefix+"/qc", timeouts.Default)
	qc.POST("/analyze", qcForward)
	qc.GET("/results/:qc_job_id", qcForward)

	// the pipeline service serves /pipelines itself, so only the API prefix is stripped
	pipelines := api.Group("/pipelines", m.RequirePermission(model.ResourcePipelines))
	pipelineForward := proxy.Forward(config.ServicePipeline, APIPrefix, timeouts.Default)
	pipelines.GET("", pipelineForward)
	pipelines.POST("/:pipeline_id/configurations", pipelineForward)

	execution := api.Group("/execution", m.RequirePermission(model.ResourceExecution))
	executionForward := proxy.Forward(config.ServiceExecution, APIPrefix+"/execution", timeouts.Default)
	execution.POST("/jobs", executionForward)
	execution.GET("/jobs/:job_id", executionForward)

	results := api.Group("/results", m.RequirePermission(model.ResourceResults))
	resultsForward := proxy.Forward(config.ServiceResults, APIPrefix+"/results", timeouts.Default)
	results.GET("/:job_id", resultsForward)
	results.POST("/:job_id/download-links", resultsForward)

	monitoring := api.Group("/monitoring", m.RequirePermission(model.ResourceMonitoring))
	monitoring.GET("/metrics", proxy.Forward(config.ServiceMonitoring, APIPrefix+"/monitoring", timeouts.Default))
}
