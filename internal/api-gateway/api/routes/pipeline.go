package routes

import (
	"GenoFlow_Gateway/internal/api-gateway/api/middleware"
	"GenoFlow_Gateway/internal/api-gateway/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Pipeline struct {
	Errors         middleware.ErrorMiddleware
	RateLimit      middleware.RateLimitMiddleware
	Auth           middleware.AuthMiddleware
	Metrics        *metrics.HTTPMetrics
	Logger         *zap.Logger
	AllowedOrigins []string
}

// SetUpPipeline installs the global middleware. CORS and metrics wrap the request pipeline, which then runs
// error containment, access logging, rate limiting and authentication in that order.
func SetUpPipeline(r *gin.Engine, p Pipeline) {
	r.Use(
		middleware.CORS(p.AllowedOrigins),
		p.Metrics.Handler(),
		p.Errors.Handle(),
		middleware.RequestLogger(p.Logger),
		p.RateLimit.Limit(),
		p.Auth.Authenticate(),
	)
	r.NoRoute(p.Errors.NotFound())
}
