package handler

import (
	"GenoFlow_Gateway/internal/api-gateway/api/dto/response"
	"GenoFlow_Gateway/internal/api-gateway/registry"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

type SystemHandler interface {
	// Health reports the gateway as healthy and each registered service as healthy or degraded.
	Health() gin.HandlerFunc
	Root() gin.HandlerFunc
}

type systemHandler struct {
	registry registry.Registry
	version  string
	now      func() time.Time
}

func (s *systemHandler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		services := make(map[string]string)
		for name := range s.registry.Snapshot() {
			status := StatusDegraded
			if s.registry.IsServiceHealthy(name) {
				status = StatusHealthy
			}
			services[name] = status
		}
		c.JSON(http.StatusOK, response.HealthResponse{
			Status:    StatusHealthy,
			Timestamp: s.now().UTC(),
			Version:   s.version,
			Services:  services,
		})
	}
}

func (s *systemHandler) Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.RootResponse{
			Message: "GenoFlow API Gateway",
			Version: s.version,
			Docs:    "/docs",
		})
	}
}

func NewSystemHandler(registry registry.Registry, version string) SystemHandler {
	return &systemHandler{
		registry: registry,
		version:  version,
		now:      time.Now,
	}
}
