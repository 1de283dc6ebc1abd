package routes

import (
	"GenoFlow_Gateway/internal/api-gateway/api/handler"

	"github.com/gin-gonic/gin"
)

func SetUpSystemRoutes(r *gin.Engine, handler handler.SystemHandler) {
	r.GET("/", handler.Root())
	r.GET("/health", handler.Health())
}
