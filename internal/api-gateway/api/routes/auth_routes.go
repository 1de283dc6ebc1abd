package routes

import (
	"GenoFlow_Gateway/internal/api-gateway/api/handler"
	"GenoFlow_Gateway/internal/api-gateway/api/middleware"
	"GenoFlow_Gateway/internal/api-gateway/model"

	"github.com/gin-gonic/gin"
)

// SetUpAuthRoutes registers the /auth group. Authentication itself runs in the global pipeline,
// which lets /auth/login and /auth/refresh through without a token.
func SetUpAuthRoutes(r *gin.Engine, handler handler.AuthHandler, m middleware.AuthMiddleware) {
	authRoutes := r.Group("/auth")
	authRoutes.POST("/login", handler.Login())
	authRoutes.POST("/refresh", handler.Refresh())
	authRoutes.POST("/logout", handler.Logout())
	authRoutes.GET("/me", handler.Me())
	authRoutes.GET("/admin", m.RequireRoles(model.RoleAdmin), handler.Admin())
}
