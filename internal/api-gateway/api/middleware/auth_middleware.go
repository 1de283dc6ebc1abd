package middleware

import (
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"GenoFlow_Gateway/internal/api-gateway/ratelimit"
	"GenoFlow_Gateway/internal/api-gateway/service"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// PublicPathPrefixes are reachable without a bearer token. "/" itself is matched exactly.
var PublicPathPrefixes = []string{
	"/health",
	"/docs",
	"/redoc",
	"/openapi.json",
	"/auth/login",
	"/auth/refresh",
}

func IsPublicPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range PublicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

type AuthMiddleware interface {
	// Authenticate verifies the bearer token of every non-public request and stores the principal under PrincipalContextKey.
	Authenticate() gin.HandlerFunc
	RequireRoles(roles ...string) gin.HandlerFunc
	// RequirePermission checks resource against the action implied by the request method.
	RequirePermission(resource string) gin.HandlerFunc
}

type authMiddleware struct {
	authService service.AuthService
}

func (a *authMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			_ = c.Error(apperrors.WithMessage(apperrors.ErrMissingAuthentication, "Authorization header is missing"))
			c.Abort()
			return
		}
		token, ok := ratelimit.BearerToken(authHeader)
		if !ok {
			_ = c.Error(apperrors.WithMessage(apperrors.ErrMissingAuthentication, "Authorization header must use the Bearer scheme"))
			c.Abort()
			return
		}
		principal, err := a.authService.VerifyToken(token)
		if err != nil {
			_ = c.Error(fmt.Errorf("AuthMiddleware.Authenticate: %w", err))
			c.Abort()
			return
		}
		c.Set(PrincipalContextKey, principal)
		c.Next()
	}
}

func (a *authMiddleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			_ = c.Error(apperrors.ErrMissingAuthentication)
			c.Abort()
			return
		}
		if err := a.authService.RequireRoles(principal, roles...); err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *authMiddleware) RequirePermission(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			_ = c.Error(apperrors.ErrMissingAuthentication)
			c.Abort()
			return
		}
		action := model.ActionForMethod(c.Request.Method)
		if !a.authService.HasPermission(principal, resource, action) {
			_ = c.Error(apperrors.WithDetails(apperrors.ErrInsufficientPermissions, "Insufficient permissions", map[string]any{
				"resource": resource,
				"action":   string(action),
			}))
			c.Abort()
			return
		}
		c.Next()
	}
}

func NewAuthMiddleware(authService service.AuthService) AuthMiddleware {
	return &authMiddleware{authService: authService}
}
