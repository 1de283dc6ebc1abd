// Package middleware is used by the backend services behind the gateway to read the identity the gateway forwards.
package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDHeader    = "X-User-ID"
	UserRolesHeader = "X-User-Roles"

	IdentityContextKey = "IdentityContextKey"
)

type Identity struct {
	UserID string
	Roles  []string
}

type AuthMiddleware interface {
	// ExtractIdentity rejects requests without X-User-ID and stores the identity under IdentityContextKey.
	ExtractIdentity() gin.HandlerFunc
	RequireRoles(roles ...string) gin.HandlerFunc
}

type authMiddleware struct {
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{"code": code, "message": message},
	})
}

func (a *authMiddleware) ExtractIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if userID == "" {
			abort(c, http.StatusUnauthorized, "MISSING_AUTHENTICATION", "X-User-ID header is empty")
			return
		}
		var roles []string
		for _, role := range strings.Split(c.GetHeader(UserRolesHeader), ",") {
			if role = strings.TrimSpace(role); role != "" {
				roles = append(roles, role)
			}
		}
		c.Set(IdentityContextKey, Identity{UserID: userID, Roles: roles})
		c.Next()
	}
}

func (a *authMiddleware) RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "MISSING_AUTHENTICATION", "Identity not found")
			return
		}
		for _, role := range identity.Roles {
			if slices.Contains(roles, role) {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, "INSUFFICIENT_PERMISSIONS", "Permission denied")
	}
}

func GetIdentity(c *gin.Context) (Identity, bool) {
	value, ok := c.Get(IdentityContextKey)
	if !ok {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

func NewAuthMiddleware() AuthMiddleware {
	return &authMiddleware{}
}
