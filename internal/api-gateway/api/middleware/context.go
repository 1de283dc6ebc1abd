package middleware

import (
	"GenoFlow_Gateway/internal/api-gateway/model"

	"github.com/gin-gonic/gin"
)

const (
	PrincipalContextKey = "PrincipalContextKey"
	RequestIDContextKey = "RequestIDContextKey"
	ClientIDContextKey  = "ClientIDContextKey"

	RequestIDHeader = "X-Request-ID"
)

// GetPrincipal returns the principal attached by Authenticate.
func GetPrincipal(c *gin.Context) (model.Principal, bool) {
	value, ok := c.Get(PrincipalContextKey)
	if !ok {
		return model.Principal{}, false
	}
	principal, ok := value.(model.Principal)
	return principal, ok
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}

func GetClientID(c *gin.Context) string {
	return c.GetString(ClientIDContextKey)
}
