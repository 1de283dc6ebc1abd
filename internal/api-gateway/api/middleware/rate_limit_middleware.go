package middleware

import (
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"GenoFlow_Gateway/internal/api-gateway/ratelimit"
	"math"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RateLimitMiddleware interface {
	Limit() gin.HandlerFunc
}

type rateLimitMiddleware struct {
	limiter     ratelimit.Limiter
	decoder     ratelimit.TokenDecoder
	exemptPaths []string
}

func (r *rateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := ratelimit.ClientIdentity(r.decoder, c.GetHeader("Authorization"), c.ClientIP())
		c.Set(ClientIDContextKey, clientID)
		if slices.Contains(r.exemptPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		decision := r.limiter.CheckAndIncrement(c.Request.Context(), clientID)
		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			retryAfter := max(int(math.Ceil(decision.RetryAfter.Seconds())), 1)
			_ = c.Error(apperrors.WithDetails(apperrors.ErrRateLimitExceeded, "Rate limit exceeded", map[string]any{
				"retry_after": retryAfter,
				"limit":       decision.Limit,
			}))
			c.Abort()
			return
		}
		c.Next()
	}
}

// NewRateLimitMiddleware counts every request except those whose path is exactly one of exemptPaths.
func NewRateLimitMiddleware(limiter ratelimit.Limiter, decoder ratelimit.TokenDecoder, exemptPaths ...string) RateLimitMiddleware {
	return &rateLimitMiddleware{
		limiter:     limiter,
		decoder:     decoder,
		exemptPaths: exemptPaths,
	}
}
