package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one access log entry per request. It runs inside the error middleware, so the status of a
// request that ended with a recorded error is resolved the same way the error middleware will render it.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		completed := false
		// deferred without recovering, so a panic still reaches the error middleware and is logged here as a 500
		defer func() {
			status := c.Writer.Status()
			switch {
			case !completed:
				status = http.StatusInternalServerError
			case len(c.Errors) > 0 && !c.Writer.Written():
				status, _ = ResolveError(c.Errors.Last().Err)
			}
			logRequest(logger, c, start, status, !completed)
		}()

		c.Next()
		completed = true
	}
}

func logRequest(logger *zap.Logger, c *gin.Context, start time.Time, status int, panicked bool) {
	clientID := GetClientID(c)
	if clientID == "" {
		clientID = "ip:" + c.ClientIP()
	}
	fields := []zap.Field{
		zap.String("request_id", GetRequestID(c)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("client_id", clientID),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
	}
	if principal, ok := GetPrincipal(c); ok {
		fields = append(fields, zap.String("user_id", principal.Subject))
	}
	if panicked {
		fields = append(fields, zap.Bool("panicked", true))
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("request failed", append(fields, zap.String("errors", c.Errors.String()))...)
	case status >= http.StatusBadRequest:
		logger.Warn("request rejected", fields...)
	default:
		logger.Info("request completed", fields...)
	}
}
