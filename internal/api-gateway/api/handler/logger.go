package handler

import (
	"GenoFlow_Gateway/internal/api-gateway/api/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level)
}

type logger struct {
	log *zap.Logger
}

func (l *logger) LoggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	data := []zapcore.Field{
		zap.Error(err),
		zap.String("http_method", c.Request.Method),
		zap.String("http_path", c.Request.URL.Path),
	}
	if requestID := middleware.GetRequestID(c); requestID != "" {
		data = append(data, zap.String("request_id", requestID))
	}
	if principal, ok := middleware.GetPrincipal(c); ok {
		data = append(data, zap.String("user_id", principal.Subject))
		data = append(data, zap.Strings("roles", principal.Roles))
	}
	l.log.Log(logLevel, errDescription, data...)
}

func NewLogger(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return &logger{
		log: l,
	}
}
