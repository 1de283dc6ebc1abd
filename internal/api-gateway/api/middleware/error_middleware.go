package middleware

import (
	"GenoFlow_Gateway/internal/api-gateway/api/dto/response"
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CodeServiceNotFound         = "SERVICE_NOT_FOUND"
	CodeServiceUnavailable      = "SERVICE_UNAVAILABLE"
	CodeInvalidToken            = "INVALID_TOKEN"
	CodeTokenExpired            = "TOKEN_EXPIRED"
	CodeWrongTokenType          = "WRONG_TOKEN_TYPE"
	CodeTokenRevokedOrExpired   = "TOKEN_REVOKED_OR_EXPIRED"
	CodeMissingAuthentication   = "MISSING_AUTHENTICATION"
	CodeInvalidCredentials      = "INVALID_CREDENTIALS"
	CodeInsufficientPermissions = "INSUFFICIENT_PERMISSIONS"
	CodeRateLimitExceeded       = "RATE_LIMIT_EXCEEDED"
	CodeMalformedRequest        = "MALFORMED_REQUEST"
	CodeNotFound                = "NOT_FOUND"
	CodeInternalServerError     = "INTERNAL_SERVER_ERROR"
)

const internalErrorMessage = "An unexpected error occurred"

type errorMapping struct {
	kind    error
	status  int
	code    string
	message string
}

// Order matters only for errors wrapping more than one sentinel; the first match wins.
var errorMappings = []errorMapping{
	{apperrors.ErrServiceNotFound, http.StatusServiceUnavailable, CodeServiceNotFound, "Service not found"},
	{apperrors.ErrServiceUnavailable, http.StatusServiceUnavailable, CodeServiceUnavailable, "Service temporarily unavailable"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, CodeTokenExpired, "Token has expired"},
	{apperrors.ErrWrongTokenType, http.StatusUnauthorized, CodeWrongTokenType, "Invalid token type"},
	{apperrors.ErrInvalidToken, http.StatusUnauthorized, CodeInvalidToken, "Invalid token"},
	{apperrors.ErrTokenRevokedOrExpired, http.StatusUnauthorized, CodeTokenRevokedOrExpired, "Refresh token has been revoked or has expired"},
	{apperrors.ErrRefreshTokenNotFound, http.StatusUnauthorized, CodeTokenRevokedOrExpired, "Refresh token has been revoked or has expired"},
	{apperrors.ErrMissingAuthentication, http.StatusUnauthorized, CodeMissingAuthentication, "Authentication required"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid username or password"},
	{apperrors.ErrInsufficientPermissions, http.StatusForbidden, CodeInsufficientPermissions, "Insufficient permissions"},
	{apperrors.ErrRateLimitExceeded, http.StatusTooManyRequests, CodeRateLimitExceeded, "Rate limit exceeded"},
	{apperrors.ErrMalformedRequest, http.StatusBadRequest, CodeMalformedRequest, "Malformed request"},
	{apperrors.ErrRouteNotFound, http.StatusNotFound, CodeNotFound, "Resource not found"},
}

// ResolveError maps err to the status and body sent to the client. Unknown errors become a generic 500
// whose message never includes the error text.
func ResolveError(err error) (int, response.ErrorBody) {
	for _, m := range errorMappings {
		if !errors.Is(err, m.kind) {
			continue
		}
		body := response.ErrorBody{Code: m.code, Message: m.message}
		var detailed *apperrors.DetailedError
		if errors.As(err, &detailed) && errors.Is(detailed.Kind, m.kind) {
			if detailed.Message != "" {
				body.Message = detailed.Message
			}
			body.Details = detailed.Details
		}
		return m.status, body
	}
	return http.StatusInternalServerError, response.ErrorBody{
		Code:    CodeInternalServerError,
		Message: internalErrorMessage,
	}
}

type ErrorMiddleware interface {
	// Handle is the outermost stage of the pipeline. It assigns the request id, recovers panics
	// and renders the last error recorded with c.Error.
	Handle() gin.HandlerFunc
	// NotFound is registered as the engine's NoRoute handler.
	NotFound() gin.HandlerFunc
}

type errorMiddleware struct {
	logger *zap.Logger
}

func (e *errorMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		defer func() {
			if r := recover(); r != nil {
				e.logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("request_id", requestID),
					zap.String("http_method", c.Request.Method),
					zap.String("http_path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				if !c.Writer.Written() {
					e.write(c, http.StatusInternalServerError, response.ErrorBody{
						Code:    CodeInternalServerError,
						Message: internalErrorMessage,
					})
				}
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		status, body := ResolveError(c.Errors.Last().Err)
		e.write(c, status, body)
	}
}

func (e *errorMiddleware) write(c *gin.Context, status int, body response.ErrorBody) {
	body.RequestID = GetRequestID(c)
	switch status {
	case http.StatusUnauthorized:
		c.Header("WWW-Authenticate", "Bearer")
	case http.StatusTooManyRequests:
		if retryAfter, ok := body.Details["retry_after"].(int); ok {
			c.Header("Retry-After", strconv.Itoa(retryAfter))
		}
	}
	c.AbortWithStatusJSON(status, response.ErrorResponse{Error: body})
}

func (e *errorMiddleware) NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperrors.ErrRouteNotFound)
		c.Abort()
	}
}

func NewErrorMiddleware(logger *zap.Logger) ErrorMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &errorMiddleware{logger: logger}
}
