package middleware

import (
	"GenoFlow_Gateway/internal/api-gateway/api/dto/response"
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveError(t *testing.T) {
	testCases := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedCode    string
		expectedMessage string
	}{
		{"Service not found", apperrors.WithMessage(apperrors.ErrServiceNotFound, "Service 'qc' not found"), http.StatusServiceUnavailable, CodeServiceNotFound, "Service 'qc' not found"},
		{"Service unavailable", fmt.Errorf("proxy: %w", apperrors.ErrServiceUnavailable), http.StatusServiceUnavailable, CodeServiceUnavailable, "Service temporarily unavailable"},
		{"Invalid token", fmt.Errorf("a: %w", fmt.Errorf("b: %w", apperrors.ErrInvalidToken)), http.StatusUnauthorized, CodeInvalidToken, "Invalid token"},
		{"Token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, CodeTokenExpired, "Token has expired"},
		{"Wrong token type", apperrors.ErrWrongTokenType, http.StatusUnauthorized, CodeWrongTokenType, "Invalid token type"},
		{"Revoked refresh token", apperrors.ErrTokenRevokedOrExpired, http.StatusUnauthorized, CodeTokenRevokedOrExpired, "Refresh token has been revoked or has expired"},
		{"Missing authentication", apperrors.ErrMissingAuthentication, http.StatusUnauthorized, CodeMissingAuthentication, "Authentication required"},
		{"Invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid username or password"},
		{"Insufficient permissions", apperrors.ErrInsufficientPermissions, http.StatusForbidden, CodeInsufficientPermissions, "Insufficient permissions"},
		{"Rate limit", apperrors.ErrRateLimitExceeded, http.StatusTooManyRequests, CodeRateLimitExceeded, "Rate limit exceeded"},
		{"Malformed request", apperrors.WithMessage(apperrors.ErrMalformedRequest, "The username field is required"), http.StatusBadRequest, CodeMalformedRequest, "The username field is required"},
		{"Route not found", apperrors.ErrRouteNotFound, http.StatusNotFound, CodeNotFound, "Resource not found"},
		{"Unknown error", errors.New("dial tcp 10.0.0.5:6379: connection refused"), http.StatusInternalServerError, CodeInternalServerError, internalErrorMessage},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := ResolveError(tc.err)
			assert.Equal(t, tc.expectedStatus, status)
			assert.Equal(t, tc.expectedCode, body.Code)
			assert.Equal(t, tc.expectedMessage, body.Message)
		})
	}
}

func TestResolveError_Details(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", apperrors.WithDetails(apperrors.ErrInsufficientPermissions, "Insufficient permissions", map[string]any{
		"required_roles": []string{"admin"},
	}))

	status, body := ResolveError(err)

	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, []string{"admin"}, body.Details["required_roles"])
}

func newErrorTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := NewErrorMiddleware(nil)
	r := gin.New()
	r.Use(e.Handle())
	r.NoRoute(e.NotFound())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	r.GET("/expired", func(c *gin.Context) {
		_ = c.Error(fmt.Errorf("handler: %w", apperrors.ErrTokenExpired))
		c.Abort()
	})
	r.GET("/limited", func(c *gin.Context) {
		_ = c.Error(apperrors.WithDetails(apperrors.ErrRateLimitExceeded, "Rate limit exceeded", map[string]any{"retry_after": 42}))
		c.Abort()
	})
	r.GET("/internal", func(c *gin.Context) {
		_ = c.Error(errors.New("secret connection string leaked"))
		c.Abort()
	})
	r.GET("/written", func(c *gin.Context) {
		c.String(http.StatusAccepted, "done")
		_ = c.Error(errors.New("late error"))
	})
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var res response.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Error
}

func TestErrorMiddleware_Handle(t *testing.T) {
	r := newErrorTestRouter()

	t.Run("Success, Request id generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("Success, Incoming request id kept", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/expired", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
		body := decodeError(t, w)
		assert.Equal(t, "req-123", body.RequestID)
	})

	t.Run("Panic becomes internal server error", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, CodeInternalServerError, body.Code)
		assert.Equal(t, internalErrorMessage, body.Message)
		assert.NotEmpty(t, body.RequestID)
	})

	t.Run("Unauthorized carries WWW-Authenticate", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/expired", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		assert.Equal(t, CodeTokenExpired, decodeError(t, w).Code)
	})

	t.Run("Rate limit carries Retry-After", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "42", w.Header().Get("Retry-After"))
		body := decodeError(t, w)
		assert.Equal(t, float64(42), body.Details["retry_after"])
	})

	t.Run("Internal error text is not exposed", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/internal", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "secret")
	})

	t.Run("Written response is left alone", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, "done", w.Body.String())
	})

	t.Run("Unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/does/not/exist", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, CodeNotFound, decodeError(t, w).Code)
	})
}
