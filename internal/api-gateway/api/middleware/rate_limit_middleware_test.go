package middleware

import (
	"GenoFlow_Gateway/internal/api-gateway/jwt"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"GenoFlow_Gateway/internal/api-gateway/ratelimit"
	"GenoFlow_Gateway/internal/api-gateway/repository"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitTestRouter(t *testing.T, limit int, now func() time.Time) (*gin.Engine, jwt.Utils) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwtUtils := jwt.NewJwtUtils("rate-limit-test-secret", time.Hour, 24*time.Hour)
	limiter := ratelimit.NewLimiter(repository.NewMemoryRateLimitRepository(now), limit, time.Minute, nil, ratelimit.WithClock(now))
	rl := NewRateLimitMiddleware(limiter, jwtUtils, "/health")

	e := NewErrorMiddleware(nil)
	r := gin.New()
	r.Use(e.Handle(), rl.Limit())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/whoami", func(c *gin.Context) { c.String(http.StatusOK, GetClientID(c)) })
	return r, jwtUtils
}

func TestRateLimitMiddleware_Limit(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 20, 0, time.UTC)
	r, _ := newRateLimitTestRouter(t, 2, func() time.Time { return now })

	send := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "10.1.2.3:5555"
		r.ServeHTTP(w, req)
		return w
	}

	w := send("/whoami")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ip:10.1.2.3", w.Body.String())
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = send("/whoami")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = send("/whoami")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "40", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"code":"RATE_LIMIT_EXCEEDED"`)
	assert.Contains(t, w.Body.String(), `"retry_after":40`)

	for range 5 {
		w = send("/health")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimitMiddleware_KeysByTokenSubject(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r, jwtUtils := newRateLimitTestRouter(t, 1, func() time.Time { return now })

	tokenA, err := jwtUtils.CreateAccessToken(model.NewPrincipal("user-a", ""))
	require.NoError(t, err)
	tokenB, err := jwtUtils.CreateAccessToken(model.NewPrincipal("user-b", ""))
	require.NoError(t, err)

	send := func(token string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		return w
	}

	w := send(tokenA.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user:user-a", w.Body.String())

	w = send(tokenB.Token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user:user-b", w.Body.String())

	w = send(tokenA.Token)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
