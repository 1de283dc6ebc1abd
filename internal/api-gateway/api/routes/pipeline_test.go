package routes

import (
	"GenoFlow_Gateway/internal/api-gateway/api/dto/response"
	"GenoFlow_Gateway/internal/api-gateway/api/handler"
	"GenoFlow_Gateway/internal/api-gateway/api/middleware"
	"GenoFlow_Gateway/internal/api-gateway/jwt"
	mockrepository "GenoFlow_Gateway/internal/api-gateway/mocks/repository"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"GenoFlow_Gateway/internal/api-gateway/ratelimit"
	"GenoFlow_Gateway/internal/api-gateway/registry"
	"GenoFlow_Gateway/internal/api-gateway/repository"
	"GenoFlow_Gateway/internal/api-gateway/service"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type testGateway struct {
	router   *gin.Engine
	now      *time.Time
	userRepo *mockrepository.MockUserRepository
}

func newTestGateway(t *testing.T, limit int, backendURL string) *testGateway {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	gw := &testGateway{now: &now, userRepo: mockrepository.NewMockUserRepository(ctrl)}
	clock := func() time.Time { return *gw.now }

	jwtUtils := jwt.NewJwtUtils("pipeline-test-secret", time.Hour, 24*time.Hour)
	authService := service.NewAuthService(gw.userRepo, repository.NewRefreshTokenRepository(rdb), jwtUtils, service.DefaultPermissionTable(), nil)
	limiter := ratelimit.NewLimiter(repository.NewRateLimitRepository(rdb), limit, time.Minute, nil, ratelimit.WithClock(clock))

	reg := registry.NewServiceRegistry(nil, repository.NewServiceRepository(rdb), time.Hour, nil)
	if backendURL != "" {
		reg.RegisterService(context.Background(), "results", []string{backendURL})
	}

	authMiddleware := middleware.NewAuthMiddleware(authService)
	errorMiddleware := middleware.NewErrorMiddleware(nil)
	handlerLogger := handler.NewLogger(nil)

	r := gin.New()
	SetUpPipeline(r, Pipeline{
		Errors:    errorMiddleware,
		RateLimit: middleware.NewRateLimitMiddleware(limiter, jwtUtils, "/health"),
		Auth:      authMiddleware,
	})
	SetUpSystemRoutes(r, handler.NewSystemHandler(reg, "1.0.0"))
	SetUpAuthRoutes(r, handler.NewAuthHandler(authService, handlerLogger), authMiddleware)
	SetUpServiceRoutes(r, handler.NewProxyHandler(reg, nil, 1, handlerLogger), authMiddleware, ForwardTimeouts{
		Default: time.Second,
		Upload:  time.Second,
	})
	gw.router = r
	return gw
}

func (g *testGateway) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	g.router.ServeHTTP(w, req)
	return w
}

func TestPipeline_RateLimitWindow(t *testing.T) {
	gw := newTestGateway(t, 10, "")

	for i := range 10 {
		w := gw.do(http.MethodGet, "/", "", "")
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := gw.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"code":"RATE_LIMIT_EXCEEDED"`)

	w = gw.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	*gw.now = gw.now.Add(time.Minute)
	w = gw.do(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPipeline_AuthenticatedForwarding(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `","user":"` + r.Header.Get("X-User-ID") + `"}`))
	}))
	defer backend.Close()
	gw := newTestGateway(t, 100, backend.URL)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := model.User{
		ID:       "user-42",
		Username: "rita",
		Password: string(hash),
		IsActive: true,
		Roles:    []model.Role{{Name: "researcher"}},
	}
	gw.userRepo.EXPECT().GetUserByUsername(gomock.Any(), "rita").Return(user, nil)
	gw.userRepo.EXPECT().GetUserByID(gomock.Any(), "user-42").Return(user, nil)

	w := gw.do(http.MethodGet, "/api/v1/results/j-1", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	w = gw.do(http.MethodPost, "/auth/login", "", `{"username":"rita","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var tokens response.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokens))
	assert.Equal(t, "bearer", tokens.TokenType)
	assert.Equal(t, 3600, tokens.ExpiresIn)
	assert.Equal(t, []string{"researcher"}, tokens.User.Roles)

	w = gw.do(http.MethodGet, "/api/v1/results/j-1", tokens.AccessToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"path":"/j-1","user":"user-42"}`, w.Body.String())

	w = gw.do(http.MethodPost, "/api/v1/results/j-1/download-links", tokens.AccessToken, `{}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"INSUFFICIENT_PERMISSIONS"`)

	w = gw.do(http.MethodGet, "/auth/admin", tokens.AccessToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = gw.do(http.MethodGet, "/api/v1/qc/results/q-1", tokens.AccessToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = gw.do(http.MethodGet, "/api/v1/unknown", tokens.AccessToken, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)

	w = gw.do(http.MethodGet, "/auth/me", tokens.RefreshToken, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"WRONG_TOKEN_TYPE"`)

	refreshBody := `{"refresh_token":"` + tokens.RefreshToken + `"}`
	w = gw.do(http.MethodPost, "/auth/refresh", "", refreshBody)
	require.Equal(t, http.StatusOK, w.Code)
	var rotated response.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rotated))
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	w = gw.do(http.MethodPost, "/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"TOKEN_REVOKED_OR_EXPIRED"`)

	w = gw.do(http.MethodPost, "/auth/logout", rotated.AccessToken, `{"refresh_token":"`+rotated.RefreshToken+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = gw.do(http.MethodPost, "/auth/refresh", "", `{"refresh_token":"`+rotated.RefreshToken+`"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPipeline_Health(t *testing.T) {
	gw := newTestGateway(t, 10, "http://results-1:8005")

	w := gw.do(http.MethodGet, "/health", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	var res response.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "healthy", res.Status)
	assert.Equal(t, map[string]string{"results": "healthy"}, res.Services)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
