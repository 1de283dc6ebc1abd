package routes

import (
	mock_handler "GenoFlow_Gateway/internal/api-gateway/mocks/api/handler"
	mock_middleware "GenoFlow_Gateway/internal/api-gateway/mocks/api/middleware"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetUpAuthRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mock_handler.NewMockAuthHandler(ctrl)
	mockMiddleware := mock_middleware.NewMockAuthMiddleware(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	respondWith := func(body string) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.String(http.StatusOK, body)
		}
	}
	mockMiddleware.EXPECT().RequireRoles(model.RoleAdmin).Return(func(c *gin.Context) {
		c.Header("X-Guarded", "admin")
		c.Next()
	})
	mockHandler.EXPECT().Login().Return(respondWith("login"))
	mockHandler.EXPECT().Refresh().Return(respondWith("refresh"))
	mockHandler.EXPECT().Logout().Return(respondWith("logout"))
	mockHandler.EXPECT().Me().Return(respondWith("me"))
	mockHandler.EXPECT().Admin().Return(respondWith("admin"))

	SetUpAuthRoutes(r, mockHandler, mockMiddleware)

	testCases := []struct {
		name          string
		method        string
		path          string
		expectedBody  string
		expectGuarded bool
	}{
		{"Login Route", http.MethodPost, "/auth/login", "login", false},
		{"Refresh Route", http.MethodPost, "/auth/refresh", "refresh", false},
		{"Logout Route", http.MethodPost, "/auth/logout", "logout", false},
		{"Me Route", http.MethodGet, "/auth/me", "me", false},
		{"Admin Route", http.MethodGet, "/auth/admin", "admin", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.expectedBody, w.Body.String())
			assert.Equal(t, tc.expectGuarded, w.Header().Get("X-Guarded") == "admin")
		})
	}
}
