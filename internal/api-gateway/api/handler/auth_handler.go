package handler

import (
	"GenoFlow_Gateway/internal/api-gateway/api/dto/request"
	"GenoFlow_Gateway/internal/api-gateway/api/dto/response"
	"GenoFlow_Gateway/internal/api-gateway/api/middleware"
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"GenoFlow_Gateway/internal/api-gateway/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const tokenTypeBearer = "bearer"

type AuthHandler interface {
	Login() gin.HandlerFunc
	Refresh() gin.HandlerFunc
	Logout() gin.HandlerFunc
	Me() gin.HandlerFunc
	Admin() gin.HandlerFunc
}

type authHandler struct {
	authService service.AuthService
	logger      Logger
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s", err.Field(), err.Tag())
	}
}

// bindJSON binds the body into req and records a MalformedRequest error when it does not validate.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var validatorError validator.ValidationErrors
	if errors.As(err, &validatorError) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrMalformedRequest, formatValidationError(validatorError[0])))
	} else {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrMalformedRequest, "Invalid request body"))
	}
	c.Abort()
	return false
}

// isClientError reports whether err is one of the domain errors rendered as a 4xx response.
func isClientError(err error) bool {
	for _, kind := range []error{
		apperrors.ErrInvalidToken,
		apperrors.ErrTokenExpired,
		apperrors.ErrWrongTokenType,
		apperrors.ErrTokenRevokedOrExpired,
		apperrors.ErrInvalidCredentials,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

func (a *authHandler) fail(c *gin.Context, err error, errDescription string) {
	if !isClientError(err) {
		a.logger.LoggingError(c, err, errDescription, zap.ErrorLevel)
	}
	_ = c.Error(err)
	c.Abort()
}

func principalResponse(p model.Principal) response.PrincipalResponse {
	roles := p.Roles
	if roles == nil {
		roles = []string{}
	}
	return response.PrincipalResponse{
		UserID:   p.Subject,
		Username: p.Username,
		Roles:    roles,
	}
}

func tokenResponse(pair model.TokenPair) response.TokenResponse {
	return response.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int(pair.AccessTokenTTL.Seconds()),
		User:         principalResponse(pair.Principal),
	}
}

func (a *authHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.LoginRequest
		if !bindJSON(c, &req) {
			return
		}
		pair, err := a.authService.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			a.fail(c, fmt.Errorf("AuthHandler.Login: %w", err), "failed to login")
			return
		}
		c.JSON(http.StatusOK, tokenResponse(pair))
	}
}

func (a *authHandler) Refresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.RefreshRequest
		if !bindJSON(c, &req) {
			return
		}
		pair, err := a.authService.RefreshAccessToken(c.Request.Context(), req.RefreshToken)
		if err != nil {
			a.fail(c, fmt.Errorf("AuthHandler.Refresh: %w", err), "failed to refresh token")
			return
		}
		c.JSON(http.StatusOK, tokenResponse(pair))
	}
}

func (a *authHandler) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			_ = c.Error(apperrors.ErrMissingAuthentication)
			c.Abort()
			return
		}
		var req request.LogoutRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := a.authService.Logout(c.Request.Context(), principal, req.RefreshToken); err != nil {
			a.fail(c, fmt.Errorf("AuthHandler.Logout: %w", err), "failed to logout")
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Logout successfully",
		})
	}
}

func (a *authHandler) Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := middleware.GetPrincipal(c)
		if !ok {
			_ = c.Error(apperrors.ErrMissingAuthentication)
			c.Abort()
			return
		}
		c.JSON(http.StatusOK, principalResponse(principal))
	}
}

// Admin is only reachable through RequireRoles(admin).
func (a *authHandler) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, _ := middleware.GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{
			"message": "Admin access granted",
			"user":    principalResponse(principal),
		})
	}
}

func NewAuthHandler(authService service.AuthService, logger Logger) AuthHandler {
	return &authHandler{
		authService: authService,
		logger:      logger,
	}
}
