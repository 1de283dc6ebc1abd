package service

import (
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"GenoFlow_Gateway/internal/api-gateway/jwt"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"GenoFlow_Gateway/internal/api-gateway/repository"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (model.TokenPair, error)
	CreateAccessToken(principal model.Principal) (jwt.AccessToken, error)
	// CreateRefreshToken signs a refresh token and stores its record under the token id.
	CreateRefreshToken(ctx context.Context, principal model.Principal) (jwt.RefreshToken, error)
	VerifyToken(token string) (model.Principal, error)
	// RefreshAccessToken rotates a refresh token. The old record is consumed before the new pair is issued,
	// so presenting the same refresh token twice succeeds only once.
	RefreshAccessToken(ctx context.Context, refreshToken string) (model.TokenPair, error)
	RevokeToken(ctx context.Context, tokenID string) error
	// Logout revokes the presented refresh token. The token must belong to principal.
	Logout(ctx context.Context, principal model.Principal, refreshToken string) error
	HasPermission(principal model.Principal, resource string, action model.Action) bool
	RequireRoles(principal model.Principal, allowedRoles ...string) error
}

type authService struct {
	userRepo    repository.UserRepository
	tokenRepo   repository.RefreshTokenRepository
	jwt         jwt.Utils
	permissions PermissionTable
	logger      *zap.Logger
}

func (a *authService) Login(ctx context.Context, username, password string) (model.TokenPair, error) {
	user, err := a.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return model.TokenPair{}, fmt.Errorf("authService.Login: %w", apperrors.ErrInvalidCredentials)
		}
		return model.TokenPair{}, fmt.Errorf("authService.Login: %w", err)
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("authService.Login: %w", apperrors.ErrInvalidCredentials)
	}
	if !user.IsActive {
		return model.TokenPair{}, fmt.Errorf("authService.Login inactive account: %w", apperrors.ErrInvalidCredentials)
	}
	pair, err := a.issueTokenPair(ctx, user.Principal())
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("authService.Login: %w", err)
	}
	return pair, nil
}

func (a *authService) CreateAccessToken(principal model.Principal) (jwt.AccessToken, error) {
	token, err := a.jwt.CreateAccessToken(principal)
	if err != nil {
		return jwt.AccessToken{}, fmt.Errorf("authService.CreateAccessToken: %w", err)
	}
	return token, nil
}

func (a *authService) CreateRefreshToken(ctx context.Context, principal model.Principal) (jwt.RefreshToken, error) {
	token, err := a.jwt.CreateRefreshToken(principal.Subject)
	if err != nil {
		return jwt.RefreshToken{}, fmt.Errorf("authService.CreateRefreshToken: %w", err)
	}
	record := model.RefreshTokenRecord{
		Subject:  principal.Subject,
		IssuedAt: token.IssuedAt,
	}
	if err = a.tokenRepo.SaveRefreshToken(ctx, token.JTI, record, token.TTL); err != nil {
		return jwt.RefreshToken{}, fmt.Errorf("authService.CreateRefreshToken: %w", err)
	}
	return token, nil
}

func (a *authService) VerifyToken(token string) (model.Principal, error) {
	claims, err := a.jwt.VerifyToken(token, model.TokenKindAccess)
	if err != nil {
		return model.Principal{}, fmt.Errorf("authService.VerifyToken: %w", err)
	}
	return claims.Principal(), nil
}

func (a *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	claims, err := a.jwt.VerifyToken(refreshToken, model.TokenKindRefresh)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("authService.RefreshAccessToken: %w", err)
	}
	record, err := a.tokenRepo.ConsumeRefreshToken(ctx, claims.Id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshTokenNotFound) {
			return model.TokenPair{}, fmt.Errorf("authService.RefreshAccessToken: %w", apperrors.ErrTokenRevokedOrExpired)
		}
		return model.TokenPair{}, fmt.Errorf("authService.RefreshAccessToken: %w", err)
	}
	if record.Subject != claims.Subject {
		a.logger.Warn("refresh token record subject mismatch", zap.String("token_id", claims.Id), zap.String("subject", claims.Subject))
		return model.TokenPair{}, fmt.Errorf("authService.RefreshAccessToken: %w", apperrors.ErrTokenRevokedOrExpired)
	}
	user, err := a.userRepo.GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return model.TokenPair{}, fmt.Errorf("authService.RefreshAccessToken: %w", apperrors.ErrTokenRevokedOrExpired)
		}
		return model.TokenPair{}, fmt.Errorf("authService.RefreshAccessToken: %w", err)
	}
	if !user.IsActive {
		return model.TokenPair{}, fmt.Errorf("authService.RefreshAccessToken inactive account: %w", apperrors.ErrTokenRevokedOrExpired)
	}
	pair, err := a.issueTokenPair(ctx, user.Principal())
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("authService.RefreshAccessToken: %w", err)
	}
	return pair, nil
}

func (a *authService) RevokeToken(ctx context.Context, tokenID string) error {
	if err := a.tokenRepo.DeleteRefreshToken(ctx, tokenID); err != nil {
		return fmt.Errorf("authService.RevokeToken: %w", err)
	}
	return nil
}

func (a *authService) Logout(ctx context.Context, principal model.Principal, refreshToken string) error {
	claims, err := a.jwt.VerifyToken(refreshToken, model.TokenKindRefresh)
	if err != nil {
		return fmt.Errorf("authService.Logout: %w", err)
	}
	if claims.Subject != principal.Subject {
		return fmt.Errorf("authService.Logout token belongs to another subject: %w", apperrors.ErrInvalidToken)
	}
	if err = a.RevokeToken(ctx, claims.Id); err != nil {
		return fmt.Errorf("authService.Logout: %w", err)
	}
	return nil
}

func (a *authService) HasPermission(principal model.Principal, resource string, action model.Action) bool {
	if principal.HasRole(model.RoleAdmin) {
		return true
	}
	for _, role := range principal.Roles {
		if a.permissions.Allows(role, resource, action) {
			return true
		}
	}
	return false
}

func (a *authService) RequireRoles(principal model.Principal, allowedRoles ...string) error {
	if principal.HasAnyRole(allowedRoles...) {
		return nil
	}
	return apperrors.WithDetails(apperrors.ErrInsufficientPermissions, "Insufficient permissions", map[string]any{
		"required_roles": allowedRoles,
	})
}

func (a *authService) issueTokenPair(ctx context.Context, principal model.Principal) (model.TokenPair, error) {
	accessToken, err := a.CreateAccessToken(principal)
	if err != nil {
		return model.TokenPair{}, err
	}
	refreshToken, err := a.CreateRefreshToken(ctx, principal)
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{
		AccessToken:     accessToken.Token,
		RefreshToken:    refreshToken.Token,
		AccessTokenTTL:  accessToken.TTL,
		RefreshTokenTTL: refreshToken.TTL,
		Principal:       principal,
	}, nil
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.RefreshTokenRepository, jwt jwt.Utils, permissions PermissionTable, logger *zap.Logger) AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &authService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		jwt:         jwt,
		permissions: permissions,
		logger:      logger,
	}
}
