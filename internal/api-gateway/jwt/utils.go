package jwt

import (
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type AccessToken struct {
	Token     string
	TTL       time.Duration
	ExpiresAt time.Time
}

type RefreshToken struct {
	Token    string
	TTL      time.Duration
	JTI      string
	IssuedAt time.Time
}

// Claims is the payload carried by both token kinds. Refresh tokens carry the token id in jti and no roles.
type Claims struct {
	Username string          `json:"username,omitempty"`
	Roles    []string        `json:"roles,omitempty"`
	Type     model.TokenKind `json:"type"`
	jwt.StandardClaims
}

func (c *Claims) Principal() model.Principal {
	return model.NewPrincipal(c.Subject, c.Username, c.Roles...)
}

type Utils interface {
	CreateAccessToken(principal model.Principal) (AccessToken, error)
	CreateRefreshToken(subject string) (RefreshToken, error)
	// VerifyToken checks signature, expiry and kind, in that order.
	VerifyToken(tokenString string, kind model.TokenKind) (*Claims, error)
	// DecodeUnverified reads the payload without checking the signature. Only use it for keying, never for trust.
	DecodeUnverified(tokenString string) (*Claims, error)
}

const signingAlgorithm = "HS256"

type utils struct {
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	secretKey       string
	now             func() time.Time
}

func (u *utils) CreateAccessToken(principal model.Principal) (AccessToken, error) {
	issuedAt := u.now()
	expireTime := issuedAt.Add(u.accessTokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: principal.Username,
		Roles:    principal.Roles,
		Type:     model.TokenKindAccess,
		StandardClaims: jwt.StandardClaims{
			Subject:   principal.Subject,
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: expireTime.Unix(),
		},
	})
	tokenString, err := token.SignedString([]byte(u.secretKey))
	if err != nil {
		return AccessToken{}, fmt.Errorf("jwt.utils.CreateAccessToken signing token: %w", err)
	}
	return AccessToken{
		Token:     tokenString,
		TTL:       u.accessTokenTTL,
		ExpiresAt: time.Unix(expireTime.Unix(), 0),
	}, nil
}

func (u *utils) CreateRefreshToken(subject string) (RefreshToken, error) {
	issuedAt := u.now()
	jti, err := uuid.NewRandom()
	if err != nil {
		return RefreshToken{}, fmt.Errorf("jwt.utils.CreateRefreshToken: %w", err)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Type: model.TokenKindRefresh,
		StandardClaims: jwt.StandardClaims{
			Id:        jti.String(),
			Subject:   subject,
			IssuedAt:  issuedAt.Unix(),
			ExpiresAt: issuedAt.Add(u.refreshTokenTTL).Unix(),
		},
	})
	tokenString, err := token.SignedString([]byte(u.secretKey))
	if err != nil {
		return RefreshToken{}, fmt.Errorf("jwt.utils.CreateRefreshToken signing token: %w", err)
	}
	return RefreshToken{
		Token:    tokenString,
		TTL:      u.refreshTokenTTL,
		JTI:      jti.String(),
		IssuedAt: time.Unix(issuedAt.Unix(), 0),
	}, nil
}

func (u *utils) VerifyToken(tokenString string, kind model.TokenKind) (*Claims, error) {
	claims := &Claims{}
	parser := &jwt.Parser{
		ValidMethods: []string{signingAlgorithm},
		// expiry is checked below against the injected clock
		SkipClaimsValidation: true,
	}
	parsedToken, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("jwt.Utils.VerifyToken: %w", apperrors.ErrInvalidToken)
		}
		return []byte(u.secretKey), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, fmt.Errorf("jwt.Utils.VerifyToken: %w", apperrors.ErrInvalidToken)
	}
	if claims.Subject == "" || claims.ExpiresAt <= claims.IssuedAt {
		return nil, fmt.Errorf("jwt.Utils.VerifyToken malformed payload: %w", apperrors.ErrInvalidToken)
	}
	if !u.now().Before(time.Unix(claims.ExpiresAt, 0)) {
		return nil, fmt.Errorf("jwt.Utils.VerifyToken: %w", apperrors.ErrTokenExpired)
	}
	if claims.Type != kind {
		return nil, fmt.Errorf("jwt.Utils.VerifyToken expected %s token, got %q: %w", kind, claims.Type, apperrors.ErrWrongTokenType)
	}
	if kind == model.TokenKindRefresh && claims.Id == "" {
		return nil, fmt.Errorf("jwt.Utils.VerifyToken refresh token without id: %w", apperrors.ErrInvalidToken)
	}
	return claims, nil
}

func (u *utils) DecodeUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, _, err := new(jwt.Parser).ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("jwt.Utils.DecodeUnverified: %w", apperrors.ErrInvalidToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("jwt.Utils.DecodeUnverified missing subject: %w", apperrors.ErrInvalidToken)
	}
	return claims, nil
}

func NewJwtUtils(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration) Utils {
	return newJwtUtils(secretKey, accessTokenTTL, refreshTokenTTL, time.Now)
}

// NewJwtUtilsWithClock is NewJwtUtils with an explicit time source.
func NewJwtUtilsWithClock(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration, now func() time.Time) Utils {
	return newJwtUtils(secretKey, accessTokenTTL, refreshTokenTTL, now)
}

func newJwtUtils(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration, now func() time.Time) *utils {
	return &utils{
		secretKey:       secretKey,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		now:             now,
	}
}
