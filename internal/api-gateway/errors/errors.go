package apperrors

import (
	"errors"
)

var (
	ErrServiceNotFound         = errors.New("service not found")
	ErrServiceUnavailable      = errors.New("service unavailable")
	ErrInvalidToken            = errors.New("invalid token")
	ErrTokenExpired            = errors.New("token expired")
	ErrWrongTokenType          = errors.New("wrong token type")
	ErrTokenRevokedOrExpired   = errors.New("refresh token revoked or expired")
	ErrRefreshTokenNotFound    = errors.New("refresh token not found")
	ErrMissingAuthentication   = errors.New("missing authentication")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUserNotFound            = errors.New("user not found")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrRateLimitExceeded       = errors.New("rate limit exceeded")
	ErrMalformedRequest        = errors.New("malformed request")
	ErrServiceRecordNotFound   = errors.New("service record not found")
	ErrInvalidPermissionTable  = errors.New("invalid permission table")
	ErrRouteNotFound           = errors.New("route not found")
)

// DetailedError attaches a user-facing message and optional details to one of the sentinel errors above.
type DetailedError struct {
	Kind    error
	Message string
	Details map[string]any
}

func (e *DetailedError) Error() string {
	return e.Kind.Error() + ": " + e.Message
}

func (e *DetailedError) Unwrap() error {
	return e.Kind
}

func WithMessage(kind error, message string) error {
	return &DetailedError{Kind: kind, Message: message}
}

func WithDetails(kind error, message string, details map[string]any) error {
	return &DetailedError{Kind: kind, Message: message, Details: details}
}
