package ratelimit

import (
	"GenoFlow_Gateway/internal/api-gateway/jwt"
	"GenoFlow_Gateway/internal/api-gateway/repository"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Decision is the outcome of one CheckAndIncrement call.
type Decision struct {
	Allowed    bool
	Count      int64
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type Limiter interface {
	// CheckAndIncrement counts one request for clientID in the current fixed window.
	// Store errors are logged and the request is allowed.
	CheckAndIncrement(ctx context.Context, clientID string) Decision
}

type limiter struct {
	repo   repository.RateLimitRepository
	limit  int
	window time.Duration
	now    func() time.Time
	logger *zap.Logger
}

type Option func(*limiter)

func WithClock(now func() time.Time) Option {
	return func(l *limiter) {
		l.now = now
	}
}

func (l *limiter) windowSeconds() int64 {
	seconds := int64(l.window / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}

func (l *limiter) CheckAndIncrement(ctx context.Context, clientID string) Decision {
	now := l.now()
	seconds := l.windowSeconds()
	window := now.Unix() / seconds
	windowEnd := time.Unix((window+1)*seconds, 0)
	key := fmt.Sprintf("rate_limit:%s:%d", clientID, window)

	count, err := l.repo.IncrementCounter(ctx, key, time.Duration(seconds)*time.Second)
	if err != nil {
		l.logger.Warn("rate limit store unavailable, allowing request", zap.String("client_id", clientID), zap.Error(err))
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit}
	}
	decision := Decision{
		Allowed:    count <= int64(l.limit),
		Count:      count,
		Limit:      l.limit,
		Remaining:  max(l.limit-int(count), 0),
		RetryAfter: windowEnd.Sub(now),
	}
	return decision
}

func NewLimiter(repo repository.RateLimitRepository, limit int, window time.Duration, logger *zap.Logger, opts ...Option) Limiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &limiter{
		repo:   repo,
		limit:  limit,
		window: window,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TokenDecoder reads a token payload without verifying it.
type TokenDecoder interface {
	DecodeUnverified(tokenString string) (*jwt.Claims, error)
}

// ClientIdentity keys a request by the token subject when a bearer token can be decoded, otherwise by client address.
// The token is not verified here; a forged subject only changes which bucket the request is counted in.
func ClientIdentity(decoder TokenDecoder, authorization, clientIP string) string {
	if token, ok := BearerToken(authorization); ok && decoder != nil {
		if claims, err := decoder.DecodeUnverified(token); err == nil {
			return "user:" + claims.Subject
		}
	}
	if clientIP == "" {
		clientIP = "unknown"
	}
	return "ip:" + clientIP
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header value.
func BearerToken(authorization string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorization), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
