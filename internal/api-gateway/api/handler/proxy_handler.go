package handler

import (
	"GenoFlow_Gateway/internal/api-gateway/api/middleware"
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"GenoFlow_Gateway/internal/api-gateway/registry"
	backendmiddleware "GenoFlow_Gateway/pkg/middleware"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var hopByHopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

type ProxyHandler interface {
	// Forward relays the request to an instance of serviceName chosen by the registry. stripPrefix is removed from the
	// request path before it is appended to the instance URL; the query string and body are kept as they are.
	Forward(serviceName, stripPrefix string, timeout time.Duration) gin.HandlerFunc
}

type proxyHandler struct {
	registry    registry.Registry
	client      *http.Client
	maxAttempts int
	logger      Logger
}

// StatusClientClosedRequest is recorded when the caller goes away before the backend answers.
const StatusClientClosedRequest = 499

var (
	// errTransport marks a failure to get any response from an instance.
	errTransport = errors.New("backend transport failure")
	// errClientGone marks a forward abandoned because the incoming request was cancelled. The instance is not scored.
	errClientGone = errors.New("client closed request")
)

func (p *proxyHandler) Forward(serviceName, stripPrefix string, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := strings.TrimPrefix(c.Request.URL.Path, stripPrefix)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}

		var body []byte
		if p.maxAttempts > 1 && c.Request.Body != nil {
			var err error
			body, err = io.ReadAll(c.Request.Body)
			if err != nil {
				_ = c.Error(apperrors.WithMessage(apperrors.ErrMalformedRequest, "Could not read request body"))
				c.Abort()
				return
			}
		}

		var lastErr error
		for attempt := 1; attempt <= p.maxAttempts; attempt++ {
			baseURL, err := p.registry.GetServiceURL(c.Request.Context(), serviceName)
			if err != nil {
				_ = c.Error(fmt.Errorf("ProxyHandler.Forward: %w", err))
				c.Abort()
				return
			}
			var reqBody io.Reader = c.Request.Body
			if body != nil {
				reqBody = bytes.NewReader(body)
			}
			err = p.forwardOnce(c, serviceName, baseURL, path, reqBody, timeout)
			if err == nil {
				return
			}
			if errors.Is(err, errClientGone) {
				p.logger.LoggingError(c, err, "client went away before "+serviceName+" answered", zap.InfoLevel)
				c.AbortWithStatus(StatusClientClosedRequest)
				return
			}
			lastErr = err
			p.logger.LoggingError(c, err, fmt.Sprintf("attempt %d to reach %s failed", attempt, serviceName), zap.WarnLevel)
		}

		_ = c.Error(fmt.Errorf("ProxyHandler.Forward: %w: %w", lastErr, apperrors.WithDetails(
			apperrors.ErrServiceUnavailable,
			fmt.Sprintf("Service '%s' is temporarily unavailable", serviceName),
			map[string]any{"service": serviceName},
		)))
		c.Abort()
	}
}

// forwardOnce sends one request to an instance and streams the response back. It returns an error only when no
// response was received, in which case nothing has been written to the client.
func (p *proxyHandler) forwardOnce(c *gin.Context, serviceName, baseURL, path string, body io.Reader, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	target := baseURL + path
	if rawQuery := c.Request.URL.RawQuery; rawQuery != "" {
		target += "?" + rawQuery
	}
	req, err := http.NewRequestWithContext(ctx, c.Request.Method, target, body)
	if err != nil {
		return fmt.Errorf("ProxyHandler.forwardOnce building request: %w", err)
	}
	if _, buffered := body.(*bytes.Reader); !buffered {
		req.ContentLength = c.Request.ContentLength
	}
	p.copyRequestHeaders(c, req)

	res, err := p.client.Do(req)
	if err != nil {
		if c.Request.Context().Err() != nil {
			return fmt.Errorf("ProxyHandler.forwardOnce %s: %w: %w", serviceName, errClientGone, err)
		}
		p.registry.RecordFailure(serviceName, baseURL)
		return fmt.Errorf("ProxyHandler.forwardOnce %s: %w: %w", serviceName, errTransport, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusInternalServerError {
		p.registry.RecordFailure(serviceName, baseURL)
	} else {
		p.registry.RecordSuccess(serviceName, baseURL)
	}

	header := c.Writer.Header()
	for key, values := range res.Header {
		for _, value := range values {
			header.Add(key, value)
		}
	}
	for _, h := range hopByHopHeaders {
		header.Del(h)
	}
	c.Status(res.StatusCode)
	c.Writer.WriteHeaderNow()
	if _, err = io.Copy(c.Writer, res.Body); err != nil {
		p.logger.LoggingError(c, err, "failed to copy backend response", zap.WarnLevel)
	}
	return nil
}

func (p *proxyHandler) copyRequestHeaders(c *gin.Context, req *http.Request) {
	req.Header = c.Request.Header.Clone()
	for _, h := range hopByHopHeaders {
		req.Header.Del(h)
	}
	req.Header.Del("Authorization")
	req.Header.Del(backendmiddleware.UserIDHeader)
	req.Header.Del(backendmiddleware.UserRolesHeader)
	if principal, ok := middleware.GetPrincipal(c); ok {
		req.Header.Set(backendmiddleware.UserIDHeader, principal.Subject)
		req.Header.Set(backendmiddleware.UserRolesHeader, strings.Join(principal.Roles, ","))
	}
	if requestID := middleware.GetRequestID(c); requestID != "" {
		req.Header.Set(middleware.RequestIDHeader, requestID)
	}
	if clientIP := c.ClientIP(); clientIP != "" {
		if prior := req.Header.Get("X-Forwarded-For"); prior != "" {
			req.Header.Set("X-Forwarded-For", prior+", "+clientIP)
		} else {
			req.Header.Set("X-Forwarded-For", clientIP)
		}
	}
}

func NewProxyHandler(registry registry.Registry, client *http.Client, maxAttempts int, logger Logger) ProxyHandler {
	if client == nil {
		client = &http.Client{}
	}
	return &proxyHandler{
		registry:    registry,
		client:      client,
		maxAttempts: max(maxAttempts, 1),
		logger:      logger,
	}
}
