package registry

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type HealthClient interface {
	// GetHealth calls GET {baseURL}/health. Transport failures are reported in ProbeResult.Error;
	// the returned error is only set when the request cannot be built.
	GetHealth(ctx context.Context, baseURL string) (ProbeResult, error)
}

type ProbeResult struct {
	StatusCode int
	Error      error
	Latency    time.Duration
	Timestamp  time.Time
}

func (r ProbeResult) Healthy() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

type healthClient struct {
	client *http.Client
}

func (h *healthClient) GetHealth(ctx context.Context, baseURL string) (ProbeResult, error) {
	requestURL := strings.TrimSuffix(baseURL, "/") + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("HealthClient.GetHealth creating request: %w", err)
	}
	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return ProbeResult{Error: err, Latency: time.Since(start), Timestamp: time.Now()}, nil
	}
	defer resp.Body.Close()
	return ProbeResult{
		StatusCode: resp.StatusCode,
		Latency:    time.Since(start),
		Timestamp:  time.Now(),
	}, nil
}

func NewHealthClient(timeout time.Duration) HealthClient {
	return &healthClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}
