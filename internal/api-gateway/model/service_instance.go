package model

import "time"

// ServiceInstance is a snapshot of one backend replica as tracked by the registry.
type ServiceInstance struct {
	URL          string    `json:"url"`
	HealthScore  float64   `json:"health_score"`
	FailureCount int       `json:"failure_count"`
	LastChecked  time.Time `json:"last_checked"`
}

// HealthEvent is published after every active probe of an instance.
type HealthEvent struct {
	Service      string    `json:"service"`
	URL          string    `json:"url"`
	Healthy      bool      `json:"healthy"`
	HealthScore  float64   `json:"health_score"`
	FailureCount int       `json:"failure_count"`
	Timestamp    time.Time `json:"timestamp"`
}
