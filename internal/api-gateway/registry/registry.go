package registry

import (
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"GenoFlow_Gateway/internal/api-gateway/repository"
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// HealthyThreshold is the score an instance must exceed to be preferred for routing.
	HealthyThreshold = 0.3

	successReward  = 0.05
	failurePenalty = 0.1
	probeReward    = 0.1
	probePenalty   = 0.2
)

type Registry interface {
	// RegisterService replaces the instance set of name. Every instance starts with score 1.0.
	RegisterService(ctx context.Context, name string, urls []string)
	// GetServiceURL picks an instance by weighted random choice over the healthy instances,
	// falling back to every instance when none is healthy.
	GetServiceURL(ctx context.Context, name string) (string, error)
	RecordSuccess(name, url string)
	RecordFailure(name, url string)
	// HealthCheck actively probes one instance and adjusts its score. Unknown instances report false.
	HealthCheck(ctx context.Context, name, url string) bool
	Instance(name, url string) (model.ServiceInstance, bool)
	Snapshot() map[string][]model.ServiceInstance
	IsServiceHealthy(name string) bool
}

type Option func(*serviceRegistry)

// WithRandom replaces the source of uniform numbers in [0,1) used for instance selection.
func WithRandom(randFloat func() float64) Option {
	return func(r *serviceRegistry) {
		r.randFloat = randFloat
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *serviceRegistry) {
		r.now = now
	}
}

type instance struct {
	url          string
	healthScore  float64
	failureCount int
	lastChecked  time.Time
}

func (i *instance) snapshot() model.ServiceInstance {
	return model.ServiceInstance{
		URL:          i.url,
		HealthScore:  i.healthScore,
		FailureCount: i.failureCount,
		LastChecked:  i.lastChecked,
	}
}

type serviceRegistry struct {
	mu        sync.RWMutex
	services  map[string][]*instance
	health    HealthClient
	repo      repository.ServiceRepository
	recordTTL time.Duration
	randFloat func() float64
	now       func() time.Time
	logger    *zap.Logger
}

func (r *serviceRegistry) RegisterService(ctx context.Context, name string, urls []string) {
	normalized := r.replace(name, urls)
	if r.repo == nil || len(normalized) == 0 {
		return
	}
	if err := r.repo.SaveServiceURLs(ctx, name, normalized, r.recordTTL); err != nil {
		r.logger.Warn("failed to persist service registration", zap.String("service", name), zap.Error(err))
	}
}

func (r *serviceRegistry) replace(name string, urls []string) []string {
	normalized, instances := newInstances(urls)

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(instances) == 0 {
		delete(r.services, name)
	} else {
		r.services[name] = instances
	}
	return normalized
}

// adopt installs urls for name only when no registration exists yet, so a reload racing with another lookup or with
// RegisterService never resets live scores.
func (r *serviceRegistry) adopt(name string, urls []string) {
	_, instances := newInstances(urls)
	if len(instances) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, known := r.services[name]; !known {
		r.services[name] = instances
	}
}

func newInstances(urls []string) ([]string, []*instance) {
	normalized := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSuffix(strings.TrimSpace(u), "/")
		if u == "" || slices.Contains(normalized, u) {
			continue
		}
		normalized = append(normalized, u)
	}
	instances := make([]*instance, 0, len(normalized))
	for _, u := range normalized {
		instances = append(instances, &instance{url: u, healthScore: 1.0})
	}
	return normalized, instances
}

type candidate struct {
	url    string
	weight float64
}

func (r *serviceRegistry) candidates(name string) []candidate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	instances := r.services[name]
	if len(instances) == 0 {
		return nil
	}
	healthy := make([]candidate, 0, len(instances))
	for _, inst := range instances {
		if inst.healthScore > HealthyThreshold {
			healthy = append(healthy, candidate{url: inst.url, weight: inst.healthScore})
		}
	}
	if len(healthy) > 0 {
		return healthy
	}
	all := make([]candidate, 0, len(instances))
	for _, inst := range instances {
		all = append(all, candidate{url: inst.url, weight: inst.healthScore})
	}
	return all
}

func (r *serviceRegistry) GetServiceURL(ctx context.Context, name string) (string, error) {
	pool := r.candidates(name)
	if len(pool) == 0 && r.repo != nil {
		urls, err := r.repo.GetServiceURLs(ctx, name)
		switch {
		case err == nil:
			r.adopt(name, urls)
			pool = r.candidates(name)
		case !errors.Is(err, apperrors.ErrServiceRecordNotFound):
			r.logger.Warn("failed to load service registration", zap.String("service", name), zap.Error(err))
		}
	}
	if len(pool) == 0 {
		return "", fmt.Errorf("ServiceRegistry.GetServiceURL: %w",
			apperrors.WithMessage(apperrors.ErrServiceNotFound, fmt.Sprintf("Service '%s' not found", name)))
	}
	return selectWeighted(pool, r.randFloat()), nil
}

// selectWeighted picks from pool with probability proportional to weight. Zero-weight entries are never
// picked unless every entry weighs zero, in which case the choice is uniform.
func selectWeighted(pool []candidate, u float64) string {
	var total float64
	for _, c := range pool {
		total += c.weight
	}
	if total <= 0 {
		idx := int(u * float64(len(pool)))
		return pool[min(max(idx, 0), len(pool)-1)].url
	}
	target := u * total
	var cumulative float64
	last := ""
	for _, c := range pool {
		if c.weight <= 0 {
			continue
		}
		cumulative += c.weight
		last = c.url
		if target < cumulative {
			return c.url
		}
	}
	return last
}

func (r *serviceRegistry) find(name, url string) *instance {
	for _, inst := range r.services[name] {
		if inst.url == url {
			return inst
		}
	}
	return nil
}

func (r *serviceRegistry) RecordSuccess(name, url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst := r.find(name, url)
	if inst == nil {
		return
	}
	inst.healthScore = clampScore(inst.healthScore + successReward)
	inst.failureCount = 0
}

func (r *serviceRegistry) RecordFailure(name, url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inst := r.find(name, url)
	if inst == nil {
		return
	}
	inst.healthScore = clampScore(inst.healthScore - failurePenalty)
	inst.failureCount++
}

func (r *serviceRegistry) HealthCheck(ctx context.Context, name, url string) bool {
	if _, ok := r.Instance(name, url); !ok {
		return false
	}
	res, err := r.health.GetHealth(ctx, url)
	healthy := err == nil && res.Healthy()
	if err != nil {
		r.logger.Warn("health probe could not be sent", zap.String("service", name), zap.String("url", url), zap.Error(err))
	} else if res.Error != nil {
		r.logger.Debug("health probe failed", zap.String("service", name), zap.String("url", url), zap.Error(res.Error))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	inst := r.find(name, url)
	if inst == nil {
		return healthy
	}
	if healthy {
		inst.healthScore = clampScore(inst.healthScore + probeReward)
		inst.failureCount = 0
	} else {
		inst.healthScore = clampScore(inst.healthScore - probePenalty)
		inst.failureCount++
	}
	inst.lastChecked = r.now()
	return healthy
}

func (r *serviceRegistry) Instance(name, url string) (model.ServiceInstance, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst := r.find(name, url)
	if inst == nil {
		return model.ServiceInstance{}, false
	}
	return inst.snapshot(), true
}

func (r *serviceRegistry) Snapshot() map[string][]model.ServiceInstance {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string][]model.ServiceInstance, len(r.services))
	for name, instances := range r.services {
		list := make([]model.ServiceInstance, 0, len(instances))
		for _, inst := range instances {
			list = append(list, inst.snapshot())
		}
		out[name] = list
	}
	return out
}

func (r *serviceRegistry) IsServiceHealthy(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inst := range r.services[name] {
		if inst.healthScore > HealthyThreshold {
			return true
		}
	}
	return false
}

// clampScore keeps a score in [0,1] and rounds away float drift from repeated additive updates.
func clampScore(score float64) float64 {
	score = math.Round(score*1e6) / 1e6
	return math.Min(1, math.Max(0, score))
}

func NewServiceRegistry(health HealthClient, repo repository.ServiceRepository, recordTTL time.Duration, logger *zap.Logger, opts ...Option) Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &serviceRegistry{
		services:  make(map[string][]*instance),
		health:    health,
		repo:      repo,
		recordTTL: recordTTL,
		randFloat: rand.Float64,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
