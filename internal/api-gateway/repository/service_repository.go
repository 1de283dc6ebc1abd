package repository

import (
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ServiceRepository persists registered instance lists so that other gateway replicas can pick them up.
type ServiceRepository interface {
	SaveServiceURLs(ctx context.Context, serviceName string, urls []string, ttl time.Duration) error
	GetServiceURLs(ctx context.Context, serviceName string) ([]string, error)
}

type serviceRepository struct {
	redis *redis.Client
}

func serviceKey(serviceName string) string {
	return fmt.Sprintf("service:%s", serviceName)
}

func (s *serviceRepository) SaveServiceURLs(ctx context.Context, serviceName string, urls []string, ttl time.Duration) error {
	payload, err := json.Marshal(urls)
	if err != nil {
		return fmt.Errorf("serviceRepository.SaveServiceURLs: %w", err)
	}
	if err = s.redis.Set(ctx, serviceKey(serviceName), string(payload), ttl).Err(); err != nil {
		return fmt.Errorf("serviceRepository.SaveServiceURLs: %w", err)
	}
	return nil
}

func (s *serviceRepository) GetServiceURLs(ctx context.Context, serviceName string) ([]string, error) {
	value, err := s.redis.Get(ctx, serviceKey(serviceName)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("serviceRepository.GetServiceURLs: %w", apperrors.ErrServiceRecordNotFound)
		}
		return nil, fmt.Errorf("serviceRepository.GetServiceURLs: %w", err)
	}
	var urls []string
	if err = json.Unmarshal([]byte(value), &urls); err != nil {
		return nil, fmt.Errorf("serviceRepository.GetServiceURLs decoding record: %w", err)
	}
	return urls, nil
}

func NewServiceRepository(redis *redis.Client) ServiceRepository {
	return &serviceRepository{
		redis: redis,
	}
}
