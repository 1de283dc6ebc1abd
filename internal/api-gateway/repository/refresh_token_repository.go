package repository

import (
	apperrors "GenoFlow_Gateway/internal/api-gateway/errors"
	"GenoFlow_Gateway/internal/api-gateway/model"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, tokenID string, record model.RefreshTokenRecord, ttl time.Duration) error
	// ConsumeRefreshToken reads and deletes the record in one round trip, so only one caller can ever obtain it.
	ConsumeRefreshToken(ctx context.Context, tokenID string) (model.RefreshTokenRecord, error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

type refreshTokenRepository struct {
	redis *redis.Client
}

func refreshTokenKey(tokenID string) string {
	return fmt.Sprintf("refresh_token:%s", tokenID)
}

func (r *refreshTokenRepository) SaveRefreshToken(ctx context.Context, tokenID string, record model.RefreshTokenRecord, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("refreshTokenRepository.SaveRefreshToken: %w", err)
	}
	err = r.redis.Set(ctx, refreshTokenKey(tokenID), string(payload), ttl).Err()
	if err != nil {
		return fmt.Errorf("refreshTokenRepository.SaveRefreshToken: %w", err)
	}
	return nil
}

func (r *refreshTokenRepository) ConsumeRefreshToken(ctx context.Context, tokenID string) (model.RefreshTokenRecord, error) {
	value, err := r.redis.GetDel(ctx, refreshTokenKey(tokenID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.RefreshTokenRecord{}, fmt.Errorf("refreshTokenRepository.ConsumeRefreshToken: %w", apperrors.ErrRefreshTokenNotFound)
		}
		return model.RefreshTokenRecord{}, fmt.Errorf("refreshTokenRepository.ConsumeRefreshToken: %w", err)
	}
	return decodeRefreshTokenRecord("refreshTokenRepository.ConsumeRefreshToken", value)
}

func (r *refreshTokenRepository) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	err := r.redis.Del(ctx, refreshTokenKey(tokenID)).Err()
	if err != nil {
		return fmt.Errorf("refreshTokenRepository.DeleteRefreshToken: %w", err)
	}
	return nil
}

func decodeRefreshTokenRecord(op string, value string) (model.RefreshTokenRecord, error) {
	var record model.RefreshTokenRecord
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return model.RefreshTokenRecord{}, fmt.Errorf("%s decoding record: %w", op, err)
	}
	return record, nil
}

func NewRefreshTokenRepository(redis *redis.Client) RefreshTokenRepository {
	return &refreshTokenRepository{
		redis: redis,
	}
}
