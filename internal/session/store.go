package session

import (
	"context"
	"cybertaxi/domain"
	"cybertaxi/internal/service/logger"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	refreshPrefix = "refresh:"
	refreshTTL    = 7 * 24 * time.Hour
)

// RefreshStore hands out one-shot refresh tokens tied to a public player_id.
type RefreshStore interface {
	Issue(ctx context.Context, playerID int) (string, error)
	Rotate(ctx context.Context, token string) (int, string, error)
	Revoke(ctx context.Context, token string) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) RefreshStore {
	return &redisStore{client: client}
}

func (s *redisStore) Issue(ctx context.Context, playerID int) (string, error) {
	token := uuid.New().String()
	key := refreshPrefix + token
	if err := s.client.Set(ctx, key, playerID, refreshTTL).Err(); err != nil {
		logger.AccessLogger.Error("Failed to store refresh token", zap.Error(err))
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return token, nil
}

// Rotate consumes token and issues a replacement. A token can only be
// rotated once; a second use fails.
func (s *redisStore) Rotate(ctx context.Context, token string) (int, string, error) {
	key := refreshPrefix + token
	val, err := s.client.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return 0, "", domain.ErrInvalidRefresh
	}
	if err != nil {
		logger.AccessLogger.Error("Failed to read refresh token", zap.Error(err))
		return 0, "", fmt.Errorf("failed to read refresh token: %w", err)
	}

	playerID, err := strconv.Atoi(val)
	if err != nil {
		return 0, "", domain.ErrInvalidRefresh
	}

	next, err := s.Issue(ctx, playerID)
	if err != nil {
		return 0, "", err
	}
	return playerID, next, nil
}

func (s *redisStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, refreshPrefix+token).Err()
}
