package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/Chetan55567/portfolio-api/internal/application/service"
	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "session:revoked:"

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore keeps revoked token IDs until their natural expiry,
// so keys clean themselves up.
func NewRedisSessionStore(client *redis.Client) service.SessionRevoker {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session revocation: %w", err)
	}
	return n > 0, nil
}

type noopRevoker struct{}

// NewNoopRevoker is used when Redis is not configured.
func NewNoopRevoker() service.SessionRevoker {
	return noopRevoker{}
}

func (noopRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return nil
}

func (noopRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return false, nil
}
