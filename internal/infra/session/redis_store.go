package session

import (
	"context"
	"time"

	"otobiznes/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otobiznes:session:"

type redisTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisTokenStore stores tokens under otobiznes:session:<sid> with the session TTL.
func NewRedisTokenStore(client *redis.Client, ttl time.Duration) service.TokenStore {
	return &redisTokenStore{client: client, ttl: ttl}
}

func (s *redisTokenStore) Load(ctx context.Context, sessionID string) (string, error) {
	token, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", service.ErrTokenNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "redis get token")
	}

	return token, nil
}

func (s *redisTokenStore) Save(ctx context.Context, sessionID, token string) error {
	if err := s.client.Set(ctx, keyPrefix+sessionID, token, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set token")
	}

	return nil
}

func (s *redisTokenStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return errors.Wrap(err, "redis delete token")
	}

	return nil
}
