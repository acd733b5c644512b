package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"user-api/internal/features/user/repository"
)

type sessionRepository struct {
	client redis.UniversalClient
}

func NewSessionRepository(client redis.UniversalClient) repository.SessionRepository {
	return &sessionRepository{
		client: client,
	}
}

func (r *sessionRepository) Save(ctx context.Context, token, username string, ttl time.Duration) error {
	return r.client.Set(ctx, key(token), username, ttl).Err()
}

func (r *sessionRepository) Get(ctx context.Context, token string) (string, error) {
	username, err := r.client.Get(ctx, key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	return username, nil
}

// Delete removes the session; deleting an unknown token is not an error.
func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, key(token)).Err()
}

func key(token string) string { return fmt.Sprintf("session:%s", token) }
