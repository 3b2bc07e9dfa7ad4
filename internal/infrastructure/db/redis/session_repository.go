package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cleanvillage/sanitation-system/internal/core/domain"
)

const sessionKey = "session:current"

// SessionRepository keeps the current-user marker in Redis with a TTL, so a
// stale session expires on its own instead of lingering forever.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionRepository{client: client, ttl: ttl}
}

func (r *SessionRepository) Save(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: encode session: %v", domain.ErrPersistence, err)
	}
	if err := r.client.Set(ctx, sessionKey, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: save session: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (r *SessionRepository) Current(ctx context.Context) (*domain.User, error) {
	data, err := r.client.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("%w: load session: %v", domain.ErrPersistence, err)
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: decode session: %v", domain.ErrPersistence, err)
	}
	return &user, nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("%w: clear session: %v", domain.ErrPersistence, err)
	}
	return nil
}
