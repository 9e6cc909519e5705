package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickbite/storefront/internal/core/domain"
)

// Well-known keys; both entries are written and removed together.
const (
	tokenKey = "storefront:credentials:token"
	userKey  = "storefront:credentials:user"
)

const connectTimeout = 5 * time.Second

// RedisStore keeps credentials in Redis for kiosk installs where several
// terminals share one session.
type RedisStore struct {
	client *redis.Client
}

// ConnectRedis initialises a Redis-backed store and validates connectivity
// with a ping.
func ConnectRedis(ctx context.Context, addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("credstore: redis ping: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStore wraps an existing client. Used by tests.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Load(ctx context.Context) (string, *domain.User, error) {
	token, err := r.client.Get(ctx, tokenKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("credstore: redis get token: %w", err)
	}

	raw, err := r.client.Get(ctx, userKey).Result()
	if errors.Is(err, redis.Nil) {
		return token, nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("credstore: redis get user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return "", nil, fmt.Errorf("credstore: decode user: %w", err)
	}
	return token, &user, nil
}

func (r *RedisStore) Save(ctx context.Context, token string, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("credstore: encode user: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, tokenKey, token, 0)
		p.Set(ctx, userKey, string(raw), 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("credstore: redis save: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, tokenKey, userKey).Err(); err != nil {
		return fmt.Errorf("credstore: redis clear: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
