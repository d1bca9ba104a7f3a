package persistence

import (
	"clementus360/gal-bestfriend/config"
	"clementus360/gal-bestfriend/types"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL keeps an untouched preference blob for thirty days.
const DefaultTTL = 30 * 24 * time.Hour

// RedisStore keeps state as JSON strings with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, owner string, state types.SavedState) error {
	val, err := marshalState(state)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, Key(owner), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, owner string) (*types.SavedState, error) {
	key := Key(owner)
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	state, err := unmarshalState([]byte(val))
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	// Refresh TTL on read
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		config.Logger.WithField("key", key).Warn("Could not refresh state TTL: ", err)
	}

	return state, nil
}

// Close implements Store.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
