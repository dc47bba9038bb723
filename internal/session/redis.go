package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "reelrate:guest_session"

func init() {
	Register("redis", newRedisStore)
}

// redisStore keeps the session as a two-field hash, shared by every process
// pointed at the same key.
type redisStore struct {
	client *redis.Client
	key    string
}

func newRedisStore(cfg ProviderConfig) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = defaultRedisKey
	}
	return &redisStore{client: client, key: key}, nil
}

func (r *redisStore) Get(ctx context.Context) (Session, bool, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return Session{}, false, fmt.Errorf("session: redis get: %w", err)
	}
	id, ok := fields["id"]
	if !ok || id == "" {
		return Session{}, false, nil
	}
	return Session{ID: id, Generation: fields["generation"]}, true, nil
}

func (r *redisStore) Set(ctx context.Context, id string) (Session, error) {
	s := newSession(id)
	if err := r.client.HSet(ctx, r.key, "id", s.ID, "generation", s.Generation).Err(); err != nil {
		return Session{}, fmt.Errorf("session: redis set: %w", err)
	}
	return s, nil
}

func (r *redisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("session: redis clear: %w", err)
	}
	return nil
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
