package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "search_history:"

// RedisStore keeps histories as JSON lists in Redis, without expiry
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis server at addr
func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

// NewRedisStoreFromClient wraps an existing client
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Load(ctx context.Context, identity string) ([]string, error) {
	data, err := r.client.Get(ctx, keyPrefix+identity).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	var terms []string
	if err := json.Unmarshal(data, &terms); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return terms, nil
}

func (r *RedisStore) Save(ctx context.Context, identity string, terms []string) error {
	data, err := json.Marshal(terms)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, keyPrefix+identity, data, 0).Err(); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context, identity string) error {
	return r.client.Del(ctx, keyPrefix+identity).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}
