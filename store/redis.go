package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the answer as a JSON value under one key
type RedisStore struct {
	client redis.UniversalClient
	key    string
	count  int
}

// NewRedisStore connects to url and pings the server
func NewRedisStore(ctx context.Context, url, key string, count int) (*RedisStore, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url is required")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewRedisStoreWithClient(client, key, count), nil
}

// NewRedisStoreWithClient wraps an existing client
func NewRedisStoreWithClient(client redis.UniversalClient, key string, count int) *RedisStore {
	return &RedisStore{client: client, key: key, count: count}
}

// Load fetches the saved answer, ErrNotFound when the key is absent
func (r *RedisStore) Load(ctx context.Context) ([]int, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}

	var rec Record
	if err := sonic.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answer: %w", err)
	}
	if err := rec.check(r.count); err != nil {
		return nil, err
	}
	return rec.Answer, nil
}

// Save stores the answer without expiry
func (r *RedisStore) Save(ctx context.Context, answer []int) error {
	rec, err := newRecord(answer, r.count)
	if err != nil {
		return err
	}
	data, err := sonic.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set answer: %w", err)
	}
	return nil
}

// Close releases the client
func (r *RedisStore) Close() error {
	return r.client.Close()
}
