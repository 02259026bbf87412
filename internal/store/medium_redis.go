package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/stream-console/internal/logger"
)

const redisScanCount = 100

type redisMedium struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
}

// NewRedisMedium returns a [Medium] storing every key under prefix in the
// given redis database.
func NewRedisMedium(client *redis.Client, prefix string, log *logger.Logger) Medium {
	return &redisMedium{
		client: client,
		prefix: prefix,
		logger: log,
	}
}

func (m *redisMedium) Get(ctx context.Context, key string) (string, error) {
	value, err := m.client.Get(ctx, m.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}

	return value, nil
}

func (m *redisMedium) Set(ctx context.Context, key, value string) error {
	if err := m.client.Set(ctx, m.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}

	return nil
}

func (m *redisMedium) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = m.prefix + key
	}

	if err := m.client.Del(ctx, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}

func (m *redisMedium) Keys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)

	iter := m.client.Scan(ctx, 0, m.prefix+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), m.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}

	return keys, nil
}

func (m *redisMedium) Close() error {
	return m.client.Close()
}
