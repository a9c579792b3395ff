package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	newRedisClient = func(opts *redis.Options) *redis.Client {
		return redis.NewClient(opts)
	}
	pingRedis = func(ctx context.Context, client *redis.Client) error {
		return client.Ping(ctx).Err()
	}
	parseRedisURL = redis.ParseURL
)

// RedisStore is the optional shared backend, useful when several dashboard
// processes should see the same snapshots. Values are stored as JSON and
// returned as json.RawMessage, which marshals back into responses unchanged.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(ctx context.Context, addr string, ttl time.Duration) (*RedisStore, error) {
	opts := &redis.Options{Addr: addr}
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsed, err := parseRedisURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	}

	client := newRedisClient(opts)
	if err := pingRedis(ctx, client); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	log.Println("Connected to Redis")
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) GetOrCompute(ctx context.Context, key string, produce Producer) (any, error) {
	cached, err := s.client.Get(ctx, key).Bytes()
	if err == nil {
		return json.RawMessage(cached), nil
	}
	if !errors.Is(err, redis.Nil) {
		log.Printf("redis cache read error for %s: %v", key, err)
	}

	value, err := produce(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		// Unserializable payloads still get served, just not cached.
		log.Printf("cache marshal error for %s: %v", key, err)
		return value, nil
	}
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		log.Printf("redis cache write error for %s: %v", key, err)
	}
	return value, nil
}
