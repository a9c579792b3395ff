package cache

import (
	"context"
	"sync"
	"time"
)

// Producer computes a value for a cache key on miss. Failures are never
// cached; the next request retries.
type Producer func(ctx context.Context) (any, error)

// Store memoizes request payloads keyed by endpoint plus query string.
type Store interface {
	GetOrCompute(ctx context.Context, key string, produce Producer) (any, error)
}

type entry struct {
	at    time.Time
	value any
}

// MemoryStore is the default in-process backend: a flat map with a TTL check
// on read. Expired entries are overwritten on the next compute rather than
// swept; the key space is one key per distinct query, so growth is bounded in
// practice.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

// GetOrCompute returns the live cached value for key, or runs produce and
// stores its result. The lock is not held across the produce call, so two
// requests racing on the same expired key may both hit the upstream; last
// write wins. That duplication is accepted over serializing requests behind a
// slow upstream.
func (s *MemoryStore) GetOrCompute(ctx context.Context, key string, produce Producer) (any, error) {
	s.mu.Lock()
	if e, ok := s.entries[key]; ok && s.now().Sub(e.at) < s.ttl {
		s.mu.Unlock()
		return e.value, nil
	}
	s.mu.Unlock()

	value, err := produce(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.entries[key] = entry{at: s.now(), value: value}
	s.mu.Unlock()
	return value, nil
}
