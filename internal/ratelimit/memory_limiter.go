package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is the in-process fallback used when no redis address is
// configured. Buckets reset when their window elapses.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	cfg     Config
}

type bucket struct {
	count int
	start time.Time
}

func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*bucket),
		cfg:     cfg,
	}
}

func (m *MemoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[key]
	if !ok || now.Sub(b.start) > m.cfg.Window {
		b = &bucket{start: now}
		m.buckets[key] = b
	}

	if b.count >= m.cfg.Limit {
		return false, nil
	}

	b.count++
	return true, nil
}
