package ratelimit

import (
	"context"
	"time"
)

// Limiter answers whether a caller identified by key may proceed within the
// current window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Config struct {
	Limit  int
	Window time.Duration
}
