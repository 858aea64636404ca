package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/rueidis"
)

// RedisLimiter counts requests per key in a fixed window using INCR with an
// expiry set on the first hit.
type RedisLimiter struct {
	client rueidis.Client
	prefix string
	cfg    Config
}

func NewRedisLimiter(client rueidis.Client, prefix string, cfg Config) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		cfg:    cfg,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := fmt.Sprintf("%s:%s", r.prefix, key)

	incrCmd := r.client.B().Incr().Key(bucket).Build()
	count, err := r.client.Do(ctx, incrCmd).AsInt64()
	if err != nil {
		return false, err
	}

	if count == 1 {
		expCmd := r.client.B().Expire().Key(bucket).Seconds(int64(r.cfg.Window.Seconds())).Build()
		if err := r.client.Do(ctx, expCmd).Error(); err != nil {
			return false, err
		}
	}

	return count <= int64(r.cfg.Limit), nil
}
