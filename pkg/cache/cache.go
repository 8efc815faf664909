package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get and HGet when the key or field is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the key-value store used for upstream response caching.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetEx(ctx context.Context, key string, ttl time.Duration, value []byte) error
	HGet(ctx context.Context, key, field string) (string, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HSetMany(ctx context.Context, key string, fields map[string]string) error
}
