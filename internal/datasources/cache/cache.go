package cache

import (
	"context"
	"time"
)

// Cache is a simple TTL byte cache.
type Cache interface {
	// Get returns the cached value, with found false on a miss.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Null is a cache that stores nothing; every Get is a miss.
type Null struct{}

var _ Cache = Null{}

func (Null) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (Null) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}
