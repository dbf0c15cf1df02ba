package storage

import "context"

// KVClient is the subset of a Redis-style key-value API the stores need.
// Keys and values are strings.
type KVClient interface {
	Set(ctx context.Context, key, value string) error
	// Get returns found=false for a missing key
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// MGet returns one value per key, "" for missing keys
	MGet(ctx context.Context, keys ...string) ([]string, error)
	Keys(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, keys ...string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}
