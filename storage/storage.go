// Package storage persists request records and user credentials. A remote
// key-value store is used when configured and reachable at startup; otherwise
// an in-process store serves for the lifetime of the process.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blogem/tracker/config"
	"github.com/blogem/tracker/models"
)

const (
	// RequestPrefix namespaces request record keys
	RequestPrefix = "requests_"
	// UsersPrefix namespaces credential keys
	UsersPrefix = "users_"
	// DefaultRetentionCap is the number of records kept per collection
	DefaultRetentionCap = 200

	keyTimeLayout = "2006-01-02T15:04:05.000000000Z"
)

// ErrUserNotFound is returned by GetUser for unknown usernames
var ErrUserNotFound = errors.New("user not found")

// RequestStore persists request records and credentials
type RequestStore interface {
	// SaveRecord stores one record and applies the retention policy
	SaveRecord(ctx context.Context, record models.RequestRecord) error
	// Records returns stored records newest first; limit <= 0 means all
	Records(ctx context.Context, limit int) ([]models.RequestRecord, error)
	AddUser(ctx context.Context, username, password string) error
	// GetUser returns the stored secret or ErrUserNotFound
	GetUser(ctx context.Context, username string) (string, error)
	Status(ctx context.Context) (models.StorageStatus, error)
	Close() error
}

// Open selects the backend once. Upstash credentials take precedence over
// REDIS_URL. A missing configuration or a failed connection check yields a
// MemoryStore that is never swapped for a remote one later.
func Open(ctx context.Context, cfg config.StoreConfig, logger *zap.SugaredLogger) RequestStore {
	retention := cfg.RetentionCap
	if retention < 2 {
		retention = DefaultRetentionCap
	}

	var (
		kv      KVClient
		backend string
	)
	switch {
	case cfg.UpstashURL != "" && cfg.UpstashToken != "":
		kv, backend = NewUpstashClient(cfg.UpstashURL, cfg.UpstashToken, cfg.Timeout), models.StorageTypeUpstash
	case cfg.RedisURL != "":
		client, err := NewRedisClient(cfg.RedisURL, cfg.Timeout)
		if err != nil {
			logger.Errorw("Failed to configure Redis, using in-memory storage", "error", err)
			return NewMemoryStore(retention)
		}
		kv, backend = client, models.StorageTypeRedis
	default:
		logger.Info("No remote store credentials found, using in-memory storage")
		return NewMemoryStore(retention)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeoutOrDefault(cfg.Timeout))
	defer cancel()
	if err := kv.Ping(pingCtx); err != nil {
		logger.Errorw("Failed to connect to remote store, using in-memory storage", "backend", backend, "error", err)
		_ = kv.Close()
		return NewMemoryStore(retention)
	}

	logger.Infow("Connected to remote store", "backend", backend)
	return NewRemoteStore(kv, RemoteOptions{
		Backend:      backend,
		RetentionCap: retention,
		Timeout:      cfg.Timeout,
	}, logger)
}

// recordKey derives a key whose lexicographic order is chronological. The
// random suffix keeps records saved within the same nanosecond apart.
func recordKey(t time.Time) string {
	return RequestPrefix + ":" + t.UTC().Format(keyTimeLayout) + ":" + uuid.NewString()
}

func userKey(username string) string {
	return UsersPrefix + username
}

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return 5 * time.Second
	}
	return d
}
