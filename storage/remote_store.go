package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/tracker/metrics"
	"github.com/blogem/tracker/models"
)

// RemoteOptions configures a RemoteStore
type RemoteOptions struct {
	Backend      string // reported as StorageStatus.StorageType
	RetentionCap int
	Timeout      time.Duration // per remote call
}

// RemoteStore persists to a KVClient. Each call tries the remote store
// first; a failing call is served by a private MemoryStore without changing
// the mode for later calls.
type RemoteStore struct {
	kv        KVClient
	backend   string
	retention int
	timeout   time.Duration
	fallback  *MemoryStore
	logger    *zap.SugaredLogger
	now       func() time.Time
}

type keyedRecord struct {
	key    string
	record models.RequestRecord
}

// NewRemoteStore wraps kv
func NewRemoteStore(kv KVClient, opts RemoteOptions, logger *zap.SugaredLogger) *RemoteStore {
	if opts.RetentionCap < 2 {
		opts.RetentionCap = DefaultRetentionCap
	}
	if opts.Backend == "" {
		opts.Backend = models.StorageTypeRedis
	}
	return &RemoteStore{
		kv:        kv,
		backend:   opts.Backend,
		retention: opts.RetentionCap,
		timeout:   timeoutOrDefault(opts.Timeout),
		fallback:  NewMemoryStore(opts.RetentionCap),
		logger:    logger,
		now:       time.Now,
	}
}

func (s *RemoteStore) SaveRecord(ctx context.Context, record models.RequestRecord) error {
	defer s.observe("save")()

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode request record: %w", err)
	}
	key := recordKey(s.now())

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.kv.Set(callCtx, key, string(data)); err != nil {
		s.logger.Errorw("Error saving to remote store, keeping record in memory", "backend", s.backend, "error", err)
		metrics.StorageFallbacks.WithLabelValues("save").Inc()
		s.fallback.append(key, record)
		return nil
	}

	s.cleanup(callCtx)
	return nil
}

// cleanup deletes the oldest records once the collection exceeds the
// retention cap, keeping the newest cap/2. Failures are only logged.
func (s *RemoteStore) cleanup(ctx context.Context) {
	keys, err := s.kv.Keys(ctx, RequestPrefix+":*")
	if err != nil {
		s.logger.Errorw("Error during remote store cleanup", "error", err)
		return
	}
	if len(keys) <= s.retention {
		return
	}

	sort.Strings(keys)
	stale := keys[:len(keys)-s.retention/2]
	removed, err := s.kv.Del(ctx, stale...)
	if err != nil {
		s.logger.Errorw("Error during remote store cleanup", "error", err)
		return
	}
	metrics.RetentionDeleted.Add(float64(removed))
	s.logger.Infow("Cleaned up old remote store entries", "removed", removed)
}

func (s *RemoteStore) Records(ctx context.Context, limit int) ([]models.RequestRecord, error) {
	defer s.observe("records")()

	remote, err := s.remoteRecords(ctx, limit)
	if err != nil {
		s.logger.Errorw("Error fetching from remote store, reading memory", "backend", s.backend, "error", err)
		metrics.StorageFallbacks.WithLabelValues("records").Inc()
		return s.fallback.Records(ctx, limit)
	}

	// records that only reached the fallback are merged back by key order
	for _, e := range s.fallback.newest(limit) {
		remote = append(remote, keyedRecord(e))
	}
	sort.Slice(remote, func(i, j int) bool { return remote[i].key > remote[j].key })
	if limit > 0 && len(remote) > limit {
		remote = remote[:limit]
	}

	records := make([]models.RequestRecord, len(remote))
	for i, r := range remote {
		records[i] = r.record
	}
	return records, nil
}

func (s *RemoteStore) remoteRecords(ctx context.Context, limit int) ([]keyedRecord, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	keys, err := s.kv.Keys(callCtx, RequestPrefix+":*")
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	values, err := s.kv.MGet(callCtx, keys...)
	if err != nil {
		return nil, err
	}
	if len(values) != len(keys) {
		return nil, fmt.Errorf("MGET returned %d values for %d keys", len(values), len(keys))
	}

	out := make([]keyedRecord, 0, len(keys))
	for i, value := range values {
		if value == "" {
			// deleted between KEYS and MGET
			continue
		}
		var record models.RequestRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			s.logger.Warnw("Skipping undecodable request record", "key", keys[i], "error", err)
			continue
		}
		out = append(out, keyedRecord{key: keys[i], record: record})
	}
	return out, nil
}

func (s *RemoteStore) AddUser(ctx context.Context, username, password string) error {
	defer s.observe("add_user")()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.kv.Set(callCtx, userKey(username), password); err != nil {
		s.logger.Errorw("Error adding user to remote store, keeping it in memory", "error", err)
		metrics.StorageFallbacks.WithLabelValues("add_user").Inc()
		return s.fallback.AddUser(ctx, username, password)
	}
	return nil
}

func (s *RemoteStore) GetUser(ctx context.Context, username string) (string, error) {
	defer s.observe("get_user")()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	password, found, err := s.kv.Get(callCtx, userKey(username))
	if err != nil {
		s.logger.Errorw("Error fetching user from remote store, reading memory", "error", err)
		metrics.StorageFallbacks.WithLabelValues("get_user").Inc()
		return s.fallback.GetUser(ctx, username)
	}
	if !found {
		// the user may have been added while the remote store was failing
		return s.fallback.GetUser(ctx, username)
	}
	return password, nil
}

func (s *RemoteStore) Status(ctx context.Context) (models.StorageStatus, error) {
	status := models.StorageStatus{
		RemoteConnected: true,
		MemoryEntries:   s.fallback.Len(),
		StorageType:     s.backend,
		Status:          "ok",
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.kv.Ping(callCtx); err != nil {
		status.Status = "degraded"
		status.Message = err.Error()
	}
	return status, nil
}

func (s *RemoteStore) Close() error {
	if err := s.kv.Close(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *RemoteStore) observe(operation string) func() {
	start := time.Now()
	return func() {
		metrics.StorageOpDuration.WithLabelValues(s.backend, operation).Observe(time.Since(start).Seconds())
	}
}
