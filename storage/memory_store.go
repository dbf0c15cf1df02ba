package storage

import (
	"context"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/blogem/tracker/models"
)

type memoryEntry struct {
	key    string
	record models.RequestRecord
}

// MemoryStore keeps records in a bounded buffer guarded by a mutex and
// credentials in a concurrent map. It is safe for concurrent use.
type MemoryStore struct {
	mu       sync.Mutex
	entries  []memoryEntry // oldest first
	capacity int
	users    *xsync.Map[string, string]
	now      func() time.Time
}

// NewMemoryStore creates a store that keeps at most capacity records
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity < 2 {
		capacity = DefaultRetentionCap
	}
	return &MemoryStore{
		capacity: capacity,
		users:    xsync.NewMap[string, string](),
		now:      time.Now,
	}
}

func (s *MemoryStore) SaveRecord(_ context.Context, record models.RequestRecord) error {
	s.append(recordKey(s.now()), record)
	return nil
}

// append adds one entry and, once the buffer exceeds its capacity, drops
// everything but the newest capacity/2 entries.
func (s *MemoryStore) append(key string, record models.RequestRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, memoryEntry{key: key, record: record})
	if len(s.entries) > s.capacity {
		keep := s.capacity / 2
		trimmed := make([]memoryEntry, keep, s.capacity+1)
		copy(trimmed, s.entries[len(s.entries)-keep:])
		s.entries = trimmed
	}
}

func (s *MemoryStore) Records(_ context.Context, limit int) ([]models.RequestRecord, error) {
	entries := s.newest(limit)
	records := make([]models.RequestRecord, len(entries))
	for i, e := range entries {
		records[i] = e.record
	}
	return records, nil
}

// newest returns up to limit entries, newest first
func (s *MemoryStore) newest(limit int) []memoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]memoryEntry, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.entries[i])
	}
	return out
}

// Len returns the number of buffered records
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) AddUser(_ context.Context, username, password string) error {
	s.users.Store(username, password)
	return nil
}

func (s *MemoryStore) GetUser(_ context.Context, username string) (string, error) {
	password, ok := s.users.Load(username)
	if !ok {
		return "", ErrUserNotFound
	}
	return password, nil
}

func (s *MemoryStore) Status(_ context.Context) (models.StorageStatus, error) {
	return models.StorageStatus{
		RemoteConnected: false,
		MemoryEntries:   s.Len(),
		StorageType:     models.StorageTypeMemory,
		Status:          "ok",
	}, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
