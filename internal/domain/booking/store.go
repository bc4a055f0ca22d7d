package booking

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrDraftNotFound = errors.New("booking draft not found")

// Store keeps drafts between requests.
type Store interface {
	Load(ctx context.Context, id string) (Draft, error)
	Save(ctx context.Context, d Draft) error
}

// MemoryStore is a process-local Store, used when no redis is configured.
// Like the redis store, every Save restarts the draft's TTL; expired drafts
// are not found and are swept on the next Save.
type MemoryStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	drafts map[string]memoryEntry
}

type memoryEntry struct {
	draft     Draft
	expiresAt time.Time
}

// NewMemoryStore keeps drafts for ttl after their last save. ttl <= 0 keeps
// them until the process exits.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:    ttl,
		now:    time.Now,
		drafts: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.drafts[id]
	if !ok {
		return Draft{}, ErrDraftNotFound
	}
	if s.expired(e) {
		delete(s.drafts, id)
		return Draft{}, ErrDraftNotFound
	}
	d := e.draft
	d.Zones = append([]string(nil), d.Zones...)
	return d, nil
}

func (s *MemoryStore) Save(_ context.Context, d Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.drafts {
		if s.expired(e) {
			delete(s.drafts, id)
		}
	}

	d.Zones = append([]string(nil), d.Zones...)
	e := memoryEntry{draft: d}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.drafts[d.ID] = e
	return nil
}

// Len counts stored drafts, expired ones included until swept.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}

func (s *MemoryStore) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt)
}
