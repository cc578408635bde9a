package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrymomot/salesdesk/pkg/cache"
)

// MemoryStore keeps workspaces in a process-local LRU.
type MemoryStore struct {
	items *cache.LRU[string, Workspace]

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// NewMemoryStore holds up to capacity workspaces, each dropped after ttl
// without an update. A zero ttl keeps them until evicted.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		items: cache.New(capacity, cache.WithTTL[string, Workspace](ttl)),
		locks: make(map[string]*keyLock),
	}
}

func (s *MemoryStore) Load(ctx context.Context, visitorID string) (Workspace, error) {
	if err := ctx.Err(); err != nil {
		return Workspace{}, err
	}
	if ws, ok := s.items.Get(visitorID); ok {
		return ws.Clone(), nil
	}
	return New(), nil
}

func (s *MemoryStore) Update(ctx context.Context, visitorID string, fn func(*Workspace) error) (Workspace, error) {
	unlock := s.lock(visitorID)
	defer unlock()

	ws, err := s.Load(ctx, visitorID)
	if err != nil {
		return Workspace{}, err
	}
	if err := fn(&ws); err != nil {
		return Workspace{}, err
	}
	s.items.Put(visitorID, ws.Clone())
	return ws, nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

// Len reports how many workspaces are held.
func (s *MemoryStore) Len() int { return s.items.Len() }

func (s *MemoryStore) lock(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}
