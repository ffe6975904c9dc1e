package cache

import (
	"context"
	"sync"
	"time"

	"github.com/microposts/posts-api/internal/core/ports"
)

const defaultTTL = 5 * time.Minute

// entry stores one subject's listing with its insertion timestamp.
type entry struct {
	items    []ports.PostItem
	inserted time.Time
}

// Memory is the in-process implementation of ports.PostCache: a map guarded
// by an RWMutex, with staleness evaluated lazily at read time against an
// injectable clock. There is no background sweep; a stale entry is simply
// overwritten on the next miss or removed by Invalidate.
type Memory struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]entry
}

// NewMemory creates a Memory cache. A non-positive ttl falls back to 5 minutes.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Memory{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]entry),
	}
}

// WithClock overrides the time source. Intended for tests asserting TTL
// boundaries.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

// GetOrLoad returns the cached listing for subject while the entry is
// younger than the TTL, otherwise invokes loader synchronously and stores
// the result with a fresh timestamp. The loader runs outside the lock, so
// concurrent misses for the same subject may each invoke it; last store
// wins, which is fine because the loader is read-only.
func (m *Memory) GetOrLoad(ctx context.Context, subject string, loader ports.PostLoader) ([]ports.PostItem, bool, error) {
	m.mu.RLock()
	e, ok := m.items[subject]
	fresh := ok && m.now().Sub(e.inserted) < m.ttl
	m.mu.RUnlock()

	if fresh {
		return e.items, true, nil
	}

	items, err := loader(ctx)
	if err != nil {
		return nil, false, err
	}

	m.mu.Lock()
	m.items[subject] = entry{items: items, inserted: m.now()}
	m.mu.Unlock()

	return items, false, nil
}

// Invalidate unconditionally removes the subject's entry.
func (m *Memory) Invalidate(_ context.Context, subject string) error {
	m.mu.Lock()
	delete(m.items, subject)
	m.mu.Unlock()
	return nil
}

var _ ports.PostCache = (*Memory)(nil)
