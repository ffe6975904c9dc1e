package ports

import "context"

// PostLoader fetches the authoritative listing for a subject from the store.
type PostLoader func(ctx context.Context) ([]PostItem, error)

// PostCache holds a per-subject, time-bounded copy of a post listing. It is
// never the source of truth: entries are inserted on a miss and removed on
// any write for that subject (write-then-invalidate).
//
// GetOrLoad returns the cached listing when a fresh entry exists, otherwise
// invokes loader synchronously, stores the result, and returns it. The bool
// reports whether the call was served from cache. Concurrent misses for the
// same subject may each invoke loader; the loader is read-only so this is
// harmless.
type PostCache interface {
	GetOrLoad(ctx context.Context, subject string, loader PostLoader) ([]PostItem, bool, error)
	Invalidate(ctx context.Context, subject string) error
}
