package silver

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Entry describes a value held by a Cache.
type Entry struct {
	LoadedAt time.Time
	ModTime  time.Time // modification time of the file when loaded, zero if unknown
}

// Policy decides when a cached entry must be reloaded.
type Policy interface {
	Stale(path string, e Entry, now time.Time) bool
}

// PolicyFunc adapts a function to the Policy interface.
type PolicyFunc func(path string, e Entry, now time.Time) bool

func (f PolicyFunc) Stale(path string, e Entry, now time.Time) bool { return f(path, e, now) }

type forever struct{}

func (forever) Stale(string, Entry, time.Time) bool { return false }

// Forever never invalidates an entry. Dataset files are static assets.
var Forever Policy = forever{}

type ttl time.Duration

func (d ttl) Stale(_ string, e Entry, now time.Time) bool {
	return now.Sub(e.LoadedAt) >= time.Duration(d)
}

// TTL invalidates entries older than d.
func TTL(d time.Duration) Policy { return ttl(d) }

type modified struct{}

func (modified) Stale(path string, e Entry, _ time.Time) bool { return !modTime(path).Equal(e.ModTime) }

// ModTime invalidates an entry when its file modification time changed.
// A file that can no longer be stat'ed is stale too, so that the error surfaces on reload.
var ModTime Policy = modified{}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

type cached[T any] struct {
	value T
	entry Entry
}

// Cache holds values loaded from files, keyed by path.
//
// Values are loaded on first access and returned as is on subsequent calls until
// the policy reports them stale. Load errors are not cached.
type Cache[T any] struct {
	load   func(path string) (T, error)
	policy Policy
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]cached[T]
	loads   int
}

// NewCache returns an empty cache using load to read values. A nil policy is Forever.
func NewCache[T any](load func(path string) (T, error), policy Policy) *Cache[T] {
	if policy == nil {
		policy = Forever
	}
	return &Cache[T]{
		load:    load,
		policy:  policy,
		now:     time.Now,
		entries: make(map[string]cached[T]),
	}
}

// Get returns the value for path, loading it if absent or stale.
func (c *Cache[T]) Get(path string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if e, ok := c.entries[path]; ok {
		if !c.policy.Stale(path, e.entry, now) {
			return e.value, nil
		}
		logger.Debug("cache entry is stale", zap.String("path", path))
		delete(c.entries, path)
	}

	value, err := c.load(path)
	c.loads++
	if err != nil {
		var zero T
		return zero, err
	}
	c.entries[path] = cached[T]{value: value, entry: Entry{LoadedAt: now, ModTime: modTime(path)}}
	return value, nil
}

// Invalidate drops the entry for path, if any.
func (c *Cache[T]) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}

// Len returns the number of cached entries.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
