package iphauthz

import (
	"sync"
	"time"

	"github.com/victoroteroviz/iph-authz/role"
)

// cacheEntry memoizes one validated role set. It is owned exclusively
// by its roleCache and never escapes: callers always receive the
// role.Set, which is immutable.
type cacheEntry struct {
	set       role.Set
	fetchedAt time.Time
}

// roleCache is the per-session TTL memo over the validator. One
// instance serves exactly one session; cross-session sharing would leak
// one identity's roles into another's decisions.
//
// The mutex is held across the whole read-or-refresh, so an invalidate
// can never interleave with a refresh in a way that lets a caller
// observe an entry fetched before the invalidation. Expiry is evaluated
// lazily on read; there is no background timer.
type roleCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	entry *cacheEntry
	nowFn func() time.Time
}

func newRoleCache(ttl time.Duration) *roleCache {
	return &roleCache{
		ttl:   ttl,
		nowFn: time.Now,
	}
}

// get returns the cached role set when the entry is fresh, otherwise
// invokes fetch and stores its result. The second return reports
// whether the call was served from cache. A fetch error leaves the
// cache empty so the next call retries.
func (c *roleCache) get(fetch func() (role.Set, error)) (role.Set, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.nowFn()
	if c.entry != nil && now.Sub(c.entry.fetchedAt) < c.ttl {
		return c.entry.set, true, nil
	}

	set, err := fetch()
	if err != nil {
		c.entry = nil
		return role.EmptySet(), false, err
	}

	c.entry = &cacheEntry{set: set, fetchedAt: now}
	return set, false, nil
}

// invalidate unconditionally discards the current entry, forcing the
// next get to re-read and re-validate regardless of remaining TTL.
func (c *roleCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
}
