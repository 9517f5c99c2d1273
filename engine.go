package iphauthz

import (
	"context"
	"encoding/json"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/victoroteroviz/iph-authz/identity"
	"github.com/victoroteroviz/iph-authz/role"
)

// Engine is the session-scoped role resolution engine. Construct it
// through [Builder.Build]; after that it is safe for concurrent use.
//
// The Engine is a passive collaborator: it never observes login, logout,
// or role-change events on its own. The surrounding application must
// drive it — either through the write paths here, which invalidate
// inline, or by calling [Engine.InvalidateRoleCache] after mutating the
// identity store directly.
type Engine struct {
	config  Config
	store   identity.Store
	caches  *lru.Cache[string, *roleCache]
	audit   *auditDispatcher
	metrics *Metrics
}

// Close drains the audit dispatcher. The Engine must not be used after
// Close.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// GetUserRoles returns the validated role set for sessionID.
//
// Within one TTL window the set is answered from the per-session cache
// without touching the store or the validator. On a miss the roles
// record is read from the identity store and validated; absence and
// malformed payloads both resolve to the empty set, never an error.
//
// Side effect: when the stored payload is corrupt at the top level (not
// array-shaped or undecodable) the record is cleared so the same
// corruption is not re-read indefinitely. The returned error is non-nil
// only for store infrastructure failures.
func (e *Engine) GetUserRoles(ctx context.Context, sessionID string) (role.Set, error) {
	if e == nil || e.caches == nil {
		return role.EmptySet(), ErrEngineNotReady
	}
	if sessionID == "" {
		return role.EmptySet(), ErrSessionIDRequired
	}

	cache := e.sessionCache(sessionID)
	set, hit, err := cache.get(func() (role.Set, error) {
		return e.refreshRoles(ctx, sessionID)
	})
	if err != nil {
		return role.EmptySet(), err
	}

	if hit {
		e.metricInc(MetricCacheHit)
	} else {
		e.metricInc(MetricCacheMiss)
	}
	return set, nil
}

// InvalidateRoleCache discards the cached role set for sessionID so the
// next [Engine.GetUserRoles] call re-reads and re-validates, regardless
// of remaining TTL. Call it immediately after any login, logout, or
// role-changing event performed outside the Engine's own write paths.
func (e *Engine) InvalidateRoleCache(sessionID string) {
	if e == nil || e.caches == nil || sessionID == "" {
		return
	}

	if cache, ok := e.caches.Get(sessionID); ok {
		cache.invalidate()
	}
	e.metricInc(MetricCacheInvalidate)
	e.auditEmit(context.Background(), EventCacheInvalidated, sessionID, nil)
}

// SetUserRoles serializes and stores the role list for sessionID, then
// invalidates its cache. Unknown role names are rejected by the next
// validation pass rather than here; this path stores what the issuing
// service sent.
func (e *Engine) SetUserRoles(ctx context.Context, sessionID string, roles []role.Role) error {
	if e == nil || e.store == nil {
		return ErrEngineNotReady
	}
	if sessionID == "" {
		return ErrSessionIDRequired
	}

	data, err := json.Marshal(roles)
	if err != nil {
		return err
	}
	if err := e.store.Write(ctx, sessionID, identity.RecordRoles, string(data)); err != nil {
		return err
	}

	// The cache must never outlive a source mutation.
	e.InvalidateRoleCache(sessionID)
	return nil
}

// SetUserProfile stores the serialized profile record for sessionID.
// The profile is opaque to this layer.
func (e *Engine) SetUserProfile(ctx context.Context, sessionID, profile string) error {
	if e == nil || e.store == nil {
		return ErrEngineNotReady
	}
	if sessionID == "" {
		return ErrSessionIDRequired
	}
	return e.store.Write(ctx, sessionID, identity.RecordProfile, profile)
}

// GetUserProfile reads the serialized profile record for sessionID. The
// value is returned as stored; this layer never validates it. Absence
// resolves to ("", false, nil).
func (e *Engine) GetUserProfile(ctx context.Context, sessionID string) (string, bool, error) {
	if e == nil || e.store == nil {
		return "", false, ErrEngineNotReady
	}
	if sessionID == "" {
		return "", false, ErrSessionIDRequired
	}

	e.metricInc(MetricProfileRead)
	return e.store.Read(ctx, sessionID, identity.RecordProfile)
}

// ClearSession removes both identity records for sessionID and
// invalidates its role cache. The surrounding application calls this on
// logout.
func (e *Engine) ClearSession(ctx context.Context, sessionID string) error {
	if e == nil || e.store == nil {
		return ErrEngineNotReady
	}
	if sessionID == "" {
		return ErrSessionIDRequired
	}

	if err := e.store.Clear(ctx, sessionID, identity.RecordRoles); err != nil {
		return err
	}
	if err := e.store.Clear(ctx, sessionID, identity.RecordProfile); err != nil {
		return err
	}

	e.InvalidateRoleCache(sessionID)
	e.caches.Remove(sessionID)
	e.metricInc(MetricSessionCleared)
	e.auditEmit(ctx, EventSessionCleared, sessionID, nil)
	return nil
}

// MetricsSnapshot copies every Engine counter.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

// AuditDropped returns how many diagnostic events were dropped because
// the audit buffer was full.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// refreshRoles is the cache-miss path: one store read, one validation
// pass, and the self-healing purge on top-level corruption.
func (e *Engine) refreshRoles(ctx context.Context, sessionID string) (role.Set, error) {
	e.metricInc(MetricSourceRead)

	raw, present, err := e.store.Read(ctx, sessionID, identity.RecordRoles)
	if err != nil {
		return role.EmptySet(), err
	}
	if !present {
		// Absence is not a failure: no record means zero roles.
		e.metricInc(MetricSourceAbsent)
		return role.EmptySet(), nil
	}

	e.metricInc(MetricValidatorRun)
	set, report := role.Parse([]byte(raw))
	if report.Dropped > 0 {
		e.metricAdd(MetricValidatorDropped, uint64(report.Dropped))
	}

	purged := false
	if report.Malformed {
		// Self-healing: clear the corrupt record so the same payload is
		// not re-read on every refresh. A clear failure is not surfaced;
		// the fail-closed empty set already denies everything.
		if clearErr := e.store.Clear(ctx, sessionID, identity.RecordRoles); clearErr == nil {
			purged = true
			e.metricInc(MetricSourcePurge)
			e.auditEmit(ctx, EventSourcePurged, sessionID, nil)
		}
	}

	e.auditEmit(ctx, EventRolesRefreshed, sessionID, map[string]string{
		"total":     strconv.Itoa(report.Total),
		"dropped":   strconv.Itoa(report.Dropped),
		"malformed": strconv.FormatBool(report.Malformed),
		"purged":    strconv.FormatBool(purged),
		"accepted":  strconv.Itoa(set.Len()),
	})

	return set, nil
}

// sessionCache returns the cache owned by sessionID, creating it on
// first use. The registry is LRU-bounded; eviction only discards a
// memo, never identity data.
func (e *Engine) sessionCache(sessionID string) *roleCache {
	if cache, ok := e.caches.Get(sessionID); ok {
		return cache
	}

	cache := newRoleCache(e.config.Cache.TTL)
	if existing, ok, _ := e.caches.PeekOrAdd(sessionID, cache); ok {
		return existing
	}
	return cache
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) metricAdd(id MetricID, delta uint64) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Add(id, delta)
}

func (e *Engine) auditEmit(ctx context.Context, eventType, sessionID string, metadata map[string]string) {
	if e == nil || e.audit == nil {
		return
	}
	e.audit.emit(ctx, eventType, sessionID, metadata)
}
