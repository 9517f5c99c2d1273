package iphauthz

import (
	"errors"
	"time"
)

// DefaultRoleTTL is the window during which a cached role set is
// considered fresh. It is a design parameter, never recomputed from
// usage.
const DefaultRoleTTL = 5 * time.Second

// DefaultMaxSessionCaches bounds the per-session cache registry.
const DefaultMaxSessionCaches = 8192

// Config holds all Engine settings. Configure it before Build and treat
// it as immutable afterwards.
type Config struct {
	Cache    CacheConfig
	Identity IdentityConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

// CacheConfig controls the per-session TTL role cache.
type CacheConfig struct {
	// TTL is the freshness window of one cached role set. Expiry is
	// evaluated lazily on read; there is no background refresh.
	TTL time.Duration
	// MaxSessions bounds how many per-session caches are retained at
	// once. Evicting a cache only discards a memo — the next read for
	// that session refreshes from the identity store.
	MaxSessions int
}

// IdentityConfig controls the Redis identity store created by
// [Builder.WithRedis]. Ignored when a custom store is supplied via
// [Builder.WithStore].
type IdentityConfig struct {
	// Prefix namespaces the per-session record keys.
	Prefix string
	// RecordTTL bounds how long an identity record may outlive its last
	// write. Zero means records persist until cleared.
	RecordTTL time.Duration
}

// AuditConfig controls the asynchronous diagnostic event dispatcher.
// Events carry counts and metadata only, never identity payloads.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events instead of blocking the caller when the
	// buffer is saturated. Dropped events are counted.
	DropIfFull bool
}

// MetricsConfig controls the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the reference configuration: 5s role TTL,
// bounded session registry, audit and metrics enabled.
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			TTL:         DefaultRoleTTL,
			MaxSessions: DefaultMaxSessionCaches,
		},
		Identity: IdentityConfig{
			Prefix:    "iphid",
			RecordTTL: 12 * time.Hour,
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks the configuration for values the Engine cannot run
// with.
func (c Config) Validate() error {
	if c.Cache.TTL <= 0 {
		return errors.New("cache TTL must be positive")
	}
	if c.Cache.MaxSessions <= 0 {
		return errors.New("cache MaxSessions must be positive")
	}
	if c.Identity.RecordTTL < 0 {
		return errors.New("identity RecordTTL must not be negative")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("audit BufferSize must not be negative")
	}
	return nil
}
