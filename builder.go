package iphauthz

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"

	"github.com/victoroteroviz/iph-authz/identity"
)

// Builder assembles an [Engine]. Use [New] to obtain one, chain the
// WithX setters, then call [Builder.Build] exactly once.
type Builder struct {
	config    Config
	redis     redis.UniversalClient
	store     identity.Store
	auditSink AuditSink
	built     bool
}

// New returns a Builder preloaded with [DefaultConfig].
func New() *Builder {
	return &Builder{config: DefaultConfig()}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithRedis backs the identity store with the given Redis client, using
// the Identity section of the config for key prefix and record TTL.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithStore supplies a custom identity store. Takes precedence over
// [Builder.WithRedis].
func (b *Builder) WithStore(store identity.Store) *Builder {
	b.store = store
	return b
}

// WithAuditSink sets the diagnostic event sink. Without one, events go
// to [NoOpSink].
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithRoleTTL overrides the cache TTL.
func (b *Builder) WithRoleTTL(ttl time.Duration) *Builder {
	b.config.Cache.TTL = ttl
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and constructs the Engine.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}

	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	store := b.store
	if store == nil {
		if b.redis == nil {
			return nil, ErrStoreRequired
		}
		store = identity.NewRedisStore(b.redis, b.config.Identity.Prefix, b.config.Identity.RecordTTL)
	}

	caches, err := lru.New[string, *roleCache](b.config.Cache.MaxSessions)
	if err != nil {
		return nil, err
	}

	b.built = true
	return &Engine{
		config:  b.config,
		store:   store,
		caches:  caches,
		audit:   newAuditDispatcher(b.config.Audit, b.auditSink),
		metrics: NewMetrics(b.config.Metrics),
	}, nil
}
