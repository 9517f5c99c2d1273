package iphauthz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/victoroteroviz/iph-authz/identity"
	"github.com/victoroteroviz/iph-authz/role"
)

func TestBuildRequiresAStore(t *testing.T) {
	if _, err := New().Build(); !errors.Is(err, ErrStoreRequired) {
		t.Fatalf("expected ErrStoreRequired, got %v", err)
	}
}

func TestBuildRejectsSecondUse(t *testing.T) {
	b := New().WithStore(identity.NewMemStore())
	if _, err := b.Build(); err != nil {
		t.Fatalf("first build failed: %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrBuilderUsed) {
		t.Fatalf("expected ErrBuilderUsed, got %v", err)
	}
}

func TestBuildValidatesConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero TTL", func(c *Config) { c.Cache.TTL = 0 }},
		{"negative TTL", func(c *Config) { c.Cache.TTL = -time.Second }},
		{"zero max sessions", func(c *Config) { c.Cache.MaxSessions = 0 }},
		{"negative record TTL", func(c *Config) { c.Identity.RecordTTL = -time.Hour }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if _, err := New().WithConfig(cfg).WithStore(identity.NewMemStore()).Build(); err == nil {
				t.Fatalf("expected config validation error")
			}
		})
	}
}

func TestWithRoleTTLOverride(t *testing.T) {
	engine, err := New().
		WithStore(identity.NewMemStore()).
		WithRoleTTL(30 * time.Second).
		Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer engine.Close()

	if engine.config.Cache.TTL != 30*time.Second {
		t.Fatalf("TTL override not applied: %v", engine.config.Cache.TTL)
	}
}

func TestBuildWithRedisEndToEnd(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	engine, err := New().WithRedis(rdb).Build()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer engine.Close()

	ctx := context.Background()
	if err := engine.SetUserRoles(ctx, "s1", []role.Role{{ID: 2, Name: role.Administrador}}); err != nil {
		t.Fatalf("set roles failed: %v", err)
	}

	set, err := engine.GetUserRoles(ctx, "s1")
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if !set.Has(role.Administrador) {
		t.Fatalf("unexpected set: %v", set.NamesHeld())
	}

	// The record lands under the configured prefix.
	if keys := mr.Keys(); len(keys) == 0 {
		t.Fatalf("expected keys in redis")
	}
}

func TestDefaultConfigMatchesReferenceBehavior(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Cache.TTL != 5*time.Second {
		t.Fatalf("reference TTL is 5s, got %v", cfg.Cache.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}
