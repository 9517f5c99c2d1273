//go:build integration
// +build integration

package test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	iphauthz "github.com/victoroteroviz/iph-authz"
	"github.com/victoroteroviz/iph-authz/role"
)

func newIntegrationEngine(t *testing.T, ttl time.Duration) (*iphauthz.Engine, *redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := iphauthz.DefaultConfig()
	cfg.Cache.TTL = ttl
	cfg.Audit.Enabled = false

	engine, err := iphauthz.New().
		WithConfig(cfg).
		WithRedis(rdb).
		Build()
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}

	return engine, rdb, func() {
		engine.Close()
		_ = rdb.Close()
		mr.Close()
	}
}

func adminRoles() []role.Role {
	return []role.Role{{ID: 2, Name: role.Administrador}}
}
