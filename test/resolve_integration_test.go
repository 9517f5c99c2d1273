//go:build integration
// +build integration

package test

import (
	"context"
	"testing"
	"time"

	iphauthz "github.com/victoroteroviz/iph-authz"
	"github.com/victoroteroviz/iph-authz/role"
)

// TestResolveWindowSingleSourceRead drives the engine against a real
// Redis wire protocol with a short TTL: repeated reads inside one
// window must cost exactly one source round-trip, and a read after the
// window expires must cost a second.
func TestResolveWindowSingleSourceRead(t *testing.T) {
	const ttl = 150 * time.Millisecond

	engine, _, cleanup := newIntegrationEngine(t, ttl)
	defer cleanup()

	ctx := context.Background()
	const sid = "integration-session"

	if err := engine.SetUserRoles(ctx, sid, adminRoles()); err != nil {
		t.Fatalf("SetUserRoles failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		set, err := engine.GetUserRoles(ctx, sid)
		if err != nil {
			t.Fatalf("read %d failed: %v", i, err)
		}
		if !set.Has(role.Administrador) {
			t.Fatalf("read %d missing Administrador", i)
		}
	}

	snap := engine.MetricsSnapshot()
	if got := snap.Counters[iphauthz.MetricSourceRead]; got != 1 {
		t.Fatalf("expected 1 source read inside the window, got %d", got)
	}

	time.Sleep(ttl + 50*time.Millisecond)

	if _, err := engine.GetUserRoles(ctx, sid); err != nil {
		t.Fatalf("post-expiry read failed: %v", err)
	}

	snap = engine.MetricsSnapshot()
	if got := snap.Counters[iphauthz.MetricSourceRead]; got != 2 {
		t.Fatalf("expected 2 source reads after the window expired, got %d", got)
	}
}

func TestResolveHierarchyAnswers(t *testing.T) {
	engine, _, cleanup := newIntegrationEngine(t, time.Second)
	defer cleanup()

	ctx := context.Background()
	const sid = "hierarchy-session"

	if err := engine.SetUserRoles(ctx, sid, adminRoles()); err != nil {
		t.Fatalf("SetUserRoles failed: %v", err)
	}

	set, err := engine.GetUserRoles(ctx, sid)
	if err != nil {
		t.Fatalf("GetUserRoles failed: %v", err)
	}

	if engine.IsSuperAdmin(set) {
		t.Fatal("Administrador must not pass the SuperAdmin membership check")
	}
	if !engine.CanCreate(set) {
		t.Fatal("Administrador must satisfy the creation threshold")
	}
	if !engine.CanAccess(set, role.Elemento) {
		t.Fatal("Administrador must outrank Elemento")
	}
}

// TestCorruptSourcePurgedOverWire seeds a malformed role record directly
// in Redis and confirms the resolve path clears the key.
func TestCorruptSourcePurgedOverWire(t *testing.T) {
	engine, rdb, cleanup := newIntegrationEngine(t, time.Second)
	defer cleanup()

	ctx := context.Background()
	const sid = "corrupt-session"
	key := "iphid:" + sid + ":roles"

	if err := rdb.Set(ctx, key, `{"not":"an array"}`, 0).Err(); err != nil {
		t.Fatalf("seed corrupt record: %v", err)
	}

	set, err := engine.GetUserRoles(ctx, sid)
	if err != nil {
		t.Fatalf("GetUserRoles failed: %v", err)
	}
	if !set.IsEmpty() {
		t.Fatalf("corrupt record must resolve to an empty set, got %v", set.NamesHeld())
	}

	n, err := rdb.Exists(ctx, key).Result()
	if err != nil {
		t.Fatalf("exists check failed: %v", err)
	}
	if n != 0 {
		t.Fatal("corrupt role record must be purged from the store")
	}
}

func TestClearSessionRemovesRecords(t *testing.T) {
	engine, rdb, cleanup := newIntegrationEngine(t, time.Second)
	defer cleanup()

	ctx := context.Background()
	const sid = "clear-session"

	if err := engine.SetUserRoles(ctx, sid, adminRoles()); err != nil {
		t.Fatalf("SetUserRoles failed: %v", err)
	}
	if err := engine.SetUserProfile(ctx, sid, `{"username":"ana"}`); err != nil {
		t.Fatalf("SetUserProfile failed: %v", err)
	}

	if err := engine.ClearSession(ctx, sid); err != nil {
		t.Fatalf("ClearSession failed: %v", err)
	}

	n, err := rdb.Exists(ctx, "iphid:"+sid+":roles", "iphid:"+sid+":profile").Result()
	if err != nil {
		t.Fatalf("exists check failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no residual keys, found %d", n)
	}

	set, err := engine.GetUserRoles(ctx, sid)
	if err != nil {
		t.Fatalf("post-clear read failed: %v", err)
	}
	if !set.IsEmpty() {
		t.Fatal("cleared session must resolve to an empty set")
	}
}
