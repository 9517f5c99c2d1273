package test

import (
	"errors"
	"testing"

	iphauthz "github.com/victoroteroviz/iph-authz"
	"github.com/victoroteroviz/iph-authz/identity"
	"github.com/victoroteroviz/iph-authz/role"
)

// These checks pin the public surface consumers depend on. Changing any
// of them is a breaking release.

func TestErrorSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		iphauthz.ErrEngineNotReady,
		iphauthz.ErrSessionIDRequired,
		iphauthz.ErrStoreRequired,
		iphauthz.ErrBuilderUsed,
		identity.ErrUnavailable,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinels %d and %d overlap: %v / %v", i, j, a, b)
			}
		}
	}
}

func TestRoleNamesAreStable(t *testing.T) {
	want := []role.Name{role.Elemento, role.Superior, role.Administrador, role.SuperAdmin}
	got := role.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d role names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("name %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	for i := 1; i < len(want); i++ {
		if role.RankOf(want[i]) <= role.RankOf(want[i-1]) {
			t.Fatalf("rank order broken at %q", want[i])
		}
	}
}

func TestDefaultConfigMatchesDocumentedDefaults(t *testing.T) {
	cfg := iphauthz.DefaultConfig()
	if cfg.Cache.TTL != iphauthz.DefaultRoleTTL {
		t.Fatalf("expected default TTL %v, got %v", iphauthz.DefaultRoleTTL, cfg.Cache.TTL)
	}
	if cfg.Cache.MaxSessions != iphauthz.DefaultMaxSessionCaches {
		t.Fatalf("expected default MaxSessions %d, got %d", iphauthz.DefaultMaxSessionCaches, cfg.Cache.MaxSessions)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
}
