// Package iphauthz provides the role-based permission resolution and
// caching layer of the IPH dashboard: session-scoped role lists are read
// from an identity store, validated, memoized behind a TTL, and turned
// into hierarchy-aware and per-module authorization decisions.
//
// The package is designed for concurrent server workloads: Engine
// methods are safe to call from multiple goroutines after initialization
// through [Builder.Build], and role caches are keyed per session so one
// identity's roles never leak into another's decisions.
//
// # Architecture boundaries
//
// iphauthz is the public surface. It exposes [Engine], [Builder],
// [Config], the audit and metrics types, and re-exports of the pure
// helpers in the role and permission subpackages. The identity store
// contract lives in the identity subpackage; validation and hierarchy
// logic live in role; per-module capability tables live in permission.
//
// # What this package must NOT do
//
//   - Authenticate a user or handle credentials — roles are issued at
//     login by the surrounding application, never minted here.
//   - Surface malformed identity data as an error. Validation failures
//     resolve to the empty role set (fail-closed): a broken session is
//     indistinguishable from a user with zero roles.
//   - Observe login, logout, or role-change events on its own. The
//     surrounding application must call [Engine.InvalidateRoleCache]
//     (or the Engine write paths, which invalidate inline) immediately
//     after any identity mutation.
//
// # Performance contract
//
// GetUserRoles is the hot path. Within one TTL window it must answer
// from the in-process cache without touching the store or the
// validator; a refresh costs one store read and one validation pass.
package iphauthz
