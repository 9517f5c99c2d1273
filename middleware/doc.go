// Package middleware exposes net/http middleware that gates routes on
// the role resolution engine.
//
// # Guards
//
//   - [RequireRank] — hierarchy check: the session's highest role must
//     rank at or above a minimum.
//   - [RequireRole] — explicit membership check, hierarchy not
//     consulted.
//
// Each guard resolves the caller's session ID from the request, asks
// the engine for the session's validated role set, and injects the set
// into the request context for downstream handlers.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Engine calls. It makes no
// authorization decisions of its own: a missing session, a store
// failure, and an empty role set all deny, exactly as the engine's
// fail-closed contract dictates.
package middleware
