// Package role defines the fixed role hierarchy used across the IPH
// dashboard and the validation rules that turn untrusted role payloads
// into well-formed, de-duplicated role sets.
//
// # Hierarchy
//
// Role names form a total order, lowest to highest privilege:
//
//	Elemento < Superior < Administrador < SuperAdmin
//
// Any name outside this order is a validation failure, never a new rank.
// An empty [Set] ranks below every defined role, so "no roles" denies
// every rank-gated action by construction.
//
// # Architecture boundaries
//
// This package is pure: no I/O, no clocks, no store access. Validation
// never returns an error — malformed input degrades to an empty or
// partial [Set], and the caller decides what to do with the [Report].
// Store-side effects (purging a corrupt record) belong to the engine in
// the root package, never here.
package role
