// Package permission derives per-module capability decisions from a
// validated role set.
//
// Each dashboard module (users, records, statistics, history) declares a
// fixed [Descriptor]: a map from action name to a [Requirement] that is
// either a minimum rank or an explicit set of allowed role names. Typed
// helpers (e.g. [Users]) evaluate a descriptor into a flat struct of
// booleans for callers that prefer fields over map lookups.
//
// # Architecture boundaries
//
// This package is stateless and pure. It consults neither the cache nor
// the identity store — callers pass in whatever [role.Set] they already
// hold. Its only failure mode would be a malformed set, which cannot
// occur when the input path is the validator's output.
package permission
