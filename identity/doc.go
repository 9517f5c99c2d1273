// Package identity adapts the session-scoped key-value store that holds
// the raw identity records consumed by the role resolution layer.
//
// Two logical records exist per session: the serialized user profile
// (read but never validated by this layer) and the serialized role list
// (the only record the validator parses). The adapter never inspects
// record content — validation belongs to the role package and to the
// engine in the root package.
//
// [Store] is the required contract. [RedisStore] backs it with Redis for
// multi-request server deployments; [MemStore] is a mutex-guarded map
// for embedding and tests. In both, "key not found" is an absence
// marker, never an error.
package identity
