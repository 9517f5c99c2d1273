package iphauthz

import "errors"

var (
	// ErrEngineNotReady is returned when an Engine method is called on a
	// nil or unbuilt engine.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrSessionIDRequired is returned when an operation is called with
	// an empty session ID.
	ErrSessionIDRequired = errors.New("session id required")
	// ErrStoreRequired is returned by Build when no identity store or
	// Redis client was provided.
	ErrStoreRequired = errors.New("identity store required")
	// ErrBuilderUsed is returned when Build is called twice on the same
	// builder.
	ErrBuilderUsed = errors.New("builder already used")
)
