package identity

import (
	"context"
	"errors"
)

// Record names one of the logical per-session records.
type Record string

const (
	// RecordProfile holds the serialized user profile. This layer reads
	// and writes it opaquely; it is never parsed here.
	RecordProfile Record = "profile"
	// RecordRoles holds the serialized role list, the only record the
	// validator parses.
	RecordRoles Record = "roles"
)

// ErrUnavailable is returned when the backing store cannot be reached.
// It is an infrastructure failure, distinct from an absent record.
var ErrUnavailable = errors.New("identity store unavailable")

// Store is the session-scoped key-value contract the role layer depends
// on but does not implement.
//
// Read returns the raw serialized value and true, or ("", false, nil)
// when the record is absent — absence is never an error. Clear is
// idempotent: clearing an absent record succeeds. Implementations must
// be safe for concurrent use.
type Store interface {
	Read(ctx context.Context, sessionID string, record Record) (string, bool, error)
	Write(ctx context.Context, sessionID string, record Record, value string) error
	Clear(ctx context.Context, sessionID string, record Record) error
}
