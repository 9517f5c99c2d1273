package role

import (
	"bytes"
	"encoding/json"
)

// Report summarizes one validation pass. It carries counts and flags
// only, never payload content, so it is safe to log or attach to audit
// events.
type Report struct {
	// Total is the number of elements seen in the raw payload.
	Total int
	// Dropped is the number of elements rejected at the element level.
	Dropped int
	// Malformed is true when the top-level value was not an array at
	// all (undecodable, wrong type, or empty input). The result is the
	// empty Set and, on the identity-source path, the caller is
	// expected to purge the underlying record.
	Malformed bool
}

// rawRole mirrors the wire shape of one role record. ID is decoded as a
// json.Number so that fractional or string-typed ids fail element
// validation instead of being coerced.
type rawRole struct {
	ID   *json.Number `json:"id"`
	Name *Name        `json:"name"`
}

// Parse validates an untrusted raw payload into a Set.
//
// The payload must be a JSON array of objects, each with an integer
// `id` and a `name` drawn from the fixed hierarchy. Malformed elements
// are dropped silently; partial success is allowed. A top-level value
// that is not array-shaped yields the empty Set with Report.Malformed
// set. Duplicate ids collapse to the first occurrence.
//
// Parse never returns an error: every malformed-input case resolves to
// a value. A broken payload is indistinguishable from a user with zero
// roles, which denies every privileged action.
func Parse(data []byte) (Set, Report) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		// JSON null also decodes cleanly into a nil slice, so shape is
		// checked on the raw bytes.
		return Set{}, Report{Malformed: true}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return Set{}, Report{Malformed: true}
	}

	report := Report{Total: len(elements)}
	accepted := make([]Role, 0, len(elements))
	for _, element := range elements {
		r, ok := parseElement(element)
		if !ok {
			report.Dropped++
			continue
		}
		accepted = append(accepted, r)
	}

	return newSet(accepted), report
}

func parseElement(element json.RawMessage) (Role, bool) {
	var raw rawRole
	if err := json.Unmarshal(element, &raw); err != nil {
		return Role{}, false
	}
	if raw.ID == nil || raw.Name == nil {
		return Role{}, false
	}

	id, err := raw.ID.Int64()
	if err != nil {
		return Role{}, false
	}
	if !Known(*raw.Name) {
		return Role{}, false
	}

	return Role{ID: id, Name: *raw.Name}, true
}

// ValidateExternal validates a role payload that arrives by parameter
// rather than from the session store. Element semantics match [Parse],
// but no store exists on this path, so nothing is ever purged. The
// returned Set carries its lookup indexes, so repeated membership and
// hierarchy checks against it are O(1).
func ValidateExternal(data []byte) Set {
	set, _ := Parse(data)
	return set
}

// ValidateExternalRoles validates already-structured role records
// supplied by a caller. Records with an unknown name are dropped;
// duplicate ids collapse to the first occurrence.
func ValidateExternalRoles(roles []Role) Set {
	accepted := make([]Role, 0, len(roles))
	for _, r := range roles {
		if !Known(r.Name) {
			continue
		}
		accepted = append(accepted, r)
	}
	return newSet(accepted)
}
