package role

// Set is a validated, de-duplicated collection of roles held by one
// identity. Sets are immutable after construction and safe for
// concurrent readers; membership and hierarchy checks are O(1) against
// indexes built once when the Set is created.
//
// The zero value is the empty Set. Absence of roles is always the empty
// Set, never a nil pointer.
type Set struct {
	roles  []Role
	byID   map[int64]struct{}
	byName map[Name]struct{}
}

// EmptySet returns a Set with no roles.
func EmptySet() Set {
	return Set{}
}

// newSet builds a Set from roles that already passed element validation.
// Duplicate IDs collapse to the first occurrence; first-seen order is
// preserved.
func newSet(roles []Role) Set {
	if len(roles) == 0 {
		return Set{}
	}

	s := Set{
		roles:  make([]Role, 0, len(roles)),
		byID:   make(map[int64]struct{}, len(roles)),
		byName: make(map[Name]struct{}, len(roles)),
	}
	for _, r := range roles {
		if _, seen := s.byID[r.ID]; seen {
			continue
		}
		s.byID[r.ID] = struct{}{}
		s.byName[r.Name] = struct{}{}
		s.roles = append(s.roles, r)
	}
	return s
}

// Len returns the number of distinct roles in the set.
func (s Set) Len() int {
	return len(s.roles)
}

// IsEmpty reports whether the set holds no roles.
func (s Set) IsEmpty() bool {
	return len(s.roles) == 0
}

// Has reports whether the set contains a role with the given name.
func (s Set) Has(name Name) bool {
	_, ok := s.byName[name]
	return ok
}

// HasID reports whether the set contains a role with the given ID.
func (s Set) HasID(id int64) bool {
	_, ok := s.byID[id]
	return ok
}

// Roles returns a copy of the roles in first-seen order. Mutating the
// returned slice does not affect the Set.
func (s Set) Roles() []Role {
	out := make([]Role, len(s.roles))
	copy(out, s.roles)
	return out
}

// NamesHeld returns the distinct role names in first-seen order.
func (s Set) NamesHeld() []Name {
	out := make([]Name, 0, len(s.roles))
	seen := make(map[Name]struct{}, len(s.roles))
	for _, r := range s.roles {
		if _, dup := seen[r.Name]; dup {
			continue
		}
		seen[r.Name] = struct{}{}
		out = append(out, r.Name)
	}
	return out
}

// MaxRank returns the highest rank present in the set.
func (s Set) MaxRank() Rank {
	return MaxRank(s)
}

// CanAccess reports whether the set reaches at least the rank of minimum.
func (s Set) CanAccess(minimum Name) bool {
	return CanAccess(s, minimum)
}
