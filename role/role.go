package role

// Name identifies one of the fixed IPH roles. The zero value is not a
// valid role name.
type Name string

const (
	// Elemento is the base operational role.
	Elemento Name = "Elemento"
	// Superior supervises Elemento users.
	Superior Name = "Superior"
	// Administrador manages users and catalog data.
	Administrador Name = "Administrador"
	// SuperAdmin is the top of the hierarchy.
	SuperAdmin Name = "SuperAdmin"
)

// Rank is the integer position of a role name in the hierarchy.
// Higher means more privilege.
type Rank int

// RankNone is below every defined role. It is the rank of an empty Set.
const RankNone Rank = 0

var ranks = map[Name]Rank{
	Elemento:      1,
	Superior:      2,
	Administrador: 3,
	SuperAdmin:    4,
}

// order lists the role names from lowest to highest privilege.
var order = []Name{Elemento, Superior, Administrador, SuperAdmin}

// Names returns the fixed role names, lowest to highest privilege.
func Names() []Name {
	out := make([]Name, len(order))
	copy(out, order)
	return out
}

// Known reports whether name is part of the fixed hierarchy.
func Known(name Name) bool {
	_, ok := ranks[name]
	return ok
}

// RankOf returns the rank of name, or [RankNone] if the name is not part
// of the hierarchy.
func RankOf(name Name) Rank {
	return ranks[name]
}

// Role is one validated role record: an integer identifier assigned by
// the issuing service and a name drawn from the fixed hierarchy.
type Role struct {
	ID   int64 `json:"id"`
	Name Name  `json:"name"`
}

// MaxRank returns the highest rank present in set. An empty set returns
// [RankNone]. When a user holds several roles at once the maximum always
// wins, never the first or last encountered.
func MaxRank(set Set) Rank {
	max := RankNone
	for _, r := range set.roles {
		if rank := ranks[r.Name]; rank > max {
			max = rank
		}
	}
	return max
}

// CanAccess reports whether set reaches at least the rank of minimum.
// It is pure and total: an empty set or an unknown minimum denies.
func CanAccess(set Set, minimum Name) bool {
	min := RankOf(minimum)
	if min == RankNone {
		return false
	}
	return MaxRank(set) >= min
}
