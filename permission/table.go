package permission

import "github.com/victoroteroviz/iph-authz/role"

// Action names one capability within a module, e.g. "create" or "read".
type Action string

// Requirement gates one action. It is either rank-based (any role at or
// above MinRank satisfies it) or membership-based (only the explicitly
// allowed names satisfy it). Exactly one of the two forms is set by the
// constructors below.
type Requirement struct {
	minRank role.Rank
	allowed map[role.Name]struct{}
}

// MinRank builds a rank-based requirement: the caller's highest role
// must rank at or above name.
func MinRank(name role.Name) Requirement {
	return Requirement{minRank: role.RankOf(name)}
}

// AnyOf builds a membership-based requirement: the caller must hold at
// least one of the named roles. Hierarchy is deliberately not consulted,
// so a higher rank does not imply membership.
func AnyOf(names ...role.Name) Requirement {
	allowed := make(map[role.Name]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}
	return Requirement{allowed: allowed}
}

// Satisfied evaluates the requirement against set. A zero Requirement
// denies everything, which keeps an accidentally missing table entry
// fail-closed.
func (q Requirement) Satisfied(set role.Set) bool {
	if q.allowed != nil {
		for name := range q.allowed {
			if set.Has(name) {
				return true
			}
		}
		return false
	}
	if q.minRank == role.RankNone {
		return false
	}
	return set.MaxRank() >= q.minRank
}

// Descriptor is the fixed permission table of one dashboard module.
type Descriptor struct {
	Module  string
	Actions map[Action]Requirement
}

// Evaluate resolves every action in the descriptor against set and
// returns a flat action→allowed map.
func (d Descriptor) Evaluate(set role.Set) map[Action]bool {
	out := make(map[Action]bool, len(d.Actions))
	for action, req := range d.Actions {
		out[action] = req.Satisfied(set)
	}
	return out
}

// Allows resolves a single action. Unknown actions deny.
func (d Descriptor) Allows(set role.Set, action Action) bool {
	req, ok := d.Actions[action]
	if !ok {
		return false
	}
	return req.Satisfied(set)
}

// IsSuperAdmin reports whether set explicitly contains the top rank
// name. This is a membership check, not a rank comparison.
func IsSuperAdmin(set role.Set) bool {
	return set.Has(role.SuperAdmin)
}

// CanCreate is the shared rank-based create gate reused by multiple
// modules: creation requires at least Administrador.
func CanCreate(set role.Set) bool {
	return set.CanAccess(role.Administrador)
}
