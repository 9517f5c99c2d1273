package iphauthz

import (
	"github.com/victoroteroviz/iph-authz/permission"
	"github.com/victoroteroviz/iph-authz/role"
)

// The helpers below re-export the pure role and permission operations so
// callers that already depend on the Engine need a single import. None
// of them touch the cache or the identity store.

// ValidateExternalRoles validates a role payload passed in by parameter
// (e.g. handed to a component) rather than read from the session store.
// Element semantics match the identity path, but nothing is ever purged.
func (e *Engine) ValidateExternalRoles(raw []byte) role.Set {
	e.metricInc(MetricExternalValidation)
	return role.ValidateExternal(raw)
}

// HasExternalRole reports whether the validated set contains name.
func (e *Engine) HasExternalRole(set role.Set, name role.Name) bool {
	return set.Has(name)
}

// CanExternalRoleAccess reports whether the validated set reaches at
// least the rank of minimum.
func (e *Engine) CanExternalRoleAccess(set role.Set, minimum role.Name) bool {
	return set.CanAccess(minimum)
}

// CanAccess reports whether set reaches at least the rank of minimum.
func (e *Engine) CanAccess(set role.Set, minimum role.Name) bool {
	return role.CanAccess(set, minimum)
}

// IsSuperAdmin reports explicit membership of the top rank name in set.
func (e *Engine) IsSuperAdmin(set role.Set) bool {
	return permission.IsSuperAdmin(set)
}

// CanCreate is the shared create gate: at least Administrador.
func (e *Engine) CanCreate(set role.Set) bool {
	return permission.CanCreate(set)
}

// PermissionsFor evaluates the named module's permission table against
// set. Unknown modules return an empty map, which denies everything.
func (e *Engine) PermissionsFor(module string, set role.Set) map[permission.Action]bool {
	table, ok := permission.Tables()[module]
	if !ok {
		return map[permission.Action]bool{}
	}
	return table.Evaluate(set)
}

// UsersPermissions evaluates the users module table against set.
func (e *Engine) UsersPermissions(set role.Set) permission.UsersPermissions {
	return permission.Users(set)
}

// RecordsPermissions evaluates the records module table against set.
func (e *Engine) RecordsPermissions(set role.Set) permission.RecordsPermissions {
	return permission.Records(set)
}

// StatisticsPermissions evaluates the statistics module table against set.
func (e *Engine) StatisticsPermissions(set role.Set) permission.StatisticsPermissions {
	return permission.Statistics(set)
}

// HistoryPermissions evaluates the history module table against set.
func (e *Engine) HistoryPermissions(set role.Set) permission.HistoryPermissions {
	return permission.History(set)
}
