package permission

import "github.com/victoroteroviz/iph-authz/role"

// Canonical action names shared across module tables.
const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionExport Action = "export"
	ActionAssign Action = "assign"
	ActionPurge  Action = "purge"
)

// UsersTable gates the user-administration module. Reads are open to the
// whole hierarchy; mutations require Administrador, deletion and role
// assignment are held higher.
var UsersTable = Descriptor{
	Module: "users",
	Actions: map[Action]Requirement{
		ActionRead:   MinRank(role.Elemento),
		ActionCreate: MinRank(role.Administrador),
		ActionUpdate: MinRank(role.Administrador),
		ActionDelete: MinRank(role.Administrador),
		ActionAssign: AnyOf(role.SuperAdmin),
	},
}

// RecordsTable gates the IPH record module. Elemento users author their
// own records; correcting or removing one is a supervisory action.
var RecordsTable = Descriptor{
	Module: "records",
	Actions: map[Action]Requirement{
		ActionRead:   MinRank(role.Elemento),
		ActionCreate: MinRank(role.Elemento),
		ActionUpdate: MinRank(role.Superior),
		ActionDelete: MinRank(role.Administrador),
		ActionExport: MinRank(role.Superior),
	},
}

// StatisticsTable gates the chart and aggregate views.
var StatisticsTable = Descriptor{
	Module: "statistics",
	Actions: map[Action]Requirement{
		ActionRead:   MinRank(role.Superior),
		ActionExport: MinRank(role.Administrador),
	},
}

// HistoryTable gates the activity-history module. Purging history is
// reserved for SuperAdmin by explicit membership.
var HistoryTable = Descriptor{
	Module: "history",
	Actions: map[Action]Requirement{
		ActionRead:  MinRank(role.Superior),
		ActionPurge: AnyOf(role.SuperAdmin),
	},
}

// UsersPermissions is the evaluated users table for one role set.
type UsersPermissions struct {
	CanRead    bool
	CanCreate  bool
	CanUpdate  bool
	CanDelete  bool
	CanAssign  bool
	SuperAdmin bool
}

// Users evaluates the users table against set.
func Users(set role.Set) UsersPermissions {
	return UsersPermissions{
		CanRead:    UsersTable.Allows(set, ActionRead),
		CanCreate:  UsersTable.Allows(set, ActionCreate),
		CanUpdate:  UsersTable.Allows(set, ActionUpdate),
		CanDelete:  UsersTable.Allows(set, ActionDelete),
		CanAssign:  UsersTable.Allows(set, ActionAssign),
		SuperAdmin: IsSuperAdmin(set),
	}
}

// RecordsPermissions is the evaluated records table for one role set.
type RecordsPermissions struct {
	CanRead   bool
	CanCreate bool
	CanUpdate bool
	CanDelete bool
	CanExport bool
}

// Records evaluates the records table against set.
func Records(set role.Set) RecordsPermissions {
	return RecordsPermissions{
		CanRead:   RecordsTable.Allows(set, ActionRead),
		CanCreate: RecordsTable.Allows(set, ActionCreate),
		CanUpdate: RecordsTable.Allows(set, ActionUpdate),
		CanDelete: RecordsTable.Allows(set, ActionDelete),
		CanExport: RecordsTable.Allows(set, ActionExport),
	}
}

// StatisticsPermissions is the evaluated statistics table for one role set.
type StatisticsPermissions struct {
	CanRead   bool
	CanExport bool
}

// Statistics evaluates the statistics table against set.
func Statistics(set role.Set) StatisticsPermissions {
	return StatisticsPermissions{
		CanRead:   StatisticsTable.Allows(set, ActionRead),
		CanExport: StatisticsTable.Allows(set, ActionExport),
	}
}

// HistoryPermissions is the evaluated history table for one role set.
type HistoryPermissions struct {
	CanRead  bool
	CanPurge bool
}

// History evaluates the history table against set.
func History(set role.Set) HistoryPermissions {
	return HistoryPermissions{
		CanRead:  HistoryTable.Allows(set, ActionRead),
		CanPurge: HistoryTable.Allows(set, ActionPurge),
	}
}

// Tables lists every module descriptor, keyed by module name.
func Tables() map[string]Descriptor {
	return map[string]Descriptor{
		UsersTable.Module:      UsersTable,
		RecordsTable.Module:    RecordsTable,
		StatisticsTable.Module: StatisticsTable,
		HistoryTable.Module:    HistoryTable,
	}
}
