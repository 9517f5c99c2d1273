package permission

import (
	"testing"

	"github.com/victoroteroviz/iph-authz/role"
)

func setOf(names ...role.Name) role.Set {
	roles := make([]role.Role, 0, len(names))
	for i, name := range names {
		roles = append(roles, role.Role{ID: int64(i + 1), Name: name})
	}
	return role.ValidateExternalRoles(roles)
}

func TestMinRankRequirement(t *testing.T) {
	req := MinRank(role.Administrador)

	if req.Satisfied(setOf(role.Superior)) {
		t.Fatalf("Superior must not satisfy a minimum of Administrador")
	}
	if !req.Satisfied(setOf(role.Administrador)) {
		t.Fatalf("exact rank must satisfy")
	}
	if !req.Satisfied(setOf(role.SuperAdmin)) {
		t.Fatalf("higher rank must satisfy")
	}
	if req.Satisfied(role.EmptySet()) {
		t.Fatalf("empty set must never satisfy a rank requirement")
	}
}

func TestAnyOfIgnoresHierarchy(t *testing.T) {
	req := AnyOf(role.SuperAdmin)

	// Administrador outranks nothing here: membership is explicit.
	if req.Satisfied(setOf(role.Administrador)) {
		t.Fatalf("membership requirement must not be satisfied by rank")
	}
	if !req.Satisfied(setOf(role.SuperAdmin)) {
		t.Fatalf("explicit member must satisfy")
	}
}

func TestZeroRequirementDenies(t *testing.T) {
	var req Requirement
	if req.Satisfied(setOf(role.SuperAdmin)) {
		t.Fatalf("zero requirement must deny even SuperAdmin")
	}
}

func TestDescriptorUnknownActionDenies(t *testing.T) {
	if UsersTable.Allows(setOf(role.SuperAdmin), Action("frobnicate")) {
		t.Fatalf("unknown action must deny")
	}
}

func TestDescriptorEvaluateCoversAllActions(t *testing.T) {
	decisions := UsersTable.Evaluate(setOf(role.Elemento))
	if len(decisions) != len(UsersTable.Actions) {
		t.Fatalf("expected %d decisions, got %d", len(UsersTable.Actions), len(decisions))
	}
}

func TestIsSuperAdminIsMembershipNotRank(t *testing.T) {
	if IsSuperAdmin(setOf(role.Administrador)) {
		t.Fatalf("Administrador is not SuperAdmin")
	}
	if !IsSuperAdmin(setOf(role.Superior, role.SuperAdmin)) {
		t.Fatalf("a set containing SuperAdmin is SuperAdmin")
	}
	if IsSuperAdmin(role.EmptySet()) {
		t.Fatalf("empty set is not SuperAdmin")
	}
}

func TestCanCreateSharedGate(t *testing.T) {
	if CanCreate(setOf(role.Superior)) {
		t.Fatalf("create requires at least Administrador")
	}
	if !CanCreate(setOf(role.Administrador)) {
		t.Fatalf("Administrador can create")
	}
	if !CanCreate(setOf(role.SuperAdmin)) {
		t.Fatalf("SuperAdmin can create")
	}
}
