package middleware

import (
	"testing"

	"taskhub/models"
)

func TestAllowedMatrix(t *testing.T) {
	tests := []struct {
		perm   Permission
		admin  bool
		manage bool
		member bool
	}{
		{PermAuditLogList, true, false, false},
		{PermUserChangeRole, true, false, false},
		{PermProjectCreate, true, false, false},
		{PermProjectDelete, true, false, false},
		{PermProjectList, true, true, false},
		{PermProjectAssignManager, true, false, false},
		{PermTaskCreate, false, true, false},
		{PermTaskList, true, true, true},
	}

	for _, tt := range tests {
		if got := Allowed(tt.perm, models.RoleAdmin); got != tt.admin {
			t.Errorf("Allowed(%s, Admin) = %v, want %v", tt.perm, got, tt.admin)
		}
		if got := Allowed(tt.perm, models.RoleManager); got != tt.manage {
			t.Errorf("Allowed(%s, Manager) = %v, want %v", tt.perm, got, tt.manage)
		}
		if got := Allowed(tt.perm, models.RoleMember); got != tt.member {
			t.Errorf("Allowed(%s, Member) = %v, want %v", tt.perm, got, tt.member)
		}
	}
}

func TestAllowedUnknownPermission(t *testing.T) {
	if Allowed(Permission("nope"), models.RoleAdmin) {
		t.Error("unknown permission should never be allowed")
	}
}

func TestAllowedUnknownRole(t *testing.T) {
	if Allowed(PermTaskList, models.Role("Superuser")) {
		t.Error("unknown role should never be allowed")
	}
}
