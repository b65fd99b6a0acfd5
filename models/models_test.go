package models

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleManager, RoleMember} {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	for _, r := range []Role{"", "admin", "Owner"} {
		if r.Valid() {
			t.Errorf("%q should not be valid", r)
		}
	}
}

func TestTaskEnumsValid(t *testing.T) {
	for _, s := range []TaskStatus{StatusPending, StatusInProgress, StatusCompleted} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if TaskStatus("Done").Valid() {
		t.Error("Done should not be a valid status")
	}

	for _, p := range []TaskPriority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if TaskPriority("Urgent").Valid() {
		t.Error("Urgent should not be a valid priority")
	}
}

func TestProjectHasManager(t *testing.T) {
	m1 := User{Role: RoleManager}
	m1.ID = 10
	m2 := User{Role: RoleManager}
	m2.ID = 20

	p := Project{Managers: []User{m1, m2}}

	if !p.HasManager(10) || !p.HasManager(20) {
		t.Error("expected both managers to be found")
	}
	if p.HasManager(30) {
		t.Error("unexpected manager 30")
	}
}
