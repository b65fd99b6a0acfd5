package utils

import (
	"strings"
	"testing"
)

type roleDTO struct {
	Role string `json:"role" validate:"required,role"`
}

type taskDTO struct {
	Status   string `json:"status" validate:"omitempty,task_status"`
	Priority string `json:"priority" validate:"omitempty,task_priority"`
}

func TestValidateRoleTag(t *testing.T) {
	for _, role := range []string{"Admin", "Manager", "Member"} {
		if err := ValidateStruct(roleDTO{Role: role}); err != nil {
			t.Errorf("role %q should validate, got %v", role, err)
		}
	}

	for _, role := range []string{"admin", "Owner", ""} {
		if err := ValidateStruct(roleDTO{Role: role}); err == nil {
			t.Errorf("role %q should not validate", role)
		}
	}
}

func TestValidateTaskEnums(t *testing.T) {
	valid := []taskDTO{
		{},
		{Status: "Pending"},
		{Status: "In Progress", Priority: "High"},
		{Status: "Completed", Priority: "Low"},
		{Priority: "Medium"},
	}
	for _, dto := range valid {
		if err := ValidateStruct(dto); err != nil {
			t.Errorf("%+v should validate, got %v", dto, err)
		}
	}

	invalid := []taskDTO{
		{Status: "Done"},
		{Status: "pending"},
		{Priority: "Urgent"},
	}
	for _, dto := range invalid {
		if err := ValidateStruct(dto); err == nil {
			t.Errorf("%+v should not validate", dto)
		}
	}
}

func TestValidateErrorMessages(t *testing.T) {
	err := ValidateStruct(roleDTO{Role: "Owner"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "role must be one of Admin, Manager, Member") {
		t.Errorf("unexpected message: %v", err)
	}
}
