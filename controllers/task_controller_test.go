package controller

import (
	"reflect"
	"testing"

	"taskhub/models"
)

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func TestNewTaskDefaults(t *testing.T) {
	task := newTask(CreateTaskRequest{
		Title:      "Write report",
		ProjectID:  1,
		AssignedTo: 2,
	})

	if task.Status != models.StatusPending {
		t.Errorf("status = %s, want Pending", task.Status)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("priority = %s, want Medium", task.Priority)
	}
}

func TestNewTaskExplicitValuesKept(t *testing.T) {
	task := newTask(CreateTaskRequest{
		Title:      "Write report",
		ProjectID:  1,
		AssignedTo: 2,
		Status:     "Completed",
		Priority:   "High",
	})

	if task.Status != models.StatusCompleted {
		t.Errorf("status = %s, want Completed", task.Status)
	}
	if task.Priority != models.PriorityHigh {
		t.Errorf("priority = %s, want High", task.Priority)
	}
}

func TestApplyTaskUpdatesStatusOnly(t *testing.T) {
	task := models.Task{
		Title:        "Write report",
		Description:  "quarterly numbers",
		Status:       models.StatusPending,
		Priority:     models.PriorityHigh,
		ProjectID:    1,
		AssignedToID: 2,
	}

	updated := applyTaskUpdates(&task, UpdateTaskRequest{Status: strPtr("In Progress")})

	if task.Status != models.StatusInProgress {
		t.Errorf("status = %s, want In Progress", task.Status)
	}
	// Untouched fields stay as they were.
	if task.Title != "Write report" || task.Description != "quarterly numbers" ||
		task.Priority != models.PriorityHigh || task.AssignedToID != 2 {
		t.Errorf("unrelated fields changed: %+v", task)
	}

	want := map[string]interface{}{"status": "In Progress"}
	if !reflect.DeepEqual(updated, want) {
		t.Errorf("updated fields = %v, want %v", updated, want)
	}
}

func TestApplyTaskUpdatesAllFields(t *testing.T) {
	task := models.Task{Status: models.StatusPending, Priority: models.PriorityMedium}

	updated := applyTaskUpdates(&task, UpdateTaskRequest{
		Title:       strPtr("New title"),
		Description: strPtr("New description"),
		AssignedTo:  uintPtr(9),
		Status:      strPtr("Completed"),
		Priority:    strPtr("Low"),
	})

	if len(updated) != 5 {
		t.Errorf("len(updated) = %d, want 5", len(updated))
	}
	if task.Title != "New title" || task.AssignedToID != 9 ||
		task.Status != models.StatusCompleted || task.Priority != models.PriorityLow {
		t.Errorf("task not fully updated: %+v", task)
	}
}

func TestApplyTaskUpdatesEmptyRequest(t *testing.T) {
	task := models.Task{Title: "keep me", Status: models.StatusCompleted}

	updated := applyTaskUpdates(&task, UpdateTaskRequest{})

	if len(updated) != 0 {
		t.Errorf("updated fields = %v, want none", updated)
	}
	if task.Title != "keep me" || task.Status != models.StatusCompleted {
		t.Errorf("task changed by empty update: %+v", task)
	}
}

// Status transitions are unordered: moving backwards is accepted.
func TestApplyTaskUpdatesBackwardsTransition(t *testing.T) {
	task := models.Task{Status: models.StatusCompleted}

	applyTaskUpdates(&task, UpdateTaskRequest{Status: strPtr("Pending")})

	if task.Status != models.StatusPending {
		t.Errorf("status = %s, want Pending", task.Status)
	}
}
