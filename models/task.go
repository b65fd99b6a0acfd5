package models

import (
	"gorm.io/gorm"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task belongs to exactly one project and is assigned to exactly one user.
// References are validated at creation time only; deleting a project leaves
// its tasks in place.
type Task struct {
	gorm.Model

	Title       string       `gorm:"not null" json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `gorm:"type:varchar(16);not null;default:'Pending'" json:"status"`
	Priority    TaskPriority `gorm:"type:varchar(16);not null;default:'Medium'" json:"priority"`

	ProjectID    uint `gorm:"not null;index" json:"project_id"`
	AssignedToID uint `gorm:"not null;index" json:"assigned_to"`
}
