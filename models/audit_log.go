package models

import "time"

// Audit action tags.
const (
	ActionRoleChange      = "ROLE_CHANGE"
	ActionProjectCreated  = "PROJECT_CREATED"
	ActionProjectDeleted  = "PROJECT_DELETED"
	ActionManagerAssigned = "MANAGER_ASSIGNED_TO_PROJECT"
	ActionTaskCreated     = "TASK_CREATED"
	ActionTaskUpdated     = "TASK_UPDATED"
)

// AuditLog is an immutable record of a significant action. Entries are only
// ever created, never updated or deleted.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"timestamp"`

	Action   string `gorm:"size:64;not null;index" json:"action"`
	ActorID  uint   `gorm:"not null;index" json:"actor_id"`
	TargetID string `gorm:"size:64" json:"target_id,omitempty"`

	// Details holds the free-form event payload, JSON-encoded.
	Details string `gorm:"type:text" json:"details"`
}
