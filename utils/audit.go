package utils

import (
	"encoding/json"

	"gorm.io/gorm"

	"taskhub/models"
)

// LogAction appends an entry to the audit trail. Audit logging is
// best-effort: a failed write is logged and captured but never fails the
// operation that triggered it.
func LogAction(db *gorm.DB, action string, actorID uint, targetID string, details map[string]interface{}) {
	entry := models.AuditLog{
		Action:   action,
		ActorID:  actorID,
		TargetID: targetID,
		Details:  EncodeDetails(details),
	}

	if err := db.Create(&entry).Error; err != nil {
		LogError("audit_log_write_failed", err, map[string]interface{}{
			"action":   action,
			"actor_id": actorID,
		})
		return
	}

	LogEvent("audit_log_created", map[string]interface{}{
		"action":   action,
		"actor_id": actorID,
	})
}

// EncodeDetails renders the free-form detail payload as JSON text for the
// audit log's details column.
func EncodeDetails(details map[string]interface{}) string {
	if details == nil {
		return "{}"
	}
	data, err := json.Marshal(details)
	if err != nil {
		return "{}"
	}
	return string(data)
}
