package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"taskhub/models"
	"taskhub/utils"
)

type AuditLogController struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewAuditLogController(db *gorm.DB, logger *log.Logger) *AuditLogController {
	return &AuditLogController{db: db, logger: logger}
}

// ListLogs returns the full audit trail, newest entries first.
func (ac *AuditLogController) ListLogs(c *fiber.Ctx) error {
	var logs []models.AuditLog
	if err := ac.db.Order("created_at desc").Find(&logs).Error; err != nil {
		utils.LogError("audit_log_list_failed", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(logs)
}
