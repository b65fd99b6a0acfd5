package middleware

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/models"
)

// Permission names a guarded operation. Authorization is a flat lookup in
// the table below; there is no role hierarchy, so Admin appears explicitly
// wherever it is allowed.
type Permission string

const (
	PermAuditLogList         Permission = "auditlog:list"
	PermUserChangeRole       Permission = "user:change-role"
	PermProjectCreate        Permission = "project:create"
	PermProjectDelete        Permission = "project:delete"
	PermProjectList          Permission = "project:list"
	PermProjectAssignManager Permission = "project:assign-manager"
	PermTaskCreate           Permission = "task:create"
	PermTaskList             Permission = "task:list"
)

// allowedRoles is the single source of truth for route-level authorization.
// Task update is the one rule not expressible here: a Member may update a
// task only when it is assigned to them, which the task handler checks
// against the stored row.
var allowedRoles = map[Permission][]models.Role{
	PermAuditLogList:         {models.RoleAdmin},
	PermUserChangeRole:       {models.RoleAdmin},
	PermProjectCreate:        {models.RoleAdmin},
	PermProjectDelete:        {models.RoleAdmin},
	PermProjectList:          {models.RoleAdmin, models.RoleManager},
	PermProjectAssignManager: {models.RoleAdmin},
	PermTaskCreate:           {models.RoleManager},
	PermTaskList:             {models.RoleAdmin, models.RoleManager, models.RoleMember},
}

// Allowed reports whether the role may perform the operation.
func Allowed(p Permission, role models.Role) bool {
	for _, r := range allowedRoles[p] {
		if r == role {
			return true
		}
	}
	return false
}

// RequirePermission gates a route on the permission table. It must run
// after Protected.
func RequirePermission(p Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(models.Role)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization required",
			})
		}

		if !Allowed(p, role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: insufficient role",
			})
		}

		return c.Next()
	}
}
