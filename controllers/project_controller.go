package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"taskhub/models"
	"taskhub/realtime"
	"taskhub/utils"
)

type ProjectController struct {
	db     *gorm.DB
	hub    *realtime.Hub
	logger *log.Logger
}

func NewProjectController(db *gorm.DB, hub *realtime.Hub, logger *log.Logger) *ProjectController {
	return &ProjectController{db: db, hub: hub, logger: logger}
}

type CreateProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type AssignManagerRequest struct {
	ProjectID uint `json:"projectId" validate:"required"`
	ManagerID uint `json:"managerId" validate:"required"`
}

func (pc *ProjectController) CreateProject(c *fiber.Ctx) error {
	var req CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ownerID := c.Locals("userID").(uint)

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	}

	if err := pc.db.Create(&project).Error; err != nil {
		utils.LogError("project_create_failed", err, map[string]interface{}{"owner_id": ownerID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	utils.LogAction(pc.db, models.ActionProjectCreated, ownerID, utils.FormatID(project.ID), map[string]interface{}{
		"projectId":   project.ID,
		"projectName": project.Name,
	})

	return c.Status(fiber.StatusCreated).JSON(project)
}

// DeleteProject removes the project record. Tasks that referenced it are
// deliberately left in place; clients learn about the deletion through the
// global projectDeleted event.
func (pc *ProjectController) DeleteProject(c *fiber.Ctx) error {
	projectID := utils.ParseUint(c.Params("id"))
	actorID := c.Locals("userID").(uint)

	var project models.Project
	if err := pc.db.First(&project, projectID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}

	if err := pc.db.Delete(&project).Error; err != nil {
		utils.LogError("project_delete_failed", err, map[string]interface{}{"project_id": projectID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	utils.LogAction(pc.db, models.ActionProjectDeleted, actorID, utils.FormatID(project.ID), map[string]interface{}{
		"projectId": project.ID,
	})

	pc.hub.Broadcast(realtime.Event{
		Name: "projectDeleted",
		Data: fiber.Map{"projectId": project.ID},
	})

	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}

// ListProjects scopes the result by role: Admin sees every project, a
// Manager sees only projects they appear in as manager. Members never reach
// this handler.
func (pc *ProjectController) ListProjects(c *fiber.Ctx) error {
	role := c.Locals("role").(models.Role)
	userID := c.Locals("userID").(uint)

	var projects []models.Project
	var err error

	switch role {
	case models.RoleAdmin:
		err = pc.db.Preload("Managers").Find(&projects).Error
	case models.RoleManager:
		err = pc.db.
			Joins("JOIN project_managers pm ON pm.project_id = projects.id").
			Where("pm.user_id = ?", userID).
			Preload("Managers").
			Find(&projects).Error
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden: insufficient role",
		})
	}

	if err != nil {
		utils.LogError("project_list_failed", err, map[string]interface{}{"user_id": userID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(projects)
}

// AssignManager adds a manager to a project's managers set. Assigning the
// same manager twice leaves the set unchanged.
func (pc *ProjectController) AssignManager(c *fiber.Ctx) error {
	var req AssignManagerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	actorID := c.Locals("userID").(uint)

	var project models.Project
	if err := pc.db.Preload("Managers").First(&project, req.ProjectID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}

	var manager models.User
	if err := pc.db.First(&manager, req.ManagerID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Manager not found",
		})
	}

	if !project.HasManager(manager.ID) {
		if err := pc.db.Model(&project).Association("Managers").Append(&manager); err != nil {
			utils.LogError("manager_assign_failed", err, map[string]interface{}{
				"project_id": project.ID,
				"manager_id": manager.ID,
			})
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Server error",
			})
		}

		utils.LogAction(pc.db, models.ActionManagerAssigned, actorID, utils.FormatID(project.ID), map[string]interface{}{
			"projectId": project.ID,
			"managerId": manager.ID,
		})
	}

	if err := pc.db.Preload("Managers").First(&project, project.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(project)
}
