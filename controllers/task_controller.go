package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"taskhub/models"
	"taskhub/realtime"
	"taskhub/utils"
)

type TaskController struct {
	db     *gorm.DB
	hub    *realtime.Hub
	logger *log.Logger
}

func NewTaskController(db *gorm.DB, hub *realtime.Hub, logger *log.Logger) *TaskController {
	return &TaskController{db: db, hub: hub, logger: logger}
}

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	ProjectID   uint   `json:"projectId" validate:"required"`
	AssignedTo  uint   `json:"assignedTo" validate:"required"`
	Status      string `json:"status" validate:"omitempty,task_status"`
	Priority    string `json:"priority" validate:"omitempty,task_priority"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	AssignedTo  *uint   `json:"assignedTo"`
	Status      *string `json:"status" validate:"omitempty,task_status"`
	Priority    *string `json:"priority" validate:"omitempty,task_priority"`
}

// newTask builds a Task from the request, filling in the Pending/Medium
// defaults when status or priority were not sent.
func newTask(req CreateTaskRequest) models.Task {
	task := models.Task{
		Title:        req.Title,
		Description:  req.Description,
		Status:       models.TaskStatus(req.Status),
		Priority:     models.TaskPriority(req.Priority),
		ProjectID:    req.ProjectID,
		AssignedToID: req.AssignedTo,
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	return task
}

// applyTaskUpdates copies the provided fields onto the task and returns the
// set of changed fields for the audit entry and the taskUpdated event.
// Status transitions are not ordered: any value may replace any other.
func applyTaskUpdates(task *models.Task, req UpdateTaskRequest) map[string]interface{} {
	updated := make(map[string]interface{})
	if req.Title != nil {
		task.Title = *req.Title
		updated["title"] = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
		updated["description"] = *req.Description
	}
	if req.AssignedTo != nil {
		task.AssignedToID = *req.AssignedTo
		updated["assignedTo"] = *req.AssignedTo
	}
	if req.Status != nil {
		task.Status = models.TaskStatus(*req.Status)
		updated["status"] = *req.Status
	}
	if req.Priority != nil {
		task.Priority = models.TaskPriority(*req.Priority)
		updated["priority"] = *req.Priority
	}
	return updated
}

// CreateTask creates a task inside a project and notifies the assignee.
// Project and assignee references are validated here, at creation time only.
func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	var req CreateTaskRequest
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
	if err := tc.db.First(&project, req.ProjectID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Project not found",
		})
	}

	var assignee models.User
	if err := tc.db.First(&assignee, req.AssignedTo).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assigned user not found",
		})
	}

	task := newTask(req)
	if err := tc.db.Create(&task).Error; err != nil {
		utils.LogError("task_create_failed", err, map[string]interface{}{"actor_id": actorID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	utils.LogAction(tc.db, models.ActionTaskCreated, actorID, utils.FormatID(task.ID), map[string]interface{}{
		"taskId":     task.ID,
		"assignedTo": task.AssignedToID,
	})

	tc.hub.Publish(realtime.UserChannel(task.AssignedToID), realtime.Event{
		Name: "newTaskAssigned",
		Data: fiber.Map{
			"message": fmt.Sprintf("You have been assigned a new task: %s", task.Title),
			"task":    task,
		},
	})

	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask applies a partial update. Allowed for Managers and for the
// Member the task is currently assigned to; nobody else, Admin included.
func (tc *TaskController) UpdateTask(c *fiber.Ctx) error {
	taskID := utils.ParseUint(c.Params("id"))
	userID := c.Locals("userID").(uint)
	role := c.Locals("role").(models.Role)

	var task models.Task
	if err := tc.db.First(&task, taskID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Task not found",
		})
	}

	isManager := role == models.RoleManager
	isAssignee := task.AssignedToID == userID
	if !isManager && !isAssignee {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden: you do not have permission to update this task",
		})
	}

	var req UpdateTaskRequest
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

	updatedFields := applyTaskUpdates(&task, req)
	if err := tc.db.Save(&task).Error; err != nil {
		utils.LogError("task_update_failed", err, map[string]interface{}{"task_id": task.ID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	utils.LogAction(tc.db, models.ActionTaskUpdated, userID, utils.FormatID(task.ID), map[string]interface{}{
		"updates": updatedFields,
	})

	tc.hub.Publish(realtime.ProjectChannel(task.ProjectID), realtime.Event{
		Name: "taskUpdated",
		Data: fiber.Map{
			"taskId":        task.ID,
			"updatedFields": updatedFields,
		},
	})

	return c.JSON(task)
}

// ListTasks scopes the result by role: Admin sees all tasks, a Manager sees
// tasks across the projects they manage, a Member sees only their own.
func (tc *TaskController) ListTasks(c *fiber.Ctx) error {
	role := c.Locals("role").(models.Role)
	userID := c.Locals("userID").(uint)

	var tasks []models.Task
	var err error

	switch role {
	case models.RoleAdmin:
		err = tc.db.Find(&tasks).Error
	case models.RoleManager:
		managedProjects := tc.db.
			Table("project_managers").
			Select("project_id").
			Where("user_id = ?", userID)
		err = tc.db.Where("project_id IN (?)", managedProjects).Find(&tasks).Error
	default:
		err = tc.db.Where("assigned_to_id = ?", userID).Find(&tasks).Error
	}

	if err != nil {
		utils.LogError("task_list_failed", err, map[string]interface{}{"user_id": userID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(tasks)
}
