package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"

	controller "taskhub/controllers"
	"taskhub/middleware"
	"taskhub/realtime"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub, presence realtime.Registry) {
	// Initialize controllers with their respective loggers
	userController := controller.NewUserController(db, hub, log.New(os.Stdout, "USER: ", log.LstdFlags))
	projectController := controller.NewProjectController(db, hub, log.New(os.Stdout, "PROJECT: ", log.LstdFlags))
	taskController := controller.NewTaskController(db, hub, log.New(os.Stdout, "TASK: ", log.LstdFlags))
	auditLogController := controller.NewAuditLogController(db, log.New(os.Stdout, "AUDIT: ", log.LstdFlags))
	wsController := controller.NewWSController(hub, presence, log.New(os.Stdout, "WS: ", log.LstdFlags))

	// Setup health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// User routes: register and login are public, role change is Admin only
	users := api.Group("/users")
	users.Post("/register", userController.Register)
	users.Post("/login", middleware.LoginRateLimiter(), userController.Login)
	users.Put("/role",
		middleware.Protected(),
		middleware.RequirePermission(middleware.PermUserChangeRole),
		userController.ChangeRole)

	// Project routes
	projects := api.Group("/projects", middleware.Protected())
	projects.Post("/",
		middleware.RequirePermission(middleware.PermProjectCreate),
		projectController.CreateProject)
	projects.Get("/",
		middleware.RequirePermission(middleware.PermProjectList),
		projectController.ListProjects)
	projects.Put("/assign-manager",
		middleware.RequirePermission(middleware.PermProjectAssignManager),
		projectController.AssignManager)
	projects.Delete("/:id",
		middleware.RequirePermission(middleware.PermProjectDelete),
		projectController.DeleteProject)

	// Task routes. Task update is gated in the handler: Managers always,
	// Members only on tasks assigned to them.
	tasks := api.Group("/tasks", middleware.Protected())
	tasks.Post("/",
		middleware.RequirePermission(middleware.PermTaskCreate),
		taskController.CreateTask)
	tasks.Put("/:id", taskController.UpdateTask)
	tasks.Get("/",
		middleware.RequirePermission(middleware.PermTaskList),
		taskController.ListTasks)

	// Audit log routes
	auditlogs := api.Group("/auditlogs",
		middleware.Protected(),
		middleware.RequirePermission(middleware.PermAuditLogList))
	auditlogs.Get("/", auditLogController.ListLogs)

	// WebSocket endpoint for real-time events and presence
	app.Get("/ws", middleware.Protected(), websocket.New(wsController.HandleConnection))

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})

	log.Println("Routes initialized successfully")
}
