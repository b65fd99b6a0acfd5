package controller

import (
	"log"

	"github.com/badoux/checkmail"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskhub/models"
	"taskhub/realtime"
	"taskhub/utils"
)

type UserController struct {
	db     *gorm.DB
	hub    *realtime.Hub
	logger *log.Logger
}

func NewUserController(db *gorm.DB, hub *realtime.Hub, logger *log.Logger) *UserController {
	return &UserController{db: db, hub: hub, logger: logger}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,role"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangeRoleRequest struct {
	UserID uint   `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required,role"`
}

func (uc *UserController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
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

	if err := checkmail.ValidateFormat(req.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email must be a valid email",
		})
	}

	// Check if user already exists
	var existingUser models.User
	if err := uc.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Email already registered",
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         models.Role(req.Role),
	}

	if err := uc.db.Create(&user).Error; err != nil {
		utils.LogError("user_create_failed", err, map[string]interface{}{"email": req.Email})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

func (uc *UserController) Login(c *fiber.Ctx) error {
	var req LoginRequest
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

	// Invalid email and wrong password answer identically so the endpoint
	// does not leak which accounts exist.
	var user models.User
	if err := uc.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token, err := utils.GenerateJWTToken(&user)
	if err != nil {
		utils.LogError("token_sign_failed", err, map[string]interface{}{"user_id": user.ID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// ChangeRole updates a user's role (Admin only; any user may be targeted,
// including the caller).
func (uc *UserController) ChangeRole(c *fiber.Ctx) error {
	var req ChangeRoleRequest
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

	var user models.User
	if err := uc.db.First(&user, req.UserID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	oldRole := user.Role
	user.Role = models.Role(req.Role)
	if err := uc.db.Save(&user).Error; err != nil {
		utils.LogError("role_update_failed", err, map[string]interface{}{"user_id": user.ID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server error",
		})
	}

	utils.LogAction(uc.db, models.ActionRoleChange, actorID, utils.FormatID(user.ID), map[string]interface{}{
		"oldRole": oldRole,
		"newRole": user.Role,
	})

	// Only the affected user's channel hears about the change.
	uc.hub.Publish(realtime.UserChannel(user.ID), realtime.Event{
		Name: "roleUpdated",
		Data: fiber.Map{
			"userId":  user.ID,
			"newRole": user.Role,
		},
	})

	uc.logger.Printf("role for user %d changed from %s to %s", user.ID, oldRole, user.Role)

	return c.JSON(user)
}
