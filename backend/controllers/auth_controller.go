package controllers

import (
	"errors"
	"strings"

	"genequest/backend/config"
	"genequest/backend/engine"
	"genequest/backend/models"
	"genequest/backend/store"
	"genequest/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB     *gorm.DB
	Config *config.Config
	Sync   *store.SyncController
}

func NewAuthController(db *gorm.DB, cfg *config.Config, sync *store.SyncController) *AuthController {
	return &AuthController{DB: db, Config: cfg, Sync: sync}
}

type registerInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a user, hashes the password and bootstraps an empty
// progress record so the game surface never sees a missing row.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" || input.Password == "" {
		return utils.BadRequest(c, "Username and password are required")
	}
	if len(input.Password) < 6 {
		return utils.BadRequest(c, "Password must be at least 6 characters")
	}

	role := input.Role
	if role != "teacher" {
		role = "student"
	}

	var existing models.User
	err := ac.DB.Where("username = ?", input.Username).First(&existing).Error
	if err == nil {
		return utils.Conflict(c, "Username already taken")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Failed to check username")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Failed to hash password")
	}

	user := models.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		return utils.InternalServerError(c, "Failed to create user")
	}

	// Progress bootstrap is best-effort: the sync layer synthesizes a default
	// record on read if this write is lost.
	ac.Sync.Save(engine.NewProgress(user.ID))

	token, err := utils.GenerateJWTToken(user.ID, ac.Config)
	if err != nil {
		return utils.InternalServerError(c, "Failed to generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	var user models.User
	if err := ac.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		return utils.Unauthorized(c, "Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid username or password")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Config)
	if err != nil {
		return utils.InternalServerError(c, "Failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}

// GetUser returns the authenticated user's account.
func (ac *AuthController) GetUser(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var user models.User
	if err := ac.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}
