package middleware

import (
	"genequest/backend/config"
	"genequest/backend/models"
	"genequest/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthMiddleware validates the JWT and stores the user id in locals.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, err.Error())
		}
		c.Locals("user_id", userID)
		return c.Next()
	}
}

// TeacherMiddleware requires the authenticated user to hold the teacher role.
// It runs after AuthMiddleware.
func TeacherMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if userID == "" {
			return utils.Unauthorized(c, "Missing authenticated user")
		}

		var user models.User
		if err := db.Where("id = ?", userID).First(&user).Error; err != nil {
			return utils.Unauthorized(c, "Unknown user")
		}
		if user.Role != "teacher" {
			return utils.Forbidden(c, "Teacher role required")
		}
		return c.Next()
	}
}
