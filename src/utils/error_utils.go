package utils

import (
	"Backend-Recruit-Console/src/models"

	"github.com/gofiber/fiber/v2"
)

// HandleError writes the standard error envelope.
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
