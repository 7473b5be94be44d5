package routes

import (
	"Backend-Recruit-Console/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// uploadRoutes: applicants upload file answers before submitting, so this
// endpoint is public. The stored path flows back in as an opaque answer.
func uploadRoutes(router fiber.Router) {
	router.Post("/uploads", controllers.UploadAnswerFile)
}
