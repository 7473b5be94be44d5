package routes

import (
	"Backend-Recruit-Console/src/controllers"
	"Backend-Recruit-Console/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// submissionRoutes covers direct submission access and moderation.
func submissionRoutes(router fiber.Router) {
	submissions := router.Group("/submissions", middleware.AuthJWT, middleware.RequireAdmin)

	submissions.Get("/:id", controllers.GetSubmission)
	submissions.Patch("/:id/status", controllers.UpdateSubmissionStatus)
	submissions.Delete("/:id", controllers.DeleteSubmission)
}
