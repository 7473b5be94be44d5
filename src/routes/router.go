package routes

import (
	"github.com/gofiber/fiber/v2"
)

// InitRoutes composes every module's routes under /api/v1.
func InitRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	formRoutes(api)
	submissionRoutes(api)
	projectRoutes(api)
	uploadRoutes(api)
	dashboardRoutes(api)

	// Liveness check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
