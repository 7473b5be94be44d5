package routes

import (
	"Backend-Recruit-Console/src/controllers"
	"Backend-Recruit-Console/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// projectRoutes: reads are public (the site lists projects), writes are admin.
func projectRoutes(router fiber.Router) {
	projects := router.Group("/projects")

	projects.Get("/", controllers.GetProjects)
	projects.Get("/:id", controllers.GetProjectByID)

	admin := projects.Group("", middleware.AuthJWT, middleware.RequireAdmin)
	admin.Post("/", controllers.CreateProject)
	admin.Put("/:id", controllers.UpdateProject)
	admin.Delete("/:id", controllers.DeleteProject)
}
