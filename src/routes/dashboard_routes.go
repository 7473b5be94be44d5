package routes

import (
	"Backend-Recruit-Console/src/controllers"
	"Backend-Recruit-Console/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func dashboardRoutes(router fiber.Router) {
	dashboard := router.Group("/dashboard", middleware.AuthJWT, middleware.RequireAdmin)

	dashboard.Get("/summary", controllers.GetDashboardSummary)
}
