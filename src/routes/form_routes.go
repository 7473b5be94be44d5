package routes

import (
	"Backend-Recruit-Console/src/controllers"
	"Backend-Recruit-Console/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// formRoutes wires form schema management, submission intake and analytics.
// Applicant-facing reads and the submit endpoint stay public; everything
// that edits schemas or reads responses is admin-only.
func formRoutes(router fiber.Router) {
	forms := router.Group("/forms")

	forms.Get("/:id", controllers.GetFormByID)
	forms.Get("/:id/render", controllers.RenderForm)
	forms.Post("/:id/submissions", controllers.CreateSubmission)

	admin := forms.Group("", middleware.AuthJWT, middleware.RequireAdmin)
	admin.Get("/", controllers.GetForms)
	admin.Post("/", controllers.CreateForm)
	admin.Put("/:id", controllers.UpdateForm)
	admin.Delete("/:id", controllers.DeleteForm)
	admin.Get("/:id/qrcode", controllers.GetFormQRCode)
	admin.Get("/:id/submissions", controllers.GetSubmissionsByForm)
	admin.Get("/:id/submissions/export", controllers.ExportFormSubmissions)
	admin.Get("/:id/analytics", controllers.GetFormAnalytics)
}
