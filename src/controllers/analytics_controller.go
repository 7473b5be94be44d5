package controllers

import (
	analyticsSvc "Backend-Recruit-Console/src/services/analytics"
	formSvc "Backend-Recruit-Console/src/services/forms"
	"Backend-Recruit-Console/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetFormAnalytics godoc
// @Summary      Per-field aggregates for a form
// @Description  Frequency tables, grid pivots, numeric means and text samples for charting
// @Tags         analytics
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {array}  analytics.FieldAggregate
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/analytics [get]
func GetFormAnalytics(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	aggregates, err := analyticsSvc.GetFormAnalytics(c.Context(), formID)
	if err != nil {
		if err == formSvc.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(aggregates)
}

// ExportFormSubmissions godoc
// @Summary      Download a form's responses as CSV
// @Tags         analytics
// @Produce      text/csv
// @Param        id path string true "Form ID"
// @Success      200  {string}  string
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/submissions/export [get]
func ExportFormSubmissions(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	body, filename, err := analyticsSvc.GetFormExport(c.Context(), formID)
	if err != nil {
		if err == formSvc.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(body)
}

// GetDashboardSummary godoc
// @Summary      Console landing-page counters
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  analytics.DashboardSummary
// @Failure      500  {object}  models.ErrorResponse
// @Router       /dashboard/summary [get]
func GetDashboardSummary(c *fiber.Ctx) error {
	summary, err := analyticsSvc.GetDashboardSummary(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(summary)
}
