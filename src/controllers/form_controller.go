package controllers

import (
	"Backend-Recruit-Console/src/models"
	"Backend-Recruit-Console/src/qrcode"
	formSvc "Backend-Recruit-Console/src/services/forms"
	"Backend-Recruit-Console/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateForm godoc
// @Summary      Create a recruitment form
// @Description  Validates the schema (field ids, options, bounds) and stores it
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.FormSchema true "Form schema"
// @Success      201  {object}  models.FormSchema
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [post]
func CreateForm(c *fiber.Ctx) error {
	var schema models.FormSchema
	if err := c.BodyParser(&schema); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	schemaErrs, err := formSvc.CreateForm(c.Context(), &schema)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to create form: "+err.Error())
	}
	if len(schemaErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "schema validation failed",
			"errors": schemaErrs,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(schema)
}

// GetForms godoc
// @Summary      List recruitment forms with pagination and search
// @Tags         forms
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Items per page"
// @Param        search query string false "Title search (en/ta)"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /forms [get]
func GetForms(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	result, err := formSvc.GetForms(c.Context(), params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch forms: "+err.Error())
	}
	return c.JSON(result)
}

// GetFormByID godoc
// @Summary      Get one form schema
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.FormSchema
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [get]
func GetFormByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	schema, err := formSvc.GetFormByID(c.Context(), id)
	if err != nil {
		if err == formSvc.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(schema)
}

// RenderForm godoc
// @Summary      Get the renderer payload for a form
// @Description  Schema plus per-field affordances and resolved scale bounds
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  forms.RenderPayload
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/render [get]
func RenderForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	schema, err := formSvc.GetFormByID(c.Context(), id)
	if err != nil {
		if err == formSvc.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Defensive re-check before rendering; an admin may have saved the
	// schema through an older console build.
	if schemaErrs := formSvc.ValidateSchema(schema); len(schemaErrs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "stored schema is invalid",
			"errors": schemaErrs,
		})
	}

	return c.JSON(formSvc.BuildRenderPayload(schema))
}

// UpdateForm godoc
// @Summary      Update a form schema
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.FormSchema true "Form schema"
// @Success      200  {object}  models.FormSchema
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [put]
func UpdateForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	var schema models.FormSchema
	if err := c.BodyParser(&schema); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	schemaErrs, err := formSvc.UpdateForm(c.Context(), id, &schema)
	if err != nil {
		if err == formSvc.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to update form: "+err.Error())
	}
	if len(schemaErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "schema validation failed",
			"errors": schemaErrs,
		})
	}

	return c.JSON(schema)
}

// GetFormQRCode godoc
// @Summary      Get a share QR code for a form
// @Description  PNG QR code encoding the applicant-facing form link
// @Tags         forms
// @Produce      png
// @Param        id path string true "Form ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id}/qrcode [get]
func GetFormQRCode(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	if _, err := formSvc.GetFormByID(c.Context(), id); err != nil {
		if err == formSvc.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	png, err := qrcode.GenerateFormQR(id.Hex())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate QR code: "+err.Error())
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

// DeleteForm godoc
// @Summary      Delete a form and its submissions
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /forms/{id} [delete]
func DeleteForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	if err := formSvc.DeleteForm(c.Context(), id); err != nil {
		if err == formSvc.ErrFormNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to delete form: "+err.Error())
	}

	return c.JSON(fiber.Map{"message": "Form deleted successfully"})
}
