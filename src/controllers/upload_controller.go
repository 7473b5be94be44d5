package controllers

import (
	"Backend-Recruit-Console/src/services/uploads"
	"Backend-Recruit-Console/src/utils"

	"github.com/gofiber/fiber/v2"
)

var uploadSaver uploads.Saver = uploads.DiskSaver{}

// UploadAnswerFile godoc
// @Summary      Upload a file for a file-type field
// @Description  Stores the file and returns {filePath, url}; the client places the path into the field's answer
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        fieldId query string true "Field ID the file answers"
// @Param        file formData file true "The file"
// @Success      200  {object}  uploads.UploadResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /uploads [post]
func UploadAnswerFile(c *fiber.Ctx) error {
	fieldID := c.Query("fieldId")
	if fieldID == "" {
		return utils.HandleError(c, fiber.StatusBadRequest, "fieldId query parameter is required")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Failed to read file: "+err.Error())
	}

	result, err := uploadSaver.Save(file, fieldID, c.SaveFile)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(result)
}
