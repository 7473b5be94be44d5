package controllers

import (
	"log"
	"strconv"

	"Backend-Recruit-Console/src/models"
	formSvc "Backend-Recruit-Console/src/services/forms"
	submissionSvc "Backend-Recruit-Console/src/services/submissions"
	"Backend-Recruit-Console/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// --------- Input DTOs ---------

type submissionIn struct {
	ApplicantName  string               `json:"applicantName" validate:"required"`
	ApplicantEmail string               `json:"applicantEmail" validate:"required,email"`
	ApplicantPhone string               `json:"applicantPhone"`
	Answers        []models.AnswerEntry `json:"answers"`
}

type statusIn struct {
	Status models.SubmissionStatus `json:"status" validate:"required"`
}

// CreateSubmission godoc
// @Summary      Submit a filled-in recruitment form
// @Description  Answers arrive in wire form ({key,value} pairs); the server re-validates required fields and grid row completeness
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body submissionIn true "Applicant identity and wire answers"
// @Success      201  {object}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /forms/{id}/submissions [post]
func CreateSubmission(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	var in submissionIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid applicant details: "+err.Error())
	}

	submission := models.Submission{
		FormID:         formID,
		ApplicantName:  in.ApplicantName,
		ApplicantEmail: in.ApplicantEmail,
		ApplicantPhone: in.ApplicantPhone,
		Answers:        in.Answers,
	}

	log.Printf("[submission] IN form=%s applicant=%s answers=%d",
		formID.Hex(), in.ApplicantEmail, len(in.Answers))

	validationErr, err := submissionSvc.CreateSubmission(c.Context(), &submission)
	if err != nil {
		switch err {
		case formSvc.ErrFormNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		case submissionSvc.ErrFormClosed, submissionSvc.ErrFormFull:
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	if validationErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(submission)
}

// GetSubmission godoc
// @Summary      Get one submission
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [get]
func GetSubmission(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	submission, err := submissionSvc.GetSubmissionByID(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
	}
	return c.JSON(submission)
}

// GetSubmissionsByForm godoc
// @Summary      List a form's submissions
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        limit query int false "Max results"
// @Param        sort query string false "Sort field, prefix - for descending"
// @Success      200  {array}  models.Submission
// @Failure      400  {object}  models.ErrorResponse
// @Router       /forms/{id}/submissions [get]
func GetSubmissionsByForm(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid form ID")
	}

	limit := int64(0)
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.ParseInt(l, 10, 64); err == nil && v > 0 {
			limit = v
		}
	}

	submissions, err := submissionSvc.GetSubmissionsByFormID(c.Context(), formID, limit, c.Query("sort"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(submissions)
}

// UpdateSubmissionStatus godoc
// @Summary      Set the moderation label on a submission
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id path string true "Submission ID"
// @Param        body body statusIn true "New status (pending/approved/rejected)"
// @Success      200
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id}/status [patch]
func UpdateSubmissionStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var in statusIn
	if err := c.BodyParser(&in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := submissionSvc.UpdateStatus(c.Context(), id, in.Status); err != nil {
		switch err {
		case submissionSvc.ErrInvalidStatus:
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		case submissionSvc.ErrSubmissionNotFound:
			return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(fiber.Map{"message": "Status updated successfully"})
}

// DeleteSubmission godoc
// @Summary      Delete a submission
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /submissions/{id} [delete]
func DeleteSubmission(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := submissionSvc.DeleteSubmission(c.Context(), id); err != nil {
		if err == submissionSvc.ErrSubmissionNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Submission deleted successfully"})
}
