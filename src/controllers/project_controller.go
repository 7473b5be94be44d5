package controllers

import (
	"Backend-Recruit-Console/src/models"
	projectSvc "Backend-Recruit-Console/src/services/projects"
	"Backend-Recruit-Console/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateProject stores a new project entity.
func CreateProject(c *fiber.Ctx) error {
	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := projectSvc.CreateProject(c.Context(), &project); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error creating project")
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

// GetProjects lists every project.
func GetProjects(c *fiber.Ctx) error {
	projects, err := projectSvc.GetProjects(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error fetching projects")
	}
	return c.JSON(projects)
}

// GetProjectByID fetches one project.
func GetProjectByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid project ID")
	}

	project, err := projectSvc.GetProjectByID(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Project not found")
	}
	return c.JSON(project)
}

// UpdateProject replaces a project's editable fields.
func UpdateProject(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid project ID")
	}

	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := projectSvc.UpdateProject(c.Context(), id, &project); err != nil {
		if err == projectSvc.ErrProjectNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Project not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error updating project")
	}
	return c.JSON(fiber.Map{"message": "Project updated successfully"})
}

// DeleteProject removes a project.
func DeleteProject(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid project ID")
	}

	if err := projectSvc.DeleteProject(c.Context(), id); err != nil {
		if err == projectSvc.ErrProjectNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "Project not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error deleting project")
	}
	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}
