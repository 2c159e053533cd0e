package catalogController

import (
	"github.com/gofiber/fiber/v2"

	"tap/database"
	"tap/middleware"
	"tap/models"
)

// ListDegreePrograms returns degree programs, active-only unless ?all=true.
func ListDegreePrograms(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.DegreeProgram{})
	if !c.QueryBool("all", false) {
		query = query.Where("active = ?", true)
	}

	var programs []models.DegreeProgram
	if err := query.Order("code ASC").Find(&programs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch degree programs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Degree programs fetched!", programs)
}

// GetDegreeProgram returns a single degree program by id.
func GetDegreeProgram(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid degree program id!", nil)
	}

	var program models.DegreeProgram
	if err := database.Database.Db.First(&program, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Degree program not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Degree program fetched!", program)
}

// CreateDegreeProgram adds a new degree program (admin only).
func CreateDegreeProgram(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDegreeProgram").(*models.DegreeProgram)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Program codes are unique across the catalog
	if err := db.Where("code = ?", reqData.Code).First(&models.DegreeProgram{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Degree program code already exists!", nil)
	}

	if err := db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create degree program!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Degree program created!", reqData)
}

// GetProgramRequirements lists a program's requirements with their courses.
func GetProgramRequirements(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid degree program id!", nil)
	}

	var requirements []models.DegreeRequirement
	if err := database.Database.Db.
		Where("degree_program_id = ?", id).
		Preload("Course").
		Order("id ASC").
		Find(&requirements).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch requirements!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Requirements fetched!", requirements)
}

// CreateDegreeRequirement attaches a university course to a program (admin only).
func CreateDegreeRequirement(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRequirement").(*models.DegreeRequirement)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.DegreeProgram{}, reqData.DegreeProgramID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Degree program not found!", nil)
	}

	// The referenced course must belong to the university
	var course models.Course
	if err := db.Preload("Institution").First(&course, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if course.Institution.Type != models.InstitutionUniversity {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Requirement course must belong to the university!", nil)
	}

	// Unique per (program, course)
	if err := db.Where("degree_program_id = ? AND course_id = ?", reqData.DegreeProgramID, reqData.CourseID).
		First(&models.DegreeRequirement{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Requirement already exists for this course!", nil)
	}

	if err := db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create requirement!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Requirement created!", reqData)
}
