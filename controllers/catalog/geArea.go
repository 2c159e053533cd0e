package catalogController

import (
	"github.com/gofiber/fiber/v2"

	"tap/database"
	"tap/middleware"
	"tap/models"
)

// ListGeAreas returns all general-education areas.
func ListGeAreas(c *fiber.Ctx) error {
	var areas []models.GeArea
	if err := database.Database.Db.Order("code ASC").Find(&areas).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch GE areas!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "GE areas fetched!", areas)
}

// CreateGeArea adds a GE area (admin only).
func CreateGeArea(c *fiber.Ctx) error {
	var reqData models.GeArea
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Code == "" || reqData.Label == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Code and label are required!", nil)
	}

	db := database.Database.Db

	if err := db.Where("code = ?", reqData.Code).First(&models.GeArea{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "GE area code already exists!", nil)
	}

	if err := db.Create(&reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create GE area!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "GE area created!", reqData)
}

// GetCourseGeMappings lists the GE areas a course satisfies.
func GetCourseGeMappings(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var mappings []models.GeMapping
	if err := database.Database.Db.
		Where("course_id = ?", courseID).
		Preload("GeArea").
		Find(&mappings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch GE mappings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "GE mappings fetched!", mappings)
}

// CreateGeMapping declares that a course satisfies a GE area (admin only).
func CreateGeMapping(c *fiber.Ctx) error {
	var reqData models.GeMapping
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Course{}, reqData.CourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if err := db.First(&models.GeArea{}, reqData.GeAreaID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "GE area not found!", nil)
	}
	if err := db.Where("course_id = ? AND ge_area_id = ?", reqData.CourseID, reqData.GeAreaID).
		First(&models.GeMapping{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "GE mapping already exists!", nil)
	}

	if err := db.Create(&reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create GE mapping!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "GE mapping created!", reqData)
}
