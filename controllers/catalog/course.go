package catalogController

import (
	"github.com/gofiber/fiber/v2"

	"tap/database"
	"tap/middleware"
	"tap/models"
)

// ListCourses returns the active courses of an institution.
func ListCourses(c *fiber.Ctx) error {
	institutionID := c.QueryInt("institutionId", 0)
	if institutionID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "institutionId query parameter is required!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.
		Where("institution_id = ? AND active = ?", institutionID, true).
		Order("course_code ASC").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", courses)
}

// SearchCourses matches code, title, or description against a search term.
func SearchCourses(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "q query parameter is required!", nil)
	}

	db := database.Database.Db
	pattern := "%" + term + "%"

	query := db.Model(&models.Course{}).
		Where("course_code LIKE ? OR title LIKE ? OR description LIKE ?", pattern, pattern, pattern)
	if institutionID := c.QueryInt("institutionId", 0); institutionID > 0 {
		query = query.Where("institution_id = ?", institutionID)
	}

	var courses []models.Course
	if err := query.Limit(50).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched!", courses)
}

// GetCourse returns a single course by id.
func GetCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Preload("Institution").First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched!", course)
}

// CreateCourse adds a course to an institution (admin only).
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*models.Course)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Institution{}, reqData.InstitutionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Institution not found!", nil)
	}

	// One course code per institution
	if err := db.Where("institution_id = ? AND course_code = ?", reqData.InstitutionID, reqData.CourseCode).
		First(&models.Course{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course code already exists at this institution!", nil)
	}

	if err := db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created!", reqData)
}

// UpdateCourse mutates course fields (admin only).
func UpdateCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData := new(struct {
		CourseCode       *string `json:"courseCode"`
		Title            *string `json:"title"`
		Units            *int    `json:"units"`
		Description      *string `json:"description"`
		Prerequisites    *string `json:"prerequisites"`
		LearningOutcomes *string `json:"learningOutcomes"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.CourseCode != nil {
		course.CourseCode = *reqData.CourseCode
	}
	if reqData.Title != nil {
		course.Title = *reqData.Title
	}
	if reqData.Units != nil {
		if *reqData.Units <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Units must be a positive integer!", nil)
		}
		course.Units = *reqData.Units
	}
	if reqData.Description != nil {
		course.Description = *reqData.Description
	}
	if reqData.Prerequisites != nil {
		course.Prerequisites = *reqData.Prerequisites
	}
	if reqData.LearningOutcomes != nil {
		course.LearningOutcomes = *reqData.LearningOutcomes
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated!", course)
}

// DeleteCourse soft-deletes by clearing the active flag. Referenced courses
// are never hard-deleted.
func DeleteCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Model(&course).Update("active", false).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to deactivate course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deactivated!", nil)
}
