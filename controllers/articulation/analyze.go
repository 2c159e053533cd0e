package articulationController

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"tap/database"
	"tap/middleware"
	"tap/models"
	"tap/similarity"
)

// oracle is the similarity scorer wired in at startup. Nil when no API key
// is configured; the analyze endpoint then reports the feature unavailable.
var oracle similarity.Oracle

// SetOracle installs the similarity oracle used by AnalyzeSimilarity.
func SetOracle(o similarity.Oracle) {
	oracle = o
}

// AnalyzeSimilarity scores a course pair and returns the suggested
// equivalency. The verdict is advisory: it does not create or mutate any
// mapping.
func AnalyzeSimilarity(c *fiber.Ctx) error {
	if oracle == nil {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Similarity analysis is not configured!", nil)
	}

	reqData := new(struct {
		CCCourseID  uint `json:"ccCourseId"`
		USVCourseID uint `json:"usvCourseId"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var ccCourse, usvCourse models.Course
	if err := db.First(&ccCourse, reqData.CCCourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Community college course not found!", nil)
	}
	if err := db.First(&usvCourse, reqData.USVCourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "University course not found!", nil)
	}

	analysis, err := oracle.ScoreSimilarity(c.Context(), ccCourse, usvCourse)
	if err != nil {
		log.Printf("[ANALYZE] Similarity scoring failed for %s -> %s: %v", ccCourse.CourseCode, usvCourse.CourseCode, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Similarity analysis failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Analysis complete!", analysis)
}
