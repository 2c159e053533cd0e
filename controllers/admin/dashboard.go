package adminController

import (
	"github.com/gofiber/fiber/v2"

	"tap/database"
	"tap/middleware"
	"tap/models"
	"tap/transfer"
)

// GetDashboardStats returns the mapping and course counters shown on the
// admin dashboard.
func GetDashboardStats(c *fiber.Ctx) error {
	engine := transfer.NewEngine(database.Database.Db)

	stats, err := engine.Statistics()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch statistics!", nil)
	}

	var pendingReviews int64
	database.Database.Db.Model(&models.ArticulationMapping{}).
		Where("status = ?", models.MappingStatusPending).
		Count(&pendingReviews)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Statistics fetched!", fiber.Map{
		"totalMappings":       stats.TotalMappings,
		"approvedMappings":    stats.ApprovedMappings,
		"directEquivalencies": stats.DirectEquivalencies,
		"totalCourses":        stats.TotalCourses,
		"pendingReviews":      pendingReviews,
	})
}
