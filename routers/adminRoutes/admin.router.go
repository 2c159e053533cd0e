package adminRoutes

import (
	adminController "tap/controllers/admin"
	"tap/middleware"
	"tap/models"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up dashboard and import/export routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	// Dashboard and stats
	adminGroup.Get("/stats", middleware.JWTMiddleware, middleware.AdminOnly, adminController.GetDashboardStats)

	// Import/Export
	adminGroup.Post("/import/courses", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware(models.PermRunImports), adminController.ImportCourses)
	adminGroup.Get("/export/mappings", middleware.JWTMiddleware, middleware.AdminOnly, adminController.ExportMappings)
	adminGroup.Get("/import/history", middleware.JWTMiddleware, middleware.AdminOnly, adminController.GetImportHistory)
}
