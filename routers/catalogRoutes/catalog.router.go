package catalogRoutes

import (
	catalogController "tap/controllers/catalog"
	"tap/middleware"
	catalogValidator "tap/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up institution, degree program, and course routes.
// Reads are public; writes require an admin token.
func SetupCatalogRoutes(app *fiber.App) {
	catalogGroup := app.Group("/catalog")

	// Institutions
	catalogGroup.Get("/institutions", catalogController.ListInstitutions)
	catalogGroup.Post("/institutions", catalogValidator.CreateInstitution(), middleware.JWTMiddleware, middleware.AdminOnly, catalogController.CreateInstitution)
	catalogGroup.Get("/institutions/:id", catalogController.GetInstitution)
	catalogGroup.Put("/institutions/:id", middleware.JWTMiddleware, middleware.AdminOnly, catalogController.UpdateInstitution)

	// Degree programs
	catalogGroup.Get("/programs", catalogController.ListDegreePrograms)
	catalogGroup.Post("/programs", catalogValidator.CreateDegreeProgram(), middleware.JWTMiddleware, middleware.AdminOnly, catalogController.CreateDegreeProgram)
	catalogGroup.Get("/programs/:id", catalogController.GetDegreeProgram)
	catalogGroup.Get("/programs/:id/requirements", catalogController.GetProgramRequirements)
	catalogGroup.Post("/requirements", catalogValidator.CreateRequirement(), middleware.JWTMiddleware, middleware.AdminOnly, catalogController.CreateDegreeRequirement)

	// Courses (specific routes MUST come before /:id)
	catalogGroup.Get("/courses/search", catalogController.SearchCourses)
	catalogGroup.Get("/courses", catalogController.ListCourses)
	catalogGroup.Post("/courses", catalogValidator.CreateCourse(), middleware.JWTMiddleware, middleware.AdminOnly, catalogController.CreateCourse)
	catalogGroup.Get("/courses/:id", catalogController.GetCourse)
	catalogGroup.Put("/courses/:id", middleware.JWTMiddleware, middleware.AdminOnly, catalogController.UpdateCourse)
	catalogGroup.Delete("/courses/:id", middleware.JWTMiddleware, middleware.AdminOnly, catalogController.DeleteCourse)
	catalogGroup.Get("/courses/:id/ge-areas", catalogController.GetCourseGeMappings)

	// GE areas
	catalogGroup.Get("/ge-areas", catalogController.ListGeAreas)
	catalogGroup.Post("/ge-areas", middleware.JWTMiddleware, middleware.AdminOnly, catalogController.CreateGeArea)
	catalogGroup.Post("/ge-mappings", middleware.JWTMiddleware, middleware.AdminOnly, catalogController.CreateGeMapping)
}
