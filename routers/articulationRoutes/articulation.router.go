package articulationRoutes

import (
	articulationController "tap/controllers/articulation"
	"tap/middleware"
	"tap/models"
	articulationValidator "tap/validators/articulation"

	"github.com/gofiber/fiber/v2"
)

// SetupArticulationRoutes sets up mapping authoring and review routes.
// Listing is public; authoring requires a token, reviewing requires the
// review permission.
func SetupArticulationRoutes(app *fiber.App) {
	articulationGroup := app.Group("/articulation")

	// Browse mappings (public)
	articulationGroup.Get("/mappings", articulationController.ListMappings)

	// Authoring
	articulationGroup.Post("/mappings", articulationValidator.CreateMapping(), middleware.JWTMiddleware, articulationController.CreateMapping)
	articulationGroup.Put("/mappings/:id", middleware.JWTMiddleware, articulationController.UpdateMapping)
	articulationGroup.Post("/mappings/:id/submit", middleware.JWTMiddleware, articulationController.SubmitMapping)

	// Review workflow
	articulationGroup.Post("/review", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware(models.PermReviewMappings), articulationController.ReviewMapping)

	// LLM-assisted analysis
	articulationGroup.Post("/analyze", middleware.JWTMiddleware, articulationController.AnalyzeSimilarity)

	// Get mapping by ID (MUST be last - catches all /:id patterns)
	articulationGroup.Get("/mappings/:id", articulationController.GetMapping)
}
