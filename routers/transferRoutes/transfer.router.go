package transferRoutes

import (
	transferController "tap/controllers/transfer"

	"github.com/gofiber/fiber/v2"
)

// SetupTransferRoutes sets up the public transfer estimator routes. The
// pathway and credit calculations are pure reads and need no token.
func SetupTransferRoutes(app *fiber.App) {
	transferGroup := app.Group("/transfer")

	transferGroup.Get("/pathway", transferController.GetPathway)
	transferGroup.Post("/calculate", transferController.CalculateCredits)
}
