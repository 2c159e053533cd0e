package transferController

import (
	"github.com/gofiber/fiber/v2"

	"tap/database"
	"tap/middleware"
	"tap/transfer"
)

// GetPathway returns the per-requirement transfer options from a community
// college into a degree program. Unknown identifiers yield an empty
// pathway, not an error.
func GetPathway(c *fiber.Ctx) error {
	ccInstitutionID := c.QueryInt("ccInstitutionId", 0)
	degreeProgramID := c.QueryInt("degreeProgramId", 0)
	if ccInstitutionID <= 0 || degreeProgramID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ccInstitutionId and degreeProgramId are required!", nil)
	}

	engine := transfer.NewEngine(database.Database.Db)
	pathway, err := engine.BuildPathway(uint(ccInstitutionID), uint(degreeProgramID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to build pathway!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pathway built!", pathway)
}

// CalculateCredits aggregates a student's completed CC courses against the
// pathway into a credit summary.
func CalculateCredits(c *fiber.Ctx) error {
	reqData := new(struct {
		CCInstitutionID    uint   `json:"ccInstitutionId"`
		DegreeProgramID    uint   `json:"degreeProgramId"`
		CompletedCourseIDs []uint `json:"completedCourseIds"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.CCInstitutionID == 0 || reqData.DegreeProgramID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ccInstitutionId and degreeProgramId are required!", nil)
	}

	engine := transfer.NewEngine(database.Database.Db)
	summary, err := engine.CalculateCredits(reqData.CCInstitutionID, reqData.DegreeProgramID, reqData.CompletedCourseIDs)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to calculate credits!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Credits calculated!", summary)
}
