package articulationValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tap/middleware"
	"tap/models"
)

var validate = validator.New()

// mappingRequest is the create-mapping payload. Scores outside [0,100] and
// unknown enum values are rejected here, before the controller runs.
type mappingRequest struct {
	CCCourseID      uint   `json:"ccCourseId" validate:"required"`
	USVCourseID     uint   `json:"usvCourseId" validate:"required"`
	EquivalencyType string `json:"equivalencyType" validate:"required,oneof=direct partial elective none"`
	SimilarityScore *int   `json:"similarityScore" validate:"omitempty,min=0,max=100"`
	Notes           string `json:"notes"`
	Status          string `json:"status" validate:"omitempty,oneof=draft pending approved rejected"`
}

// CreateMapping validates mapping creation request
func CreateMapping() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(mappingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "CCCourseID":
					errors["ccCourseId"] = "Community college course id is required!"
				case "USVCourseID":
					errors["usvCourseId"] = "University course id is required!"
				case "EquivalencyType":
					errors["equivalencyType"] = "Equivalency type must be direct, partial, elective, or none!"
				case "SimilarityScore":
					errors["similarityScore"] = "Similarity score must be between 0 and 100!"
				case "Status":
					errors["status"] = "Status must be draft, pending, approved, or rejected!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		mapping := &models.ArticulationMapping{
			CCCourseID:      reqData.CCCourseID,
			USVCourseID:     reqData.USVCourseID,
			EquivalencyType: models.EquivalencyType(reqData.EquivalencyType),
			SimilarityScore: reqData.SimilarityScore,
			Notes:           reqData.Notes,
			Status:          models.MappingStatus(reqData.Status),
		}

		c.Locals("validatedMapping", mapping)
		return c.Next()
	}
}
