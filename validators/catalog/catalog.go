package catalogValidator

import (
	"github.com/gofiber/fiber/v2"

	"tap/middleware"
	"tap/models"
)

// CreateInstitution validates institution creation request
func CreateInstitution() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Institution)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == "" {
			errors["name"] = "Institution name is required!"
		}

		validTypes := map[models.InstitutionType]bool{
			models.InstitutionUniversity:       true,
			models.InstitutionCommunityCollege: true,
		}
		if _, ok := validTypes[reqData.Type]; !ok {
			errors["type"] = "Institution type must be university or community_college!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Active = true
		c.Locals("validatedInstitution", reqData)
		return c.Next()
	}
}

// CreateDegreeProgram validates degree program creation request
func CreateDegreeProgram() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.DegreeProgram)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name == "" {
			errors["name"] = "Degree program name is required!"
		}
		if reqData.Code == "" {
			errors["code"] = "Degree program code is required!"
		}
		if reqData.DegreeType == "" {
			errors["degreeType"] = "Degree type is required!"
		}
		if reqData.TotalUnitsRequired <= 0 {
			errors["totalUnitsRequired"] = "Total units required must be a positive integer!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Active = true
		c.Locals("validatedDegreeProgram", reqData)
		return c.Next()
	}
}

// CreateCourse validates course creation request
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.Course)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.InstitutionID == 0 {
			errors["institutionId"] = "Institution id is required!"
		}
		if reqData.CourseCode == "" {
			errors["courseCode"] = "Course code is required!"
		}
		if reqData.Title == "" {
			errors["title"] = "Course title is required!"
		}
		if reqData.Units <= 0 {
			errors["units"] = "Units must be a positive integer!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Active = true
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateRequirement validates degree requirement creation request
func CreateRequirement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.DegreeRequirement)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.DegreeProgramID == 0 {
			errors["degreeProgramId"] = "Degree program id is required!"
		}
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}

		validTypes := map[models.RequirementType]bool{
			models.RequirementCore:      true,
			models.RequirementMajor:     true,
			models.RequirementElective:  true,
			models.RequirementGeneralEd: true,
		}
		if _, ok := validTypes[reqData.RequirementType]; !ok {
			errors["requirementType"] = "Requirement type must be core, major, elective, or general_education!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRequirement", reqData)
		return c.Next()
	}
}
