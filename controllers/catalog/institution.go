package catalogController

import (
	"github.com/gofiber/fiber/v2"

	"tap/database"
	"tap/middleware"
	"tap/models"
)

// ListInstitutions returns institutions, active-only unless ?all=true.
func ListInstitutions(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.Institution{})
	if !c.QueryBool("all", false) {
		query = query.Where("active = ?", true)
	}
	if instType := c.Query("type"); instType != "" {
		query = query.Where("type = ?", instType)
	}

	var institutions []models.Institution
	if err := query.Order("name ASC").Find(&institutions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch institutions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Institutions fetched!", institutions)
}

// GetInstitution returns a single institution by id.
func GetInstitution(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid institution id!", nil)
	}

	var institution models.Institution
	if err := database.Database.Db.First(&institution, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Institution not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Institution fetched!", institution)
}

// CreateInstitution adds a new institution (admin only).
func CreateInstitution(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInstitution").(*models.Institution)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if err := database.Database.Db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create institution!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Institution created!", reqData)
}

// UpdateInstitution mutates name/type/website fields (admin only).
func UpdateInstitution(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid institution id!", nil)
	}

	db := database.Database.Db

	var institution models.Institution
	if err := db.First(&institution, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Institution not found!", nil)
	}

	reqData := new(struct {
		Name       *string `json:"name"`
		ShortName  *string `json:"shortName"`
		Website    *string `json:"website"`
		CatalogURL *string `json:"catalogUrl"`
		Active     *bool   `json:"active"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != nil {
		institution.Name = *reqData.Name
	}
	if reqData.ShortName != nil {
		institution.ShortName = *reqData.ShortName
	}
	if reqData.Website != nil {
		institution.Website = *reqData.Website
	}
	if reqData.CatalogURL != nil {
		institution.CatalogURL = *reqData.CatalogURL
	}
	if reqData.Active != nil {
		institution.Active = *reqData.Active
	}

	if err := db.Save(&institution).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update institution!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Institution updated!", institution)
}
