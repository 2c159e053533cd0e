package articulationController

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"tap/database"
	"tap/middleware"
	"tap/models"
	"tap/transfer"
	"tap/utils"
)

// ListMappings returns articulation mappings with optional status, course
// and institution filters. Shared by the authoring console and the public
// articulation browser.
func ListMappings(c *fiber.Ctx) error {
	engine := transfer.NewEngine(database.Database.Db)

	filter := transfer.MappingFilter{
		Status:        models.MappingStatus(c.Query("status")),
		CCCourseID:    uint(c.QueryInt("ccCourseId", 0)),
		USVCourseID:   uint(c.QueryInt("usvCourseId", 0)),
		InstitutionID: uint(c.QueryInt("institutionId", 0)),
	}

	mappings, err := engine.ListMappings(filter)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mappings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mappings fetched!", mappings)
}

// GetMapping returns a single mapping with both courses preloaded.
func GetMapping(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid mapping id!", nil)
	}

	var mapping models.ArticulationMapping
	if err := database.Database.Db.
		Preload("CCCourse").
		Preload("USVCourse").
		First(&mapping, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mapping not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mapping fetched!", mapping)
}

// CreateMapping declares a new equivalency. New mappings start as drafts
// unless the creator sets a status explicitly.
func CreateMapping(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData, ok := c.Locals("validatedMapping").(*models.ArticulationMapping)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// The source course must belong to a community college and the target
	// to the university.
	var ccCourse, usvCourse models.Course
	if err := db.Preload("Institution").First(&ccCourse, reqData.CCCourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Community college course not found!", nil)
	}
	if ccCourse.Institution.Type != models.InstitutionCommunityCollege {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Source course must belong to a community college!", nil)
	}
	if err := db.Preload("Institution").First(&usvCourse, reqData.USVCourseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "University course not found!", nil)
	}
	if usvCourse.Institution.Type != models.InstitutionUniversity {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Target course must belong to the university!", nil)
	}

	// One mapping per course pair
	if err := db.Where("cc_course_id = ? AND usv_course_id = ?", reqData.CCCourseID, reqData.USVCourseID).
		First(&models.ArticulationMapping{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A mapping for this course pair already exists!", nil)
	}

	reqData.CreatedBy = userID
	if reqData.Status == "" {
		reqData.Status = models.MappingStatusDraft
	}

	if err := db.Create(reqData).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create mapping!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Mapping created!", reqData)
}

// UpdateMapping mutates equivalency type, score, or notes of a mapping that
// has not been reviewed yet.
func UpdateMapping(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid mapping id!", nil)
	}

	db := database.Database.Db

	var mapping models.ArticulationMapping
	if err := db.First(&mapping, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mapping not found!", nil)
	}

	if mapping.Status == models.MappingStatusApproved || mapping.Status == models.MappingStatusRejected {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Reviewed mappings cannot be edited!", nil)
	}

	reqData := new(struct {
		EquivalencyType *models.EquivalencyType `json:"equivalencyType"`
		SimilarityScore *int                    `json:"similarityScore"`
		Notes           *string                 `json:"notes"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.EquivalencyType != nil {
		switch *reqData.EquivalencyType {
		case models.EquivalencyDirect, models.EquivalencyPartial, models.EquivalencyElective, models.EquivalencyNone:
			mapping.EquivalencyType = *reqData.EquivalencyType
		default:
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid equivalency type!", nil)
		}
	}
	if reqData.SimilarityScore != nil {
		if *reqData.SimilarityScore < 0 || *reqData.SimilarityScore > 100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Similarity score must be between 0 and 100!", nil)
		}
		mapping.SimilarityScore = reqData.SimilarityScore
	}
	if reqData.Notes != nil {
		mapping.Notes = *reqData.Notes
	}

	if err := db.Save(&mapping).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update mapping!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mapping updated!", mapping)
}

// SubmitMapping moves a draft into the review queue.
func SubmitMapping(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid mapping id!", nil)
	}

	db := database.Database.Db

	var mapping models.ArticulationMapping
	if err := db.First(&mapping, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mapping not found!", nil)
	}

	if mapping.Status != models.MappingStatusDraft {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only draft mappings can be submitted for review!", nil)
	}

	mapping.Status = models.MappingStatusPending
	if err := db.Save(&mapping).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit mapping!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mapping submitted for review!", mapping)
}

// ReviewMapping approves or rejects a pending mapping, stamping reviewer
// identity and time. Approval makes the mapping visible to the pathway
// builder; both outcomes are terminal.
func ReviewMapping(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	reqData := new(struct {
		MappingID uint   `json:"mappingId"`
		Action    string `json:"action"` // APPROVE, REJECT
		Notes     string `json:"notes"`  // Optional reviewer notes
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var mapping models.ArticulationMapping
	if err := db.First(&mapping, reqData.MappingID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Mapping not found!", nil)
	}

	if mapping.Status != models.MappingStatusPending {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Only pending mappings can be reviewed!", nil)
	}

	switch reqData.Action {
	case "APPROVE":
		mapping.Status = models.MappingStatusApproved
	case "REJECT":
		mapping.Status = models.MappingStatusRejected
	default:
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid action! Use APPROVE or REJECT.", nil)
	}

	now := time.Now()
	mapping.ReviewedBy = &userID
	mapping.ReviewedAt = &now
	if reqData.Notes != "" {
		mapping.Notes = reqData.Notes
	}

	if err := db.Save(&mapping).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review mapping!", nil)
	}

	// Notify the author off the request path
	go func(m models.ArticulationMapping) {
		var author models.User
		if err := database.Database.Db.First(&author, m.CreatedBy).Error; err != nil {
			log.Printf("[REVIEW] Could not load mapping author %d: %v", m.CreatedBy, err)
			return
		}
		utils.SendMappingReviewedEmail(author.Email, author.Name, m)
	}(mapping)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Mapping reviewed!", mapping)
}
