package articulationController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tap/config"
	"tap/database"
	"tap/middleware"
	"tap/models"
)

// setupApp wires an in-memory database and the review endpoint behind the
// same middleware chain as production.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 10}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Permission{},
		&models.Institution{},
		&models.Course{},
		&models.ArticulationMapping{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/articulation/review",
		middleware.JWTMiddleware,
		middleware.CheckPermissionMiddleware(models.PermReviewMappings),
		ReviewMapping)
	app.Post("/articulation/mappings/:id/submit", middleware.JWTMiddleware, SubmitMapping)

	return app, db
}

func createReviewer(t *testing.T, db *gorm.DB) (models.User, string) {
	t.Helper()

	reviewer := models.User{Name: "Reviewer", Email: "reviewer@usv.edu", Role: "ADMIN", Password: "x"}
	require.NoError(t, db.Create(&reviewer).Error)
	require.NoError(t, db.Create(&models.Permission{UserID: reviewer.ID, Permission: models.PermReviewMappings}).Error)

	token, err := middleware.GenerateJWT(reviewer.ID, reviewer.Name, reviewer.Role, reviewer.Email)
	require.NoError(t, err)
	return reviewer, token
}

func createPendingMapping(t *testing.T, db *gorm.DB, status models.MappingStatus) models.ArticulationMapping {
	t.Helper()

	usv := models.Institution{Name: "University of Silicon Valley", Type: models.InstitutionUniversity, Active: true}
	require.NoError(t, db.Create(&usv).Error)
	cc := models.Institution{Name: "Foothill College", Type: models.InstitutionCommunityCollege, Active: true}
	require.NoError(t, db.Create(&cc).Error)

	eng101 := models.Course{InstitutionID: usv.ID, CourseCode: "ENG101", Title: "English Composition", Units: 4, Active: true}
	require.NoError(t, db.Create(&eng101).Error)
	engl1A := models.Course{InstitutionID: cc.ID, CourseCode: "ENGL 1A", Title: "Composition and Reading", Units: 5, Active: true}
	require.NoError(t, db.Create(&engl1A).Error)

	author := models.User{Name: "Author", Email: "", Role: "USER", Password: "x"}
	require.NoError(t, db.Create(&author).Error)

	mapping := models.ArticulationMapping{
		CCCourseID:      engl1A.ID,
		USVCourseID:     eng101.ID,
		EquivalencyType: models.EquivalencyDirect,
		Status:          status,
		CreatedBy:       author.ID,
	}
	require.NoError(t, db.Create(&mapping).Error)
	return mapping
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestReviewMappingApproveStampsReviewer(t *testing.T) {
	app, db := setupApp(t)
	reviewer, token := createReviewer(t, db)
	mapping := createPendingMapping(t, db, models.MappingStatusPending)

	resp := postJSON(t, app, "/articulation/review", token, fiber.Map{
		"mappingId": mapping.ID,
		"action":    "APPROVE",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.ArticulationMapping
	require.NoError(t, db.First(&updated, mapping.ID).Error)
	assert.Equal(t, models.MappingStatusApproved, updated.Status)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, reviewer.ID, *updated.ReviewedBy)
	assert.NotNil(t, updated.ReviewedAt)
}

func TestReviewMappingReject(t *testing.T) {
	app, db := setupApp(t)
	_, token := createReviewer(t, db)
	mapping := createPendingMapping(t, db, models.MappingStatusPending)

	resp := postJSON(t, app, "/articulation/review", token, fiber.Map{
		"mappingId": mapping.ID,
		"action":    "REJECT",
		"notes":     "Unit count too low",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.ArticulationMapping
	require.NoError(t, db.First(&updated, mapping.ID).Error)
	assert.Equal(t, models.MappingStatusRejected, updated.Status)
	assert.Equal(t, "Unit count too low", updated.Notes)
}

func TestReviewMappingOnlyPending(t *testing.T) {
	app, db := setupApp(t)
	_, token := createReviewer(t, db)
	mapping := createPendingMapping(t, db, models.MappingStatusDraft)

	resp := postJSON(t, app, "/articulation/review", token, fiber.Map{
		"mappingId": mapping.ID,
		"action":    "APPROVE",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestReviewMappingInvalidAction(t *testing.T) {
	app, db := setupApp(t)
	_, token := createReviewer(t, db)
	mapping := createPendingMapping(t, db, models.MappingStatusPending)

	resp := postJSON(t, app, "/articulation/review", token, fiber.Map{
		"mappingId": mapping.ID,
		"action":    "MAYBE",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestReviewMappingRequiresPermission(t *testing.T) {
	app, db := setupApp(t)
	mapping := createPendingMapping(t, db, models.MappingStatusPending)

	// A user without the review permission is rejected before core logic
	author := models.User{Name: "NoPerm", Email: "noperm@usv.edu", Role: "USER", Password: "x"}
	require.NoError(t, db.Create(&author).Error)
	token, err := middleware.GenerateJWT(author.ID, author.Name, author.Role, author.Email)
	require.NoError(t, err)

	resp := postJSON(t, app, "/articulation/review", token, fiber.Map{
		"mappingId": mapping.ID,
		"action":    "APPROVE",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	var unchanged models.ArticulationMapping
	require.NoError(t, db.First(&unchanged, mapping.ID).Error)
	assert.Equal(t, models.MappingStatusPending, unchanged.Status)
}

func TestSubmitMappingDraftToPending(t *testing.T) {
	app, db := setupApp(t)
	_, token := createReviewer(t, db)
	mapping := createPendingMapping(t, db, models.MappingStatusDraft)

	resp := postJSON(t, app, fmt.Sprintf("/articulation/mappings/%d/submit", mapping.ID), token, fiber.Map{})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.ArticulationMapping
	require.NoError(t, db.First(&updated, mapping.ID).Error)
	assert.Equal(t, models.MappingStatusPending, updated.Status)
}

func TestSubmitMappingRejectsNonDraft(t *testing.T) {
	app, db := setupApp(t)
	_, token := createReviewer(t, db)
	mapping := createPendingMapping(t, db, models.MappingStatusApproved)

	resp := postJSON(t, app, fmt.Sprintf("/articulation/mappings/%d/submit", mapping.ID), token, fiber.Map{})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
