package adminController

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tap/database"
	"tap/middleware"
	"tap/models"
	"tap/transfer"
)

// ImportCourses ingests a CSV of courses for one institution. Expected
// columns: courseCode, title, units, description, prerequisites,
// learningOutcomes (header row required, extra columns ignored). Existing
// courses are updated by (institution, courseCode); each run is recorded in
// the import history.
func ImportCourses(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	institutionID, err := strconv.Atoi(c.FormValue("institutionId"))
	if err != nil || institutionID <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "institutionId form value is required!", nil)
	}

	db := database.Database.Db

	if err := db.First(&models.Institution{}, institutionID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Institution not found!", nil)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CSV file is required!", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to open uploaded file!", nil)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse CSV!", nil)
	}
	if len(records) < 2 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "CSV file is empty or has only headers!", nil)
	}

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.TrimSpace(h)] = i
	}

	var (
		success   int
		errorLogs []string
	)

	for i, row := range records[1:] {
		code := getField(row, headerIndex, "courseCode")
		title := getField(row, headerIndex, "title")
		units, convErr := strconv.Atoi(getField(row, headerIndex, "units"))

		if code == "" || title == "" || convErr != nil || units <= 0 {
			errorLogs = append(errorLogs, fmt.Sprintf("row %d: missing code/title or invalid units", i+2))
			continue
		}

		course := models.Course{
			InstitutionID:    uint(institutionID),
			CourseCode:       code,
			Title:            title,
			Units:            units,
			Description:      getField(row, headerIndex, "description"),
			Prerequisites:    getField(row, headerIndex, "prerequisites"),
			LearningOutcomes: getField(row, headerIndex, "learningOutcomes"),
			Active:           true,
		}

		var existing models.Course
		result := db.Where("institution_id = ? AND course_code = ?", institutionID, code).First(&existing)
		if result.Error != nil {
			if err := db.Create(&course).Error; err != nil {
				errorLogs = append(errorLogs, fmt.Sprintf("row %d: insert failed: %v", i+2, err))
				continue
			}
		} else {
			existing.Title = course.Title
			existing.Units = course.Units
			existing.Description = course.Description
			existing.Prerequisites = course.Prerequisites
			existing.LearningOutcomes = course.LearningOutcomes
			existing.Active = true
			if err := db.Save(&existing).Error; err != nil {
				errorLogs = append(errorLogs, fmt.Sprintf("row %d: update failed: %v", i+2, err))
				continue
			}
		}
		success++
	}

	history := models.ImportHistory{
		BatchID:          uuid.NewString(),
		ImportType:       models.ImportCSVCourses,
		FileName:         fileHeader.Filename,
		RecordsProcessed: len(records) - 1,
		RecordsSuccess:   success,
		RecordsError:     len(errorLogs),
		ImportedBy:       userID,
	}
	if len(errorLogs) > 0 {
		if raw, err := json.Marshal(errorLogs); err == nil {
			history.ErrorLog = datatypes.JSON(raw)
		}
	}
	if err := db.Create(&history).Error; err != nil {
		log.Printf("[IMPORT] Failed to record import history: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Import complete!", history)
}

// ExportMappings streams articulation mappings as CSV, optionally filtered
// by status (defaults to approved).
func ExportMappings(c *fiber.Ctx) error {
	status := models.MappingStatus(c.Query("status", string(models.MappingStatusApproved)))

	engine := transfer.NewEngine(database.Database.Db)
	mappings, err := engine.ListMappings(transfer.MappingFilter{Status: status})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch mappings!", nil)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Write([]string{"ccInstitution", "ccCourseCode", "ccTitle", "ccUnits", "usvCourseCode", "usvTitle", "equivalencyType", "similarityScore", "status"})

	for _, m := range mappings {
		score := ""
		if m.SimilarityScore != nil {
			score = strconv.Itoa(*m.SimilarityScore)
		}
		writer.Write([]string{
			m.CCCourse.Institution.Name,
			m.CCCourse.CourseCode,
			m.CCCourse.Title,
			strconv.Itoa(m.CCCourse.Units),
			m.USVCourse.CourseCode,
			m.USVCourse.Title,
			string(m.EquivalencyType),
			score,
			string(m.Status),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to write CSV!", nil)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="articulation-mappings.csv"`)
	return c.Send(buf.Bytes())
}

// GetImportHistory lists past imports, newest first.
func GetImportHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit < 1 {
		limit = 50
	}

	var history []models.ImportHistory
	if err := database.Database.Db.
		Order("created_at DESC").
		Limit(limit).
		Find(&history).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch import history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Import history fetched!", history)
}

// getField safely extracts a column by header name
func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
