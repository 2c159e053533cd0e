// Imports a course catalog CSV into one institution. The file can be a
// local path or an http(s) URL. Expected columns: courseCode, title, units,
// description, prerequisites, learningOutcomes.
//
// Usage:
//
//	go run ./scripts/importcatalog -institution 2 -file courses.csv
//	go run ./scripts/importcatalog -institution 2 -url https://example.edu/catalog.csv
package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/go-resty/resty/v2"
	"github.com/olekukonko/tablewriter"

	"tap/config"
	"tap/database"
	"tap/models"
)

func main() {
	institutionID := flag.Int("institution", 0, "institution id to import into")
	filePath := flag.String("file", "", "path to the CSV file")
	fileURL := flag.String("url", "", "URL to fetch the CSV from")
	flag.Parse()

	if *institutionID <= 0 {
		log.Fatal("-institution is required")
	}
	if *filePath == "" && *fileURL == "" {
		log.Fatal("one of -file or -url is required")
	}

	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	if err := db.First(&models.Institution{}, *institutionID).Error; err != nil {
		log.Fatalf("Institution %d not found", *institutionID)
	}

	var reader io.Reader
	if *fileURL != "" {
		client := resty.New()
		resp, err := client.R().Get(*fileURL)
		if err != nil {
			log.Fatalf("Failed to fetch CSV: %v", err)
		}
		if resp.StatusCode() != 200 {
			log.Fatalf("Failed to fetch CSV: status %d", resp.StatusCode())
		}
		reader = bytes.NewReader(resp.Body())
	} else {
		file, err := os.Open(*filePath)
		if err != nil {
			log.Fatalf("Failed to open CSV file: %v", err)
		}
		defer file.Close()
		reader = file
	}

	records, err := csv.NewReader(reader).ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}
	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		if i%500 == 0 && i > 0 {
			log.Printf("Processing row %d...", i+1)
		}

		code := getField(row, headerIndex, "courseCode")
		title := getField(row, headerIndex, "title")
		units, convErr := strconv.Atoi(getField(row, headerIndex, "units"))

		if code == "" || title == "" || convErr != nil || units <= 0 {
			skipped++
			continue
		}

		course := models.Course{
			InstitutionID:    uint(*institutionID),
			CourseCode:       code,
			Title:            title,
			Units:            units,
			Description:      getField(row, headerIndex, "description"),
			Prerequisites:    getField(row, headerIndex, "prerequisites"),
			LearningOutcomes: getField(row, headerIndex, "learningOutcomes"),
			Active:           true,
		}

		var existing models.Course
		result := db.Where("institution_id = ? AND course_code = ?", *institutionID, code).First(&existing)
		if result.Error != nil {
			if err := db.Create(&course).Error; err != nil {
				log.Printf("Error inserting course %s: %v", code, err)
				skipped++
				continue
			}
			inserted++
		} else {
			existing.Title = course.Title
			existing.Units = course.Units
			existing.Description = course.Description
			existing.Prerequisites = course.Prerequisites
			existing.LearningOutcomes = course.LearningOutcomes
			existing.Active = true
			if err := db.Save(&existing).Error; err != nil {
				log.Printf("Error updating course %s: %v", code, err)
				skipped++
				continue
			}
			updated++
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Inserted", "Updated", "Skipped"})
	table.Append([]string{strconv.Itoa(inserted), strconv.Itoa(updated), strconv.Itoa(skipped)})
	table.Render()

	color.Green("Import complete: %d rows processed", len(records)-1)
}

// getField safely extracts a column by header name
func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
