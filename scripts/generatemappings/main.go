// Generates draft articulation mappings by matching every community-college
// course against the university catalog. Matching runs on the static rule
// table by default; pass -llm to escalate unmatched pairs to Gemini. All
// generated mappings land as drafts and still go through the normal review
// workflow.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"tap/config"
	"tap/database"
	"tap/models"
	"tap/similarity"
)

func main() {
	useLLM := flag.Bool("llm", false, "escalate rule misses to the Gemini oracle")
	createdBy := flag.Uint("user", 1, "user id recorded as the mapping creator")
	minScore := flag.Int("min-score", 70, "discard verdicts below this similarity score")
	flag.Parse()

	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	ctx := context.Background()

	ruleOracle := similarity.NewRuleOracle()
	var llmOracle similarity.Oracle
	if *useLLM {
		if config.AppConfig.GeminiAPIKey == "" {
			log.Fatal("GEMINI_API_KEY is required with -llm")
		}
		gemini, err := similarity.NewGeminiOracle(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini oracle: %v", err)
		}
		defer gemini.Close()
		llmOracle = gemini
	}

	var university models.Institution
	if err := db.Where("type = ? AND active = ?", models.InstitutionUniversity, true).First(&university).Error; err != nil {
		log.Fatal("University institution not found")
	}

	var usvCourses []models.Course
	db.Where("institution_id = ? AND active = ?", university.ID, true).Find(&usvCourses)
	log.Printf("Found %d university courses", len(usvCourses))

	var ccCourses []models.Course
	db.Where("institution_id <> ? AND active = ?", university.ID, true).Find(&ccCourses)
	log.Printf("Found %d community college courses", len(ccCourses))

	counts := map[models.EquivalencyType]int{}
	skippedExisting := 0

	for _, cc := range ccCourses {
		for _, usv := range usvCourses {
			verdict, err := ruleOracle.ScoreSimilarity(ctx, cc, usv)
			if err != nil {
				continue
			}
			if verdict.EquivalencyType == models.EquivalencyNone && llmOracle != nil {
				verdict, err = llmOracle.ScoreSimilarity(ctx, cc, usv)
				if err != nil {
					log.Printf("LLM verdict failed for %s -> %s: %v", cc.CourseCode, usv.CourseCode, err)
					continue
				}
			}
			if verdict.EquivalencyType == models.EquivalencyNone || verdict.SimilarityScore < *minScore {
				continue
			}

			// The unique course-pair index makes re-runs idempotent
			var existing models.ArticulationMapping
			if err := db.Where("cc_course_id = ? AND usv_course_id = ?", cc.ID, usv.ID).First(&existing).Error; err == nil {
				skippedExisting++
				continue
			}

			score := verdict.SimilarityScore
			mapping := models.ArticulationMapping{
				CCCourseID:      cc.ID,
				USVCourseID:     usv.ID,
				EquivalencyType: verdict.EquivalencyType,
				SimilarityScore: &score,
				Notes:           verdict.Notes,
				Status:          models.MappingStatusDraft,
				CreatedBy:       *createdBy,
			}
			if err := db.Create(&mapping).Error; err != nil {
				log.Printf("Error creating mapping %s -> %s: %v", cc.CourseCode, usv.CourseCode, err)
				continue
			}
			counts[verdict.EquivalencyType]++
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Direct", "Partial", "Elective", "Skipped (existing)"})
	table.Append([]string{
		strconv.Itoa(counts[models.EquivalencyDirect]),
		strconv.Itoa(counts[models.EquivalencyPartial]),
		strconv.Itoa(counts[models.EquivalencyElective]),
		strconv.Itoa(skippedExisting),
	})
	table.Render()

	total := counts[models.EquivalencyDirect] + counts[models.EquivalencyPartial] + counts[models.EquivalencyElective]
	color.Green("Generated %d draft mappings", total)
}
