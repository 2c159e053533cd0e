// Seeds the catalog: the university, its feeder community colleges, degree
// programs, GE areas, and a starter set of courses and requirements. Safe to
// re-run; existing rows are matched by their natural keys and skipped.
package main

import (
	"log"

	"github.com/fatih/color"
	"gorm.io/gorm"

	"tap/config"
	"tap/database"
	"tap/models"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	color.Cyan("Seeding catalog data...")

	usvID := seedInstitution(db, models.Institution{
		Name:      "University of Silicon Valley",
		ShortName: "USV",
		Type:      models.InstitutionUniversity,
		Website:   "https://www.usv.edu",
		Active:    true,
	})

	ccData := []models.Institution{
		{Name: "Foothill College", ShortName: "Foothill", Website: "https://foothill.edu"},
		{Name: "De Anza College", ShortName: "De Anza", Website: "https://deanza.edu"},
		{Name: "San José City College", ShortName: "SJCC", Website: "https://sjcc.edu"},
		{Name: "Evergreen Valley College", ShortName: "Evergreen", Website: "https://evc.edu"},
		{Name: "Sierra College", ShortName: "Sierra", Website: "https://sierracollege.edu"},
	}
	ccIDs := make(map[string]uint)
	for _, cc := range ccData {
		cc.Type = models.InstitutionCommunityCollege
		cc.Active = true
		ccIDs[cc.ShortName] = seedInstitution(db, cc)
	}

	programs := []models.DegreeProgram{
		{Name: "Digital Audio Technology", Code: "DAT", DegreeType: "Bachelor of Science", Department: "Digital Audio Technology", TotalUnitsRequired: 120, Active: true},
		{Name: "Business Administration", Code: "BSBA", DegreeType: "Bachelor of Science", Department: "Business, Entrepreneurship and Innovation", TotalUnitsRequired: 120, Active: true},
		{Name: "Software Development", Code: "SD", DegreeType: "Bachelor of Science", Department: "Computer Science", TotalUnitsRequired: 120, Active: true},
		{Name: "Digital Art and Animation", Code: "DAA", DegreeType: "Bachelor of Arts", Department: "Digital Art and Animation", TotalUnitsRequired: 120, Active: true},
		{Name: "Game Art", Code: "GA", DegreeType: "Bachelor of Arts", Department: "Game Design and Development", TotalUnitsRequired: 120, Active: true},
		{Name: "Game Design", Code: "GD", DegreeType: "Bachelor of Arts", Department: "Game Design and Development", TotalUnitsRequired: 120, Active: true},
		{Name: "Game Engineering", Code: "GE", DegreeType: "Bachelor of Science", Department: "Game Design and Development", TotalUnitsRequired: 120, Active: true},
	}
	programIDs := make(map[string]uint)
	for _, p := range programs {
		var existing models.DegreeProgram
		if err := db.Where("code = ?", p.Code).First(&existing).Error; err == nil {
			programIDs[p.Code] = existing.ID
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Fatalf("Failed to seed degree program %s: %v", p.Code, err)
		}
		programIDs[p.Code] = p.ID
	}

	geAreas := []models.GeArea{
		{Code: "ENG101", Label: "English Composition", Description: "College-level writing and composition", Transferable: true},
		{Code: "ENG251", Label: "Speech and Oral Communication", Description: "Public speaking and communication", Transferable: true},
		{Code: "MATH113", Label: "College Algebra", Description: "College algebra and quantitative reasoning", Transferable: true},
		{Code: "MS", Label: "Math or Science Course", Description: "Mathematics or natural sciences", Transferable: true},
		{Code: "SP", Label: "Social Perspectives Course", Description: "Social sciences and humanities", Transferable: true},
		{Code: "USV101", Label: "USV Foundations", Description: "Freshman seminar providing foundational skills", Transferable: false},
	}
	for _, ge := range geAreas {
		if err := db.Where("code = ?", ge.Code).First(&models.GeArea{}).Error; err == nil {
			continue
		}
		if err := db.Create(&ge).Error; err != nil {
			log.Fatalf("Failed to seed GE area %s: %v", ge.Code, err)
		}
	}

	// University GE courses
	usvCourses := []models.Course{
		{CourseCode: "ENG101", Title: "English Composition", Units: 4},
		{CourseCode: "ENG251", Title: "Public Speaking", Units: 4},
		{CourseCode: "MATH113", Title: "College Algebra", Units: 4},
		{CourseCode: "PSY101", Title: "Introduction to Psychology", Units: 4},
		{CourseCode: "BUS101", Title: "Introduction to Business", Units: 4},
		{CourseCode: "BUS210", Title: "Financial Accounting", Units: 4},
		{CourseCode: "ECON201", Title: "Macroeconomics", Units: 4},
		{CourseCode: "CS101", Title: "Introduction to Programming", Units: 4},
		{CourseCode: "CS201", Title: "Object-Oriented Programming", Units: 4},
		{CourseCode: "CS301", Title: "Data Structures and Algorithms", Units: 4},
	}
	usvCourseIDs := make(map[string]uint)
	for _, course := range usvCourses {
		course.InstitutionID = usvID
		course.Active = true
		usvCourseIDs[course.CourseCode] = seedCourse(db, course)
	}

	// Sample Foothill courses for the transfer estimator
	foothillCourses := []models.Course{
		{CourseCode: "ENGL 1A", Title: "Composition and Reading", Units: 5},
		{CourseCode: "COMM 1A", Title: "Public Speaking", Units: 5},
		{CourseCode: "MATH 106", Title: "College Algebra", Units: 5},
		{CourseCode: "PSYC 1", Title: "General Psychology", Units: 4},
		{CourseCode: "BUS 10", Title: "Introduction to Business", Units: 4},
		{CourseCode: "ACCT 1A", Title: "Financial Accounting I", Units: 5},
		{CourseCode: "CS 1A", Title: "Object-Oriented Programming Methodologies in Java", Units: 5},
	}
	for _, course := range foothillCourses {
		course.InstitutionID = ccIDs["Foothill"]
		course.Active = true
		seedCourse(db, course)
	}

	// BSBA requirements
	bsbaRequirements := []struct {
		courseCode string
		reqType    models.RequirementType
	}{
		{"ENG101", models.RequirementGeneralEd},
		{"ENG251", models.RequirementGeneralEd},
		{"MATH113", models.RequirementGeneralEd},
		{"PSY101", models.RequirementGeneralEd},
		{"BUS101", models.RequirementCore},
		{"BUS210", models.RequirementCore},
		{"ECON201", models.RequirementCore},
	}
	for _, req := range bsbaRequirements {
		seedRequirement(db, programIDs["BSBA"], usvCourseIDs[req.courseCode], req.reqType)
	}

	// SD requirements
	sdRequirements := []struct {
		courseCode string
		reqType    models.RequirementType
	}{
		{"ENG101", models.RequirementGeneralEd},
		{"MATH113", models.RequirementGeneralEd},
		{"CS101", models.RequirementCore},
		{"CS201", models.RequirementCore},
		{"CS301", models.RequirementCore},
	}
	for _, req := range sdRequirements {
		seedRequirement(db, programIDs["SD"], usvCourseIDs[req.courseCode], req.reqType)
	}

	color.Green("Seeding complete.")
}

func seedInstitution(db *gorm.DB, inst models.Institution) uint {
	var existing models.Institution
	if err := db.Where("name = ?", inst.Name).First(&existing).Error; err == nil {
		return existing.ID
	}
	if err := db.Create(&inst).Error; err != nil {
		log.Fatalf("Failed to seed institution %s: %v", inst.Name, err)
	}
	return inst.ID
}

func seedCourse(db *gorm.DB, course models.Course) uint {
	var existing models.Course
	if err := db.Where("institution_id = ? AND course_code = ?", course.InstitutionID, course.CourseCode).First(&existing).Error; err == nil {
		return existing.ID
	}
	if err := db.Create(&course).Error; err != nil {
		log.Fatalf("Failed to seed course %s: %v", course.CourseCode, err)
	}
	return course.ID
}

func seedRequirement(db *gorm.DB, programID, courseID uint, reqType models.RequirementType) {
	if programID == 0 || courseID == 0 {
		return
	}
	if err := db.Where("degree_program_id = ? AND course_id = ?", programID, courseID).First(&models.DegreeRequirement{}).Error; err == nil {
		return
	}
	req := models.DegreeRequirement{
		DegreeProgramID: programID,
		CourseID:        courseID,
		RequirementType: reqType,
		Required:        true,
	}
	if err := db.Create(&req).Error; err != nil {
		log.Fatalf("Failed to seed requirement (program=%d course=%d): %v", programID, courseID, err)
	}
}
