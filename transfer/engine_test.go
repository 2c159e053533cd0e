package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tap/models"
)

// testDB opens a fresh in-memory database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Institution{},
		&models.DegreeProgram{},
		&models.Course{},
		&models.DegreeRequirement{},
		&models.ArticulationMapping{},
	))
	return db
}

// fixture models the canonical scenario: Foothill's ENGL 1A (5 units) maps
// direct/approved to USV's ENG101 (4 units), a general_education
// requirement of the BSBA program.
type fixture struct {
	db       *gorm.DB
	usv      models.Institution
	foothill models.Institution
	bsba     models.DegreeProgram
	eng101   models.Course
	engl1A   models.Course
	mapping  models.ArticulationMapping
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testDB(t)

	f := &fixture{db: db}

	f.usv = models.Institution{Name: "University of Silicon Valley", ShortName: "USV", Type: models.InstitutionUniversity, Active: true}
	require.NoError(t, db.Create(&f.usv).Error)

	f.foothill = models.Institution{Name: "Foothill College", ShortName: "Foothill", Type: models.InstitutionCommunityCollege, Active: true}
	require.NoError(t, db.Create(&f.foothill).Error)

	f.bsba = models.DegreeProgram{Name: "Business Administration", Code: "BSBA", DegreeType: "Bachelor of Science", TotalUnitsRequired: 120, Active: true}
	require.NoError(t, db.Create(&f.bsba).Error)

	f.eng101 = models.Course{InstitutionID: f.usv.ID, CourseCode: "ENG101", Title: "English Composition", Units: 4, Active: true}
	require.NoError(t, db.Create(&f.eng101).Error)

	f.engl1A = models.Course{InstitutionID: f.foothill.ID, CourseCode: "ENGL 1A", Title: "Composition and Reading", Units: 5, Active: true}
	require.NoError(t, db.Create(&f.engl1A).Error)

	require.NoError(t, db.Create(&models.DegreeRequirement{
		DegreeProgramID: f.bsba.ID,
		CourseID:        f.eng101.ID,
		RequirementType: models.RequirementGeneralEd,
		Required:        true,
	}).Error)

	score := 95
	f.mapping = models.ArticulationMapping{
		CCCourseID:      f.engl1A.ID,
		USVCourseID:     f.eng101.ID,
		EquivalencyType: models.EquivalencyDirect,
		SimilarityScore: &score,
		Status:          models.MappingStatusApproved,
		CreatedBy:       1,
	}
	require.NoError(t, db.Create(&f.mapping).Error)

	return f
}

func (f *fixture) addCourse(t *testing.T, institutionID uint, code string, units int) models.Course {
	t.Helper()
	course := models.Course{InstitutionID: institutionID, CourseCode: code, Title: code, Units: units, Active: true}
	require.NoError(t, f.db.Create(&course).Error)
	return course
}

func (f *fixture) addMapping(t *testing.T, ccID, usvID uint, eq models.EquivalencyType, status models.MappingStatus) models.ArticulationMapping {
	t.Helper()
	m := models.ArticulationMapping{
		CCCourseID:      ccID,
		USVCourseID:     usvID,
		EquivalencyType: eq,
		Status:          status,
		CreatedBy:       1,
	}
	require.NoError(t, f.db.Create(&m).Error)
	return m
}

func TestResolveRequirements(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	resolved, err := engine.ResolveRequirements(f.bsba.ID)
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, f.eng101.ID, resolved[0].Course.ID)
	assert.Equal(t, models.RequirementGeneralEd, resolved[0].Requirement.RequirementType)
}

func TestResolveRequirementsUnknownProgram(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	resolved, err := engine.ResolveRequirements(9999)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolveRequirementsSkipsInactiveCourse(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	require.NoError(t, f.db.Model(&f.eng101).Update("active", false).Error)

	resolved, err := engine.ResolveRequirements(f.bsba.ID)
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestBuildPathway(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	pathway, err := engine.BuildPathway(f.foothill.ID, f.bsba.ID)
	require.NoError(t, err)
	require.Len(t, pathway, 1)

	item := pathway[0]
	assert.Equal(t, f.eng101.ID, item.USVCourse.ID)
	assert.Equal(t, models.RequirementGeneralEd, item.RequirementType)
	require.Len(t, item.CCMappings, 1)
	assert.Equal(t, f.engl1A.ID, item.CCMappings[0].CCCourse.ID)
	assert.Equal(t, f.mapping.ID, item.CCMappings[0].Mapping.ID)
}

func TestBuildPathwayKeepsUnmatchedRequirements(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	// A requirement with no mappings at all still appears
	math113 := f.addCourse(t, f.usv.ID, "MATH113", 4)
	require.NoError(t, f.db.Create(&models.DegreeRequirement{
		DegreeProgramID: f.bsba.ID,
		CourseID:        math113.ID,
		RequirementType: models.RequirementGeneralEd,
		Required:        true,
	}).Error)

	pathway, err := engine.BuildPathway(f.foothill.ID, f.bsba.ID)
	require.NoError(t, err)
	require.Len(t, pathway, 2)
	assert.Empty(t, pathway[1].CCMappings)
}

func TestBuildPathwayApprovedOnly(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	for _, status := range []models.MappingStatus{
		models.MappingStatusDraft,
		models.MappingStatusPending,
		models.MappingStatusRejected,
	} {
		require.NoError(t, f.db.Model(&f.mapping).Update("status", status).Error)

		pathway, err := engine.BuildPathway(f.foothill.ID, f.bsba.ID)
		require.NoError(t, err)
		require.Len(t, pathway, 1)
		assert.Empty(t, pathway[0].CCMappings, "status %s must not be visible", status)
	}
}

func TestBuildPathwayExcludesNoneEquivalency(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	// An approved mapping with equivalency "none" must not surface
	require.NoError(t, f.db.Model(&f.mapping).Update("equivalency_type", models.EquivalencyNone).Error)

	pathway, err := engine.BuildPathway(f.foothill.ID, f.bsba.ID)
	require.NoError(t, err)
	require.Len(t, pathway, 1)
	assert.Empty(t, pathway[0].CCMappings)
}

func TestBuildPathwayFiltersInstitution(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	deanza := models.Institution{Name: "De Anza College", Type: models.InstitutionCommunityCollege, Active: true}
	require.NoError(t, f.db.Create(&deanza).Error)

	pathway, err := engine.BuildPathway(deanza.ID, f.bsba.ID)
	require.NoError(t, err)
	require.Len(t, pathway, 1)
	assert.Empty(t, pathway[0].CCMappings, "another college's mappings must not leak in")
}

func TestCalculateCreditsScenario(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	summary, err := engine.CalculateCredits(f.foothill.ID, f.bsba.ID, []uint{f.engl1A.ID})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalTransferableUnits)
	assert.Equal(t, 1, summary.FulfilledRequirements)
	assert.Equal(t, 1, summary.TotalRequirements)
	require.Len(t, summary.MatchedCourses, 1)
	assert.Equal(t, f.engl1A.ID, summary.MatchedCourses[0].CCCourse.ID)
	assert.Equal(t, f.eng101.ID, summary.MatchedCourses[0].USVCourse.ID)
	assert.Equal(t, f.mapping.ID, summary.MatchedCourses[0].Mapping.ID)
}

func TestCalculateCreditsEmptyCompletedSet(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	summary, err := engine.CalculateCredits(f.foothill.ID, f.bsba.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalTransferableUnits)
	assert.Equal(t, 0, summary.FulfilledRequirements)
	assert.Equal(t, 1, summary.TotalRequirements)
	assert.Empty(t, summary.MatchedCourses)
}

func TestCalculateCreditsUnknownIdentifiers(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	summary, err := engine.CalculateCredits(9999, 9999, []uint{f.engl1A.ID})
	require.NoError(t, err)
	assert.Equal(t, CreditSummary{TotalRequirements: 0, MatchedCourses: []MatchedCourse{}}, summary)
}

func TestCalculateCreditsFirstMatchWins(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	// A second completed course also maps to ENG101; only one may count
	ewrt1A := f.addCourse(t, f.foothill.ID, "EWRT 1A", 4)
	f.addMapping(t, ewrt1A.ID, f.eng101.ID, models.EquivalencyDirect, models.MappingStatusApproved)

	summary, err := engine.CalculateCredits(f.foothill.ID, f.bsba.ID, []uint{f.engl1A.ID, ewrt1A.ID})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FulfilledRequirements)
	require.Len(t, summary.MatchedCourses, 1)
	// Lowest mapping id wins the tie-break
	assert.Equal(t, f.engl1A.ID, summary.MatchedCourses[0].CCCourse.ID)
	assert.Equal(t, 5, summary.TotalTransferableUnits)
}

func TestCalculateCreditsPendingNotMatchable(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	require.NoError(t, f.db.Model(&f.mapping).Update("status", models.MappingStatusPending).Error)

	summary, err := engine.CalculateCredits(f.foothill.ID, f.bsba.ID, []uint{f.engl1A.ID})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.FulfilledRequirements)
	assert.Equal(t, 0, summary.TotalTransferableUnits)
	assert.Equal(t, 1, summary.TotalRequirements)
}

func TestCalculateCreditsMonotonicity(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	// Second requirement matched only by the superset
	cs101 := f.addCourse(t, f.usv.ID, "CS101", 4)
	require.NoError(t, f.db.Create(&models.DegreeRequirement{
		DegreeProgramID: f.bsba.ID,
		CourseID:        cs101.ID,
		RequirementType: models.RequirementCore,
		Required:        true,
	}).Error)
	cs1A := f.addCourse(t, f.foothill.ID, "CS 1A", 5)
	f.addMapping(t, cs1A.ID, cs101.ID, models.EquivalencyDirect, models.MappingStatusApproved)

	smaller, err := engine.CalculateCredits(f.foothill.ID, f.bsba.ID, []uint{f.engl1A.ID})
	require.NoError(t, err)
	larger, err := engine.CalculateCredits(f.foothill.ID, f.bsba.ID, []uint{f.engl1A.ID, cs1A.ID})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, larger.FulfilledRequirements, smaller.FulfilledRequirements)
	assert.GreaterOrEqual(t, larger.TotalTransferableUnits, smaller.TotalTransferableUnits)
}

func TestCalculateCreditsIdempotent(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	first, err := engine.CalculateCredits(f.foothill.ID, f.bsba.ID, []uint{f.engl1A.ID})
	require.NoError(t, err)
	second, err := engine.CalculateCredits(f.foothill.ID, f.bsba.ID, []uint{f.engl1A.ID})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateCreditsBounds(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	// Extra unmatched requirement keeps total above fulfilled
	math113 := f.addCourse(t, f.usv.ID, "MATH113", 4)
	require.NoError(t, f.db.Create(&models.DegreeRequirement{
		DegreeProgramID: f.bsba.ID,
		CourseID:        math113.ID,
		RequirementType: models.RequirementGeneralEd,
		Required:        true,
	}).Error)

	summary, err := engine.CalculateCredits(f.foothill.ID, f.bsba.ID, []uint{f.engl1A.ID})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, summary.FulfilledRequirements, 0)
	assert.LessOrEqual(t, summary.FulfilledRequirements, summary.TotalRequirements)
	assert.Len(t, summary.MatchedCourses, summary.FulfilledRequirements)
}
