package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tap/models"
)

func TestListMappingsFilters(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	// A pending mapping from a second college
	deanza := models.Institution{Name: "De Anza College", Type: models.InstitutionCommunityCollege, Active: true}
	require.NoError(t, f.db.Create(&deanza).Error)
	ewrt1A := f.addCourse(t, deanza.ID, "EWRT 1A", 5)
	pending := f.addMapping(t, ewrt1A.ID, f.eng101.ID, models.EquivalencyDirect, models.MappingStatusPending)

	all, err := engine.ListMappings(MappingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved, err := engine.ListMappings(MappingFilter{Status: models.MappingStatusApproved})
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, f.mapping.ID, approved[0].ID)

	byCC, err := engine.ListMappings(MappingFilter{CCCourseID: ewrt1A.ID})
	require.NoError(t, err)
	require.Len(t, byCC, 1)
	assert.Equal(t, pending.ID, byCC[0].ID)

	byUSV, err := engine.ListMappings(MappingFilter{USVCourseID: f.eng101.ID})
	require.NoError(t, err)
	assert.Len(t, byUSV, 2)

	byInstitution, err := engine.ListMappings(MappingFilter{InstitutionID: deanza.ID})
	require.NoError(t, err)
	require.Len(t, byInstitution, 1)
	assert.Equal(t, pending.ID, byInstitution[0].ID)
}

func TestListMappingsPreloadsCourses(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	mappings, err := engine.ListMappings(MappingFilter{})
	require.NoError(t, err)
	require.Len(t, mappings, 1)
	assert.Equal(t, "ENGL 1A", mappings[0].CCCourse.CourseCode)
	assert.Equal(t, "ENG101", mappings[0].USVCourse.CourseCode)
	assert.Equal(t, f.foothill.ID, mappings[0].CCCourse.Institution.ID)
}

func TestStatistics(t *testing.T) {
	f := newFixture(t)
	engine := NewEngine(f.db)

	// One extra pending elective mapping and one inactive course
	ewrt1A := f.addCourse(t, f.foothill.ID, "EWRT 1A", 4)
	f.addMapping(t, ewrt1A.ID, f.eng101.ID, models.EquivalencyElective, models.MappingStatusPending)
	inactive := f.addCourse(t, f.foothill.ID, "OLD 99", 3)
	require.NoError(t, f.db.Model(&inactive).Update("active", false).Error)

	stats, err := engine.Statistics()
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalMappings)
	assert.Equal(t, int64(1), stats.ApprovedMappings)
	assert.Equal(t, int64(1), stats.DirectEquivalencies)
	assert.Equal(t, int64(3), stats.TotalCourses) // ENG101, ENGL 1A, EWRT 1A
}
