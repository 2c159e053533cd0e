package transfer

import "tap/models"

// MappingFilter narrows ListMappings. Zero values mean "no filter".
type MappingFilter struct {
	Status        models.MappingStatus
	CCCourseID    uint
	USVCourseID   uint
	InstitutionID uint // institution owning the CC course
}

// ListMappings is the read surface shared by the authoring UI and the
// pathway builder, newest first. Courses are preloaded so the caller can
// render codes and titles without further queries.
func (e *Engine) ListMappings(filter MappingFilter) ([]models.ArticulationMapping, error) {
	query := e.db.Model(&models.ArticulationMapping{}).
		Preload("CCCourse").
		Preload("CCCourse.Institution").
		Preload("USVCourse")

	if filter.Status != "" {
		query = query.Where("articulation_mappings.status = ?", filter.Status)
	}
	if filter.CCCourseID != 0 {
		query = query.Where("articulation_mappings.cc_course_id = ?", filter.CCCourseID)
	}
	if filter.USVCourseID != 0 {
		query = query.Where("articulation_mappings.usv_course_id = ?", filter.USVCourseID)
	}
	if filter.InstitutionID != 0 {
		query = query.
			Joins("JOIN courses ON courses.id = articulation_mappings.cc_course_id").
			Where("courses.institution_id = ?", filter.InstitutionID)
	}

	var mappings []models.ArticulationMapping
	if err := query.Order("articulation_mappings.created_at DESC").Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

// Stats holds the dashboard counters.
type Stats struct {
	TotalMappings       int64 `json:"totalMappings"`
	ApprovedMappings    int64 `json:"approvedMappings"`
	DirectEquivalencies int64 `json:"directEquivalencies"`
	TotalCourses        int64 `json:"totalCourses"`
}

// Statistics returns aggregate counts for the admin dashboard.
func (e *Engine) Statistics() (Stats, error) {
	var stats Stats

	if err := e.db.Model(&models.ArticulationMapping{}).Count(&stats.TotalMappings).Error; err != nil {
		return stats, err
	}
	if err := e.db.Model(&models.ArticulationMapping{}).
		Where("status = ?", models.MappingStatusApproved).
		Count(&stats.ApprovedMappings).Error; err != nil {
		return stats, err
	}
	if err := e.db.Model(&models.ArticulationMapping{}).
		Where("equivalency_type = ?", models.EquivalencyDirect).
		Count(&stats.DirectEquivalencies).Error; err != nil {
		return stats, err
	}
	if err := e.db.Model(&models.Course{}).
		Where("active = ?", true).
		Count(&stats.TotalCourses).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
