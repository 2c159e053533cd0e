package transfer

import "tap/models"

// ResolveRequirements returns every requirement of a degree program paired
// with its university course, in insertion order. Requirements whose course
// is missing or deactivated are skipped: they cannot be matched against
// anything. An unknown program yields an empty slice, not an error.
func (e *Engine) ResolveRequirements(degreeProgramID uint) ([]ResolvedRequirement, error) {
	var requirements []models.DegreeRequirement
	if err := e.db.
		Where("degree_program_id = ?", degreeProgramID).
		Preload("Course").
		Order("id ASC").
		Find(&requirements).Error; err != nil {
		return nil, err
	}

	resolved := make([]ResolvedRequirement, 0, len(requirements))
	for _, req := range requirements {
		if req.Course.ID == 0 || !req.Course.Active {
			continue
		}
		resolved = append(resolved, ResolvedRequirement{
			Requirement: req,
			Course:      req.Course,
		})
	}
	return resolved, nil
}
