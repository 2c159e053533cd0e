package transfer

import "tap/models"

// BuildPathway maps each requirement of the degree program to the approved
// articulation mappings whose source course belongs to the given community
// college. Requirements without any approved mapping still appear with an
// empty CCMappings list, so callers can show "no transfer path yet".
//
// Mappings are ordered by mapping ID ascending, which fixes the tie-break
// for the calculator's first-match rule. Mappings with equivalency type
// "none" are excluded even when approved: an approved non-equivalency must
// never count as a transfer match.
//
// One query per requirement is fine at catalog scale (hundreds of rows).
func (e *Engine) BuildPathway(ccInstitutionID, degreeProgramID uint) ([]PathwayItem, error) {
	resolved, err := e.ResolveRequirements(degreeProgramID)
	if err != nil {
		return nil, err
	}

	pathway := make([]PathwayItem, 0, len(resolved))
	for _, req := range resolved {
		var mappings []models.ArticulationMapping
		if err := e.db.
			Joins("JOIN courses ON courses.id = articulation_mappings.cc_course_id").
			Where("articulation_mappings.usv_course_id = ?", req.Course.ID).
			Where("articulation_mappings.status = ?", models.MappingStatusApproved).
			Where("articulation_mappings.equivalency_type <> ?", models.EquivalencyNone).
			Where("courses.institution_id = ? AND courses.active = ?", ccInstitutionID, true).
			Preload("CCCourse").
			Order("articulation_mappings.id ASC").
			Find(&mappings).Error; err != nil {
			return nil, err
		}

		matches := make([]CCMatch, 0, len(mappings))
		for _, m := range mappings {
			ccCourse := m.CCCourse
			m.CCCourse = models.Course{} // course travels alongside, not nested
			matches = append(matches, CCMatch{Mapping: m, CCCourse: ccCourse})
		}

		pathway = append(pathway, PathwayItem{
			USVCourse:       req.Course,
			RequirementType: req.Requirement.RequirementType,
			CCMappings:      matches,
		})
	}

	return pathway, nil
}
