package transfer

// CalculateCredits applies a student's completed community-college courses
// against the transfer pathway. For each requirement the first mapping whose
// CC course the student has completed wins; a requirement contributes at
// most one match, so two completed courses mapping to the same university
// course never double-count.
//
// An empty completed set, an unknown institution, or an unknown program all
// degrade to a zero summary rather than an error. The operation is a pure
// read: identical inputs against an unchanged store yield an identical
// summary.
func (e *Engine) CalculateCredits(ccInstitutionID, degreeProgramID uint, completedCourseIDs []uint) (CreditSummary, error) {
	pathway, err := e.BuildPathway(ccInstitutionID, degreeProgramID)
	if err != nil {
		return CreditSummary{}, err
	}

	completed := make(map[uint]struct{}, len(completedCourseIDs))
	for _, id := range completedCourseIDs {
		completed[id] = struct{}{}
	}

	summary := CreditSummary{
		TotalRequirements: len(pathway),
		MatchedCourses:    []MatchedCourse{},
	}

	for _, item := range pathway {
		for _, match := range item.CCMappings {
			if _, ok := completed[match.CCCourse.ID]; !ok {
				continue
			}
			summary.TotalTransferableUnits += match.CCCourse.Units
			summary.FulfilledRequirements++
			summary.MatchedCourses = append(summary.MatchedCourses, MatchedCourse{
				CCCourse:  match.CCCourse,
				USVCourse: item.USVCourse,
				Mapping:   match.Mapping,
			})
			break // first match wins
		}
	}

	return summary, nil
}
