package models

import "gorm.io/gorm"

// RequirementType classifies a degree requirement
type RequirementType string

const (
	RequirementCore      RequirementType = "core"
	RequirementMajor     RequirementType = "major"
	RequirementElective  RequirementType = "elective"
	RequirementGeneralEd RequirementType = "general_education"
)

// DegreeRequirement ties a university course to a degree program.
// CourseID always references a course owned by the university institution.
type DegreeRequirement struct {
	gorm.Model
	DegreeProgramID uint            `gorm:"not null;index;uniqueIndex:idx_degree_course" json:"degreeProgramId"`
	CourseID        uint            `gorm:"not null;uniqueIndex:idx_degree_course" json:"courseId"`
	RequirementType RequirementType `gorm:"type:varchar(20);not null" json:"requirementType"`
	GeAreaID        *uint           `json:"geAreaId"` // only for general_education
	Required        bool            `gorm:"default:true" json:"required"`
	Notes           string          `gorm:"type:text" json:"notes"`

	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
