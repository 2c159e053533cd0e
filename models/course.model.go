package models

import "gorm.io/gorm"

// Course belongs to one institution. Units are stored as whole integers
// (a 4.5-unit catalog entry is rounded up at import time).
type Course struct {
	gorm.Model
	InstitutionID    uint   `gorm:"not null;uniqueIndex:idx_institution_course" json:"institutionId"`
	CourseCode       string `gorm:"size:50;not null;uniqueIndex:idx_institution_course;index" json:"courseCode"`
	Title            string `gorm:"size:500;not null" json:"title"`
	Units            int    `gorm:"not null" json:"units"`
	Description      string `gorm:"type:text" json:"description"`
	Prerequisites    string `gorm:"type:text" json:"prerequisites"`
	LearningOutcomes string `gorm:"type:text" json:"learningOutcomes"`
	Active           bool   `gorm:"default:true" json:"active"`

	Institution Institution `gorm:"foreignKey:InstitutionID" json:"institution,omitempty"`
}
