package models

import "gorm.io/gorm"

// GeArea is a general-education area of the university catalog.
type GeArea struct {
	gorm.Model
	Code         string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Label        string `gorm:"size:255;not null" json:"label"`
	Description  string `gorm:"type:text" json:"description"`
	Transferable bool   `gorm:"default:true" json:"transferable"`
	Color        string `gorm:"size:100" json:"color"` // UI badge class
}

// GeMapping records which courses satisfy which GE areas.
type GeMapping struct {
	gorm.Model
	CourseID uint   `gorm:"not null;uniqueIndex:idx_course_ge" json:"courseId"`
	GeAreaID uint   `gorm:"not null;uniqueIndex:idx_course_ge" json:"geAreaId"`
	Notes    string `gorm:"type:text" json:"notes"`

	GeArea GeArea `gorm:"foreignKey:GeAreaID" json:"geArea,omitempty"`
}
