package models

import "gorm.io/gorm"

type DegreeProgram struct {
	gorm.Model
	Name               string `gorm:"size:255;not null" json:"name"`
	Code               string `gorm:"size:50;not null;uniqueIndex" json:"code"`
	DegreeType         string `gorm:"size:100;not null" json:"degreeType"` // "Bachelor of Science", "Bachelor of Arts"
	Department         string `gorm:"size:255" json:"department"`
	TotalUnitsRequired int    `gorm:"not null" json:"totalUnitsRequired"`
	Description        string `gorm:"type:text" json:"description"`
	Active             bool   `gorm:"default:true" json:"active"`
}
