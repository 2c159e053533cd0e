package models

import "gorm.io/gorm"

// InstitutionType distinguishes the university from feeder community colleges
type InstitutionType string

const (
	InstitutionUniversity       InstitutionType = "university"
	InstitutionCommunityCollege InstitutionType = "community_college"
)

type Institution struct {
	gorm.Model
	Name       string          `gorm:"size:255;not null;index" json:"name"`
	ShortName  string          `gorm:"size:100" json:"shortName"`
	Type       InstitutionType `gorm:"type:varchar(20);not null" json:"type"`
	Website    string          `gorm:"size:500" json:"website"`
	CatalogURL string          `gorm:"size:500" json:"catalogUrl"`
	Active     bool            `gorm:"default:true" json:"active"`
}
