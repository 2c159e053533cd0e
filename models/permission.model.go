package models

import "gorm.io/gorm"

// Permission grants a named capability to a user. Admin accounts are seeded
// with the full set on signup.
type Permission struct {
	gorm.Model
	UserID     uint   `gorm:"not null;index" json:"userId"`
	Permission string `gorm:"size:100;not null" json:"permission"`
	IsDeleted  bool   `gorm:"default:false" json:"-"`
}

// Capability names checked by the permission middleware.
const (
	PermManageCatalog  = "MANAGE_CATALOG"
	PermAuthorMappings = "AUTHOR_MAPPINGS"
	PermReviewMappings = "REVIEW_MAPPINGS"
	PermRunImports     = "RUN_IMPORTS"
)
