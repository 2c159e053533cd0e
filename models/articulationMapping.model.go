package models

import (
	"time"

	"gorm.io/gorm"
)

// EquivalencyType classifies how closely a CC course matches a university course
type EquivalencyType string

const (
	EquivalencyDirect   EquivalencyType = "direct"
	EquivalencyPartial  EquivalencyType = "partial"
	EquivalencyElective EquivalencyType = "elective"
	EquivalencyNone     EquivalencyType = "none"
)

// MappingStatus is the review state of an articulation mapping
type MappingStatus string

const (
	MappingStatusDraft    MappingStatus = "draft"
	MappingStatusPending  MappingStatus = "pending"
	MappingStatusApproved MappingStatus = "approved"
	MappingStatusRejected MappingStatus = "rejected"
)

// ArticulationMapping declares an equivalency between a community-college
// course and a university course. Only approved mappings are visible to the
// transfer pathway builder. Unique per (ccCourseId, usvCourseId).
type ArticulationMapping struct {
	gorm.Model
	CCCourseID      uint            `gorm:"column:cc_course_id;not null;index;uniqueIndex:idx_cc_usv" json:"ccCourseId"`
	USVCourseID     uint            `gorm:"column:usv_course_id;not null;index;uniqueIndex:idx_cc_usv" json:"usvCourseId"`
	EquivalencyType EquivalencyType `gorm:"type:varchar(20);not null" json:"equivalencyType"`
	SimilarityScore *int            `json:"similarityScore"` // 0-100, null when never scored
	Notes           string          `gorm:"type:text" json:"notes"`
	Status          MappingStatus   `gorm:"type:varchar(20);default:'draft';index" json:"status"`
	ReviewedBy      *uint           `json:"reviewedBy"`
	ReviewedAt      *time.Time      `json:"reviewedAt"`
	CreatedBy       uint            `gorm:"not null" json:"createdBy"`

	CCCourse  Course `gorm:"foreignKey:CCCourseID" json:"ccCourse,omitempty"`
	USVCourse Course `gorm:"foreignKey:USVCourseID" json:"usvCourse,omitempty"`
}
