// Package transfer implements the transfer pathway and credit calculation
// engine: which degree requirements a community-college student can satisfy
// through approved articulation mappings, and how many units transfer for a
// given set of completed courses.
package transfer

import (
	"gorm.io/gorm"

	"tap/models"
)

// Engine runs pathway and credit queries against an injected database
// handle. It performs no writes and keeps no state between calls, so a
// single Engine is safe to share across requests.
type Engine struct {
	db *gorm.DB
}

// NewEngine returns an Engine bound to the given database handle.
func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// ResolvedRequirement pairs a degree requirement with its university course.
type ResolvedRequirement struct {
	Requirement models.DegreeRequirement `json:"requirement"`
	Course      models.Course            `json:"course"`
}

// CCMatch is one approved articulation option for a requirement.
type CCMatch struct {
	Mapping  models.ArticulationMapping `json:"mapping"`
	CCCourse models.Course              `json:"ccCourse"`
}

// PathwayItem is the per-requirement view of transfer options from a chosen
// community college. CCMappings is empty when no approved path exists yet.
type PathwayItem struct {
	USVCourse       models.Course          `json:"usvCourse"`
	RequirementType models.RequirementType `json:"requirementType"`
	CCMappings      []CCMatch              `json:"ccMappings"`
}

// MatchedCourse records one requirement satisfied by a completed CC course.
type MatchedCourse struct {
	CCCourse  models.Course              `json:"ccCourse"`
	USVCourse models.Course              `json:"usvCourse"`
	Mapping   models.ArticulationMapping `json:"mapping"`
}

// CreditSummary aggregates a student's completed courses against a pathway.
type CreditSummary struct {
	TotalTransferableUnits int             `json:"totalTransferableUnits"`
	FulfilledRequirements  int             `json:"fulfilledRequirements"`
	TotalRequirements      int             `json:"totalRequirements"`
	MatchedCourses         []MatchedCourse `json:"matchedCourses"`
}
