// Package similarity scores how closely a community-college course matches
// a university course. The score feeds the mapping authoring flow only; the
// transfer engine never depends on it.
package similarity

import (
	"context"

	"tap/models"
)

// Analysis is the oracle's verdict on a course pair.
type Analysis struct {
	EquivalencyType models.EquivalencyType `json:"equivalencyType"`
	SimilarityScore int                    `json:"similarityScore"` // 0-100
	Notes           string                 `json:"notes"`
}

// Oracle scores the similarity between two courses. Implementations may be
// slow or unavailable; callers must treat a failure as "no verdict", never
// as a blocked request path.
type Oracle interface {
	ScoreSimilarity(ctx context.Context, ccCourse, usvCourse models.Course) (Analysis, error)
}
