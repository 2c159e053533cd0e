package similarity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tap/models"
)

func TestRuleOracleMatches(t *testing.T) {
	oracle := NewRuleOracle()
	ctx := context.Background()

	tests := []struct {
		ccCode    string
		usvCode   string
		wantType  models.EquivalencyType
		wantScore int
	}{
		{"ENGL 1A", "ENG101", models.EquivalencyDirect, 95},
		{"EWRT 1A", "ENG101", models.EquivalencyDirect, 95},
		{"ENGL 1B", "ENG101", models.EquivalencyPartial, 85},
		{"MATH 1A", "MATH113", models.EquivalencyDirect, 100},
		{"ACCT 1A", "BUS210", models.EquivalencyDirect, 95},
		{"CS 1A", "CS101", models.EquivalencyDirect, 90},
		{"cs 1a", "CS101", models.EquivalencyDirect, 90}, // case-insensitive
		{"PHOT 1", "ART101", models.EquivalencyPartial, 70},
	}

	for _, tt := range tests {
		analysis, err := oracle.ScoreSimilarity(ctx,
			models.Course{CourseCode: tt.ccCode},
			models.Course{CourseCode: tt.usvCode})
		require.NoError(t, err)
		assert.Equal(t, tt.wantType, analysis.EquivalencyType, "%s -> %s", tt.ccCode, tt.usvCode)
		assert.Equal(t, tt.wantScore, analysis.SimilarityScore, "%s -> %s", tt.ccCode, tt.usvCode)
		assert.NotEmpty(t, analysis.Notes)
	}
}

func TestRuleOracleNoMatch(t *testing.T) {
	oracle := NewRuleOracle()

	analysis, err := oracle.ScoreSimilarity(context.Background(),
		models.Course{CourseCode: "UNDW 12"},
		models.Course{CourseCode: "ENG101"})
	require.NoError(t, err)
	assert.Equal(t, models.EquivalencyNone, analysis.EquivalencyType)
	assert.Zero(t, analysis.SimilarityScore)
}

func TestRuleOracleRequiresTargetCodeMatch(t *testing.T) {
	oracle := NewRuleOracle()

	// ENGL 1A only articulates to ENG101, not to an arbitrary target
	analysis, err := oracle.ScoreSimilarity(context.Background(),
		models.Course{CourseCode: "ENGL 1A"},
		models.Course{CourseCode: "MATH113"})
	require.NoError(t, err)
	assert.Equal(t, models.EquivalencyNone, analysis.EquivalencyType)
}
