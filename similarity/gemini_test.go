package similarity

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tap/models"
)

func TestParseAnalysis(t *testing.T) {
	parts := []genai.Part{genai.Text(`{"equivalencyType": "direct", "similarityScore": 92, "notes": "Both cover college composition"}`)}

	analysis, err := parseAnalysis(parts)
	require.NoError(t, err)
	assert.Equal(t, models.EquivalencyDirect, analysis.EquivalencyType)
	assert.Equal(t, 92, analysis.SimilarityScore)
	assert.Equal(t, "Both cover college composition", analysis.Notes)
}

func TestParseAnalysisFencedJSON(t *testing.T) {
	parts := []genai.Part{genai.Text("```json\n{\"equivalencyType\": \"partial\", \"similarityScore\": 70, \"notes\": \"overlap\"}\n```")}

	analysis, err := parseAnalysis(parts)
	require.NoError(t, err)
	assert.Equal(t, models.EquivalencyPartial, analysis.EquivalencyType)
	assert.Equal(t, 70, analysis.SimilarityScore)
}

func TestParseAnalysisRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"not json", "the courses look similar"},
		{"unknown type", `{"equivalencyType": "maybe", "similarityScore": 50, "notes": ""}`},
		{"score too high", `{"equivalencyType": "direct", "similarityScore": 150, "notes": ""}`},
		{"negative score", `{"equivalencyType": "direct", "similarityScore": -5, "notes": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAnalysis([]genai.Part{genai.Text(tt.text)})
			assert.Error(t, err)
		})
	}
}

func TestBuildPromptIncludesCourseDetails(t *testing.T) {
	cc := models.Course{CourseCode: "ENGL 1A", Title: "Composition and Reading", Units: 5}
	usv := models.Course{CourseCode: "ENG101", Title: "English Composition", Units: 4, Description: "College-level writing"}

	prompt := buildPrompt(cc, usv)
	assert.Contains(t, prompt, "ENGL 1A")
	assert.Contains(t, prompt, "ENG101")
	assert.Contains(t, prompt, "College-level writing")
	assert.Contains(t, prompt, "No description") // empty CC description
}
