package similarity

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tap/models"
)

// GeminiOracle scores course pairs with the Gemini API.
type GeminiOracle struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiOracle builds a Gemini-backed oracle. modelName is e.g.
// "gemini-1.5-flash".
func NewGeminiOracle(ctx context.Context, apiKey, modelName string) (*GeminiOracle, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini client: %v", err)
	}

	model := client.GenerativeModel(modelName)

	// Low temperature for consistent scoring across runs
	temp := float32(0.2)
	model.Temperature = &temp
	model.ResponseMIMEType = "application/json"

	return &GeminiOracle{client: client, model: model}, nil
}

// Close releases the underlying API client.
func (o *GeminiOracle) Close() error {
	return o.client.Close()
}

// ScoreSimilarity asks the model for an equivalency verdict on the course
// pair. Retries with backoff on transient failures; gives up after three
// attempts.
func (o *GeminiOracle) ScoreSimilarity(ctx context.Context, ccCourse, usvCourse models.Course) (Analysis, error) {
	prompt := buildPrompt(ccCourse, usvCourse)

	backoff := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
	}

	var lastErr error
	for _, wait := range backoff {
		select {
		case <-ctx.Done():
			return Analysis{}, ctx.Err()
		default:
		}

		resp, err := o.model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			time.Sleep(wait)
			continue
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
			lastErr = fmt.Errorf("no response candidates")
			time.Sleep(wait)
			continue
		}

		analysis, err := parseAnalysis(resp.Candidates[0].Content.Parts)
		if err != nil {
			lastErr = err
			time.Sleep(wait)
			continue
		}
		return analysis, nil
	}

	return Analysis{}, fmt.Errorf("similarity analysis failed: %v", lastErr)
}

func buildPrompt(ccCourse, usvCourse models.Course) string {
	return fmt.Sprintf(`Analyze if these two courses are equivalent or similar enough for transfer credit.

Community College Course:
- Code: %s
- Title: %s
- Units: %d
- Description: %s

University Course:
- Code: %s
- Title: %s
- Units: %d
- Description: %s

Determine:
1. Are these courses equivalent? (direct, partial, elective, or none)
2. Similarity score (0-100)
3. Brief justification

Respond in JSON format:
{"equivalencyType": "direct" | "partial" | "elective" | "none", "similarityScore": 0-100, "notes": "brief explanation"}`,
		ccCourse.CourseCode, ccCourse.Title, ccCourse.Units, orNA(ccCourse.Description),
		usvCourse.CourseCode, usvCourse.Title, usvCourse.Units, orNA(usvCourse.Description))
}

func parseAnalysis(parts []genai.Part) (Analysis, error) {
	var raw strings.Builder
	for _, part := range parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}

	// Models occasionally wrap JSON in markdown fences despite the MIME hint
	cleaned := strings.TrimSpace(raw.String())
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var analysis Analysis
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return Analysis{}, fmt.Errorf("unparseable analysis response: %v", err)
	}

	switch analysis.EquivalencyType {
	case models.EquivalencyDirect, models.EquivalencyPartial, models.EquivalencyElective, models.EquivalencyNone:
	default:
		return Analysis{}, fmt.Errorf("unknown equivalency type %q", analysis.EquivalencyType)
	}
	if analysis.SimilarityScore < 0 || analysis.SimilarityScore > 100 {
		return Analysis{}, fmt.Errorf("similarity score %d out of range", analysis.SimilarityScore)
	}

	return analysis, nil
}

func orNA(s string) string {
	if s == "" {
		return "No description"
	}
	return s
}
