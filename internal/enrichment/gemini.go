package enrichment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini model used for suggestion generation.
// Suggestions are advisory text, so the fast tier is enough.
const DefaultModel = "gemini-2.5-flash"

// GeminiSuggester implements Suggester using the Gemini API.
type GeminiSuggester struct {
	client *genai.Client
	model  string
}

// NewGeminiSuggester creates a suggester for the given API key. An empty
// model selects DefaultModel.
func NewGeminiSuggester(ctx context.Context, apiKey, model string) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, &SuggestionError{Message: "API key is required"}
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &SuggestionError{Message: "failed to create Gemini client", Cause: err}
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiSuggester{client: client, model: model}, nil
}

// SuggestResumeEdits generates tailoring suggestions. Single attempt, no
// retries: a failed call is logged by the caller and tailoring continues.
func (s *GeminiSuggester) SuggestResumeEdits(ctx context.Context, jobText, resumeText string) (string, error) {
	model := s.client.GenerativeModel(s.model)
	model.SetTemperature(0.1)

	prompt := BuildSuggestionPrompt(jobText, resumeText)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &SuggestionError{Message: "suggestion call failed", Cause: err}
	}

	return extractText(resp)
}

// Close releases the underlying client.
func (s *GeminiSuggester) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

// extractText pulls the text parts out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &SuggestionError{Message: "no candidates in response"}
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &SuggestionError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", &SuggestionError{Message: "no text parts in response"}
	}
	return strings.Join(parts, ""), nil
}

var _ Suggester = (*GeminiSuggester)(nil)

// String identifies the suggester in verbose output.
func (s *GeminiSuggester) String() string {
	return fmt.Sprintf("gemini(%s)", s.model)
}
