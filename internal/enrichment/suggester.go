// Package enrichment provides the optional AI-suggestion collaborator. A
// failed or absent suggester never affects tailoring correctness; the
// orchestrator logs the failure and continues with rule-based substitution.
package enrichment

import (
	"context"
	"fmt"
	"strings"
)

// maxPromptSection truncates the job description and resume excerpts embedded
// in the prompt to keep it within token limits.
const maxPromptSection = 2000

// Suggester produces free-form tailoring suggestions for a resume against a
// job description.
type Suggester interface {
	// SuggestResumeEdits returns suggestion text, or an error the caller is
	// expected to log and ignore.
	SuggestResumeEdits(ctx context.Context, jobText, resumeText string) (string, error)
	// Close releases any resources held by the suggester.
	Close() error
}

// Noop is the capability-absent suggester.
type Noop struct{}

// SuggestResumeEdits returns no suggestions.
func (Noop) SuggestResumeEdits(context.Context, string, string) (string, error) {
	return "", nil
}

// Close is a no-op.
func (Noop) Close() error { return nil }

// BuildSuggestionPrompt constructs the resume-modification prompt. Exported
// for tests; the prompt shape is part of the enrichment contract.
func BuildSuggestionPrompt(jobText, resumeText string) string {
	var sb strings.Builder
	sb.WriteString("Analyze this job description and suggest 5-7 specific modifications to make the resume more relevant:\n\n")
	sb.WriteString("JOB DESCRIPTION:\n")
	sb.WriteString(truncate(jobText, maxPromptSection))
	sb.WriteString("\n\nRESUME:\n")
	sb.WriteString(truncate(resumeText, maxPromptSection))
	sb.WriteString("\n\nPlease provide specific suggestions in the format:\n")
	sb.WriteString("1. [SECTION] - [SPECIFIC CHANGE RECOMMENDATION]\n")
	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// SuggestionError wraps a failed enrichment call.
type SuggestionError struct {
	Message string
	Cause   error
}

func (e *SuggestionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("enrichment failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("enrichment failed: %s", e.Message)
}

func (e *SuggestionError) Unwrap() error {
	return e.Cause
}
