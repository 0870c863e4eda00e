package rewriting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/doc-tailor/internal/extraction"
)

var testNow = time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

func TestBuildPlaceholders_FactsResolved(t *testing.T) {
	facts := extraction.Facts{
		Company:  "Acme Corp",
		JobTitle: "Backend Engineer",
		Keywords: []string{"Go", "PostgreSQL", "Docker", "AWS"},
	}

	placeholders := BuildPlaceholders(facts, testNow)

	assert.Equal(t, "Acme Corp", placeholders["[COMPANY_NAME]"])
	assert.Equal(t, "Backend Engineer", placeholders["[POSITION_TITLE]"])
	assert.Equal(t, "March 5, 2026", placeholders["[Current Date]"])
	assert.Equal(t, "Go, PostgreSQL, Docker", placeholders["[relevant skills]"])
	assert.Equal(t, "Go", placeholders["[skill 1]"])
	assert.Equal(t, "PostgreSQL", placeholders["[skill 2]"])
	assert.Equal(t, "Docker", placeholders["[skill 3]"])
	assert.Equal(t, "successfully delivered projects using Go", placeholders["[brief accomplishment that relates to the job]"])
	assert.Equal(t, "Go, PostgreSQL", placeholders["[relevant experience]"])
}

func TestBuildPlaceholders_NoKeywords_SlotFallbacks(t *testing.T) {
	placeholders := BuildPlaceholders(extraction.Facts{Company: "COMPANY_NAME", JobTitle: "POSITION_TITLE"}, testNow)

	assert.Equal(t, "programming", placeholders["[skill 1]"])
	assert.Equal(t, "development", placeholders["[skill 2]"])
	assert.Equal(t, "problem-solving", placeholders["[skill 3]"])
	assert.Equal(t, "", placeholders["[relevant skills]"])
	assert.Equal(t, "successfully delivered projects using various technologies", placeholders["[brief accomplishment that relates to the job]"])
	assert.Equal(t, "deliver high-quality solutions", placeholders["[relevant skill for the job]"])
	assert.Equal(t, "software development", placeholders["[relevant experience]"])
}

func TestBuildPlaceholders_SingleKeyword(t *testing.T) {
	facts := extraction.Facts{Keywords: []string{"Python"}}
	placeholders := BuildPlaceholders(facts, testNow)

	assert.Equal(t, "Python", placeholders["[skill 1]"])
	assert.Equal(t, "development", placeholders["[skill 2]"])
	assert.Equal(t, "problem-solving", placeholders["[skill 3]"])
	assert.Equal(t, "Python", placeholders["[relevant skills]"])
	assert.Equal(t, "Python", placeholders["[relevant experience]"])
}

func TestBuildPlaceholders_NarrativeFallbacksAreFixed(t *testing.T) {
	// These are never derived from job data.
	placeholders := BuildPlaceholders(extraction.Facts{Company: "Acme", Keywords: []string{"Go"}}, testNow)

	assert.Equal(t, "my previous company", placeholders["[Previous Company]"])
	assert.Equal(t, "your job posting", placeholders["[job board/website]"])
	assert.Equal(t, "YOUR_PHONE_NUMBER", placeholders["[your phone number]"])
	assert.Equal(t, "YOUR_EMAIL_ADDRESS", placeholders["[your email address]"])
	assert.Equal(t, "software development and innovation", placeholders["[relevant area]"])
}

func TestBuildPlaceholders_DoesNotMutateFacts(t *testing.T) {
	facts := extraction.Facts{Keywords: []string{"Go", "SQL", "AWS", "Docker"}}
	_ = BuildPlaceholders(facts, testNow)

	require.Equal(t, []string{"Go", "SQL", "AWS", "Docker"}, facts.Keywords)
}
