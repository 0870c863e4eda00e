package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/doc-tailor/internal/document"
	"github.com/jonathan/doc-tailor/internal/extraction"
)

var fixedNow = func() time.Time {
	return time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)
}

func testOrchestrator(t *testing.T, opts Options) *Orchestrator {
	t.Helper()
	if opts.OutputDir == "" {
		opts.OutputDir = t.TempDir()
	}
	opts.Now = fixedNow
	return New(extraction.New(nil), nil, nil, opts)
}

func testDocs() (resume, cover document.Document) {
	resume = document.FromText("John Doe\nSoftware Engineer\nExperience: many things")
	cover = document.Document{Paragraphs: []document.Paragraph{
		{Runs: []document.Run{
			{Text: "Dear "},
			{Text: "[COMPANY_NAME]", Bold: true},
			{Text: " team, I am excited about the [POSITION_TITLE] role."},
		}},
	}}
	return resume, cover
}

func TestArtifactNames(t *testing.T) {
	resume, cover := ArtifactNames("Acme Corp", "acme_junior_dev")

	assert.Equal(t, "Resume_Acme Corp_acme_junior_dev", resume)
	assert.Equal(t, "CoverLetter_Acme Corp_acme_junior_dev", cover)
}

func TestArtifactNames_CompanyEmbeddedVerbatim(t *testing.T) {
	// No sanitization policy is defined; a path-unsafe company value passes
	// through untouched. This pins the behavior so any future sanitization
	// is a deliberate change.
	resume, _ := ArtifactNames("Acme/Corp", "job1")
	assert.Equal(t, "Resume_Acme/Corp_job1", resume)
}

func TestProcessJob_WritesTailoredArtifacts(t *testing.T) {
	outDir := t.TempDir()
	orch := testOrchestrator(t, Options{OutputDir: outDir})
	resume, cover := testDocs()

	jobText := "About Acme Corp, we are looking for a Backend Engineer to join our team."
	result, err := orch.ProcessJob(context.Background(), resume, cover, jobText, "acme_junior_dev")
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", result.Facts.Company)
	assert.Equal(t, "Backend Engineer", result.Facts.JobTitle)
	assert.NotEqual(t, result.ID.String(), "00000000-0000-0000-0000-000000000000")

	coverContent, err := os.ReadFile(result.CoverLetterPath)
	require.NoError(t, err)
	assert.Equal(t, "Dear Acme Corp team, I am excited about the Backend Engineer role.", string(coverContent))

	resumeContent, err := os.ReadFile(result.ResumePath)
	require.NoError(t, err)
	assert.Equal(t, resume.PlainText(), string(resumeContent))
}

func TestProcessJob_ArtifactPathsUnderJobDirectory(t *testing.T) {
	outDir := t.TempDir()
	orch := testOrchestrator(t, Options{OutputDir: outDir})
	resume, cover := testDocs()

	result, err := orch.ProcessJob(context.Background(), resume, cover, "no patterns here", "job_one")
	require.NoError(t, err)

	jobDir := filepath.Join(outDir, "job_one")
	assert.Equal(t, filepath.Join(jobDir, "Resume_COMPANY_NAME_job_one.txt"), result.ResumePath)
	assert.Equal(t, filepath.Join(jobDir, "CoverLetter_COMPANY_NAME_job_one.txt"), result.CoverLetterPath)
}

func TestProcessJob_DoesNotMutateTemplates(t *testing.T) {
	orch := testOrchestrator(t, Options{})
	resume, cover := testDocs()

	_, err := orch.ProcessJob(context.Background(), resume, cover, "About Acme Corp, hiring.", "job")
	require.NoError(t, err)

	assert.Equal(t, "[COMPANY_NAME]", cover.Paragraphs[0].Runs[1].Text)
}

func TestProcessJob_EnrichmentFailureIsIgnored(t *testing.T) {
	orch := testOrchestrator(t, Options{})
	orch.suggester = failingSuggester{}
	resume, cover := testDocs()

	_, err := orch.ProcessJob(context.Background(), resume, cover, "text", "job")
	assert.NoError(t, err)
}

func TestProcessAll_OneResultPerJobInInputOrder(t *testing.T) {
	orch := testOrchestrator(t, Options{})
	resume, cover := testDocs()

	jobs := []JobInput{
		{Name: "first", Text: "About Acme Corp, hiring."},
		{Name: "second", Text: "About Globex Inc, hiring."},
		{Name: "third", Text: "no patterns"},
	}

	results, err := orch.ProcessAll(context.Background(), resume, cover, jobs)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "first", results[0].JobName)
	assert.Equal(t, "second", results[1].JobName)
	assert.Equal(t, "third", results[2].JobName)

	seen := make(map[string]bool)
	for _, r := range results {
		key := r.ResumePath + "|" + r.CoverLetterPath
		assert.False(t, seen[key], "artifact pair must be distinct per job")
		seen[key] = true
	}
}

func TestProcessAll_JobsAreIsolated(t *testing.T) {
	orch := testOrchestrator(t, Options{})
	resume, cover := testDocs()

	jobs := []JobInput{
		{Name: "rich", Text: "About Acme Corp. We use Python and Docker."},
		{Name: "poor", Text: "no patterns"},
	}

	results, err := orch.ProcessAll(context.Background(), resume, cover, jobs)
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "Docker"}, results[0].Facts.Keywords)
	assert.Empty(t, results[1].Facts.Keywords)
	assert.Equal(t, extraction.DefaultCompany, results[1].Facts.Company)
}

func TestProcessAll_EmptyJobList(t *testing.T) {
	orch := testOrchestrator(t, Options{})
	resume, cover := testDocs()

	results, err := orch.ProcessAll(context.Background(), resume, cover, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProcessAll_Parallel_PreservesResultOrder(t *testing.T) {
	orch := testOrchestrator(t, Options{Parallel: true})
	resume, cover := testDocs()

	jobs := make([]JobInput, 8)
	for i := range jobs {
		jobs[i] = JobInput{Name: fmt.Sprintf("job_%d", i), Text: "About Acme Corp, hiring."}
	}

	results, err := orch.ProcessAll(context.Background(), resume, cover, jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("job_%d", i), r.JobName)
	}
}

// failingSuggester always errors, standing in for an unreachable AI backend.
type failingSuggester struct{}

func (failingSuggester) SuggestResumeEdits(context.Context, string, string) (string, error) {
	return "", errors.New("backend unreachable")
}

func (failingSuggester) Close() error { return nil }
