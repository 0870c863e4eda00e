// Package workspace locates pipeline inputs in the conventional input
// directory layout: one resume, one cover-letter template, and any number of
// job descriptions.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Conventional subdirectories under the input root.
const (
	ResumesDir         = "resumes"
	CoverLettersDir    = "cover_letters"
	JobDescriptionsDir = "job_descriptions"
)

// documentPatterns are the loadable template formats, in preference order.
var documentPatterns = []string{"*.txt", "*.md", "*.html", "*.htm"}

// MissingInputError indicates that a required input class has no files at
// all. Fatal to the run: no jobs can be processed without templates.
type MissingInputError struct {
	Kind string
	Dir  string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("no %s found in %s", e.Kind, e.Dir)
}

// JobDescription is one discovered job-description file. Name is the file
// stem, used as the job name in output artifact identifiers.
type JobDescription struct {
	Name string
	Path string
}

// FindResume returns the first resume file under inputDir/resumes.
func FindResume(inputDir string) (string, error) {
	return findFirst(filepath.Join(inputDir, ResumesDir), "resume files")
}

// FindCoverLetter returns the first cover-letter template under
// inputDir/cover_letters.
func FindCoverLetter(inputDir string) (string, error) {
	return findFirst(filepath.Join(inputDir, CoverLettersDir), "cover letter templates")
}

// ListJobDescriptions returns all job-description text files under
// inputDir/job_descriptions, sorted by name for deterministic run order. An
// empty directory is not an error: the orchestrator handles zero jobs.
func ListJobDescriptions(inputDir string) ([]JobDescription, error) {
	dir := filepath.Join(inputDir, JobDescriptionsDir)
	matches, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(matches)

	jobs := make([]JobDescription, 0, len(matches))
	for _, path := range matches {
		jobs = append(jobs, JobDescription{Name: stem(path), Path: path})
	}
	return jobs, nil
}

// ResolveJob resolves a --job argument: an existing path is used as-is,
// otherwise it is treated as a job name under the job-descriptions directory.
func ResolveJob(inputDir, job string) (JobDescription, error) {
	if _, err := os.Stat(job); err == nil {
		return JobDescription{Name: stem(job), Path: job}, nil
	}
	path := filepath.Join(inputDir, JobDescriptionsDir, job+".txt")
	if _, err := os.Stat(path); err != nil {
		return JobDescription{}, &MissingInputError{
			Kind: fmt.Sprintf("job description %q", job),
			Dir:  filepath.Join(inputDir, JobDescriptionsDir),
		}
	}
	return JobDescription{Name: job, Path: path}, nil
}

// findFirst returns the first file matching any document pattern in dir,
// preferring earlier patterns and sorting within a pattern for determinism.
func findFirst(dir, kind string) (string, error) {
	for _, pattern := range documentPatterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", fmt.Errorf("failed to scan %s: %w", dir, err)
		}
		if len(matches) > 0 {
			sort.Strings(matches)
			return matches[0], nil
		}
	}
	return "", &MissingInputError{Kind: kind, Dir: dir}
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
