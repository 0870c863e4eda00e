// Package pipeline provides the high-level orchestration for tailoring a
// resume and cover letter against one or more job descriptions.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/doc-tailor/internal/document"
	"github.com/jonathan/doc-tailor/internal/enrichment"
	"github.com/jonathan/doc-tailor/internal/extraction"
	"github.com/jonathan/doc-tailor/internal/observability"
	"github.com/jonathan/doc-tailor/internal/rewriting"
	"github.com/jonathan/doc-tailor/internal/store"
)

// JobInput is one job description to tailor against.
type JobInput struct {
	Name string
	Text string
}

// Result is the outcome of tailoring one job. The orchestrator appends one
// per job, in input order.
type Result struct {
	ID              uuid.UUID        `json:"id"`
	JobName         string           `json:"job_name"`
	ResumePath      string           `json:"resume_path"`
	CoverLetterPath string           `json:"cover_letter_path"`
	Facts           extraction.Facts `json:"facts"`
}

// Options configures an Orchestrator.
type Options struct {
	OutputDir string
	// Parallel processes jobs concurrently. Jobs share no mutable state, so
	// no locking is needed; result order still matches input order.
	Parallel bool
	Verbose  bool
	// Now supplies the time used for the current-date placeholder. Nil means
	// time.Now.
	Now func() time.Time
}

// Orchestrator coordinates extraction, rewriting, optional enrichment, and
// artifact writing. Construct with New.
type Orchestrator struct {
	extractor *extraction.Extractor
	suggester enrichment.Suggester
	db        *store.Store
	printer   *observability.Printer
	opts      Options
}

// New creates an Orchestrator. suggester may be nil (no enrichment); db may
// be nil (no persistence).
func New(extractor *extraction.Extractor, suggester enrichment.Suggester, db *store.Store, opts Options) *Orchestrator {
	if suggester == nil {
		suggester = enrichment.Noop{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "output"
	}
	return &Orchestrator{
		extractor: extractor,
		suggester: suggester,
		db:        db,
		printer:   observability.NewPrinter(os.Stdout),
		opts:      opts,
	}
}

// ArtifactNames returns the resume and cover-letter artifact identifiers for
// a job. The company string is embedded verbatim: no sanitization policy is
// defined yet, so a company value containing path separators produces nested
// output paths.
func ArtifactNames(company, jobName string) (resume, coverLetter string) {
	return fmt.Sprintf("Resume_%s_%s", company, jobName),
		fmt.Sprintf("CoverLetter_%s_%s", company, jobName)
}

// ProcessJob tailors one job: extract facts once, build one placeholder map,
// rewrite the cover letter, pass the resume through as a structure-preserving
// copy, and write both artifacts under the job's output directory.
func (o *Orchestrator) ProcessJob(ctx context.Context, resumeDoc, coverDoc document.Document, jobText, jobName string) (Result, error) {
	fmt.Printf("Processing job: %s\n", jobName)

	facts := o.extractor.Extract(jobText)
	if o.opts.Verbose {
		o.printer.PrintFacts(jobName, facts)
	}

	placeholders := rewriting.BuildPlaceholders(facts, o.opts.Now())
	tailoredCover := rewriting.Rewrite(coverDoc, placeholders)

	// The base resume has no job placeholders; tailoring is a structural
	// copy. Enrichment only ever produces advisory suggestions.
	tailoredResume := resumeDoc.Clone()

	if suggestions, err := o.suggester.SuggestResumeEdits(ctx, jobText, resumeDoc.PlainText()); err != nil {
		fmt.Printf("Warning: enrichment failed for job %s: %v\n", jobName, err)
	} else if o.opts.Verbose {
		o.printer.PrintSuggestions(suggestions)
	}

	resumeName, coverName := ArtifactNames(facts.Company, jobName)
	jobDir := filepath.Join(o.opts.OutputDir, jobName)
	resumePath := filepath.Join(jobDir, resumeName+".txt")
	coverPath := filepath.Join(jobDir, coverName+".txt")

	if err := document.Save(tailoredResume, resumePath); err != nil {
		return Result{}, fmt.Errorf("failed to write resume for job %s: %w", jobName, err)
	}
	if err := document.Save(tailoredCover, coverPath); err != nil {
		return Result{}, fmt.Errorf("failed to write cover letter for job %s: %w", jobName, err)
	}

	if o.opts.Verbose {
		o.printer.PrintArtifacts(jobName, resumePath, coverPath)
	}
	fmt.Printf("Tailored documents saved to %s\n", jobDir)

	return Result{
		ID:              uuid.New(),
		JobName:         jobName,
		ResumePath:      resumePath,
		CoverLetterPath: coverPath,
		Facts:           facts,
	}, nil
}

// ProcessAll tailors every job in input order. Each job gets fresh facts and
// a fresh placeholder map; no state is shared across jobs. An empty job list
// returns an empty slice without error.
func (o *Orchestrator) ProcessAll(ctx context.Context, resumeDoc, coverDoc document.Document, jobs []JobInput) ([]Result, error) {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	var runID uuid.UUID
	if o.db != nil {
		var err error
		runID, err = o.db.CreateRun(ctx, o.opts.OutputDir, len(jobs))
		if err != nil {
			fmt.Printf("Warning: failed to record run: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			runID = uuid.Nil
		}
	}

	if o.opts.Parallel {
		g, gCtx := errgroup.WithContext(ctx)
		for i, job := range jobs {
			i, job := i, job
			g.Go(func() error {
				result, err := o.ProcessJob(gCtx, resumeDoc, coverDoc, job.Text, job.Name)
				if err != nil {
					return err
				}
				results[i] = result
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, job := range jobs {
			result, err := o.ProcessJob(ctx, resumeDoc, coverDoc, job.Text, job.Name)
			if err != nil {
				return nil, err
			}
			results[i] = result
		}
	}

	if o.db != nil && runID != uuid.Nil {
		for _, r := range results {
			if err := o.db.SaveResult(ctx, runID, r.JobName, r.Facts.Company, r.Facts.JobTitle, r.Facts, r.ResumePath, r.CoverLetterPath); err != nil {
				fmt.Printf("Warning: failed to save result for job %s: %v\n", r.JobName, err)
			}
		}
		if err := o.db.CompleteRun(ctx, runID, "completed"); err != nil {
			fmt.Printf("Warning: failed to complete run: %v\n", err)
		}
	}

	return results, nil
}
