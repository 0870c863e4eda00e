package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/doc-tailor/internal/config"
	"github.com/jonathan/doc-tailor/internal/document"
	"github.com/jonathan/doc-tailor/internal/enrichment"
	"github.com/jonathan/doc-tailor/internal/entities"
	"github.com/jonathan/doc-tailor/internal/extraction"
	"github.com/jonathan/doc-tailor/internal/pipeline"
	"github.com/jonathan/doc-tailor/internal/store"
	"github.com/jonathan/doc-tailor/internal/workspace"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Tailor documents for a single job description",
	Long: `Processes one job description against the first resume and cover-letter
template found in the input directory.

The job may be given as a name (resolved under input/job_descriptions) or as
an explicit file path. Configuration can be loaded from a JSON file using
--config; command-line arguments override config file values.`,
	RunE: runOneCmd,
}

var runAllCommand = &cobra.Command{
	Use:   "run-all",
	Short: "Tailor documents for every job description found",
	Long: `Processes every job description under input/job_descriptions against the
first resume and cover-letter template found in the input directory, in file
name order.`,
	RunE: runAllCmd,
}

var (
	flagConfigPath string
	flagInputDir   string
	flagOutputDir  string
	flagJob        string
	flagAPIKey     string
	flagModel      string
	flagDBURL      string
	flagParallel   bool
	flagVerbose    bool
)

func init() {
	for _, cmd := range []*cobra.Command{runCommand, runAllCommand} {
		cmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
		cmd.Flags().StringVarP(&flagInputDir, "input", "i", "", "Input directory containing resumes/, cover_letters/, job_descriptions/")
		cmd.Flags().StringVarP(&flagOutputDir, "output", "o", "", "Output directory for tailored documents")
		cmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key for AI suggestions (optional, defaults to GEMINI_API_KEY env var)")
		cmd.Flags().StringVar(&flagModel, "model", "", "Gemini model for AI suggestions")
		cmd.Flags().StringVar(&flagDBURL, "db-url", "", "PostgreSQL connection URL for result persistence (optional, defaults to DATABASE_URL env var)")
		cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed output")
	}
	runCommand.Flags().StringVarP(&flagJob, "job", "j", "", "Job description name or file path (required)")
	runAllCommand.Flags().BoolVar(&flagParallel, "parallel", false, "Process jobs concurrently")

	rootCmd.AddCommand(runCommand)
	rootCmd.AddCommand(runAllCommand)
}

// loadMergedConfig loads the optional config file, applies flag overrides,
// then defaults and env fallbacks.
func loadMergedConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if flagConfigPath != "" {
		loaded, err := config.LoadConfig(flagConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
		if flagVerbose {
			fmt.Printf("Loaded config from: %s\n", flagConfigPath)
		}
	}

	if cmd.Flags().Changed("input") {
		cfg.InputDir = flagInputDir
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = flagOutputDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = flagAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = flagModel
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = flagDBURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = flagParallel
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		InputDir:  "input",
		OutputDir: "output",
	})

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	return cfg, nil
}

// buildOrchestrator wires the extractor, optional suggester, and optional
// store into an orchestrator. Both collaborators degrade gracefully when
// unconfigured or unreachable.
func buildOrchestrator(ctx context.Context, cfg config.Config) (*pipeline.Orchestrator, func(), error) {
	var suggester enrichment.Suggester = enrichment.Noop{}
	if cfg.APIKey != "" {
		s, err := enrichment.NewGeminiSuggester(ctx, cfg.APIKey, cfg.Model)
		if err != nil {
			fmt.Printf("Warning: AI suggestions unavailable: %v\n", err)
		} else {
			suggester = s
		}
	} else if cfg.Verbose {
		fmt.Println("No API key configured; AI suggestions disabled.")
	}

	var db *store.Store
	if cfg.DatabaseURL != "" {
		var err error
		db, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			db = nil
		}
	}

	orch := pipeline.New(extraction.New(entities.NewPatternRecognizer()), suggester, db, pipeline.Options{
		OutputDir: cfg.OutputDir,
		Parallel:  cfg.Parallel,
		Verbose:   cfg.Verbose,
	})

	cleanup := func() {
		_ = suggester.Close()
		if db != nil {
			db.Close()
		}
	}
	return orch, cleanup, nil
}

// loadTemplates finds and loads the resume and cover-letter templates.
// Missing inputs are reported as a diagnostic with a nil error so the CLI
// exits cleanly, matching the documented exit behavior.
func loadTemplates(inputDir string) (resume, cover document.Document, ok bool, err error) {
	resumePath, err := workspace.FindResume(inputDir)
	if err != nil {
		var missing *workspace.MissingInputError
		if errors.As(err, &missing) {
			fmt.Printf("No resume files found in %s.\n", missing.Dir)
			return document.Document{}, document.Document{}, false, nil
		}
		return document.Document{}, document.Document{}, false, err
	}
	coverPath, err := workspace.FindCoverLetter(inputDir)
	if err != nil {
		var missing *workspace.MissingInputError
		if errors.As(err, &missing) {
			fmt.Printf("No cover letter templates found in %s.\n", missing.Dir)
			return document.Document{}, document.Document{}, false, nil
		}
		return document.Document{}, document.Document{}, false, err
	}

	fmt.Printf("Using resume: %s\n", resumePath)
	fmt.Printf("Using cover letter template: %s\n", coverPath)

	resume, err = document.Load(resumePath)
	if err != nil {
		return document.Document{}, document.Document{}, false, err
	}
	cover, err = document.Load(coverPath)
	if err != nil {
		return document.Document{}, document.Document{}, false, err
	}
	return resume, cover, true, nil
}

func runOneCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = flagJob
	}
	if cfg.Job == "" {
		return fmt.Errorf("--job is required (via flag or config)")
	}

	job, err := workspace.ResolveJob(cfg.InputDir, cfg.Job)
	if err != nil {
		var missing *workspace.MissingInputError
		if errors.As(err, &missing) {
			fmt.Printf("Job description not found: %s\n", cfg.Job)
			return nil
		}
		return err
	}

	resumeDoc, coverDoc, ok, err := loadTemplates(cfg.InputDir)
	if err != nil || !ok {
		return err
	}

	jobText, err := os.ReadFile(job.Path)
	if err != nil {
		return fmt.Errorf("failed to read job description %s: %w", job.Path, err)
	}

	orch, cleanup, err := buildOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = orch.ProcessJob(ctx, resumeDoc, coverDoc, string(jobText), job.Name)
	return err
}

func runAllCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}

	resumeDoc, coverDoc, ok, err := loadTemplates(cfg.InputDir)
	if err != nil || !ok {
		return err
	}

	descriptions, err := workspace.ListJobDescriptions(cfg.InputDir)
	if err != nil {
		return err
	}

	jobs := make([]pipeline.JobInput, 0, len(descriptions))
	for _, desc := range descriptions {
		text, err := os.ReadFile(desc.Path)
		if err != nil {
			return fmt.Errorf("failed to read job description %s: %w", desc.Path, err)
		}
		jobs = append(jobs, pipeline.JobInput{Name: desc.Name, Text: string(text)})
	}

	orch, cleanup, err := buildOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := orch.ProcessAll(ctx, resumeDoc, coverDoc, jobs)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d job description(s).\n", len(results))
	return nil
}
