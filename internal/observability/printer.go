// Package observability provides formatted output utilities for verbose CLI
// mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/doc-tailor/internal/extraction"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxKeywordsToShow is the number of keywords displayed before eliding
	maxKeywordsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFacts outputs a human-readable summary of extracted job facts.
func (p *Printer) PrintFacts(jobName string, facts extraction.Facts) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", facts.Company))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", facts.JobTitle))

	keywords := facts.Keywords
	elided := 0
	if len(keywords) > maxKeywordsToShow {
		elided = len(keywords) - maxKeywordsToShow
		keywords = keywords[:maxKeywordsToShow]
	}
	sb.WriteString(fmt.Sprintf("Keywords: %s", strings.Join(keywords, ", ")))
	if elided > 0 {
		sb.WriteString(fmt.Sprintf(" (+%d more)", elided))
	}

	p.printBox(fmt.Sprintf("Facts: %s", jobName), sb.String())
}

// PrintArtifacts outputs the artifact paths written for one job.
func (p *Printer) PrintArtifacts(jobName, resumePath, coverLetterPath string) {
	content := fmt.Sprintf("Resume:       %s\nCover letter: %s", resumePath, coverLetterPath)
	p.printBox(fmt.Sprintf("Artifacts: %s", jobName), content)
}

// PrintSuggestions outputs enrichment suggestions when present.
func (p *Printer) PrintSuggestions(suggestions string) {
	if strings.TrimSpace(suggestions) == "" {
		return
	}
	p.printBox("Tailoring suggestions", suggestions)
}
