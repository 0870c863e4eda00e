package rewriting

import (
	"strings"

	"github.com/jonathan/doc-tailor/internal/document"
)

// Rewrite returns a new document with every placeholder token replaced by its
// resolved value. The input is not mutated. Paragraph count, run count, run
// order, and per-run styling are all preserved; only run text changes.
//
// Substitution is applied to each run's text independently: placeholder
// tokens are literal strings assumed never to span a run boundary, so
// per-run replacement and whole-paragraph replacement agree. Tokens are
// disjoint literals, which makes the substitution order irrelevant.
func Rewrite(doc document.Document, placeholders map[string]string) document.Document {
	out := doc.Clone()
	for pi := range out.Paragraphs {
		para := &out.Paragraphs[pi]
		if !containsPlaceholder(para.Text(), placeholders) {
			continue
		}
		for ri := range para.Runs {
			para.Runs[ri].Text = replaceAll(para.Runs[ri].Text, placeholders)
		}
	}
	return out
}

// containsPlaceholder reports whether any placeholder token occurs in text.
func containsPlaceholder(text string, placeholders map[string]string) bool {
	for token := range placeholders {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}

// replaceAll substitutes every occurrence of every placeholder token.
func replaceAll(text string, placeholders map[string]string) string {
	for token, value := range placeholders {
		text = strings.ReplaceAll(text, token, value)
	}
	return text
}
