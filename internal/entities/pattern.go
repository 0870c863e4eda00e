package entities

import (
	"regexp"
	"strings"
)

// PatternRecognizer is a lightweight stand-in for a statistical NER model. It
// tags spans that look like product or organization references: known product
// names, and capitalized multi-word spans ending in a corporate suffix.
type PatternRecognizer struct{}

// NewPatternRecognizer returns a ready-to-use recognizer.
func NewPatternRecognizer() *PatternRecognizer {
	return &PatternRecognizer{}
}

// orgPattern matches capitalized spans followed by a corporate suffix, e.g.
// "Acme Corp", "Initech Inc", "Globex LLC".
var orgPattern = regexp.MustCompile(`\b([A-Z][A-Za-z0-9&]*(?:\s+[A-Z][A-Za-z0-9&]*)*\s+(?:Inc|Corp|LLC|Ltd|GmbH|Co)\.?)\b`)

// productTerms are widely-referenced technology products tagged as PRODUCT
// spans when they appear verbatim.
var productTerms = []string{
	"Kubernetes", "Docker", "PostgreSQL", "Redis", "Kafka", "Terraform",
	"React", "Angular", "TensorFlow", "Spark",
}

// Recognize returns ORG and PRODUCT entities found in text, in the order
// they first occur.
func (r *PatternRecognizer) Recognize(text string) []Entity {
	type hit struct {
		pos int
		ent Entity
	}
	var hits []hit

	for _, loc := range orgPattern.FindAllStringSubmatchIndex(text, -1) {
		span := strings.TrimSpace(text[loc[2]:loc[3]])
		hits = append(hits, hit{pos: loc[2], ent: Entity{Text: span, Label: LabelOrg}})
	}
	for _, term := range productTerms {
		if idx := strings.Index(text, term); idx >= 0 {
			hits = append(hits, hit{pos: idx, ent: Entity{Text: term, Label: LabelProduct}})
		}
	}

	// Stable order by first occurrence.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	out := make([]Entity, 0, len(hits))
	seen := make(map[string]bool)
	for _, h := range hits {
		key := strings.ToLower(h.ent.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h.ent)
	}
	return out
}
