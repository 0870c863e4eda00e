package extraction

import (
	"strings"

	"github.com/jonathan/doc-tailor/internal/entities"
)

// Extractor derives Facts from job-description text. The zero value is not
// usable; construct with New.
type Extractor struct {
	recognizer entities.Recognizer
}

// New returns an Extractor using the given entity recognizer. Passing nil is
// equivalent to passing entities.Noop{}: keyword extraction degrades to the
// dictionary pass only.
func New(recognizer entities.Recognizer) *Extractor {
	if recognizer == nil {
		recognizer = entities.Noop{}
	}
	return &Extractor{recognizer: recognizer}
}

// Extract is a pure function of text. It never fails: an extraction miss
// yields the documented default, and an empty input yields all defaults.
func (e *Extractor) Extract(text string) Facts {
	return Facts{
		Company:  firstMatch(companyRules, text, DefaultCompany),
		JobTitle: firstMatch(titleRules, text, DefaultTitle),
		Keywords: e.extractKeywords(text),
	}
}

// extractKeywords merges the recognizer's ORG/PRODUCT spans with the
// dictionary pass. Discovery order is recognizer entities first (in the
// order the recognizer reports them), then dictionary terms in dictionary
// order; duplicates are removed case-insensitively.
func (e *Extractor) extractKeywords(text string) []string {
	set := newKeywordSet()

	for _, ent := range e.recognizer.Recognize(text) {
		if ent.Label != entities.LabelOrg && ent.Label != entities.LabelProduct {
			continue
		}
		set.add(ent.Text)
	}

	lower := strings.ToLower(text)
	for _, term := range skillDictionary {
		if strings.Contains(lower, strings.ToLower(term)) {
			set.addCanonical(term)
		}
	}

	return set.list()
}
