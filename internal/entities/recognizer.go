// Package entities defines the optional named-entity recognition collaborator
// used to widen keyword extraction. The pipeline works unchanged when no
// recognizer is available; coverage is the only thing that degrades.
package entities

// Entity labels the extractor cares about. Other labels are ignored.
const (
	LabelOrg     = "ORG"
	LabelProduct = "PRODUCT"
)

// Entity is a recognized span with its category label.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer finds organization- and product-like spans in free text.
type Recognizer interface {
	Recognize(text string) []Entity
}

// Noop is the capability-absent recognizer. It satisfies Recognizer with an
// empty result so callers keep identical control flow.
type Noop struct{}

// Recognize always returns nil.
func (Noop) Recognize(string) []Entity { return nil }
