// Package document provides the paragraph/run model used to carry styled text
// through the tailoring pipeline, plus loading and saving collaborators.
package document

import "strings"

// Run is a span of text within a paragraph carrying character styling.
type Run struct {
	Text   string `json:"text"`
	Bold   bool   `json:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty"`
}

// Paragraph is an ordered sequence of styled runs.
type Paragraph struct {
	Runs []Run `json:"runs"`
}

// Text returns the paragraph's plain text, the exact concatenation of its
// run texts in order.
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Document is an ordered sequence of paragraphs.
type Document struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

// PlainText returns the document content as newline-joined paragraph text.
func (d Document) PlainText() string {
	lines := make([]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}

// Clone returns a deep copy. Each pipeline invocation owns its documents, so
// a tailored copy must not alias the source's runs.
func (d Document) Clone() Document {
	out := Document{Paragraphs: make([]Paragraph, len(d.Paragraphs))}
	for i, p := range d.Paragraphs {
		runs := make([]Run, len(p.Runs))
		copy(runs, p.Runs)
		out.Paragraphs[i] = Paragraph{Runs: runs}
	}
	return out
}

// FromText builds a document from plain text, one paragraph per line with a
// single unstyled run. Empty trailing content from CRLF normalization is kept
// as empty paragraphs so round-tripping preserves layout.
func FromText(content string) Document {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	doc := Document{Paragraphs: make([]Paragraph, 0, len(lines))}
	for _, line := range lines {
		doc.Paragraphs = append(doc.Paragraphs, Paragraph{Runs: []Run{{Text: line}}})
	}
	return doc
}
