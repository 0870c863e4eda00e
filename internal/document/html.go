package document

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockSelector matches the elements treated as paragraph boundaries when
// parsing HTML sources.
const blockSelector = "p, h1, h2, h3, h4, h5, h6, li"

// FromHTML parses an HTML document (e.g. a saved job posting or an exported
// template) into paragraphs, mapping <b>/<strong> and <i>/<em> spans onto run
// styling flags.
func FromHTML(content string) (Document, error) {
	root, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return Document{}, err
	}

	doc := Document{}
	root.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		// Nested blocks (an li inside a p, etc.) are visited on their own;
		// skip elements that contain another block to avoid duplication.
		if sel.Find(blockSelector).Length() > 0 {
			return
		}
		para := Paragraph{}
		collectRuns(sel, false, false, &para)
		if strings.TrimSpace(para.Text()) == "" {
			return
		}
		doc.Paragraphs = append(doc.Paragraphs, para)
	})
	return doc, nil
}

// collectRuns walks a selection's contents in document order, accumulating
// text nodes as runs with the styling flags in effect.
func collectRuns(sel *goquery.Selection, bold, italic bool, para *Paragraph) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		switch goquery.NodeName(child) {
		case "#text":
			text := normalizeSpace(child.Text())
			if text == "" {
				return
			}
			appendRun(para, Run{Text: text, Bold: bold, Italic: italic})
		case "b", "strong":
			collectRuns(child, true, italic, para)
		case "i", "em":
			collectRuns(child, bold, true, para)
		case "br":
			appendRun(para, Run{Text: " ", Bold: bold, Italic: italic})
		default:
			collectRuns(child, bold, italic, para)
		}
	})
}

// appendRun merges adjacent runs with identical styling so substitution sees
// contiguous text.
func appendRun(para *Paragraph, run Run) {
	if n := len(para.Runs); n > 0 {
		last := &para.Runs[n-1]
		if last.Bold == run.Bold && last.Italic == run.Italic {
			last.Text += run.Text
			return
		}
	}
	para.Runs = append(para.Runs, run)
}

// normalizeSpace collapses internal whitespace the way browsers render it.
func normalizeSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	out := strings.Join(fields, " ")
	if strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\n") || strings.HasPrefix(s, "\t") {
		out = " " + out
	}
	if strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\t") {
		out = out + " "
	}
	return out
}
