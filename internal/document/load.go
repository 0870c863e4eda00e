package document

import (
	"os"
	"path/filepath"
	"strings"
)

// Load reads a document from disk, detecting the format from the file
// extension. Plain-text formats produce one paragraph per line; HTML is
// parsed into styled paragraphs. Unrecognized extensions yield
// *UnsupportedFormatError.
func Load(path string) (Document, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".txt", ".md":
		content, err := os.ReadFile(path)
		if err != nil {
			return Document{}, &LoadError{Path: path, Cause: err}
		}
		return FromText(string(content)), nil
	case ".html", ".htm":
		content, err := os.ReadFile(path)
		if err != nil {
			return Document{}, &LoadError{Path: path, Cause: err}
		}
		return FromHTML(string(content))
	default:
		return Document{}, &UnsupportedFormatError{Path: path, Format: ext}
	}
}

// Save writes the document as plain text, creating parent directories as
// needed. Styling is not serialized; persistence of rich formats is the
// document writer's concern, not the pipeline's.
func Save(doc Document, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &LoadError{Path: path, Cause: err}
		}
	}
	if err := os.WriteFile(path, []byte(doc.PlainText()), 0644); err != nil {
		return &LoadError{Path: path, Cause: err}
	}
	return nil
}
