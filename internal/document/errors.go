package document

import "fmt"

// UnsupportedFormatError indicates a source file whose format the loader does
// not recognize. Fatal to that single load; the caller decides whether the
// run can continue.
type UnsupportedFormatError struct {
	Path   string
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("unsupported document format %q: %s", e.Format, e.Path)
	}
	return fmt.Sprintf("unsupported document format: %s", e.Path)
}

// LoadError wraps an I/O failure while reading a document source.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load document %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
