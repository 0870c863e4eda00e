// Package extraction derives structured facts (company, job title, keywords)
// from unstructured job-description text using ordered pattern rules and a
// canonical skill dictionary.
package extraction

// Default values used when no extraction rule matches. They double as the
// placeholder-style markers templates use, so an extraction miss surfaces
// visibly in the tailored output rather than failing.
const (
	DefaultCompany = "COMPANY_NAME"
	DefaultTitle   = "POSITION_TITLE"
)

// Facts holds everything inferred from one job description. Immutable once
// produced: each job gets a fresh value and nothing mutates it afterward.
type Facts struct {
	Company  string   `json:"company"`
	JobTitle string   `json:"job_title"`
	Keywords []string `json:"keywords"`
}
