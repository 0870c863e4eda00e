package extraction

import (
	"regexp"
	"strings"
)

// rule is one extraction attempt: a named regular expression whose first
// capture group is the candidate value. Rules are tried in list order and the
// first match wins, so narrower phrasings must come first.
type rule struct {
	name    string
	pattern *regexp.Regexp
}

// apply runs the rule against text and returns the trimmed first capture
// group, or "" when the rule does not match.
func (r rule) apply(text string) string {
	m := r.pattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// companyRules extract the hiring company from narrative phrasing. Matching
// is case-sensitive: company names are assumed to be capitalized proper
// nouns, which keeps "join our team" from matching as a company.
var companyRules = []rule{
	{"narrative", regexp.MustCompile(`(?:at|with|for|join)\s+([A-Z][A-Za-z0-9\s&]+)(?:,|\.|is|\n)`)},
	{"about-section", regexp.MustCompile(`About ([A-Z][A-Za-z0-9\s&]+)(?:,|\.|:|\n)`)},
	{"looking-for", regexp.MustCompile(`([A-Z][A-Za-z0-9\s&]+) is looking for`)},
}

// titleRules extract the role title. Titles are taken as two or three words;
// single-word titles fall through to the default.
var titleRules = []rule{
	{"hiring-phrase", regexp.MustCompile(`(?:hiring|for|seeking)(?: a| an)? ([A-Za-z]+\s[A-Za-z]+(?:\s[A-Za-z]+)?) (?:to|who|that)`)},
	{"position-suffix", regexp.MustCompile(`([A-Za-z]+\s[A-Za-z]+(?:\s[A-Za-z]+)?)(?: position)`)},
	{"labeled-title", regexp.MustCompile(`(?:Job Title|Title|Position):?\s*([A-Za-z]+\s[A-Za-z]+(?:\s[A-Za-z]+)?)`)},
}

// firstMatch tries each rule in order and returns the first non-empty result,
// or fallback when none matches.
func firstMatch(rules []rule, text, fallback string) string {
	for _, r := range rules {
		if v := r.apply(text); v != "" {
			return v
		}
	}
	return fallback
}
