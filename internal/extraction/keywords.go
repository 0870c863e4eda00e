package extraction

import "strings"

// skillDictionary is the canonical technology/skill term list. The dictionary
// pass is case-insensitive against the input but always reports the canonical
// casing listed here.
var skillDictionary = []string{
	"Python",
	"JavaScript",
	"Java",
	"C++",
	"React",
	"Angular",
	"Node.js",
	"SQL",
	"AWS",
	"Docker",
	"Kubernetes",
	"CI/CD",
	"Machine Learning",
	"Data Science",
	"Project Management",
}

// keywordSet accumulates keywords while keeping discovery order and rejecting
// case-insensitive duplicates.
type keywordSet struct {
	order []string
	seen  map[string]bool
}

func newKeywordSet() *keywordSet {
	return &keywordSet{seen: make(map[string]bool)}
}

func (s *keywordSet) add(keyword string) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return
	}
	key := strings.ToLower(keyword)
	if s.seen[key] {
		return
	}
	s.seen[key] = true
	s.order = append(s.order, keyword)
}

// addCanonical adds a dictionary term. Canonical casing always wins: if a
// case-variant of the term was already discovered, its entry is rewritten in
// place so discovery order is kept.
func (s *keywordSet) addCanonical(term string) {
	key := strings.ToLower(term)
	if s.seen[key] {
		for i, existing := range s.order {
			if strings.EqualFold(existing, term) {
				s.order[i] = term
				return
			}
		}
		return
	}
	s.seen[key] = true
	s.order = append(s.order, term)
}

func (s *keywordSet) list() []string {
	return s.order
}
