// Package rewriting resolves template placeholders against extracted facts
// and rewrites documents while preserving per-run styling.
package rewriting

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/doc-tailor/internal/extraction"
)

// Fallback skill-slot words, one per slot, used when the job description
// yielded fewer than three keywords.
var skillFallbacks = [3]string{"programming", "development", "problem-solving"}

// dateLayout renders the current-date placeholder as "Month DD, YYYY".
const dateLayout = "January 2, 2006"

// BuildPlaceholders derives the placeholder map for one job from its facts.
// The map is recomputed per job and never mutated after construction. The
// current time is an argument so the construction stays deterministic.
func BuildPlaceholders(facts extraction.Facts, now time.Time) map[string]string {
	kw := facts.Keywords

	topSkills := kw
	if len(topSkills) > 3 {
		topSkills = topSkills[:3]
	}

	accomplishment := "successfully delivered projects using various technologies"
	relevantSkill := "deliver high-quality solutions"
	specificKnowledge := "technical expertise"
	if len(kw) > 0 {
		accomplishment = fmt.Sprintf("successfully delivered projects using %s", kw[0])
		relevantSkill = kw[0]
		specificKnowledge = kw[0]
	}

	relevantExperience := "software development"
	if len(kw) > 0 {
		top2 := kw
		if len(top2) > 2 {
			top2 = top2[:2]
		}
		relevantExperience = strings.Join(top2, ", ")
	}

	return map[string]string{
		"[COMPANY_NAME]":       facts.Company,
		"[POSITION_TITLE]":     facts.JobTitle,
		"[Current Date]":       now.Format(dateLayout),
		"[job board/website]":  "your job posting",
		"[your field]":         "software development",
		"[relevant skills]":    strings.Join(topSkills, ", "),
		"[skill 1]":            skillAt(kw, 0),
		"[skill 2]":            skillAt(kw, 1),
		"[skill 3]":            skillAt(kw, 2),
		"[Previous Company]":   "my previous company",
		"[brief accomplishment that relates to the job]": accomplishment,
		"[another accomplishment]":                       "leading multiple successful project deliveries",
		"[relevant skill for the job]":                   relevantSkill,
		"[something specific about the company that you admire]":                       "your focus on innovation and technical excellence",
		"[mention something specific about their products, services, culture, or mission]": "commitment to delivering high-quality software solutions",
		"[relevant experience]":         relevantExperience,
		"[specific relevant knowledge]": specificKnowledge,
		"[relevant area]":               "software development and innovation",
		"[your phone number]":           "YOUR_PHONE_NUMBER",
		"[your email address]":          "YOUR_EMAIL_ADDRESS",
	}
}

// skillAt returns the nth keyword, or that slot's fixed fallback word.
func skillAt(keywords []string, n int) string {
	if n < len(keywords) {
		return keywords[n]
	}
	return skillFallbacks[n]
}
