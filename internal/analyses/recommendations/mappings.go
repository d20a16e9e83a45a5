package recommendations

import (
	"fmt"
	"strings"
)

type ruleCopy struct {
	title string
	why   string
}

var ruleCopies = map[string]ruleCopy{
	"missing_full_name": {title: "Add your full name", why: "ATS parsers index candidates by name; a nameless résumé may be dropped."},
	"missing_email":     {title: "Add an email address", why: "Recruiters need a reachable contact address."},
	"missing_phone":     {title: "Add a phone number", why: "Many screening flows require a phone number."},
	"missing_summary":   {title: "Write a professional summary", why: "A summary gives ATS and recruiters the keywords of your profile up front."},
	"short_summary":     {title: "Expand your professional summary", why: "Short summaries carry too few matching terms."},
	"no_experience":     {title: "List your work experience", why: "Experience is the most heavily weighted section in most screenings."},
	"short_description": {title: "Expand short job descriptions", why: "Detailed bullets surface achievements and keywords."},
	"no_education":      {title: "Add your education", why: "Many filters check for a degree or institution."},
	"few_skills":        {title: "List more skills", why: "Skills are matched directly against job requirements."},
	"few_keywords":      {title: "Use more industry keywords", why: "Keyword coverage drives ATS ranking."},
	"missing_dates":     {title: "Complete employment dates", why: "Gaps or missing dates are flagged by screening software."},
	"brief_content":     {title: "Add more detail overall", why: "Very short résumés rank poorly against fuller ones."},
}

func fromFindings(findings []Finding) []Recommendation {
	counts := make(map[string]int, len(findings))
	for _, f := range findings {
		counts[f.Rule]++
	}
	out := make([]Recommendation, 0, len(findings))
	for _, f := range findings {
		rule := strings.TrimSpace(f.Rule)
		copyText, ok := ruleCopies[rule]
		title := copyText.title
		if !ok || title == "" {
			title = strings.TrimSpace(f.Problem)
		}
		if title == "" {
			title = strings.TrimSpace(f.Suggestion)
		}
		if title == "" {
			title = "Improve your résumé"
		}
		action := strings.TrimSpace(f.Suggestion)
		if action == "" {
			action = "Fix: " + strings.TrimSpace(firstNonEmpty(f.Problem, title))
		}
		if n := counts[f.Rule]; n > 1 {
			action = fmt.Sprintf("%s (%d entries)", action, n)
		}
		why := copyText.why
		if why == "" {
			why = "Improves clarity and relevance for recruiters."
		}
		severity, impact := severityForPenalty(f.Penalty * counts[f.Rule])
		out = append(out, Recommendation{
			ID:       "RULE_" + slugify(firstNonEmpty(rule, title)),
			Category: categoryForSection(f.Section),
			Severity: severity,
			Title:    title,
			Why:      why,
			Action:   action,
			Impact:   impact,
		})
	}
	return out
}

func fromMissingKeywords(found, missing []string) []Recommendation {
	keywords := uniqueSortedStrings(missing)
	if len(keywords) == 0 || len(found) >= 5 {
		return nil
	}
	if len(keywords) > 5 {
		keywords = keywords[:5]
	}
	return []Recommendation{
		{
			ID:       "KEYWORDS_MISSING_REFERENCE_TERMS",
			Category: "KEYWORDS",
			Severity: "info",
			Title:    "Work in common professional keywords",
			Why:      "Generic professional terms are what simple ATS filters look for.",
			Action:   "Mention terms that honestly describe your work, for example: " + strings.Join(keywords, ", "),
			Impact:   "medium",
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
