package analyses

import (
	"strings"
	"unicode/utf8"

	"resume-ats/resume/model"
)

const (
	maxScore            = 100
	minSummaryChars     = 50
	minDescriptionChars = 50
	minSkills           = 5
	minKeywords         = 5
	minContentChars     = 500
	maxMissingKeywords  = 10
)

// Rule identifies one entry of the penalty table.
type Rule string

const (
	RuleMissingFullName  Rule = "missing_full_name"
	RuleMissingEmail     Rule = "missing_email"
	RuleMissingPhone     Rule = "missing_phone"
	RuleMissingSummary   Rule = "missing_summary"
	RuleShortSummary     Rule = "short_summary"
	RuleNoExperience     Rule = "no_experience"
	RuleShortDescription Rule = "short_description"
	RuleNoEducation      Rule = "no_education"
	RuleFewSkills        Rule = "few_skills"
	RuleFewKeywords      Rule = "few_keywords"
	RuleMissingDates     Rule = "missing_dates"
	RuleBriefContent     Rule = "brief_content"
)

// Section groups findings by the part of the résumé they concern.
type Section string

const (
	SectionPersonal   Section = "personal"
	SectionSummary    Section = "summary"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionKeywords   Section = "keywords"
	SectionContent    Section = "content"
)

// Finding records one applied penalty. EntryID is set for per-entry findings.
type Finding struct {
	Rule       Rule    `json:"rule"`
	Section    Section `json:"section"`
	Penalty    int     `json:"penalty"`
	Issue      string  `json:"issue,omitempty"`
	Suggestion string  `json:"suggestion,omitempty"`
	EntryID    string  `json:"entryId,omitempty"`
}

// Result is the ATS compatibility assessment of one résumé.
type Result struct {
	Score           int       `json:"score"`
	Issues          []string  `json:"issues"`
	Suggestions     []string  `json:"suggestions"`
	Keywords        []string  `json:"keywords"`
	MissingKeywords []string  `json:"missingKeywords"`
	Findings        []Finding `json:"findings"`
}

// Analyze scores a résumé against the fixed penalty table. It is pure and total:
// missing data is penalized, never an error.
func Analyze(r model.Resume) Result {
	a := assessment{
		total: maxScore,
		res: Result{
			Issues:      []string{},
			Suggestions: []string{},
			Findings:    []Finding{},
		},
	}
	p := r.PersonalInfo

	if p.FullName == "" {
		a.apply(Finding{Rule: RuleMissingFullName, Section: SectionPersonal, Penalty: 10, Issue: "Missing full name"})
	}
	if p.Email == "" {
		a.apply(Finding{Rule: RuleMissingEmail, Section: SectionPersonal, Penalty: 10, Issue: "Missing email address"})
	}
	if p.Phone == "" {
		a.apply(Finding{Rule: RuleMissingPhone, Section: SectionPersonal, Penalty: 5, Issue: "Missing phone number"})
	}

	switch {
	case p.Summary == "":
		a.apply(Finding{
			Rule: RuleMissingSummary, Section: SectionSummary, Penalty: 15,
			Issue:      "Missing professional summary",
			Suggestion: "Add a professional summary to highlight your key qualifications",
		})
	case utf8.RuneCountInString(p.Summary) < minSummaryChars:
		a.apply(Finding{
			Rule: RuleShortSummary, Section: SectionSummary, Penalty: 10,
			Issue:      "Professional summary too short",
			Suggestion: "Expand your professional summary to 2-3 sentences",
		})
	}

	if len(r.Experiences) == 0 {
		a.apply(Finding{Rule: RuleNoExperience, Section: SectionExperience, Penalty: 25, Issue: "No work experience listed"})
	}
	for _, exp := range r.Experiences {
		if utf8.RuneCountInString(exp.Description) < minDescriptionChars {
			a.apply(Finding{
				Rule: RuleShortDescription, Section: SectionExperience, Penalty: 5, EntryID: exp.ID,
				Issue:      "Job description too short for " + exp.JobTitle,
				Suggestion: "Add detailed bullet points describing your achievements and responsibilities",
			})
		}
	}

	if len(r.Education) == 0 {
		a.apply(Finding{
			Rule: RuleNoEducation, Section: SectionEducation, Penalty: 5,
			Suggestion: "Consider adding your educational background",
		})
	}

	if len(r.Skills) < minSkills {
		a.apply(Finding{
			Rule: RuleFewSkills, Section: SectionSkills, Penalty: 10,
			Suggestion: "Add more relevant skills to improve keyword matching",
		})
	}

	text := combinedText(r)
	found, missing := matchKeywords(text)
	a.res.Keywords = found
	a.res.MissingKeywords = missing
	// Blank text has nothing to match; the brief-content rule already covers it.
	if len(found) < minKeywords && strings.TrimSpace(text) != "" {
		a.apply(Finding{
			Rule: RuleFewKeywords, Section: SectionKeywords, Penalty: 15,
			Suggestion: "Include more industry-relevant keywords in your experience descriptions",
		})
	}

	if hasMissingDates(r.Experiences) {
		a.apply(Finding{
			Rule: RuleMissingDates, Section: SectionExperience, Penalty: 10,
			Issue:      "Missing employment dates",
			Suggestion: "Include start and end dates for all positions",
		})
	}

	if utf8.RuneCountInString(text) < minContentChars {
		a.apply(Finding{
			Rule: RuleBriefContent, Section: SectionContent, Penalty: 10,
			Issue:      "CV content too brief",
			Suggestion: "Expand your CV with more detailed descriptions",
		})
	}

	a.res.Score = clampScore(a.total)
	return a.res
}

type assessment struct {
	res   Result
	total int
}

func (a *assessment) apply(f Finding) {
	a.total -= f.Penalty
	if f.Issue != "" {
		a.res.Issues = append(a.res.Issues, f.Issue)
	}
	if f.Suggestion != "" {
		a.res.Suggestions = append(a.res.Suggestions, f.Suggestion)
	}
	a.res.Findings = append(a.res.Findings, f)
}

func clampScore(total int) int {
	if total < 0 {
		return 0
	}
	if total > maxScore {
		return maxScore
	}
	return total
}

// hasMissingDates treats a current position as always having an end date.
func hasMissingDates(exps []model.Experience) bool {
	for _, exp := range exps {
		if exp.StartDate == "" {
			return true
		}
		if !exp.Current && exp.EndDate == "" {
			return true
		}
	}
	return false
}

// combinedText is the lower-cased text scanned for keywords and measured for length.
func combinedText(r model.Resume) string {
	roles := make([]string, 0, len(r.Experiences))
	for _, exp := range r.Experiences {
		roles = append(roles, exp.JobTitle+" "+exp.Description)
	}
	skills := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		skills = append(skills, s.Name)
	}
	parts := []string{
		r.PersonalInfo.Summary,
		strings.Join(roles, " "),
		strings.Join(skills, " "),
		strings.Join(r.Certifications, " "),
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}

func matchKeywords(text string) (found, missing []string) {
	found = []string{}
	missing = []string{}
	for _, kw := range referenceKeywords {
		if strings.Contains(text, kw) {
			found = append(found, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	if len(missing) > maxMissingKeywords {
		missing = missing[:maxMissingKeywords]
	}
	return found, missing
}
