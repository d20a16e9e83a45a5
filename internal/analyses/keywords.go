package analyses

import "strings"

// referenceKeywords is the fixed list matched against résumé text. Order is significant:
// found and missing keywords are reported in this order.
var referenceKeywords = []string{
	"leadership",
	"management",
	"communication",
	"teamwork",
	"problem-solving",
	"analytical",
	"strategic",
	"innovative",
	"results-driven",
	"collaboration",
	"project management",
	"data analysis",
	"customer service",
	"sales",
	"marketing",
	"research",
	"development",
	"software",
	"technical",
	"certification",
	"training",
	"optimization",
	"implementation",
}

// ReferenceKeywords returns a copy of the reference keyword list.
func ReferenceKeywords() []string {
	return append([]string(nil), referenceKeywords...)
}

// Coverage reports which reference keywords appear in free text.
type Coverage struct {
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
	Percent int      `json:"percent"`
}

// KeywordCoverage matches the reference list against text, such as text read back from an
// exported file. Missing keywords are not truncated.
func KeywordCoverage(text string) Coverage {
	lower := strings.ToLower(text)
	cov := Coverage{Found: []string{}, Missing: []string{}}
	for _, kw := range referenceKeywords {
		if strings.Contains(lower, kw) {
			cov.Found = append(cov.Found, kw)
		} else {
			cov.Missing = append(cov.Missing, kw)
		}
	}
	cov.Percent = len(cov.Found) * 100 / len(referenceKeywords)
	return cov
}
