package analyses

import "resume-ats/internal/analyses/recommendations"

// Recommendation is an alias of the recommendations module type.
type Recommendation = recommendations.Recommendation

func buildRecommendations(res Result) []Recommendation {
	input := recommendations.Input{
		Findings:        make([]recommendations.Finding, 0, len(res.Findings)),
		FoundKeywords:   res.Keywords,
		MissingKeywords: res.MissingKeywords,
	}
	for _, f := range res.Findings {
		input.Findings = append(input.Findings, recommendations.Finding{
			Rule:       string(f.Rule),
			Section:    string(f.Section),
			Penalty:    f.Penalty,
			Problem:    f.Issue,
			Suggestion: f.Suggestion,
		})
	}
	return normalizeRecommendations(recommendations.GenerateRecommendations(input))
}

func normalizeRecommendations(value []Recommendation) []Recommendation {
	if value == nil {
		return []Recommendation{}
	}
	return value
}
