package recommendations

import (
	"reflect"
	"strings"
	"testing"
)

func sampleInput() Input {
	return Input{
		Findings: []Finding{
			{Rule: "missing_email", Section: "personal", Penalty: 10, Problem: "Missing email address"},
			{Rule: "no_experience", Section: "experience", Penalty: 25, Problem: "No work experience listed"},
			{Rule: "few_skills", Section: "skills", Penalty: 10, Suggestion: "Add more relevant skills to improve keyword matching"},
			{Rule: "no_education", Section: "education", Penalty: 5, Suggestion: "Consider adding your educational background"},
		},
		FoundKeywords:   []string{"sales"},
		MissingKeywords: []string{"leadership", "management", "communication"},
	}
}

func TestGenerateRecommendationsDeterminism(t *testing.T) {
	first := GenerateRecommendations(sampleInput())
	second := GenerateRecommendations(sampleInput())

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected deterministic recommendations ordering")
	}
	for i, rec := range first {
		if rec.Order != i+1 {
			t.Fatalf("expected order %d, got %d", i+1, rec.Order)
		}
	}
}

func TestGenerateRecommendationsRanking(t *testing.T) {
	cases := []struct {
		name     string
		items    []Recommendation
		expected string
	}{
		{
			name: "critical_high_above_warning_high",
			items: []Recommendation{
				{ID: "a", Severity: "warning", Impact: "high", Title: "B"},
				{ID: "b", Severity: "critical", Impact: "high", Title: "A"},
			},
			expected: "b",
		},
		{
			name: "warning_high_above_warning_low",
			items: []Recommendation{
				{ID: "a", Severity: "warning", Impact: "low", Title: "B"},
				{ID: "b", Severity: "warning", Impact: "high", Title: "A"},
			},
			expected: "b",
		},
		{
			name: "contact_above_skills_on_tie",
			items: []Recommendation{
				{ID: "a", Severity: "warning", Impact: "high", Category: "SKILLS", Title: "A"},
				{ID: "b", Severity: "warning", Impact: "high", Category: "CONTACT", Title: "B"},
			},
			expected: "b",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := append([]Recommendation{}, tc.items...)
			sortRecommendations(items)
			if len(items) == 0 || items[0].ID != tc.expected {
				t.Fatalf("expected first id %q, got %q", tc.expected, items[0].ID)
			}
		})
	}
}

func TestGenerateRecommendationsTopIsMostCostly(t *testing.T) {
	recs := GenerateRecommendations(sampleInput())
	if len(recs) == 0 {
		t.Fatalf("expected recommendations")
	}
	if recs[0].ID != "RULE_no-experience" {
		t.Fatalf("expected no_experience first, got %q", recs[0].ID)
	}
}

func TestGenerateRecommendationsDedupRepeatedRule(t *testing.T) {
	input := Input{
		Findings: []Finding{
			{Rule: "short_description", Section: "experience", Penalty: 5, Problem: "Job description too short for Analyst", Suggestion: "Add detailed bullet points describing your achievements and responsibilities"},
			{Rule: "short_description", Section: "experience", Penalty: 5, Problem: "Job description too short for Engineer", Suggestion: "Add detailed bullet points describing your achievements and responsibilities"},
		},
	}
	recs := GenerateRecommendations(input)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if !strings.Contains(recs[0].Action, "(2 entries)") {
		t.Fatalf("expected merged count in action, got %q", recs[0].Action)
	}
	if recs[0].Severity != "warning" || recs[0].Impact != "high" {
		t.Fatalf("expected combined penalty to raise severity, got %s/%s", recs[0].Severity, recs[0].Impact)
	}
}

func TestGenerateRecommendationsCapsAtSeven(t *testing.T) {
	rules := []string{"missing_full_name", "missing_email", "missing_phone", "missing_summary", "no_experience", "no_education", "few_skills", "few_keywords", "brief_content"}
	input := Input{}
	for _, r := range rules {
		input.Findings = append(input.Findings, Finding{Rule: r, Section: "personal", Penalty: 10, Problem: r})
	}
	recs := GenerateRecommendations(input)
	if len(recs) != maxRecommendations {
		t.Fatalf("expected %d recommendations, got %d", maxRecommendations, len(recs))
	}
}

func TestMissingKeywordsSkippedWhenCoverageIsGood(t *testing.T) {
	found := []string{"a", "b", "c", "d", "e"}
	if recs := fromMissingKeywords(found, []string{"leadership"}); recs != nil {
		t.Fatalf("expected no keyword recommendation, got %+v", recs)
	}
	recs := fromMissingKeywords(nil, []string{"teamwork", "leadership"})
	if len(recs) != 1 || !strings.Contains(recs[0].Action, "leadership, teamwork") {
		t.Fatalf("unexpected keyword recommendation: %+v", recs)
	}
}
