package analyses

import (
	"reflect"
	"strings"
	"testing"

	"resume-ats/internal/i18n"
	"resume-ats/resume/model"
)

func completeResume() model.Resume {
	return model.Resume{
		PersonalInfo: model.PersonalInfo{
			FullName: "Ronald Gunawan",
			Email:    "ronald@example.com",
			Phone:    "+62 812-0000-0000",
			Summary:  "Results-driven analyst with strong leadership and communication skills across finance teams.",
		},
		Experiences: []model.Experience{{
			ID:          "e1",
			JobTitle:    "Credit Analyst",
			Company:     "Bank",
			StartDate:   "2022-01",
			EndDate:     "2024-06",
			Description: "Led data analysis and project management for software development, improving optimization of reporting.",
		}},
		Education: []model.Education{{ID: "ed1", Degree: "S1", Institution: "Universitas Trisakti", GraduationDate: "2021-07"}},
		Skills: []model.Skill{
			{ID: "1", Name: "Excel", Level: model.LevelAdvanced, Category: model.CategoryTechnical},
			{ID: "2", Name: "SQL", Level: model.LevelAdvanced, Category: model.CategoryTechnical},
			{ID: "3", Name: "Negotiation", Level: model.LevelAdvanced, Category: model.CategorySoft},
			{ID: "4", Name: "Accounting", Level: model.LevelAdvanced, Category: model.CategoryHard},
			{ID: "5", Name: "Auditing", Level: model.LevelAdvanced, Category: model.CategoryHard},
		},
		Certifications: []string{strings.Repeat("Certified training program in research methods. ", 6)},
	}
}

func TestAnalyzeEmptyResume(t *testing.T) {
	res := Analyze(model.Empty())
	if res.Score != 10 {
		t.Fatalf("expected empty resume to score 10, got %d", res.Score)
	}
	wantRules := []Rule{
		RuleMissingFullName, RuleMissingEmail, RuleMissingPhone, RuleMissingSummary,
		RuleNoExperience, RuleNoEducation, RuleFewSkills, RuleBriefContent,
	}
	var got []Rule
	for _, f := range res.Findings {
		got = append(got, f.Rule)
	}
	if !reflect.DeepEqual(got, wantRules) {
		t.Fatalf("unexpected findings %v", got)
	}
	if len(res.Keywords) != 0 {
		t.Fatalf("expected no keywords, got %v", res.Keywords)
	}
}

func TestAnalyzeCompleteResumeScoresFull(t *testing.T) {
	res := Analyze(completeResume())
	if res.Score != 100 {
		t.Fatalf("expected 100, got %d with findings %+v", res.Score, res.Findings)
	}
	if len(res.Issues) != 0 || len(res.Suggestions) != 0 {
		t.Fatalf("expected no issues or suggestions, got %v / %v", res.Issues, res.Suggestions)
	}
}

func TestAnalyzeKeywordBounds(t *testing.T) {
	for _, r := range []model.Resume{model.Empty(), model.Sample(), completeResume()} {
		res := Analyze(r)
		if len(res.MissingKeywords) > 10 {
			t.Fatalf("missing keywords exceed 10: %d", len(res.MissingKeywords))
		}
		total := len(res.Keywords) + len(res.MissingKeywords)
		if total > len(referenceKeywords) {
			t.Fatalf("found+missing exceeds reference list: %d", total)
		}
		untruncated := len(referenceKeywords) - len(res.Keywords)
		if untruncated <= 10 && total != len(referenceKeywords) {
			t.Fatalf("expected found+missing to cover the list when not truncated, got %d", total)
		}
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	r := model.Sample()
	first := Analyze(r)
	second := Analyze(r)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical results")
	}
}

func TestFillingRequiredFieldNeverLowersScore(t *testing.T) {
	certified := model.Empty()
	certified.Certifications = []string{"Certified Public Accountant"}

	fields := []model.PersonalField{model.FieldFullName, model.FieldEmail, model.FieldPhone, model.FieldSummary}
	// Bases whose combined text is already non-blank, so the keyword rule is active before and after.
	bases := []model.Resume{certified, completeResume()}
	values := []string{"Accountant.", "Results-driven leader focused on communication and teamwork in every project."}
	for _, base := range bases {
		for _, f := range fields {
			for _, v := range values {
				blank := model.WithPersonal(base, f, "")
				filled := model.WithPersonal(blank, f, v)
				before := Analyze(blank).Score
				after := Analyze(filled).Score
				if after < before {
					t.Fatalf("filling %s with %q lowered score from %d to %d", f, v, before, after)
				}
			}
		}
	}
}

// The first text on an otherwise blank résumé switches on the keyword rule.
func TestFirstTextActivatesKeywordPenalty(t *testing.T) {
	summary := Analyze(model.WithPersonal(model.Empty(), model.FieldSummary, "Accountant."))
	if summary.Score != 0 {
		t.Fatalf("expected short summary on empty resume to score 0, got %d", summary.Score)
	}
	if !contains(summary.Suggestions, "Include more industry-relevant keywords in your experience descriptions") {
		t.Fatalf("expected keyword suggestion, got %v", summary.Suggestions)
	}

	named := model.WithPersonal(model.Empty(), model.FieldFullName, "Ronald Gunawan")
	if got := Analyze(named).Score; got != 20 {
		t.Fatalf("expected name-only resume to score 20, got %d", got)
	}
	named.Certifications = []string{"CPA"}
	if got := Analyze(named).Score; got != 5 {
		t.Fatalf("expected certification to cost the keyword penalty, got %d", got)
	}
}

func TestMissingEmailCostsTenPoints(t *testing.T) {
	r := model.WithPersonal(completeResume(), model.FieldEmail, "")
	res := Analyze(r)
	if res.Score != 90 {
		t.Fatalf("expected 90, got %d", res.Score)
	}
	if !reflect.DeepEqual(res.Issues, []string{"Missing email address"}) {
		t.Fatalf("unexpected issues %v", res.Issues)
	}
}

func TestCurrentRoleNeedsNoEndDate(t *testing.T) {
	r := completeResume()
	r.Experiences[0].EndDate = ""
	r.Experiences[0].Current = true
	if got := Analyze(r).Score; got != 100 {
		t.Fatalf("expected current role without end date to score 100, got %d", got)
	}

	r.Experiences[0].Current = false
	res := Analyze(r)
	if res.Score != 90 {
		t.Fatalf("expected missing end date to cost 10, got %d", res.Score)
	}
	if !contains(res.Issues, "Missing employment dates") {
		t.Fatalf("expected missing dates issue, got %v", res.Issues)
	}
}

func TestShortDescriptionIsPerEntry(t *testing.T) {
	r := completeResume()
	r.Experiences = append(r.Experiences,
		model.Experience{ID: "e2", JobTitle: "Intern", StartDate: "2021-01", EndDate: "2021-03", Description: "Filing."},
		model.Experience{ID: "e3", JobTitle: "Tutor", StartDate: "2020-01", EndDate: "2020-03", Description: "Math."},
	)
	res := Analyze(r)
	if res.Score != 90 {
		t.Fatalf("expected two short descriptions to cost 10, got %d", res.Score)
	}
	if !contains(res.Issues, "Job description too short for Intern") || !contains(res.Issues, "Job description too short for Tutor") {
		t.Fatalf("expected per-entry issues, got %v", res.Issues)
	}
	suggestion := "Add detailed bullet points describing your achievements and responsibilities"
	count := 0
	for _, s := range res.Suggestions {
		if s == suggestion {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected the suggestion once per entry, got %d", count)
	}
}

func TestShortSummaryUsesRuneCount(t *testing.T) {
	r := completeResume()
	r.PersonalInfo.Summary = strings.Repeat("é", 49)
	if !hasRule(Analyze(r), RuleShortSummary) {
		t.Fatalf("expected 49 runes to be short")
	}
	r.PersonalInfo.Summary = strings.Repeat("é", 50)
	if hasRule(Analyze(r), RuleShortSummary) {
		t.Fatalf("expected 50 runes to be long enough")
	}
}

func TestKeywordMatchingIsCaseInsensitiveSubstring(t *testing.T) {
	r := model.Empty()
	r.PersonalInfo.Summary = "LEADERSHIP in Software DEVELOPMENT"
	res := Analyze(r)
	want := []string{"leadership", "development", "software"}
	if !reflect.DeepEqual(res.Keywords, want) {
		t.Fatalf("expected %v in reference order, got %v", want, res.Keywords)
	}
}

func TestBandsAndRecommendations(t *testing.T) {
	tests := []struct {
		score int
		band  Band
		en    string
		id    string
	}{
		{95, BandExcellent, "Excellent ATS compatibility!", "Kompatibilitas ATS sangat baik!"},
		{80, BandGood, "Good ATS compatibility with minor improvements needed", "Kompatibilitas ATS baik dengan sedikit perbaikan diperlukan"},
		{70, BandFair, "Fair ATS compatibility - several improvements recommended", "Kompatibilitas ATS cukup - beberapa perbaikan disarankan"},
		{60, BandPoor, "Poor ATS compatibility - significant improvements needed", "Kompatibilitas ATS buruk - perbaikan signifikan diperlukan"},
		{0, BandVeryPoor, "Very poor ATS compatibility - major revisions required", "Kompatibilitas ATS sangat buruk - revisi besar diperlukan"},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score); got != tt.band {
			t.Fatalf("BandFor(%d) = %s, want %s", tt.score, got, tt.band)
		}
		if got := RecommendationText(tt.score, i18n.EN); got != tt.en {
			t.Fatalf("en recommendation for %d = %q", tt.score, got)
		}
		if got := RecommendationText(tt.score, i18n.ID); got != tt.id {
			t.Fatalf("id recommendation for %d = %q", tt.score, got)
		}
	}
}

func TestExplainSumsToPointsLost(t *testing.T) {
	res := Analyze(model.Empty())
	exp := Explain(res.Findings)
	if exp.PointsLost() != 90 {
		t.Fatalf("expected 90 points lost, got %d", exp.PointsLost())
	}
	if len(exp.Components) != 7 {
		t.Fatalf("expected all sections listed, got %d", len(exp.Components))
	}
}

func hasRule(res Result, rule Rule) bool {
	for _, f := range res.Findings {
		if f.Rule == rule {
			return true
		}
	}
	return false
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

func TestKeywordCoverage(t *testing.T) {
	cov := KeywordCoverage("Strong LEADERSHIP and Data Analysis")
	if !reflect.DeepEqual(cov.Found, []string{"leadership", "data analysis"}) {
		t.Fatalf("unexpected found %v", cov.Found)
	}
	if len(cov.Missing) != 21 {
		t.Fatalf("expected 21 missing, got %d", len(cov.Missing))
	}
	if cov.Percent != 8 {
		t.Fatalf("expected 8 percent, got %d", cov.Percent)
	}
}
