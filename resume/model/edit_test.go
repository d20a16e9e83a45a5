package model

import (
	"errors"
	"testing"
)

func TestWithPersonalDoesNotMutateInput(t *testing.T) {
	orig := Empty()
	next := WithPersonal(orig, FieldFullName, "Ada Lovelace")
	if orig.PersonalInfo.FullName != "" {
		t.Fatalf("input mutated: %q", orig.PersonalInfo.FullName)
	}
	if next.PersonalInfo.FullName != "Ada Lovelace" {
		t.Fatalf("expected full name set, got %q", next.PersonalInfo.FullName)
	}
}

func TestExperienceLifecycle(t *testing.T) {
	r := AddExperience(Empty(), Experience{ID: "e1", JobTitle: "Analyst"})
	r = AddExperience(r, Experience{JobTitle: "Engineer"})
	if len(r.Experiences) != 2 {
		t.Fatalf("expected 2 experiences, got %d", len(r.Experiences))
	}
	if r.Experiences[1].ID == "" {
		t.Fatalf("expected generated id")
	}

	before := r
	r = UpdateExperience(r, "e1", ExpCurrent, "on")
	r = UpdateExperience(r, "e1", ExpStartDate, "2024-01")
	if !r.Experiences[0].Current || r.Experiences[0].StartDate != "2024-01" {
		t.Fatalf("update not applied: %+v", r.Experiences[0])
	}
	if before.Experiences[0].Current {
		t.Fatalf("update mutated previous value")
	}

	r = UpdateExperience(r, "e1", ExpCurrent, false)
	if r.Experiences[0].Current {
		t.Fatalf("expected current cleared")
	}

	unchanged := UpdateExperience(r, "missing", ExpJobTitle, "x")
	if unchanged.Experiences[0].JobTitle != "Analyst" {
		t.Fatalf("unknown id should not change entries")
	}

	r = RemoveExperience(r, "e1")
	if len(r.Experiences) != 1 || r.Experiences[0].JobTitle != "Engineer" {
		t.Fatalf("unexpected experiences after remove: %+v", r.Experiences)
	}
	if len(before.Experiences) != 2 || before.Experiences[0].ID != "e1" {
		t.Fatalf("remove mutated previous value: %+v", before.Experiences)
	}
}

func TestSkillCoercion(t *testing.T) {
	r := AddSkill(Empty(), Skill{ID: "s1", Name: "Go"})
	if r.Skills[0].Level != LevelIntermediate {
		t.Fatalf("expected default level, got %q", r.Skills[0].Level)
	}
	r = UpdateSkill(r, "s1", SkillLevelF, "expert")
	r = UpdateSkill(r, "s1", SkillCategoryF, "SOFT")
	if r.Skills[0].Level != LevelExpert || r.Skills[0].Category != CategorySoft {
		t.Fatalf("unexpected skill: %+v", r.Skills[0])
	}
	r = UpdateSkill(r, "s1", SkillCategoryF, "bogus")
	if r.Skills[0].Category != CategoryNone {
		t.Fatalf("expected category cleared, got %q", r.Skills[0].Category)
	}
	if LevelBeginner.Rank() >= LevelExpert.Rank() {
		t.Fatalf("levels out of order")
	}
}

func TestIndexedListsIgnoreOutOfRange(t *testing.T) {
	r := AddCertification(Empty(), "AWS SAA")
	r = AddCertification(r, "CKA")
	r = SetCertification(r, 5, "nope")
	r = RemoveCertification(r, -1)
	if len(r.Certifications) != 2 {
		t.Fatalf("expected 2 certifications, got %v", r.Certifications)
	}
	r = SetCertification(r, 1, "CKAD")
	r = RemoveCertification(r, 0)
	if len(r.Certifications) != 1 || r.Certifications[0] != "CKAD" {
		t.Fatalf("unexpected certifications: %v", r.Certifications)
	}

	langs := AddLanguage(Empty(), "English")
	next := SetLanguage(langs, 0, "Bahasa Indonesia")
	if langs.Languages[0] != "English" || next.Languages[0] != "Bahasa Indonesia" {
		t.Fatalf("set language mutated input or failed: %v %v", langs.Languages, next.Languages)
	}
	if got := RemoveLanguage(next, 0).Languages; len(got) != 0 {
		t.Fatalf("expected empty languages, got %v", got)
	}
}

func TestParseFieldRejectsUnknown(t *testing.T) {
	if f, err := ParseExperienceField("JobTitle"); err != nil || f != ExpJobTitle {
		t.Fatalf("expected jobTitle, got %q %v", f, err)
	}
	if _, err := ParsePersonalField("nationality"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in    string
		year  int
		month int
		ok    bool
	}{
		{in: "2024-06", year: 2024, month: 6, ok: true},
		{in: " 2025-12 ", year: 2025, month: 12, ok: true},
		{in: "2024-13"},
		{in: "June 2024"},
		{in: ""},
	}
	for _, tt := range tests {
		y, m, ok := ParsePeriod(tt.in)
		if ok != tt.ok || y != tt.year || m != tt.month {
			t.Fatalf("ParsePeriod(%q) = %d %d %v", tt.in, y, m, ok)
		}
	}
}

func TestSampleIsComplete(t *testing.T) {
	s := Sample()
	if s.PersonalInfo.FullName == "" || len(s.Experiences) != 1 || len(s.Skills) != 8 {
		t.Fatalf("unexpected sample: %+v", s.PersonalInfo)
	}
	if len(s.SkillsIn(CategorySoft)) != 4 {
		t.Fatalf("expected 4 soft skills, got %d", len(s.SkillsIn(CategorySoft)))
	}
}
