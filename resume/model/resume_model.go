package model

import (
	"regexp"
	"strconv"
	"strings"
)

// Resume is the single in-memory résumé edited by the user, scored and rendered.
type Resume struct {
	PersonalInfo   PersonalInfo `json:"personalInfo"`
	Experiences    []Experience `json:"experiences"`
	Education      []Education  `json:"education"`
	Skills         []Skill      `json:"skills"`
	Certifications []string     `json:"certifications"`
	Languages      []string     `json:"languages"`
}

// PersonalInfo captures top-of-résumé contact and identity details.
type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	Summary   string `json:"summary"`
}

// Experience represents a work history entry.
// When Current is set EndDate is ignored.
type Experience struct {
	ID          string `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education represents an education entry.
type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
	Description    string `json:"description,omitempty"`
}

// Skill is a named skill with a proficiency level and an optional category.
type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Level    SkillLevel    `json:"level"`
	Category SkillCategory `json:"category,omitempty"`
}

// SkillLevel is the ordered proficiency enumeration.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// Levels lists proficiency levels from lowest to highest.
var Levels = []SkillLevel{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// Rank returns the position of the level in Levels, or -1 when unknown.
func (l SkillLevel) Rank() int {
	for i, lvl := range Levels {
		if lvl == l {
			return i
		}
	}
	return -1
}

// ParseSkillLevel matches a level case-insensitively. Unknown input falls back to Intermediate.
func ParseSkillLevel(raw string) SkillLevel {
	trimmed := strings.TrimSpace(raw)
	for _, lvl := range Levels {
		if strings.EqualFold(string(lvl), trimmed) {
			return lvl
		}
	}
	return LevelIntermediate
}

// SkillCategory groups skills into the preview columns. The zero value means uncategorised.
type SkillCategory string

const (
	CategoryNone      SkillCategory = ""
	CategoryTechnical SkillCategory = "technical"
	CategoryHard      SkillCategory = "hard"
	CategorySoft      SkillCategory = "soft"
)

// Categories lists the assignable categories.
var Categories = []SkillCategory{CategoryTechnical, CategoryHard, CategorySoft}

// ParseSkillCategory matches a category case-insensitively. Unknown input clears the category.
func ParseSkillCategory(raw string) SkillCategory {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	for _, cat := range Categories {
		if string(cat) == trimmed {
			return cat
		}
	}
	return CategoryNone
}

// Empty returns a résumé with every field absent and every list empty.
func Empty() Resume {
	return Resume{
		Experiences:    []Experience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Certifications: []string{},
		Languages:      []string{},
	}
}

// Clone returns a deep copy so callers can mutate the result freely.
func (r Resume) Clone() Resume {
	out := r
	out.Experiences = append([]Experience{}, r.Experiences...)
	out.Education = append([]Education{}, r.Education...)
	out.Skills = append([]Skill{}, r.Skills...)
	out.Certifications = append([]string{}, r.Certifications...)
	out.Languages = append([]string{}, r.Languages...)
	return out
}

// SkillsIn returns the skills of one category in the order they were added.
func (r Resume) SkillsIn(category SkillCategory) []Skill {
	var out []Skill
	for _, s := range r.Skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}

var resumeDatePattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)

// ParsePeriod splits a YYYY-MM period. ok is false for anything else.
func ParsePeriod(value string) (year, month int, ok bool) {
	match := resumeDatePattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0, 0, false
	}
	year, _ = strconv.Atoi(match[1])
	month, _ = strconv.Atoi(match[2])
	return year, month, true
}
