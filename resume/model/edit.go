package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrUnknownField is returned when a field name does not belong to the edited entry type.
var ErrUnknownField = errors.New("unknown field")

// PersonalField names an editable PersonalInfo field.
type PersonalField string

const (
	FieldFullName  PersonalField = "fullName"
	FieldEmail     PersonalField = "email"
	FieldPhone     PersonalField = "phone"
	FieldLocation  PersonalField = "location"
	FieldLinkedIn  PersonalField = "linkedin"
	FieldInstagram PersonalField = "instagram"
	FieldSummary   PersonalField = "summary"
)

// PersonalFields lists the PersonalInfo fields in form order.
var PersonalFields = []PersonalField{FieldFullName, FieldEmail, FieldPhone, FieldLocation, FieldLinkedIn, FieldInstagram, FieldSummary}

// ExperienceField names an editable Experience field.
type ExperienceField string

const (
	ExpJobTitle    ExperienceField = "jobTitle"
	ExpCompany     ExperienceField = "company"
	ExpLocation    ExperienceField = "location"
	ExpStartDate   ExperienceField = "startDate"
	ExpEndDate     ExperienceField = "endDate"
	ExpCurrent     ExperienceField = "current"
	ExpDescription ExperienceField = "description"
)

// ExperienceFields lists the Experience fields in form order.
var ExperienceFields = []ExperienceField{ExpJobTitle, ExpCompany, ExpLocation, ExpStartDate, ExpEndDate, ExpCurrent, ExpDescription}

// EducationField names an editable Education field.
type EducationField string

const (
	EduDegree         EducationField = "degree"
	EduInstitution    EducationField = "institution"
	EduLocation       EducationField = "location"
	EduGraduationDate EducationField = "graduationDate"
	EduGPA            EducationField = "gpa"
	EduDescription    EducationField = "description"
)

// EducationFields lists the Education fields in form order.
var EducationFields = []EducationField{EduDegree, EduInstitution, EduLocation, EduGraduationDate, EduGPA, EduDescription}

// SkillField names an editable Skill field.
type SkillField string

const (
	SkillName      SkillField = "name"
	SkillLevelF    SkillField = "level"
	SkillCategoryF SkillField = "category"
)

// SkillFields lists the Skill fields in form order.
var SkillFields = []SkillField{SkillName, SkillLevelF, SkillCategoryF}

// ParsePersonalField resolves a PersonalInfo field by name.
func ParsePersonalField(raw string) (PersonalField, error) {
	return parseField(raw, PersonalFields)
}

// ParseExperienceField resolves an Experience field by name.
func ParseExperienceField(raw string) (ExperienceField, error) {
	return parseField(raw, ExperienceFields)
}

// ParseEducationField resolves an Education field by name.
func ParseEducationField(raw string) (EducationField, error) {
	return parseField(raw, EducationFields)
}

// ParseSkillField resolves a Skill field by name.
func ParseSkillField(raw string) (SkillField, error) {
	return parseField(raw, SkillFields)
}

func parseField[F ~string](raw string, known []F) (F, error) {
	trimmed := strings.TrimSpace(raw)
	for _, f := range known {
		if strings.EqualFold(string(f), trimmed) {
			return f, nil
		}
	}
	var zero F
	return zero, fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

// WithPersonal returns a copy of r with one PersonalInfo field replaced.
func WithPersonal(r Resume, field PersonalField, value string) Resume {
	out := r.Clone()
	p := &out.PersonalInfo
	switch field {
	case FieldFullName:
		p.FullName = value
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	case FieldLocation:
		p.Location = value
	case FieldLinkedIn:
		p.LinkedIn = value
	case FieldInstagram:
		p.Instagram = value
	case FieldSummary:
		p.Summary = value
	}
	return out
}

// NewID returns a fresh entry identifier.
func NewID() string {
	return uuid.NewString()
}

// NewExperience returns a blank experience entry with a fresh id.
func NewExperience() Experience {
	return Experience{ID: NewID()}
}

// NewEducation returns a blank education entry with a fresh id.
func NewEducation() Education {
	return Education{ID: NewID()}
}

// NewSkill returns a named skill with the default level and category.
func NewSkill(name string) Skill {
	return Skill{ID: NewID(), Name: name, Level: LevelIntermediate, Category: CategoryTechnical}
}

// AddExperience appends e, assigning an id when it has none.
func AddExperience(r Resume, e Experience) Resume {
	if e.ID == "" {
		e.ID = NewID()
	}
	out := r.Clone()
	out.Experiences = append(out.Experiences, e)
	return out
}

// UpdateExperience sets one field on the entry with the given id. Unknown ids leave r unchanged.
func UpdateExperience(r Resume, id string, field ExperienceField, value any) Resume {
	out := r.Clone()
	for i := range out.Experiences {
		if out.Experiences[i].ID != id {
			continue
		}
		e := &out.Experiences[i]
		switch field {
		case ExpJobTitle:
			e.JobTitle = asString(value)
		case ExpCompany:
			e.Company = asString(value)
		case ExpLocation:
			e.Location = asString(value)
		case ExpStartDate:
			e.StartDate = asString(value)
		case ExpEndDate:
			e.EndDate = asString(value)
		case ExpCurrent:
			e.Current = asBool(value)
		case ExpDescription:
			e.Description = asString(value)
		}
	}
	return out
}

// RemoveExperience drops the entry with the given id.
func RemoveExperience(r Resume, id string) Resume {
	out := r.Clone()
	kept := out.Experiences[:0]
	for _, e := range out.Experiences {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	out.Experiences = kept
	return out
}

// AddEducation appends e, assigning an id when it has none.
func AddEducation(r Resume, e Education) Resume {
	if e.ID == "" {
		e.ID = NewID()
	}
	out := r.Clone()
	out.Education = append(out.Education, e)
	return out
}

// UpdateEducation sets one field on the entry with the given id. Unknown ids leave r unchanged.
func UpdateEducation(r Resume, id string, field EducationField, value string) Resume {
	out := r.Clone()
	for i := range out.Education {
		if out.Education[i].ID != id {
			continue
		}
		e := &out.Education[i]
		switch field {
		case EduDegree:
			e.Degree = value
		case EduInstitution:
			e.Institution = value
		case EduLocation:
			e.Location = value
		case EduGraduationDate:
			e.GraduationDate = value
		case EduGPA:
			e.GPA = value
		case EduDescription:
			e.Description = value
		}
	}
	return out
}

// RemoveEducation drops the entry with the given id.
func RemoveEducation(r Resume, id string) Resume {
	out := r.Clone()
	kept := out.Education[:0]
	for _, e := range out.Education {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	out.Education = kept
	return out
}

// AddSkill appends s, assigning an id and a level when missing.
func AddSkill(r Resume, s Skill) Resume {
	if s.ID == "" {
		s.ID = NewID()
	}
	if s.Level == "" {
		s.Level = LevelIntermediate
	}
	out := r.Clone()
	out.Skills = append(out.Skills, s)
	return out
}

// UpdateSkill sets one field on the skill with the given id. Unknown ids leave r unchanged.
func UpdateSkill(r Resume, id string, field SkillField, value string) Resume {
	out := r.Clone()
	for i := range out.Skills {
		if out.Skills[i].ID != id {
			continue
		}
		s := &out.Skills[i]
		switch field {
		case SkillName:
			s.Name = value
		case SkillLevelF:
			s.Level = ParseSkillLevel(value)
		case SkillCategoryF:
			s.Category = ParseSkillCategory(value)
		}
	}
	return out
}

// RemoveSkill drops the skill with the given id.
func RemoveSkill(r Resume, id string) Resume {
	out := r.Clone()
	kept := out.Skills[:0]
	for _, s := range out.Skills {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	out.Skills = kept
	return out
}

// AddCertification appends a certification line.
func AddCertification(r Resume, value string) Resume {
	out := r.Clone()
	out.Certifications = append(out.Certifications, value)
	return out
}

// SetCertification replaces the certification at index i. Out-of-range indexes leave r unchanged.
func SetCertification(r Resume, i int, value string) Resume {
	out := r.Clone()
	out.Certifications = setAt(out.Certifications, i, value)
	return out
}

// RemoveCertification drops the certification at index i.
func RemoveCertification(r Resume, i int) Resume {
	out := r.Clone()
	out.Certifications = removeAt(out.Certifications, i)
	return out
}

// AddLanguage appends a language line.
func AddLanguage(r Resume, value string) Resume {
	out := r.Clone()
	out.Languages = append(out.Languages, value)
	return out
}

// SetLanguage replaces the language at index i. Out-of-range indexes leave r unchanged.
func SetLanguage(r Resume, i int, value string) Resume {
	out := r.Clone()
	out.Languages = setAt(out.Languages, i, value)
	return out
}

// RemoveLanguage drops the language at index i.
func RemoveLanguage(r Resume, i int) Resume {
	out := r.Clone()
	out.Languages = removeAt(out.Languages, i)
	return out
}

func setAt(items []string, i int, value string) []string {
	if i < 0 || i >= len(items) {
		return items
	}
	items[i] = value
	return items
}

func removeAt(items []string, i int) []string {
	if i < 0 || i >= len(items) {
		return items
	}
	return append(items[:i], items[i+1:]...)
}

func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// asBool coerces checkbox-style input.
func asBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "on", "yes", "1", "y":
			return true
		}
		return false
	default:
		return false
	}
}
