package render

import (
	"strings"

	"resume-ats/internal/i18n"
	"resume-ats/resume/model"
)

// RegionID is the element id wrapping the printable page in HTML output.
const RegionID = "cv-preview"

// SectionKind identifies a preview section.
type SectionKind string

const (
	SectionSummary        SectionKind = "summary"
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionCertifications SectionKind = "certifications"
)

// Document is the format-neutral print layout shared by the HTML and DOCX encoders.
type Document struct {
	Locale   i18n.Locale
	Name     string
	Contacts []string
	Sections []Section
}

// Section is one headed block of the page. Only the fields relevant to Kind are set.
type Section struct {
	Kind      SectionKind
	Heading   string
	Paragraph string
	Entries   []Entry
	Columns   []Column
	Items     []string
}

// Entry is an experience or education item.
type Entry struct {
	Title    string
	Subtitle string
	Meta     string
	Label    string
	Bullets  []string
}

// Column is one column of the skills block.
type Column struct {
	Heading string
	Items   []string
}

// Layout builds the print layout for r in locale loc. Empty sections are omitted.
func Layout(r model.Resume, loc i18n.Locale) Document {
	if !loc.Valid() {
		loc = i18n.Default
	}
	p := r.PersonalInfo
	doc := Document{
		Locale:   loc,
		Name:     p.FullName,
		Contacts: nonEmpty(p.Location, p.Email, p.Phone, p.LinkedIn, p.Instagram),
	}
	if doc.Name == "" {
		doc.Name = i18n.T(loc, i18n.NamePlaceholder)
	}

	if p.Summary != "" {
		doc.Sections = append(doc.Sections, Section{
			Kind:      SectionSummary,
			Heading:   i18n.T(loc, i18n.HeadingSummary),
			Paragraph: p.Summary,
		})
	}

	if len(r.Experiences) > 0 {
		sec := Section{Kind: SectionExperience, Heading: i18n.T(loc, i18n.HeadingExperience)}
		for _, exp := range r.Experiences {
			sec.Entries = append(sec.Entries, experienceEntry(exp, loc))
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(r.Education) > 0 {
		sec := Section{Kind: SectionEducation, Heading: i18n.T(loc, i18n.HeadingEducation)}
		for _, edu := range r.Education {
			sec.Entries = append(sec.Entries, educationEntry(edu, loc))
		}
		doc.Sections = append(doc.Sections, sec)
	}

	if len(r.Skills) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Kind:    SectionSkills,
			Columns: skillColumns(r, loc),
		})
	}

	if certs := nonEmpty(r.Certifications...); len(certs) > 0 {
		doc.Sections = append(doc.Sections, Section{
			Kind:    SectionCertifications,
			Heading: i18n.T(loc, i18n.HeadingCertifications),
			Items:   certs,
		})
	}
	return doc
}

func experienceEntry(exp model.Experience, loc i18n.Locale) Entry {
	end := FormatDate(exp.EndDate, loc)
	if exp.Current {
		end = i18n.T(loc, i18n.Present)
	}
	meta := FormatDate(exp.StartDate, loc) + " - " + end
	if exp.Location != "" {
		meta += " | " + exp.Location
	}
	return Entry{
		Title:   joinNonEmpty(" • ", exp.JobTitle, exp.Company),
		Meta:    meta,
		Bullets: Bulletize(exp.Description),
	}
}

func educationEntry(edu model.Education, loc i18n.Locale) Entry {
	subtitle := joinNonEmpty(" • ", edu.Degree, FormatDate(edu.GraduationDate, loc))
	if edu.GPA != "" {
		subtitle = joinNonEmpty(" • ", subtitle, i18n.T(loc, i18n.GPALabel)+": "+edu.GPA)
	}
	entry := Entry{
		Title:    edu.Institution,
		Subtitle: subtitle,
		Meta:     edu.Location,
	}
	if bullets := Bulletize(edu.Description); len(bullets) > 0 {
		entry.Label = i18n.T(loc, i18n.AwardsLabel)
		entry.Bullets = bullets
	}
	return entry
}

// skillColumns returns soft | hard | third, where the third column lists languages
// when any exist and technical skills otherwise. Uncategorised skills are not shown.
func skillColumns(r model.Resume, loc i18n.Locale) []Column {
	third := Column{Heading: i18n.T(loc, i18n.HeadingTechnicalSkills), Items: skillNames(r.SkillsIn(model.CategoryTechnical))}
	if langs := nonEmpty(r.Languages...); len(langs) > 0 {
		third = Column{Heading: i18n.T(loc, i18n.HeadingLanguages), Items: langs}
	}
	return []Column{
		{Heading: i18n.T(loc, i18n.HeadingSoftSkills), Items: skillNames(r.SkillsIn(model.CategorySoft))},
		{Heading: i18n.T(loc, i18n.HeadingHardSkills), Items: skillNames(r.SkillsIn(model.CategoryHard))},
		third,
	}
}

func skillNames(skills []model.Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if strings.TrimSpace(s.Name) != "" {
			out = append(out, s.Name)
		}
	}
	return out
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func joinNonEmpty(sep string, values ...string) string {
	return strings.Join(nonEmpty(values...), sep)
}

// PlainText flattens the layout into lines, in page order.
func (d Document) PlainText() string {
	var b strings.Builder
	b.WriteString(d.Name + "\n")
	if len(d.Contacts) > 0 {
		b.WriteString(strings.Join(d.Contacts, " | ") + "\n")
	}
	for _, sec := range d.Sections {
		b.WriteString("\n")
		if sec.Heading != "" {
			b.WriteString(sec.Heading + "\n")
		}
		if sec.Paragraph != "" {
			b.WriteString(sec.Paragraph + "\n")
		}
		for _, e := range sec.Entries {
			for _, line := range nonEmpty(e.Title, e.Subtitle, e.Meta, e.Label) {
				b.WriteString(line + "\n")
			}
			for _, bullet := range e.Bullets {
				b.WriteString(bullet + "\n")
			}
		}
		for _, col := range sec.Columns {
			if len(col.Items) == 0 {
				continue
			}
			b.WriteString(col.Heading + "\n")
			for _, item := range col.Items {
				b.WriteString("• " + item + "\n")
			}
		}
		for _, item := range sec.Items {
			b.WriteString("• " + item + "\n")
		}
	}
	return b.String()
}
