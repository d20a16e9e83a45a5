package editor

import (
	"strings"

	"resume-ats/internal/i18n"
	"resume-ats/resume/model"
)

const (
	maxSuggestions = 5
	popularCount   = 8
)

var skillCatalog = map[i18n.Locale]map[model.SkillCategory][]string{
	i18n.ID: {
		model.CategoryTechnical: {
			"JavaScript", "Python", "Java", "React", "Node.js", "SQL", "HTML/CSS", "Git",
			"Microsoft Excel", "Microsoft Word", "PowerPoint", "Google Sheets", "SAP",
			"Oracle", "MySQL", "Tableau", "Power BI", "AutoCAD", "Photoshop",
		},
		model.CategoryHard: {
			"Analisis Keuangan", "Manajemen Proyek", "Analisis Data", "Manajemen Anggaran",
			"Audit Internal", "Manajemen Risiko", "Akuntansi", "Perencanaan Keuangan",
			"Analisis Kredit", "Manajemen Kas", "Perpajakan", "Compliance", "Pemasaran",
			"Penjualan", "Layanan Pelanggan", "Negosiasi", "Presentasi", "Pelatihan",
			"Rekrutmen", "Manajemen SDM", "Operasional", "Logistik", "Procurement",
		},
		model.CategorySoft: {
			"Komunikasi", "Kepemimpinan", "Kerja Tim", "Pemecahan Masalah", "Berpikir Kritis",
			"Manajemen Waktu", "Adaptabilitas", "Kreativitas", "Perhatian Detail",
			"Layanan Pelanggan", "Negosiasi", "Presentasi", "Berbicara di Depan Umum",
			"Resolusi Konflik", "Pengambilan Keputusan", "Kecerdasan Emosional",
			"Kolaborasi", "Mentoring", "Pelatihan", "Coaching", "Berpikir Strategis",
			"Inovasi", "Berpikir Analitis", "Organisasi", "Multitasking",
		},
	},
	i18n.EN: {
		model.CategoryTechnical: {
			"JavaScript", "Python", "Java", "React", "Node.js", "SQL", "HTML/CSS", "Git",
			"AWS", "Docker", "Kubernetes", "MongoDB", "PostgreSQL", "TypeScript", "Vue.js",
			"Angular", "PHP", "C++", "C#", ".NET", "Spring Boot", "Django", "Flask",
			"REST APIs", "GraphQL", "Jenkins", "CI/CD", "Linux", "Bash", "PowerShell",
		},
		model.CategoryHard: {
			"Project Management", "Data Analysis", "Financial Analysis", "Budget Management",
			"Quality Assurance", "Risk Assessment", "Compliance", "Audit", "Accounting",
			"Sales", "Marketing", "SEO", "SEM", "Content Marketing", "Social Media Marketing",
			"Digital Marketing", "Email Marketing", "CRM", "ERP", "Salesforce", "HubSpot",
			"Google Analytics", "Adobe Creative Suite", "Microsoft Office", "Excel Advanced",
			"PowerBI", "Tableau", "JIRA", "Confluence", "Slack",
		},
		model.CategorySoft: {
			"Leadership", "Communication", "Teamwork", "Problem Solving", "Critical Thinking",
			"Time Management", "Adaptability", "Creativity", "Attention to Detail",
			"Customer Service", "Negotiation", "Presentation", "Public Speaking",
			"Conflict Resolution", "Decision Making", "Emotional Intelligence",
			"Collaboration", "Mentoring", "Training", "Coaching", "Strategic Thinking",
			"Innovation", "Analytical Thinking", "Organization", "Multitasking",
		},
	},
}

// SuggestSkills returns up to 5 catalog skills of category whose name contains query
// (case-insensitive) and that the résumé does not already list. An empty query matches nothing.
func SuggestSkills(r model.Resume, loc i18n.Locale, category model.SkillCategory, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []string{}
	}
	have := existingSkills(r)
	out := make([]string, 0, maxSuggestions)
	for _, name := range catalog(loc, category) {
		lower := strings.ToLower(name)
		if !strings.Contains(lower, q) || have[lower] {
			continue
		}
		out = append(out, name)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// PopularSkills returns the first 8 catalog entries of category for quick adding.
func PopularSkills(loc i18n.Locale, category model.SkillCategory) []string {
	list := catalog(loc, category)
	if len(list) > popularCount {
		list = list[:popularCount]
	}
	return append([]string(nil), list...)
}

// HasSkill reports whether r already lists name, ignoring case.
func HasSkill(r model.Resume, name string) bool {
	return existingSkills(r)[strings.ToLower(name)]
}

func catalog(loc i18n.Locale, category model.SkillCategory) []string {
	byCategory, ok := skillCatalog[loc]
	if !ok {
		byCategory = skillCatalog[i18n.Default]
	}
	return byCategory[category]
}

func existingSkills(r model.Resume) map[string]bool {
	have := make(map[string]bool, len(r.Skills))
	for _, s := range r.Skills {
		have[strings.ToLower(s.Name)] = true
	}
	return have
}
