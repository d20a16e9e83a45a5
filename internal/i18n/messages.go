package i18n

import "fmt"

// Key identifies a translated string.
type Key string

const (
	AppTitle    Key = "app.title"
	AppSubtitle Key = "app.subtitle"

	HeadingSummary         Key = "heading.summary"
	HeadingExperience      Key = "heading.experience"
	HeadingEducation       Key = "heading.education"
	HeadingSoftSkills      Key = "heading.softSkills"
	HeadingHardSkills      Key = "heading.hardSkills"
	HeadingLanguages       Key = "heading.languages"
	HeadingTechnicalSkills Key = "heading.technicalSkills"
	HeadingCertifications  Key = "heading.certifications"

	NamePlaceholder Key = "preview.namePlaceholder"
	Present         Key = "preview.present"
	GPALabel        Key = "preview.gpa"
	AwardsLabel     Key = "preview.awards"

	ScoreTitle          Key = "score.title"
	ScoreIssues         Key = "score.issues"
	ScoreSuggestions    Key = "score.suggestions"
	ScoreKeywordsFound  Key = "score.keywordsFound"
	ScoreKeywordsNone   Key = "score.keywordsNone"
	ScoreMissing        Key = "score.missingKeywords"
	ScoreMissingNone    Key = "score.missingNone"
	ScoreRecommendation Key = "score.recommendation"

	BandExcellent Key = "band.excellent"
	BandGood      Key = "band.good"
	BandFair      Key = "band.fair"
	BandPoor      Key = "band.poor"
	BandVeryPoor  Key = "band.veryPoor"

	ExportFailed   Key = "export.failed"
	ExportDownload Key = "export.download"

	EditorMenu           Key = "editor.menu"
	EditorPersonal       Key = "editor.personal"
	EditorExperience     Key = "editor.experience"
	EditorEducation      Key = "editor.education"
	EditorSkills         Key = "editor.skills"
	EditorCertifications Key = "editor.certifications"
	EditorLanguages      Key = "editor.languages"
	EditorAdd            Key = "editor.add"
	EditorRemove         Key = "editor.remove"
	EditorBack           Key = "editor.back"
	EditorDone           Key = "editor.done"
	EditorSample         Key = "editor.sample"
	EditorClear          Key = "editor.clear"
	EditorSearchSkills   Key = "editor.searchSkills"
	EditorNoSkills       Key = "editor.noSkills"
)

var messages = map[Locale]map[Key]string{
	ID: {
		AppTitle:    "Pembuat CV ATS",
		AppSubtitle: "Buat dan optimalkan resume Anda untuk sistem ATS",

		HeadingSummary:         "RINGKASAN",
		HeadingExperience:      "PENGALAMAN",
		HeadingEducation:       "PENDIDIKAN",
		HeadingSoftSkills:      "SOFT SKILLS",
		HeadingHardSkills:      "HARD SKILLS",
		HeadingLanguages:       "BAHASA",
		HeadingTechnicalSkills: "KEAHLIAN TEKNIS",
		HeadingCertifications:  "SERTIFIKASI",

		NamePlaceholder: "Your Name",
		Present:         "sekarang",
		GPALabel:        "IPK",
		AwardsLabel:     "Penghargaan:",

		ScoreTitle:          "Skor Kompatibilitas ATS",
		ScoreIssues:         "Masalah Ditemukan",
		ScoreSuggestions:    "Saran Perbaikan",
		ScoreKeywordsFound:  "Kata Kunci Ditemukan",
		ScoreKeywordsNone:   "Tidak ada kata kunci umum yang ditemukan. Pertimbangkan untuk menambahkan lebih banyak istilah industri yang relevan.",
		ScoreMissing:        "Kata Kunci yang Disarankan",
		ScoreMissingNone:    "Bagus! Anda menggunakan banyak kata kunci yang relevan.",
		ScoreRecommendation: "Rekomendasi",

		BandExcellent: "Kompatibilitas ATS sangat baik!",
		BandGood:      "Kompatibilitas ATS baik dengan sedikit perbaikan diperlukan",
		BandFair:      "Kompatibilitas ATS cukup - beberapa perbaikan disarankan",
		BandPoor:      "Kompatibilitas ATS buruk - perbaikan signifikan diperlukan",
		BandVeryPoor:  "Kompatibilitas ATS sangat buruk - revisi besar diperlukan",

		ExportFailed:   "Pembuatan PDF gagal. Silakan coba lagi atau periksa kompatibilitas browser Anda.",
		ExportDownload: "Unduh PDF",

		EditorMenu:           "Pilih bagian untuk diedit",
		EditorPersonal:       "Informasi Pribadi",
		EditorExperience:     "Pengalaman Kerja",
		EditorEducation:      "Pendidikan",
		EditorSkills:         "Keahlian",
		EditorCertifications: "Sertifikasi",
		EditorLanguages:      "Bahasa",
		EditorAdd:            "Tambah",
		EditorRemove:         "Hapus",
		EditorBack:           "Kembali",
		EditorDone:           "Selesai",
		EditorSample:         "Isi Data Contoh",
		EditorClear:          "Kosongkan Formulir",
		EditorSearchSkills:   "Cari Keahlian (Ketik untuk mencari)",
		EditorNoSkills:       "Tidak ada keahlian yang ditemukan",
	},
	EN: {
		AppTitle:    "CV ATS Maker",
		AppSubtitle: "Build and optimize your resume for ATS systems",

		HeadingSummary:         "SUMMARY",
		HeadingExperience:      "EXPERIENCE",
		HeadingEducation:       "EDUCATION",
		HeadingSoftSkills:      "SOFT SKILLS",
		HeadingHardSkills:      "HARD SKILLS",
		HeadingLanguages:       "LANGUAGES",
		HeadingTechnicalSkills: "TECHNICAL SKILLS",
		HeadingCertifications:  "CERTIFICATIONS",

		NamePlaceholder: "Your Name",
		Present:         "present",
		GPALabel:        "GPA",
		AwardsLabel:     "Awards:",

		ScoreTitle:          "ATS Compatibility Score",
		ScoreIssues:         "Issues Found",
		ScoreSuggestions:    "Improvement Suggestions",
		ScoreKeywordsFound:  "Keywords Found",
		ScoreKeywordsNone:   "No common keywords found. Consider adding more relevant industry terms.",
		ScoreMissing:        "Suggested Keywords",
		ScoreMissingNone:    "Great! You're using many relevant keywords.",
		ScoreRecommendation: "Recommendation",

		BandExcellent: "Excellent ATS compatibility!",
		BandGood:      "Good ATS compatibility with minor improvements needed",
		BandFair:      "Fair ATS compatibility - several improvements recommended",
		BandPoor:      "Poor ATS compatibility - significant improvements needed",
		BandVeryPoor:  "Very poor ATS compatibility - major revisions required",

		ExportFailed:   "PDF generation failed. Please try again or check your browser compatibility.",
		ExportDownload: "Download PDF",

		EditorMenu:           "Choose a section to edit",
		EditorPersonal:       "Personal Information",
		EditorExperience:     "Work Experience",
		EditorEducation:      "Education",
		EditorSkills:         "Skills",
		EditorCertifications: "Certifications",
		EditorLanguages:      "Languages",
		EditorAdd:            "Add",
		EditorRemove:         "Remove",
		EditorBack:           "Back",
		EditorDone:           "Done",
		EditorSample:         "Fill Sample Data",
		EditorClear:          "Clear Form",
		EditorSearchSkills:   "Search Skills (Type to search)",
		EditorNoSkills:       "No skills found",
	},
}

var months = map[Locale][12]string{
	ID: {"Januari", "Februari", "Maret", "April", "Mei", "Juni", "Juli", "Agustus", "September", "Oktober", "November", "Desember"},
	EN: {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
}

// T returns the text for key in locale l. Unknown locales use Default; unknown keys return the key itself.
func T(l Locale, key Key) string {
	table, ok := messages[l]
	if !ok {
		table = messages[Default]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return string(key)
}

// MonthName returns the full month name for month 1..12.
func MonthName(l Locale, month int) string {
	names, ok := months[l]
	if !ok {
		names = months[Default]
	}
	if month < 1 || month > 12 {
		return ""
	}
	return names[month-1]
}

// FormatPeriod renders a year and month as "June 2024" or "Juni 2024".
func FormatPeriod(l Locale, year, month int) string {
	name := MonthName(l, month)
	if name == "" {
		return fmt.Sprintf("%d", year)
	}
	return fmt.Sprintf("%s %d", name, year)
}
