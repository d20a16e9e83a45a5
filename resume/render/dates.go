package render

import (
	"resume-ats/internal/i18n"
	"resume-ats/resume/model"
)

// FormatDate renders a YYYY-MM period as "June 2024" / "Juni 2024".
// Empty stays empty and anything unparseable is returned as entered.
func FormatDate(value string, loc i18n.Locale) string {
	if value == "" {
		return ""
	}
	year, month, ok := model.ParsePeriod(value)
	if !ok {
		return value
	}
	return i18n.FormatPeriod(loc, year, month)
}
