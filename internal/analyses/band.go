package analyses

import "resume-ats/internal/i18n"

// Band is the qualitative bucket of a score.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandPoor      Band = "poor"
	BandVeryPoor  Band = "very_poor"
)

// BandFor maps a score to its band: >=90, >=80, >=70, >=60, else.
func BandFor(score int) Band {
	switch {
	case score >= 90:
		return BandExcellent
	case score >= 80:
		return BandGood
	case score >= 70:
		return BandFair
	case score >= 60:
		return BandPoor
	default:
		return BandVeryPoor
	}
}

var bandKeys = map[Band]i18n.Key{
	BandExcellent: i18n.BandExcellent,
	BandGood:      i18n.BandGood,
	BandFair:      i18n.BandFair,
	BandPoor:      i18n.BandPoor,
	BandVeryPoor:  i18n.BandVeryPoor,
}

// RecommendationText returns the localized recommendation text for a score.
func RecommendationText(score int, locale i18n.Locale) string {
	return i18n.T(locale, bandKeys[BandFor(score)])
}
