package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// Locale selects display text. It never changes scoring.
type Locale string

const (
	ID Locale = "id"
	EN Locale = "en"
)

// Default is used when nothing else selects a locale.
const Default = ID

// Supported lists the locales in preference order.
var Supported = []Locale{ID, EN}

var (
	ErrLocaleRequired = errors.New("locale is required")
	ErrLocaleInvalid  = errors.New("locale is invalid")
)

var matcher = language.NewMatcher([]language.Tag{language.Indonesian, language.English})

// ParseLocale normalizes and validates a locale string such as "en" or "id-ID".
func ParseLocale(raw string) (Locale, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		return "", ErrLocaleRequired
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return "", ErrLocaleInvalid
	}
	base, _ := tag.Base()
	switch base.String() {
	case string(ID), "in":
		return ID, nil
	case string(EN):
		return EN, nil
	default:
		return "", ErrLocaleInvalid
	}
}

// Resolve picks a locale from an explicit value, then an Accept-Language header, then fallback.
func Resolve(explicit, acceptLanguage string, fallback Locale) Locale {
	if loc, err := ParseLocale(explicit); err == nil {
		return loc
	}
	if strings.TrimSpace(acceptLanguage) != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return Supported[idx]
			}
		}
	}
	if fallback.Valid() {
		return fallback
	}
	return Default
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	return l == ID || l == EN
}

func (l Locale) String() string {
	return string(l)
}
