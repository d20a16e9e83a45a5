package middleware

import (
	"github.com/gin-gonic/gin"

	"resume-ats/internal/i18n"
)

const localeKey = "locale"

// Locale resolves the request locale from ?locale=, then Accept-Language, then fallback.
func Locale(fallback i18n.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		loc := i18n.Resolve(c.Query("locale"), c.GetHeader("Accept-Language"), fallback)
		c.Set(localeKey, loc)
		c.Writer.Header().Set("Content-Language", loc.String())
		c.Next()
	}
}

// LocaleFromContext fetches the locale stored by the Locale middleware.
func LocaleFromContext(c *gin.Context) i18n.Locale {
	if c == nil {
		return i18n.Default
	}
	val, _ := c.Get(localeKey)
	if loc, ok := val.(i18n.Locale); ok && loc.Valid() {
		return loc
	}
	return i18n.Default
}
