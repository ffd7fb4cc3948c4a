package middleware

import (
	"github.com/sams408/safeon-id-vault/internal/i18n"

	"github.com/gin-gonic/gin"
)

const (
	LanguageCookie = "language"
	languageKey    = "language"
)

// Language picks the request language: ?lang, then the language cookie, then
// Accept-Language, then the configured default.
func Language(tr *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(languageKey, resolveLanguage(c, tr))
		c.Header("Content-Language", c.GetString(languageKey))
		c.Next()
	}
}

func resolveLanguage(c *gin.Context, tr *i18n.Translator) string {
	if lang := c.Query("lang"); tr.Supported(lang) {
		return tr.Resolve(lang)
	}
	if lang, err := c.Cookie(LanguageCookie); err == nil && tr.Supported(lang) {
		return tr.Resolve(lang)
	}
	return tr.Resolve(c.GetHeader("Accept-Language"))
}

// LanguageFrom returns the language chosen by Language, resolving it on the
// spot when the middleware did not run.
func LanguageFrom(c *gin.Context, tr *i18n.Translator) string {
	if lang := c.GetString(languageKey); lang != "" {
		return lang
	}
	return resolveLanguage(c, tr)
}
