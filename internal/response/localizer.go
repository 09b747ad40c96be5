package response

import (
	"github.com/gin-gonic/gin"

	"github.com/breeew/hairlog-api/pkg/i18n"
	"github.com/breeew/hairlog-api/pkg/types"
	"github.com/breeew/hairlog-api/pkg/utils"
)

const (
	LOCALIZER_KEY = "__hairlog.localizer"
	LANGUAGE_KEY  = "__hairlog.accept_language"
)

// ProvideResponseLocalizer resolves the request language from the lang query
// parameter or Accept-Language and keeps it next to the localizer.
func ProvideResponseLocalizer(l *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LOCALIZER_KEY, l)
		c.Set(LANGUAGE_KEY, MatchLanguage(c.Query("lang"), c.GetHeader("Accept-Language")))
	}
}

func MatchLanguage(explicit, acceptLanguage string) string {
	if i18n.ALLOW_LANG[explicit] {
		return explicit
	}
	for _, v := range utils.ParseAcceptLanguage(acceptLanguage) {
		if i18n.ALLOW_LANG[v.Tag] {
			return v.Tag
		}
		// zh, zh-Hans, zh-TW ...
		if len(v.Tag) >= 2 && v.Tag[:2] == "zh" {
			return types.LANGUAGE_CN_KEY
		}
		if len(v.Tag) >= 2 && v.Tag[:2] == "en" {
			return i18n.DEFAULT_LANG
		}
	}
	return i18n.DEFAULT_LANG
}

func Lang(c *gin.Context) string {
	if lang := c.GetString(LANGUAGE_KEY); lang != "" {
		return lang
	}
	return i18n.DEFAULT_LANG
}

func Locale(c *gin.Context) i18n.Locale {
	return localizer(c).Locale(Lang(c))
}

func Localize(c *gin.Context, key string) string {
	return localizer(c).Get(Lang(c), key)
}

var fallbackLocalizer = i18n.NewLocalizer(i18n.DEFAULT_LANG)

func localizer(c *gin.Context) *i18n.Localizer {
	if v, ok := c.Get(LOCALIZER_KEY); ok {
		if l, ok := v.(*i18n.Localizer); ok {
			return l
		}
	}
	return fallbackLocalizer
}
