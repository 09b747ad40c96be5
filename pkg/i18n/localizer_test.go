package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizer(t *testing.T) {
	l := NewLocalizer("en", "zh-CN")

	assert.Equal(t, "No product recommendations yet.", l.Get("en", WIDGET_RECOMMEND_EMPTY))
	assert.Equal(t, "暂无产品推荐。", l.Get("zh-CN", WIDGET_RECOMMEND_EMPTY))
	// unknown languages fall back to english
	assert.Equal(t, "Stable", l.Get("fr", TREND_STABLE))
	assert.Equal(t, "missing.key", l.Get("en", "missing.key"))
}

func TestLocale(t *testing.T) {
	l := NewLocalizer("en", "zh-CN")

	loc := l.Locale("de")
	assert.Equal(t, DEFAULT_LANG, loc.Lang())
	assert.Equal(t, "Hair Profile", loc.T(WIDGET_PROFILE_TITLE))

	assert.Equal(t, "trend.na", Locale{}.T(TREND_NA))
}
