package i18n

var ALLOW_LANG = map[string]bool{
	"en":    true,
	"zh-CN": true,
}

const DEFAULT_LANG = "en"

const (
	ERROR_INTERNAL          = "error.internal"
	ERROR_NOTFOUND          = "error.notfound"
	ERROR_INVALIDARGUMENT   = "error.invalidargument"
	ERROR_PERMISSION_DENIED = "error.permission.denied"
	ERROR_UNAUTHORIZED      = "error.unauthorized"
	ERROR_TOO_MANY_REQUESTS = "error.tooManyRequests"
	ERROR_INVALID_TOKEN     = "error.invalid.token"

	ERROR_PROFILE_NOTFOUND = "error.profile.notfound"
	ERROR_USER_NOTFOUND    = "error.user.notfound"
	ERROR_RETRY_LATER      = "error.retry.later"
)

const (
	WIDGET_LOGIN_REQUIRED     = "widget.login.required"
	WIDGET_PROFILE_TITLE      = "widget.profile.title"
	WIDGET_ACTIVITY_TITLE     = "widget.activity.title"
	WIDGET_ACTIVITY_EMPTY     = "widget.activity.empty"
	WIDGET_HEALTH_TITLE       = "widget.health.title"
	WIDGET_HEALTH_AVERAGE     = "widget.health.average"
	WIDGET_HEALTH_TREND       = "widget.health.trend"
	WIDGET_HEALTH_ENTRIES     = "widget.health.entries"
	WIDGET_RECOMMEND_TITLE    = "widget.recommend.title"
	WIDGET_RECOMMEND_EMPTY    = "widget.recommend.empty"
	WIDGET_RECOMMEND_MATCH    = "widget.recommend.match"
	WIDGET_PROFILE_STAGE      = "widget.profile.stage"
	WIDGET_PROFILE_RATING     = "widget.profile.rating"
	WIDGET_PROFILE_LIFE_STAGE = "widget.profile.life_stage"
	WIDGET_PROFILE_BIRTHDAY   = "widget.profile.birthday"
	WIDGET_PROFILE_LOCATION   = "widget.profile.location"
	WIDGET_PROFILE_HAIR_TYPE  = "widget.profile.hair_type"
	WIDGET_PROFILE_GOALS      = "widget.profile.goals"
	WIDGET_PROFILE_SNAPSHOTS  = "widget.profile.snapshots"
	WIDGET_HEALTH_RATING      = "widget.health.rating"

	TREND_IMPROVING = "trend.improving"
	TREND_DECLINING = "trend.declining"
	TREND_STABLE    = "trend.stable"
	TREND_NA        = "trend.na"
)
