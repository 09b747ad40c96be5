// Package widget renders the HTML fragments embedded by the host page.
package widget

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"

	"github.com/breeew/hairlog-api/pkg/analysis"
	"github.com/breeew/hairlog-api/pkg/i18n"
	"github.com/breeew/hairlog-api/pkg/types"
)

//go:embed templates/*.html
var templateFiles embed.FS

const (
	MessageNotAuthenticated = "not_authenticated"
	MessageNotFound         = "not_found"
	MessageRetryLater       = "retry_later"
)

var messageKeys = map[string]string{
	MessageNotAuthenticated: i18n.WIDGET_LOGIN_REQUIRED,
	MessageNotFound:         i18n.ERROR_PROFILE_NOTFOUND,
	MessageRetryLater:       i18n.ERROR_RETRY_LATER,
}

var trendKeys = map[string]string{
	analysis.TrendImproving: i18n.TREND_IMPROVING,
	analysis.TrendDeclining: i18n.TREND_DECLINING,
	analysis.TrendStable:    i18n.TREND_STABLE,
	analysis.TrendNA:        i18n.TREND_NA,
}

type Renderer struct {
	tpl *template.Template
}

func NewRenderer() *Renderer {
	tpl := template.Must(template.New("widget").Funcs(template.FuncMap{
		"formatMatch": formatMatch,
	}).ParseFS(templateFiles, "templates/*.html"))
	return &Renderer{tpl: tpl}
}

// 整数不带小数位, 其余保留一位
func formatMatch(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func (r *Renderer) execute(name string, data any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := r.tpl.ExecuteTemplate(buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type MessageView struct {
	Locale i18n.Locale
	Kind   string
	Key    string
}

func (r *Renderer) Message(locale i18n.Locale, kind string) ([]byte, error) {
	key, ok := messageKeys[kind]
	if !ok {
		kind, key = MessageRetryLater, i18n.ERROR_RETRY_LATER
	}
	return r.execute("message", MessageView{Locale: locale, Kind: kind, Key: key})
}

type ProfileView struct {
	Locale    i18n.Locale
	User      *types.User
	Profile   types.Profile
	Snapshots []types.AnalysisSnapshot
}

func (r *Renderer) Profile(view ProfileView) ([]byte, error) {
	return r.execute("profile", view)
}

type ActivityView struct {
	Locale i18n.Locale
	Items  []types.ActivityItem
}

func (r *Renderer) Activity(view ActivityView) ([]byte, error) {
	return r.execute("activity", view)
}

type HealthView struct {
	Locale  i18n.Locale
	Summary types.HealthSummary
}

func (v HealthView) TrendKey() string {
	if key, ok := trendKeys[v.Summary.Trend]; ok {
		return key
	}
	return i18n.TREND_NA
}

func (r *Renderer) Health(view HealthView) ([]byte, error) {
	return r.execute("health", view)
}

type RecommendationsView struct {
	Locale   i18n.Locale
	Products []types.ProductMention
}

func (r *Renderer) Recommendations(view RecommendationsView) ([]byte, error) {
	return r.execute("recommendations", view)
}
