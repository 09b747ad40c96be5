package i18n

import (
	"embed"
	"log/slog"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFiles embed.FS

// Localizer resolves message keys for the allowed languages.
type Localizer struct {
	bundle     *goi18n.Bundle
	localizers map[string]*goi18n.Localizer
}

func NewLocalizer(langs ...string) *Localizer {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFiles.ReadDir("locales")
	if err != nil {
		panic(err)
	}
	for _, entry := range entries {
		if _, err = bundle.LoadMessageFileFS(localeFiles, path.Join("locales", entry.Name())); err != nil {
			panic(err)
		}
	}

	l := &Localizer{
		bundle:     bundle,
		localizers: make(map[string]*goi18n.Localizer),
	}
	for _, lang := range append(langs, DEFAULT_LANG) {
		l.localizers[lang] = goi18n.NewLocalizer(bundle, lang, DEFAULT_LANG)
	}
	return l
}

// Get returns the message for key in lang, falling back to the default
// language and finally to the key itself.
func (l *Localizer) Get(lang, key string, data ...map[string]any) string {
	localizer, ok := l.localizers[lang]
	if !ok {
		localizer = l.localizers[DEFAULT_LANG]
	}

	cfg := &goi18n.LocalizeConfig{MessageID: key}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}
	msg, err := localizer.Localize(cfg)
	if err != nil {
		slog.Debug("missing translation", slog.String("lang", lang), slog.String("key", key))
		return key
	}
	return msg
}

// Locale binds a Localizer to one language so templates can call {{.T "key"}}.
func (l *Localizer) Locale(lang string) Locale {
	if !ALLOW_LANG[lang] {
		lang = DEFAULT_LANG
	}
	return Locale{lang: lang, l: l}
}

type Locale struct {
	lang string
	l    *Localizer
}

func (l Locale) Lang() string {
	return l.lang
}

func (l Locale) T(key string) string {
	if l.l == nil {
		return key
	}
	return l.l.Get(l.lang, key)
}
