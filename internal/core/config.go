package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/breeew/hairlog-api/pkg/sqlstore"
	"github.com/breeew/hairlog-api/pkg/types"
)

const defaultTimezone = "UTC"

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf, err := ParseConfig(raw)
	if err != nil {
		panic(err)
	}
	return conf
}

// ParseConfig decodes a TOML document and fills unset values with defaults.
func ParseConfig(raw []byte) (CoreConfig, error) {
	var conf CoreConfig
	if err := toml.Unmarshal(raw, &conf); err != nil {
		return CoreConfig{}, err
	}
	conf.raw = raw
	conf.applyDefaults()
	return conf, nil
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	c.applyDefaults()
	return c
}

type CoreConfig struct {
	Addr     string   `toml:"addr"`
	Log      Log      `toml:"log"`
	Postgres PGConfig `toml:"postgres"`
	Redis    Redis    `toml:"redis"`
	Security Security `toml:"security"`
	Site     Site     `toml:"site"`

	raw []byte
}

type Security struct {
	JWTSecret string `toml:"jwt_secret"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Site holds the widget behaviour knobs.
type Site struct {
	Timezone         string `toml:"timezone"`
	PostType         string `toml:"post_type"`
	RecentEntryLimit int    `toml:"recent_entry_limit"`
	ResultLimit      int    `toml:"result_limit"`
	ActivityLimit    int    `toml:"activity_limit"`
	HealthEntryLimit int    `toml:"health_entry_limit"`
	RateLimit        int    `toml:"rate_limit"`

	location *time.Location
}

// Location resolves the site timezone, defaulting to UTC.
func (s Site) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	return time.UTC
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("HAIRLOG_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Redis.Addr = os.Getenv("HAIRLOG_REDIS_ADDR")
	c.Security.JWTSecret = os.Getenv("HAIRLOG_JWT_SECRET")
	c.Site.Timezone = os.Getenv("HAIRLOG_TIMEZONE")
	if v, err := strconv.Atoi(os.Getenv("HAIRLOG_RATE_LIMIT")); err == nil {
		c.Site.RateLimit = v
	}
}

func (c *CoreConfig) applyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.Site.PostType == "" {
		c.Site.PostType = types.PostTypeJournal
	}
	if c.Site.RecentEntryLimit <= 0 {
		c.Site.RecentEntryLimit = 5
	}
	if c.Site.ResultLimit <= 0 {
		c.Site.ResultLimit = 3
	}
	if c.Site.ActivityLimit <= 0 {
		c.Site.ActivityLimit = 5
	}
	if c.Site.HealthEntryLimit <= 0 {
		c.Site.HealthEntryLimit = 30
	}
	if c.Site.RateLimit <= 0 {
		c.Site.RateLimit = 120
	}

	tz := c.Site.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		slog.Warn("unknown timezone, reverting to default", slog.String("timezone", tz), slog.String("default", defaultTimezone))
		loc = time.UTC
	}
	c.Site.location = loc
}

// CustomConfigPayload wraps plugin specific settings found under [custom_config].
type CustomConfigPayload[T any] struct {
	CustomConfig T `toml:"custom_config"`
}

func NewCustomConfigPayload[T any]() CustomConfigPayload[T] {
	return CustomConfigPayload[T]{}
}

// LoadCustomConfig decodes the raw config file into v. It is a no-op when the
// config came from the environment.
func (c CoreConfig) LoadCustomConfig(v any) error {
	if len(c.raw) == 0 {
		return nil
	}
	return toml.Unmarshal(c.raw, v)
}

type PGConfig struct {
	sqlstore.ConnectConfig
	Replicas []sqlstore.ConnectConfig `toml:"replicas"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("HAIRLOG_POSTGRESQL_DSN")
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("HAIRLOG_LOG_LEVEL")
	l.Path = os.Getenv("HAIRLOG_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
