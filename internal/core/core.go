package core

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/breeew/hairlog-api/internal/core/srv"
	"github.com/breeew/hairlog-api/internal/store"
	"github.com/breeew/hairlog-api/internal/store/sqlstore"
	"github.com/breeew/hairlog-api/pkg/i18n"
)

type Core struct {
	cfg        CoreConfig
	srv        *srv.Srv
	httpEngine *gin.Engine

	stores    func() store.Provider
	metrics   *Metrics
	localizer *i18n.Localizer
	Plugins
}

func MustSetupCore(cfg CoreConfig) *Core {
	SetupLogger(cfg.Log)

	core := New(cfg, nil)

	// setup store
	setupPostgresStore(core)

	return core
}

// New builds a Core around an existing store provider.
func New(cfg CoreConfig, stores store.Provider) *Core {
	var allowList []string
	for k := range i18n.ALLOW_LANG {
		allowList = append(allowList, k)
	}

	return &Core{
		cfg:        cfg,
		srv:        srv.SetupSrvs(),
		httpEngine: gin.New(),
		stores:     func() store.Provider { return stores },
		metrics:    NewMetrics("hairlog", "api"),
		localizer:  i18n.NewLocalizer(allowList...),
	}
}

func SetupLogger(cfg Log) {
	var writer io.Writer = os.Stdout
	if cfg.Path != "" {
		writer = &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28,   //days
			Compress:   true, // disabled by default
		}
	}
	l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(l)
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Localizer() *i18n.Localizer {
	return s.localizer
}

func setupPostgresStore(core *Core) {
	provider := sqlstore.MustSetup(core.cfg.Postgres.ConnectConfig, core.cfg.Postgres.Replicas...)
	core.stores = func() store.Provider {
		return provider()
	}
}

func (s *Core) Store() store.Provider {
	return s.stores()
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}
