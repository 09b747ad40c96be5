package plugins

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/breeew/hairlog-api/internal/core"
	"github.com/breeew/hairlog-api/pkg/utils"
)

type SelfHostCustomConfig struct {
	ObjectStorage ObjectStorageDriver `toml:"object_storage"`
}

var _ core.Plugins = (*SelfHostPlugin)(nil)

func newSelfHostMode() *SelfHostPlugin {
	return &SelfHostPlugin{
		Appid:   "hairlog-selfhost",
		limiter: newLimiterGroup(),
	}
}

// Cache 单机模式下不做缓存
type Cache struct{}

func (c *Cache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	return nil
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

type SelfHostPlugin struct {
	core  *core.Core
	Appid string
	core.FileStorage
	cache   *Cache
	limiter *limiterGroup

	customConfig SelfHostCustomConfig
}

func (s *SelfHostPlugin) Name() string {
	return "selfhost"
}

func (s *SelfHostPlugin) DefaultAppid() string {
	return s.Appid
}

func (s *SelfHostPlugin) Install(c *core.Core) error {
	s.core = c
	utils.SetupIDWorker(1)

	customConfig := core.NewCustomConfigPayload[SelfHostCustomConfig]()
	if err := s.core.Cfg().LoadCustomConfig(&customConfig); err != nil {
		return fmt.Errorf("Failed to install custom config, %w", err)
	}
	s.customConfig = customConfig.CustomConfig
	s.cache = &Cache{}

	slog.Info("plugin installed", slog.String("mode", s.Name()), slog.String("appid", s.Appid),
		slog.String("object_storage", s.customConfig.ObjectStorage.Driver))
	return nil
}

func (s *SelfHostPlugin) Cache() core.Cache {
	return s.cache
}

// ratelimit 代表每分钟允许的数量
func (s *SelfHostPlugin) UseLimiter(key string, method string, defaultRatelimit int) core.Limiter {
	return s.limiter.Get(key+":"+method, defaultRatelimit)
}

func (s *SelfHostPlugin) FileUploader() core.FileStorage {
	if s.FileStorage != nil {
		return s.FileStorage
	}

	s.FileStorage = SetupObjectStorage(s.customConfig.ObjectStorage)

	return s.FileStorage
}

type limiterGroup struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLimiterGroup() *limiterGroup {
	return &limiterGroup{
		limiters: make(map[string]*rate.Limiter),
	}
}

func (g *limiterGroup) Get(key string, perMinute int) *rate.Limiter {
	g.mu.Lock()
	defer g.mu.Unlock()

	l, exist := g.limiters[key]
	if !exist {
		if perMinute <= 0 {
			perMinute = 1
		}
		limit := rate.Every(time.Minute / time.Duration(perMinute))
		l = rate.NewLimiter(limit, perMinute*2)
		g.limiters[key] = l
	}
	return l
}
