package plugins

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v9"

	"github.com/breeew/hairlog-api/internal/core"
	"github.com/breeew/hairlog-api/pkg/utils"
)

var _ core.Plugins = (*SaaSPlugin)(nil)

func newSaaSPlugin() *SaaSPlugin {
	return &SaaSPlugin{
		Appid:   "hairlog",
		limiter: newLimiterGroup(),
	}
}

type SaaSCustomConfig struct {
	ClusterID     int64               `toml:"cluster_id"`
	ObjectStorage ObjectStorageDriver `toml:"object_storage"`
}

type SaaSPlugin struct {
	core    *core.Core
	Appid   string
	limiter *limiterGroup
	cache   *RedisCache

	core.FileStorage

	// custom config
	customConfig SaaSCustomConfig
}

func (s *SaaSPlugin) Name() string {
	return "saas"
}

func (s *SaaSPlugin) DefaultAppid() string {
	return s.Appid
}

func (s *SaaSPlugin) Install(c *core.Core) error {
	s.core = c

	customConfig := core.NewCustomConfigPayload[SaaSCustomConfig]()
	if err := s.core.Cfg().LoadCustomConfig(&customConfig); err != nil {
		return fmt.Errorf("Failed to install custom config, %w", err)
	}
	s.customConfig = customConfig.CustomConfig

	clusterID := s.customConfig.ClusterID
	if clusterID == 0 {
		clusterID = 1
	}
	utils.SetupIDWorker(clusterID)

	redisCfg := c.Cfg().Redis
	if redisCfg.Addr == "" {
		return fmt.Errorf("saas mode requires a redis address")
	}
	s.cache = NewRedisCache(redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err := s.cache.Ping(ctx); err != nil {
		return fmt.Errorf("Failed to connect redis, %w", err)
	}

	slog.Info("plugin installed", slog.String("mode", s.Name()), slog.String("appid", s.Appid))
	return nil
}

func (s *SaaSPlugin) Cache() core.Cache {
	return s.cache
}

// ratelimit 代表每分钟允许的数量
// TODO: share the limiter state between replicas through redis
func (s *SaaSPlugin) UseLimiter(key string, method string, defaultRatelimit int) core.Limiter {
	return s.limiter.Get(key+":"+method, defaultRatelimit)
}

func (s *SaaSPlugin) FileUploader() core.FileStorage {
	if s.FileStorage != nil {
		return s.FileStorage
	}

	s.FileStorage = SetupObjectStorage(s.customConfig.ObjectStorage)

	return s.FileStorage
}

// RedisCache implements core.Cache on top of redis.
type RedisCache struct {
	cli redis.UniversalClient
}

func NewRedisCache(cli redis.UniversalClient) *RedisCache {
	return &RedisCache{cli: cli}
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.cli.Ping(ctx).Err()
}

func (r *RedisCache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	return r.cli.Set(ctx, key, value, expiresAt).Err()
}

// Get returns an empty string when key does not exist.
func (r *RedisCache) Get(ctx context.Context, key string) (string, error) {
	res, err := r.cli.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return res, nil
}
