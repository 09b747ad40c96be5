package core

import (
	"context"
	"time"
)

type Plugins interface {
	Name() string
	Install(*Core) error
	DefaultAppid() string
	UseLimiter(key string, method string, defaultRatelimit int) Limiter
	FileUploader() FileStorage
	Cache() Cache
}

// FileStorage resolves stored object keys (journal thumbnails, snapshot images)
// into URLs a browser can load.
type FileStorage interface {
	GetStaticDomain() string
	GenGetObjectPreSignURL(ctx context.Context, path string) (string, error)
}

type Cache interface {
	SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

type Limiter interface {
	Allow() bool
}

type SetupFunc func() Plugins

func (c *Core) InstallPlugins(p Plugins) {
	if err := p.Install(c); err != nil {
		panic(err)
	}
	c.Plugins = p
}
