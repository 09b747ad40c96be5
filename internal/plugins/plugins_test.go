package plugins

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breeew/hairlog-api/internal/core"
)

func TestSetupObjectStorage(t *testing.T) {
	assert.IsType(t, &NoneFileStorage{}, SetupObjectStorage(ObjectStorageDriver{}))
	assert.IsType(t, &LocalFileStorage{}, SetupObjectStorage(ObjectStorageDriver{Driver: "LOCAL"}))
	assert.IsType(t, &S3FileStorage{}, SetupObjectStorage(ObjectStorageDriver{Driver: "s3", S3: &S3Config{Bucket: "hair"}}))
}

func TestLocalFileStorage(t *testing.T) {
	fs := &LocalFileStorage{StaticDomain: "https://static.example.com/"}
	url, err := fs.GenGetObjectPreSignURL(context.Background(), "/journal/1.png")
	assert.NoError(t, err)
	assert.Equal(t, "https://static.example.com/journal/1.png", url)

	_, err = (&LocalFileStorage{}).GenGetObjectPreSignURL(context.Background(), "a.png")
	assert.Error(t, err)

	_, err = (&NoneFileStorage{}).GenGetObjectPreSignURL(context.Background(), "a.png")
	assert.Error(t, err)
}

func TestLimiterGroup(t *testing.T) {
	g := newLimiterGroup()
	l := g.Get("widget:GET", 1)
	assert.Same(t, l, g.Get("widget:GET", 100))

	// burst is twice the per minute rate
	assert.True(t, l.Allow())
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())
}

func TestSelfHostInstall(t *testing.T) {
	cfg, err := core.ParseConfig([]byte(`
[custom_config.object_storage]
driver = "local"
static_domain = "https://static.example.com"
`))
	assert.NoError(t, err)

	c := core.New(cfg, nil)
	Setup(c.InstallPlugins, "selfhost")

	assert.Equal(t, "selfhost", c.Name())
	assert.Equal(t, "https://static.example.com", c.FileUploader().GetStaticDomain())

	v, err := c.Cache().Get(context.Background(), "any")
	assert.NoError(t, err)
	assert.Empty(t, v)

	assert.Panics(t, func() {
		Setup(c.InstallPlugins, "unknown")
	})
}
