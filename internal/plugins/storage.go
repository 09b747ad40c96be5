package plugins

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/breeew/hairlog-api/internal/core"
	"github.com/breeew/hairlog-api/pkg/object-storage/s3"
)

const presignExpires = time.Hour

type ObjectStorageDriver struct {
	StaticDomain string    `toml:"static_domain"`
	Driver       string    `toml:"driver"` // default: none
	S3           *S3Config `toml:"s3"`
}

type S3Config struct {
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
}

func SetupObjectStorage(cfg ObjectStorageDriver) core.FileStorage {
	var s core.FileStorage
	switch strings.ToLower(cfg.Driver) {
	case "s3":
		s3Cfg := cfg.S3
		if s3Cfg == nil {
			s3Cfg = &S3Config{}
		}
		s = &S3FileStorage{
			StaticDomain: cfg.StaticDomain,
			S3:           s3.NewS3Client(s3Cfg.Endpoint, s3Cfg.Region, s3Cfg.Bucket, s3Cfg.AccessKey, s3Cfg.SecretKey),
		}
	case "local":
		s = &LocalFileStorage{
			StaticDomain: cfg.StaticDomain,
		}
	default:
		s = &NoneFileStorage{}
	}

	return s
}

type NoneFileStorage struct {
}

func (lfs *NoneFileStorage) GetStaticDomain() string {
	return ""
}

func (lfs *NoneFileStorage) GenGetObjectPreSignURL(_ context.Context, url string) (string, error) {
	return "", fmt.Errorf("Unsupported")
}

// LocalFileStorage serves objects from a static domain, e.g. a reverse proxy in front of the upload dir.
type LocalFileStorage struct {
	StaticDomain string
}

func (lfs *LocalFileStorage) GetStaticDomain() string {
	return lfs.StaticDomain
}

func (lfs *LocalFileStorage) GenGetObjectPreSignURL(_ context.Context, path string) (string, error) {
	if lfs.StaticDomain == "" {
		return "", fmt.Errorf("static domain is not configured")
	}
	return strings.TrimSuffix(lfs.StaticDomain, "/") + "/" + strings.TrimPrefix(path, "/"), nil
}

type S3FileStorage struct {
	StaticDomain string
	*s3.S3
}

func (fs *S3FileStorage) GetStaticDomain() string {
	return fs.StaticDomain
}

func (fs *S3FileStorage) GenGetObjectPreSignURL(ctx context.Context, url string) (string, error) {
	return fs.S3.GenGetObjectPreSignURL(ctx, strings.TrimPrefix(url, fs.GetStaticDomain()), presignExpires)
}
