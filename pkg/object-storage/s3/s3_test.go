package s3

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GenGetPreSignURL(t *testing.T) {
	client := NewS3Client("https://s3.example.com", "us-east-1", "thumbnails", "ak", "sk")

	resp, err := client.GenGetObjectPreSignURL(context.Background(), "/hairlog/journal/u-1/wash.png", time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(resp)
	require.NoError(t, err)
	assert.Equal(t, "s3.example.com", u.Host)
	assert.True(t, strings.HasSuffix(u.Path, "/thumbnails/hairlog/journal/u-1/wash.png"), u.Path)
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	assert.Equal(t, "60", u.Query().Get("X-Amz-Expires"))
}
