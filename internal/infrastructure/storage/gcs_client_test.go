package storage

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	now := time.Date(2025, 4, 9, 13, 5, 7, 0, time.UTC)

	name := ObjectName("/post-media/", "video/mp4", now)
	pattern := regexp.MustCompile(`^post-media/[0-9a-f-]{36}-20250409130507\.mp4$`)
	assert.Regexp(t, pattern, name)

	assert.NotEqual(t, ObjectName("a", "image/png", now), ObjectName("a", "image/png", now))
}

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"image/jpeg":      ".jpg",
		"IMAGE/JPG":       ".jpg",
		"image/png":       ".png",
		"image/gif":       ".gif",
		"image/webp":      ".webp",
		"video/mp4":       ".mp4",
		"application/pdf": ".pdf",
		"text/plain":      ".bin",
	}
	for in, want := range cases {
		assert.Equal(t, want, Extension(in), in)
	}
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"https://storage.googleapis.com/samaaj-media/auctions/x.png",
		PublicURL("samaaj-media", "auctions/x.png"))
}
