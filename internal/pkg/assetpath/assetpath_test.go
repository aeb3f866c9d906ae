package assetpath

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByKey(t *testing.T) {
	t.Run("known category", func(t *testing.T) {
		c, ok := ByKey("tour-gallery")
		require.True(t, ok)
		assert.Equal(t, BucketSiteImages, c.Bucket)
		assert.Equal(t, "tour-images/gallery", c.Folder)
		assert.Equal(t, int64(MaxImageSize), c.MaxSize)
	})

	t.Run("logo has tighter ceiling", func(t *testing.T) {
		c, ok := ByKey("logo")
		require.True(t, ok)
		assert.Equal(t, int64(MaxLogoSize), c.MaxSize)
	})

	t.Run("opportunity has wider ceiling", func(t *testing.T) {
		c, ok := ByKey("opportunity")
		require.True(t, ok)
		assert.Equal(t, int64(MaxOpportunitySize), c.MaxSize)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, ok := ByKey("nope")
		assert.False(t, ok)
	})
}

func TestBuild(t *testing.T) {
	c, _ := ByKey("hero")

	t.Run("sanitizes and prefixes", func(t *testing.T) {
		got := Build(c, "Göreme Manzarası.JPG")
		assert.True(t, strings.HasPrefix(got, "hero/goreme-manzarasi-"), got)
		assert.True(t, strings.HasSuffix(got, ".jpg"), got)
		assert.Regexp(t, regexp.MustCompile(`^hero/goreme-manzarasi-\d+\.jpg$`), got)
	})

	t.Run("bucket-root category has no prefix", func(t *testing.T) {
		blog, _ := ByKey("blog-post")
		got := Build(blog, "cover.png")
		assert.NotContains(t, got, "/")
		assert.Regexp(t, regexp.MustCompile(`^cover-\d+\.png$`), got)
	})

	t.Run("empty base falls back", func(t *testing.T) {
		got := Build(c, ".png")
		assert.Regexp(t, regexp.MustCompile(`^hero/file-\d+\.png$`), got)
	})
}
