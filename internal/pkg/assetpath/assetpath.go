package assetpath

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/travel-admin/internal/pkg/slug"
)

// Bucket names on the hosted storage service.
const (
	BucketSiteImages  = "site-images"
	BucketBlogPosts   = "blog-post-images"
	BucketBlogContent = "blog-content-images"
	BucketBlogAuthors = "blog-author-images"
)

// Size ceilings enforced before any storage call.
const (
	MaxImageSize       = 5 << 20  // generic images
	MaxLogoSize        = 2 << 20  // partner and site logos
	MaxOpportunitySize = 10 << 20 // opportunity settings images
)

// Category binds an upload target to its bucket, folder prefix and size ceiling.
type Category struct {
	Key     string
	Bucket  string
	Folder  string
	MaxSize int64
}

var categories = []Category{
	{Key: "hero", Bucket: BucketSiteImages, Folder: "hero", MaxSize: MaxImageSize},
	{Key: "logo", Bucket: BucketSiteImages, Folder: "logo", MaxSize: MaxLogoSize},
	{Key: "map", Bucket: BucketSiteImages, Folder: "map", MaxSize: MaxImageSize},
	{Key: "services", Bucket: BucketSiteImages, Folder: "services", MaxSize: MaxImageSize},
	{Key: "partners", Bucket: BucketSiteImages, Folder: "partners", MaxSize: MaxLogoSize},
	{Key: "opportunity", Bucket: BucketSiteImages, Folder: "opportunity", MaxSize: MaxOpportunitySize},
	{Key: "tour-hero", Bucket: BucketSiteImages, Folder: "tour-images/hero", MaxSize: MaxImageSize},
	{Key: "tour-gallery", Bucket: BucketSiteImages, Folder: "tour-images/gallery", MaxSize: MaxImageSize},
	{Key: "tour-map", Bucket: BucketSiteImages, Folder: "tour-images/map", MaxSize: MaxImageSize},
	{Key: "region", Bucket: BucketSiteImages, Folder: "region-images", MaxSize: MaxImageSize},
	{Key: "tour-types", Bucket: BucketSiteImages, Folder: "tour-types", MaxSize: MaxImageSize},
	{Key: "blog-post", Bucket: BucketBlogPosts, Folder: "", MaxSize: MaxImageSize},
	{Key: "blog-content", Bucket: BucketBlogContent, Folder: "", MaxSize: MaxImageSize},
	{Key: "blog-author", Bucket: BucketBlogAuthors, Folder: "", MaxSize: MaxImageSize},
}

// ByKey resolves an upload category by its public key.
func ByKey(key string) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// Build maps an original file name to a deterministic storage key:
// sanitized base name, millisecond timestamp, preserved extension,
// category folder prefix.
func Build(c Category, originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	base := slug.Make(strings.TrimSuffix(path.Base(originalName), path.Ext(originalName)))
	if base == "" {
		base = "file"
	}

	name := fmt.Sprintf("%s-%d%s", base, time.Now().UnixMilli(), ext)
	if c.Folder == "" {
		return name
	}
	return c.Folder + "/" + name
}
