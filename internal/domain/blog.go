package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type BlogContentImage struct {
	Path string `json:"path"`
	Alt  string `json:"alt"`
}

type BlogTag struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// BlogSection is one block of post body content.
type BlogSection struct {
	Type    string `json:"type"` // paragraph | heading
	Content string `json:"content"`
}

type BlogContentImages []BlogContentImage

type BlogTags []BlogTag

type BlogSections []BlogSection

type BlogPost struct {
	ID            string            `json:"id" db:"id"`
	Title         string            `json:"title" db:"title"`
	Slug          string            `json:"slug" db:"slug"`
	Excerpt       string            `json:"excerpt" db:"excerpt"`
	CategoryName  string            `json:"category_name" db:"category_name"`
	CategorySlug  string            `json:"category_slug" db:"category_slug"`
	HeroImage     string            `json:"hero_image" db:"hero_image"`
	ContentImages BlogContentImages `json:"content_images" db:"content_images"`
	PublishedAt   time.Time         `json:"published_at" db:"published_at"`
	ReadTime      int               `json:"read_time" db:"read_time"`
	AuthorName    string            `json:"author_name" db:"author_name"`
	AuthorTitle   string            `json:"author_title" db:"author_title"`
	AuthorImage   string            `json:"author_image" db:"author_image"`
	Tags          BlogTags          `json:"tags" db:"tags"`
	Content       BlogSections      `json:"content" db:"content"`
	Published     bool              `json:"published" db:"published"`
	Featured      bool              `json:"featured" db:"featured"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// AssetPaths lists every stored file referenced by the post.
func (p *BlogPost) AssetPaths() []string {
	var paths []string
	if p.HeroImage != "" {
		paths = append(paths, p.HeroImage)
	}
	if p.AuthorImage != "" {
		paths = append(paths, p.AuthorImage)
	}
	for _, img := range p.ContentImages {
		if img.Path != "" {
			paths = append(paths, img.Path)
		}
	}
	return paths
}

// The three slice types are stored as jsonb columns.

func (v BlogContentImages) Value() (driver.Value, error) { return jsonbValue(v) }
func (v *BlogContentImages) Scan(src interface{}) error  { return jsonbScan(src, v) }

func (v BlogTags) Value() (driver.Value, error) { return jsonbValue(v) }
func (v *BlogTags) Scan(src interface{}) error  { return jsonbScan(src, v) }

func (v BlogSections) Value() (driver.Value, error) { return jsonbValue(v) }
func (v *BlogSections) Scan(src interface{}) error  { return jsonbScan(src, v) }

func jsonbValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal jsonb column: %w", err)
	}
	return b, nil
}

func jsonbScan(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	var data []byte
	switch s := src.(type) {
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}
