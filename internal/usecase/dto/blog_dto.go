package dto

import "github.com/travel-admin/internal/domain"

type BlogPostRequest struct {
	Title         string                   `json:"title" validate:"required,min=2"`
	Excerpt       string                   `json:"excerpt"`
	CategoryName  string                   `json:"category_name" validate:"required"`
	HeroImage     string                   `json:"hero_image"`
	ContentImages domain.BlogContentImages `json:"content_images"`
	ReadTime      int                      `json:"read_time" validate:"omitempty,min=1"`
	AuthorName    string                   `json:"author_name" validate:"required"`
	AuthorTitle   string                   `json:"author_title"`
	AuthorImage   string                   `json:"author_image"`
	Tags          []string                 `json:"tags"`
	Content       domain.BlogSections      `json:"content" validate:"required,min=1"`
	Published     bool                     `json:"published"`
	Featured      bool                     `json:"featured"`
}
