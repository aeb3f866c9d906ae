package domain

import "time"

// MaxActiveStats caps how many statistics widgets can be active at once.
const MaxActiveStats = 3

type Service struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	IconSVG      string    `json:"icon_svg" db:"icon_svg"`
	ImagePath    string    `json:"image_path" db:"image_path"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Partner struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	LogoPath     string    `json:"logo_path" db:"logo_path"`
	WebsiteURL   string    `json:"website_url" db:"website_url"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type Stat struct {
	ID           string    `json:"id" db:"id"`
	Label        string    `json:"label" db:"label"`
	Value        string    `json:"value" db:"value"`
	IconSVG      string    `json:"icon_svg" db:"icon_svg"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
