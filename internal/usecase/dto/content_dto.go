package dto

type ServiceRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	IconSVG      string `json:"icon_svg"`
	ImagePath    string `json:"image_path"`
	DisplayOrder int    `json:"display_order" validate:"min=0"`
	IsActive     bool   `json:"is_active"`
}

type PartnerRequest struct {
	Name         string `json:"name" validate:"required"`
	LogoPath     string `json:"logo_path"`
	WebsiteURL   string `json:"website_url" validate:"omitempty,url"`
	DisplayOrder int    `json:"display_order" validate:"min=0"`
	IsActive     bool   `json:"is_active"`
}

type StatRequest struct {
	Label        string `json:"label" validate:"required"`
	Value        string `json:"value" validate:"required"`
	IconSVG      string `json:"icon_svg"`
	DisplayOrder int    `json:"display_order" validate:"min=0"`
	IsActive     bool   `json:"is_active"`
}

// ToggleRequest flips the is_active flag on a homepage widget.
type ToggleRequest struct {
	IsActive bool `json:"is_active"`
}
