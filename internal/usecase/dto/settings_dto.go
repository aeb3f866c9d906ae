package dto

type HeroSettingsRequest struct {
	Title     string `json:"title" validate:"required"`
	Subtitle  string `json:"subtitle"`
	ImagePath string `json:"image_path"`
}

type MapSettingsRequest struct {
	Title        string `json:"title" validate:"required"`
	MapImagePath string `json:"map_image_path"`
}

type MapLocationRequest struct {
	Name     string  `json:"name" validate:"required"`
	XPercent float64 `json:"x_percent" validate:"min=0,max=100"`
	YPercent float64 `json:"y_percent" validate:"min=0,max=100"`
}

type FeaturedSectionRequest struct {
	Title        string `json:"title" validate:"required"`
	Subtitle     string `json:"subtitle"`
	DisplayOrder int    `json:"display_order" validate:"min=0"`
	IsActive     bool   `json:"is_active"`
}

type OpportunitySettingsRequest struct {
	HeroTitle     string `json:"hero_title" validate:"required"`
	HeroSubtitle  string `json:"hero_subtitle"`
	HeroImagePath string `json:"hero_image_path"`
	LeftTitle     string `json:"left_title"`
	LeftText      string `json:"left_text"`
	RightImage1   string `json:"right_image_1"`
	RightImage2   string `json:"right_image_2"`
	BottomTitle   string `json:"bottom_title"`
	BottomText    string `json:"bottom_text"`
	BottomImage   string `json:"bottom_image"`
}

type TourTypeRequest struct {
	Type          string `json:"type" validate:"required,lowercase"`
	TypeIconSVG   string `json:"type_icon_svg"`
	HeaderTitle   string `json:"header_title" validate:"required"`
	HeroTitle     string `json:"hero_title"`
	HeroSubtitle  string `json:"hero_subtitle"`
	HeroImagePath string `json:"hero_image_path"`
	SectionTitle  string `json:"section_title"`
	SectionText   string `json:"section_text"`
	RightImage1   string `json:"right_image_1"`
	RightImage2   string `json:"right_image_2"`
}

type RegionImageRequest struct {
	Region    string `json:"region" validate:"required"`
	ImagePath string `json:"image_path" validate:"required"`
}
