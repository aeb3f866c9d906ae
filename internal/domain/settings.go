package domain

import "time"

// Singleton settings rows are keyed by a fixed id so that saves are a
// true upsert: the table never holds more than one current row.
const SingletonID = "00000000-0000-0000-0000-000000000001"

type HeroSettings struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Subtitle  string    `json:"subtitle" db:"subtitle"`
	ImagePath string    `json:"image_path" db:"image_path"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type LogoSettings struct {
	ID        string    `json:"id" db:"id"`
	LogoPath  string    `json:"logo_path" db:"logo_path"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type MapSettings struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	MapImagePath string    `json:"map_image_path" db:"map_image_path"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// MapLocation is a named pin on the map image, positioned with
// percentage-based coordinates.
type MapLocation struct {
	ID       string  `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	XPercent float64 `json:"x_percent" db:"x_percent"`
	YPercent float64 `json:"y_percent" db:"y_percent"`
}

type FeaturedSectionSettings struct {
	ID           string    `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Subtitle     string    `json:"subtitle" db:"subtitle"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type OpportunitySettings struct {
	ID            string    `json:"id" db:"id"`
	HeroTitle     string    `json:"hero_title" db:"hero_title"`
	HeroSubtitle  string    `json:"hero_subtitle" db:"hero_subtitle"`
	HeroImagePath string    `json:"hero_image_path" db:"hero_image_path"`
	LeftTitle     string    `json:"left_title" db:"left_title"`
	LeftText      string    `json:"left_text" db:"left_text"`
	RightImage1   string    `json:"right_image_1" db:"right_image_1"`
	RightImage2   string    `json:"right_image_2" db:"right_image_2"`
	BottomTitle   string    `json:"bottom_title" db:"bottom_title"`
	BottomText    string    `json:"bottom_text" db:"bottom_text"`
	BottomImage   string    `json:"bottom_image" db:"bottom_image"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

type TourTypeSettings struct {
	ID            string    `json:"id" db:"id"`
	Type          string    `json:"type" db:"type"` // lowercased token, e.g. "caravan"
	TypeIconSVG   string    `json:"type_icon_svg" db:"type_icon_svg"`
	HeaderTitle   string    `json:"header_title" db:"header_title"`
	HeroTitle     string    `json:"hero_title" db:"hero_title"`
	HeroSubtitle  string    `json:"hero_subtitle" db:"hero_subtitle"`
	HeroImagePath string    `json:"hero_image_path" db:"hero_image_path"`
	SectionTitle  string    `json:"section_title" db:"section_title"`
	SectionText   string    `json:"section_text" db:"section_text"`
	RightImage1   string    `json:"right_image_1" db:"right_image_1"`
	RightImage2   string    `json:"right_image_2" db:"right_image_2"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// AssetPaths lists the stored files referenced by a tour type record.
func (t *TourTypeSettings) AssetPaths() []string {
	var paths []string
	for _, p := range []string{t.HeroImagePath, t.RightImage1, t.RightImage2} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}
