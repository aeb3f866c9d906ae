package domain

// RegionImage decorates a destination group; one row per region, keyed
// by the region name.
type RegionImage struct {
	Region    string `json:"region" db:"region"`
	ImagePath string `json:"image_path" db:"image_path"`
}

// TourSummary is the reduced tour shape shown inside destination groups
// and opportunity listings.
type TourSummary struct {
	ID                string  `json:"id" db:"id"`
	Title             string  `json:"title" db:"title"`
	Slug              string  `json:"slug" db:"slug"`
	Region            string  `json:"region" db:"region"`
	Duration          string  `json:"duration" db:"duration"`
	BasePrice         float64 `json:"base_price" db:"base_price"`
	ShortDescription  string  `json:"short_description" db:"short_description"`
	HeroImagePath     string  `json:"hero_image_path" db:"hero_image_path"`
	PopularTour       bool    `json:"popular_tour" db:"popular_tour"`
	OpportunityTour   bool    `json:"opportunity_tour" db:"opportunity_tour"`
	DestinationStatus bool    `json:"destination_status" db:"destination_status"`
}

// Destination is a display-time grouping of tours by region. It is not
// persisted; only the region image row behind it is.
type Destination struct {
	Region    string        `json:"region"`
	ImagePath string        `json:"image_path"`
	Tours     []TourSummary `json:"tours"`
}
