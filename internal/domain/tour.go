package domain

import "time"

// Price categories used in tour date/price rows.
const (
	PriceCategoryStandard = "Standart"
	PriceCategoryBudget   = "Bütçe"
	PriceCategoryPremium  = "Üst Segment"
)

// Months is the fixed key set of the weather table. Every tour carries
// exactly one weather row per entry, no more, no fewer.
var Months = []string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// MaxPopularTours caps how many tours can carry the popular flag at once.
const MaxPopularTours = 6

type Tour struct {
	ID                string    `json:"id" db:"id"`
	Slug              string    `json:"slug" db:"slug"`
	Title             string    `json:"title" db:"title"`
	Region            string    `json:"region" db:"region"`
	Duration          string    `json:"duration" db:"duration"`
	BasePrice         float64   `json:"base_price" db:"base_price"`
	ShortDescription  string    `json:"short_description" db:"short_description"`
	LongDescription   string    `json:"long_description" db:"long_description"`
	HeroImagePath     string    `json:"hero_image_path" db:"hero_image_path"`
	TourTypeID        string    `json:"tour_type_id" db:"tour_type_id"`
	PopularTour       bool      `json:"popular_tour" db:"popular_tour"`
	OpportunityTour   bool      `json:"opportunity_tour" db:"opportunity_tour"`
	DestinationStatus bool      `json:"destination_status" db:"destination_status"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`

	// Joined from tour_type_settings when listing.
	TourTypeName *string `json:"tour_type_name,omitempty" db:"tour_type_name"`
}

type TourImage struct {
	ID           string `json:"id" db:"id"`
	TourID       string `json:"tour_id" db:"tour_id"`
	StoragePath  string `json:"storage_path" db:"storage_path"`
	AltText      string `json:"alt_text" db:"alt_text"`
	ImageType    string `json:"image_type" db:"image_type"` // hero | gallery | map
	DisplayOrder int    `json:"display_order" db:"display_order"`
}

type TourHighlight struct {
	ID           string `json:"id" db:"id"`
	TourID       string `json:"tour_id" db:"tour_id"`
	Content      string `json:"content" db:"content"`
	DisplayOrder int    `json:"display_order" db:"display_order"`
}

type TourInclusion struct {
	ID           string `json:"id" db:"id"`
	TourID       string `json:"tour_id" db:"tour_id"`
	Content      string `json:"content" db:"content"`
	DisplayOrder int    `json:"display_order" db:"display_order"`
}

type TourTip struct {
	ID       string `json:"id" db:"id"`
	TourID   string `json:"tour_id" db:"tour_id"`
	Content  string `json:"content" db:"content"`
	IconName string `json:"icon_name" db:"icon_name"`
}

type TourDailyProgram struct {
	ID           string `json:"id" db:"id"`
	TourID       string `json:"tour_id" db:"tour_id"`
	DayRange     string `json:"day_range" db:"day_range"`
	Title        string `json:"title" db:"title"`
	Content      string `json:"content" db:"content"`
	DisplayOrder int    `json:"display_order" db:"display_order"`
}

type TourDatePrice struct {
	ID            string  `json:"id" db:"id"`
	TourID        string  `json:"tour_id" db:"tour_id"`
	TravelPeriod  string  `json:"travel_period" db:"travel_period"`
	PriceCategory string  `json:"price_category" db:"price_category"`
	Airline       string  `json:"airline" db:"airline"`
	Price         float64 `json:"price" db:"price"`
	Currency      string  `json:"currency" db:"currency"`
	PriceUSD      float64 `json:"price_usd" db:"price_usd"`
	PriceEUR      float64 `json:"price_eur" db:"price_eur"`
	PriceTRY      float64 `json:"price_try" db:"price_try"`
	DisplayOrder  int     `json:"display_order" db:"display_order"`
}

type TourWeatherData struct {
	ID           string  `json:"id" db:"id"`
	TourID       string  `json:"tour_id" db:"tour_id"`
	Month        string  `json:"month" db:"month"`
	Temperature  float64 `json:"temperature" db:"temperature"`
	Rainfall     float64 `json:"rainfall" db:"rainfall"`
	IsBestPeriod bool    `json:"is_best_period" db:"is_best_period"`
}

// TourDetails bundles a tour with all of its dependent collections the
// way the edit form consumes them.
type TourDetails struct {
	Tour          Tour               `json:"tour"`
	Images        []TourImage        `json:"images"`
	Highlights    []TourHighlight    `json:"highlights"`
	Inclusions    []TourInclusion    `json:"inclusions"`
	Tips          []TourTip          `json:"tips"`
	DailyPrograms []TourDailyProgram `json:"daily_programs"`
	DatesPrices   []TourDatePrice    `json:"dates_prices"`
	Weather       []TourWeatherData  `json:"weather"`
}

// AssetPaths lists every stored file referenced by the tour, used when
// the tour is deleted.
func (d *TourDetails) AssetPaths() []string {
	var paths []string
	if d.Tour.HeroImagePath != "" {
		paths = append(paths, d.Tour.HeroImagePath)
	}
	for _, img := range d.Images {
		if img.StoragePath != "" {
			paths = append(paths, img.StoragePath)
		}
	}
	return paths
}
