package dto

// TourRequest carries the full tour form: the parent record plus its
// dependent collections. Saving replaces the collections wholesale.
type TourRequest struct {
	Title             string  `json:"title" validate:"required,min=2"`
	Region            string  `json:"region" validate:"required,min=2"`
	Duration          string  `json:"duration" validate:"required"`
	BasePrice         float64 `json:"base_price" validate:"omitempty,min=0"`
	ShortDescription  string  `json:"short_description"`
	LongDescription   string  `json:"long_description"`
	HeroImagePath     string  `json:"hero_image_path"`
	TourTypeID        string  `json:"tour_type_id" validate:"required"`
	DestinationStatus bool    `json:"destination_status"`

	Images        []TourImageRequest        `json:"images" validate:"omitempty,dive"`
	Highlights    []TourItemRequest         `json:"highlights" validate:"omitempty,dive"`
	Inclusions    []TourItemRequest         `json:"inclusions" validate:"omitempty,dive"`
	Tips          []TourTipRequest          `json:"tips" validate:"omitempty,dive"`
	DailyPrograms []TourDailyProgramRequest `json:"daily_programs" validate:"omitempty,dive"`
	DatesPrices   []TourDatePriceRequest    `json:"dates_prices" validate:"omitempty,dive"`
	Weather       []TourWeatherRequest      `json:"weather" validate:"omitempty,max=12,dive"`
}

type TourImageRequest struct {
	StoragePath string `json:"storage_path" validate:"required"`
	AltText     string `json:"alt_text"`
	ImageType   string `json:"image_type" validate:"required,oneof=hero gallery map"`
}

// TourItemRequest is a single ordered text row (highlight or inclusion).
type TourItemRequest struct {
	Content string `json:"content" validate:"required"`
}

type TourTipRequest struct {
	Content  string `json:"content" validate:"required"`
	IconName string `json:"icon_name"`
}

type TourDailyProgramRequest struct {
	DayRange string `json:"day_range" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
}

type TourDatePriceRequest struct {
	TravelPeriod  string  `json:"travel_period" validate:"required"`
	PriceCategory string  `json:"price_category" validate:"required,oneof=Standart Bütçe 'Üst Segment'"`
	Airline       string  `json:"airline"`
	Price         float64 `json:"price" validate:"min=0"`
	Currency      string  `json:"currency"`
	PriceUSD      float64 `json:"price_usd" validate:"min=0"`
	PriceEUR      float64 `json:"price_eur" validate:"min=0"`
	PriceTRY      float64 `json:"price_try" validate:"min=0"`
}

type TourWeatherRequest struct {
	Month        string  `json:"month" validate:"required,oneof=JAN FEB MAR APR MAY JUN JUL AUG SEP OCT NOV DEC"`
	Temperature  float64 `json:"temperature"`
	Rainfall     float64 `json:"rainfall"`
	IsBestPeriod bool    `json:"is_best_period"`
}

// TourFlagRequest toggles one of the boolean tour flags.
type TourFlagRequest struct {
	Value bool `json:"value"`
}
