package model

// CreateExperienceRequest carries the payload for posting a new experience.
// Geographic hints are all optional: either the hints must resolve to a city
// with known coordinates, or explicit coordinates must be supplied.
type CreateExperienceRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	CountryName string   `json:"country_name"`
	RegionName  string   `json:"region_name"`
	CityName    string   `json:"city_name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Tags        []string `json:"tags"`
	Price       *string  `json:"price"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Date        *string  `json:"date"`
	// ImageData is an optional base64 payload forwarded to blob storage.
	ImageData string `json:"image_data"`
	ImageName string `json:"image_name"`
}

// ExperienceFilter is the recognized set of list-experiences predicates.
// Absent fields are no-op filters.
type ExperienceFilter struct {
	Tags         []string
	SearchQuery  string
	LocationType string
	LocationID   int
	HasLocation  bool
}

// CreateRatingRequest carries the payload for rating an experience
type CreateRatingRequest struct {
	ExperienceID string `json:"experience_id" validate:"required"`
	Comment      string `json:"comment" validate:"required"`
	RatingValue  *int   `json:"rating_value"`
}

// CreateTipRequest carries the payload for posting a tip
type CreateTipRequest struct {
	Content      string `json:"content" validate:"required"`
	LocationType string `json:"location_type" validate:"required"`
	LocationID   int    `json:"location_id" validate:"required"`
}

// TipFilter narrows the tip listing to a country or city
type TipFilter struct {
	LocationType string
	LocationID   int
	HasLocation  bool
}

// CreateWishlistRequest carries the payload for creating a wishlist
type CreateWishlistRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Title  string `json:"title" validate:"required"`
}

// CreateWishlistItemRequest adds one experience to a wishlist
type CreateWishlistItemRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	ExperienceID string `json:"experience_id" validate:"required"`
}

// PlaceSuggestion is one entry in the combined country/city search response
type PlaceSuggestion struct {
	PlaceID int     `json:"place_id"`
	Type    string  `json:"type"`
	Name    *string `json:"name"`
	Region  *string `json:"region"`
	Country *string `json:"country"`
}
