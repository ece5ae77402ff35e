package model

import "time"

// Price buckets for an experience
const (
	PriceFree      = "free"
	PriceCheap     = "cheap"
	PriceModerate  = "moderate"
	PriceExpensive = "expensive"
)

// ValidPrice reports whether p is one of the recognized price buckets.
func ValidPrice(p string) bool {
	switch p {
	case PriceFree, PriceCheap, PriceModerate, PriceExpensive:
		return true
	}
	return false
}

// Experience is a user-posted place or activity. AverageRating and
// NumberOfRatings are denormalized aggregates maintained by the rating
// repository; NumberOfRatings counts every rating row including
// comment-only ones, while AverageRating only folds in rows that carry a
// value.
type Experience struct {
	ID              string    `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	LocationID      string    `db:"location_id" json:"location_id"`
	CreatorID       string    `db:"creator_id" json:"creator_id"`
	AverageRating   float64   `db:"average_rating" json:"average_rating"`
	NumberOfRatings int       `db:"number_of_ratings" json:"number_of_ratings"`
	Price           *string   `db:"price" json:"price"`
	StartTime       *string   `db:"start_time" json:"start_time"`
	EndTime         *string   `db:"end_time" json:"end_time"`
	Date            *string   `db:"date" json:"date"`
	ImagePath       *string   `db:"image_path" json:"image_path"`
	DatePosted      time.Time `db:"date_posted" json:"date_posted"`

	// Tags are attached by the repository when loading; not a column.
	Tags []Tag `db:"-" json:"tags"`
}

// Tag is a unique label attachable to experiences
type Tag struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Rating is a single user review of an experience. RatingValue is optional;
// a nil value means a comment-only review.
type Rating struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	ExperienceID string    `db:"experience_id" json:"experience_id"`
	Comment      string    `db:"comment" json:"comment"`
	RatingValue  *int      `db:"rating_value" json:"rating_value"`
	DatePosted   time.Time `db:"date_posted" json:"date_posted"`
}
