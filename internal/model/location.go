package model

// Location is the application-owned geographic anchor for experiences and
// tips. The catalog references are weak: deleting a catalog row nulls the
// reference but never removes the Location. A Location with both coordinates
// present is unique on the (latitude, longitude) pair.
type Location struct {
	ID        string   `db:"id" json:"id"`
	Latitude  *float64 `db:"latitude" json:"latitude"`
	Longitude *float64 `db:"longitude" json:"longitude"`
	CountryID *int     `db:"country_id" json:"country_id"`
	RegionID  *int     `db:"region_id" json:"region_id"`
	CityID    *int     `db:"city_id" json:"city_id"`
}
