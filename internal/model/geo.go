package model

// Country is a reference record from the geographic catalog
type Country struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Region is a first-level administrative division within a country
type Region struct {
	ID        int    `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CountryID int    `db:"country_id" json:"country_id"`
}

// City is a populated place in the geographic catalog.
// Coordinates are optional; some catalog entries carry none.
type City struct {
	ID        int      `db:"id" json:"id"`
	Name      string   `db:"name" json:"name"`
	RegionID  *int     `db:"region_id" json:"region_id"`
	CountryID int      `db:"country_id" json:"country_id"`
	Latitude  *float64 `db:"latitude" json:"latitude"`
	Longitude *float64 `db:"longitude" json:"longitude"`
}

// CityDetail is a city joined with the names of its region and country,
// as returned by catalog search.
type CityDetail struct {
	City
	RegionName  *string `db:"region_name"`
	CountryName *string `db:"country_name"`
}
