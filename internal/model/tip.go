package model

import "time"

// Tip is a short piece of advice attached to a country or city. The catalog
// references are weak (nulled if the catalog row disappears).
type Tip struct {
	ID         string    `db:"id" json:"id"`
	Content    string    `db:"content" json:"content"`
	CountryID  *int      `db:"country_id" json:"country_id"`
	CityID     *int      `db:"city_id" json:"city_id"`
	CreatorID  string    `db:"creator_id" json:"creator_id"`
	DatePosted time.Time `db:"date_posted" json:"date_posted"`
}
