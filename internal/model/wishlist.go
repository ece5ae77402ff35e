package model

import "time"

// Wishlist is a user-curated collection of experiences
type Wishlist struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Title       string    `db:"title" json:"title"`
	CreatedDate time.Time `db:"created_date" json:"created_date"`
}

// WishlistItem links one experience into a wishlist; an experience appears
// at most once per wishlist.
type WishlistItem struct {
	ID           string    `db:"id" json:"id"`
	WishlistID   string    `db:"wishlist_id" json:"wishlist_id"`
	ExperienceID string    `db:"experience_id" json:"experience_id"`
	DateAdded    time.Time `db:"date_added" json:"date_added"`
}
