package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/wayfinder/wayfinder-api/internal/config"
	"github.com/wayfinder/wayfinder-api/internal/model"
)

// ErrExperienceNotFound is returned by rating creation when the target
// experience row does not exist.
var ErrExperienceNotFound = errors.New("experience not found")

// ErrDuplicateWishlistItem is returned when an experience is already present
// in the target wishlist.
var ErrDuplicateWishlistItem = errors.New("experience already in wishlist")

// GeoRepository defines read and seed operations on the geographic catalog
type GeoRepository interface {
	// FindCountryByName returns any country whose name contains the query
	// case-insensitively, or nil when none matches.
	FindCountryByName(ctx context.Context, name string) (*model.Country, error)
	// FindRegionByName matches by name substring scoped to the given country
	// (a nil countryID scopes to regions without a resolved country).
	FindRegionByName(ctx context.Context, name string, countryID *int) (*model.Region, error)
	// FindCityByName matches by name substring scoped to the given region.
	FindCityByName(ctx context.Context, name string, regionID *int) (*model.City, error)
	// FindCityInBounds returns any city inside the bounding box, or nil.
	FindCityInBounds(ctx context.Context, minLat, maxLat, minLon, maxLon float64) (*model.City, error)
	GetCountryByID(ctx context.Context, id int) (*model.Country, error)
	GetRegionByID(ctx context.Context, id int) (*model.Region, error)
	GetCityByID(ctx context.Context, id int) (*model.City, error)
	SearchCountries(ctx context.Context, query string, limit int) ([]model.Country, error)
	SearchCities(ctx context.Context, query string, limit int) ([]model.CityDetail, error)
	BulkInsertCountries(ctx context.Context, countries []model.Country) error
	BulkInsertRegions(ctx context.Context, regions []model.Region) error
	BulkInsertCities(ctx context.Context, cities []model.City) error
}

// LocationRepository defines operations on application-owned locations
type LocationRepository interface {
	// GetOrCreate returns the existing location with loc's exact coordinate
	// pair or inserts loc. First writer wins: catalog references on an
	// existing row are left untouched. Safe under concurrent callers.
	GetOrCreate(ctx context.Context, loc model.Location) (*model.Location, error)
	GetByID(ctx context.Context, id string) (*model.Location, error)
}

// ExperienceRepository defines operations on experiences
type ExperienceRepository interface {
	Create(ctx context.Context, exp model.Experience, tagIDs []string) error
	GetByID(ctx context.Context, id string) (*model.Experience, error)
	// ListWithFilters narrows experiences by the given predicates and returns
	// them ordered by average rating, then rating count, both descending.
	ListWithFilters(ctx context.Context, f model.ExperienceFilter) ([]model.Experience, error)
}

// RatingRepository defines the transactional rating append
type RatingRepository interface {
	// Create inserts the rating and folds it into the owning experience's
	// denormalized aggregates in one transaction. Returns
	// ErrExperienceNotFound when the experience does not exist.
	Create(ctx context.Context, rating model.Rating) (*model.Rating, error)
	ListByExperience(ctx context.Context, experienceID string) ([]model.Rating, error)
}

// TagRepository defines operations on tags
type TagRepository interface {
	GetOrCreateByNames(ctx context.Context, names []string) ([]model.Tag, error)
	ListAll(ctx context.Context) ([]model.Tag, error)
}

// UserRepository defines operations on users
type UserRepository interface {
	Create(ctx context.Context, user model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// TipRepository defines operations on tips
type TipRepository interface {
	Create(ctx context.Context, tip model.Tip) error
	ListWithFilters(ctx context.Context, f model.TipFilter) ([]model.Tip, error)
	ListByCreator(ctx context.Context, creatorID string) ([]model.Tip, error)
}

// WishlistRepository defines operations on wishlists and their items
type WishlistRepository interface {
	Create(ctx context.Context, wishlist model.Wishlist) error
	GetByID(ctx context.Context, id string) (*model.Wishlist, error)
	ListByUser(ctx context.Context, userID string) ([]model.Wishlist, error)
	// AddItem returns ErrDuplicateWishlistItem when the experience is
	// already in the wishlist.
	AddItem(ctx context.Context, item model.WishlistItem) error
	ListItems(ctx context.Context, wishlistID string) ([]model.WishlistItem, error)
}

// Container holds all repositories
type Container struct {
	Geo        GeoRepository
	Location   LocationRepository
	Experience ExperienceRepository
	Rating     RatingRepository
	Tag        TagRepository
	User       UserRepository
	Tip        TipRepository
	Wishlist   WishlistRepository
}

// NewRepositories creates repository implementations based on DB type.
// Read-mostly repositories share one portable implementation; the two
// critical sections (location dedup and rating aggregation) get per-engine
// implementations because their locking strategies differ.
func NewRepositories(db *sqlx.DB, dbType config.DBType) *Container {
	c := &Container{
		Geo:        &geoRepository{db: db},
		Experience: &experienceRepository{db: db},
		Tag:        &tagRepository{db: db},
		User:       &userRepository{db: db},
		Tip:        &tipRepository{db: db},
		Wishlist:   &wishlistRepository{db: db},
	}

	if dbType == config.DBTypePostgreSQL {
		c.Location = &pgLocationRepository{db: db}
		c.Rating = &pgRatingRepository{db: db}
		return c
	}

	// Default to SQLite
	c.Location = &sqliteLocationRepository{db: db}
	c.Rating = &sqliteRatingRepository{db: db}
	return c
}

// IsCatalogEmpty reports whether the geographic catalog has been seeded yet
func IsCatalogEmpty(ctx context.Context, db *sqlx.DB) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM cities"
	if err := db.GetContext(ctx, &count, query); err != nil {
		// Table may not exist before migrations have run
		return true, nil
	}
	return count == 0, nil
}
