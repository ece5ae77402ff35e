package service

import (
	"context"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// Interface defines the service surface consumed by the HTTP layer
type Interface interface {
	ResolveLocation(ctx context.Context, in ResolveInput) (Resolution, error)
	GetOrCreateLocation(ctx context.Context, lat, lon *float64, res Resolution) (*model.Location, error)
	SearchPlaces(ctx context.Context, query string) ([]model.PlaceSuggestion, error)

	CreateExperience(ctx context.Context, userID string, req model.CreateExperienceRequest) (*model.Experience, error)
	ListExperiences(ctx context.Context, f model.ExperienceFilter) ([]model.Experience, error)
	GetExperience(ctx context.Context, id string) (*model.Experience, error)

	CreateRating(ctx context.Context, userID string, req model.CreateRatingRequest) (*model.Rating, error)
	ListExperienceRatings(ctx context.Context, experienceID string) ([]model.Rating, error)

	CreateTip(ctx context.Context, userID string, req model.CreateTipRequest) (*model.Tip, error)
	ListTips(ctx context.Context, f model.TipFilter) ([]model.Tip, error)
	ListUserTips(ctx context.Context, userID string) ([]model.Tip, error)

	CreateWishlist(ctx context.Context, actingUserID string, req model.CreateWishlistRequest) (*model.Wishlist, error)
	ListUserWishlists(ctx context.Context, actingUserID, userID string) ([]model.Wishlist, error)
	AddWishlistItem(ctx context.Context, actingUserID, wishlistID string, req model.CreateWishlistItemRequest) (*model.WishlistItem, error)
	ListWishlistItems(ctx context.Context, actingUserID, wishlistID string) ([]model.WishlistItem, error)

	ListTags(ctx context.Context) ([]model.Tag, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
}
