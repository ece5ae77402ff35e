package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wayfinder/wayfinder-api/internal/model"
	"github.com/wayfinder/wayfinder-api/internal/repository"
)

// CreateWishlist creates a wishlist owned by the acting user. Requests
// naming another user's id are rejected.
func (s *Service) CreateWishlist(ctx context.Context, actingUserID string, req model.CreateWishlistRequest) (*model.Wishlist, error) {
	if req.UserID != actingUserID {
		return nil, ErrForbidden
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, Invalid("title", "must not be empty")
	}

	wishlist := model.Wishlist{
		ID:          uuid.NewString(),
		UserID:      actingUserID,
		Title:       title,
		CreatedDate: time.Now().UTC(),
	}
	if err := s.wishlistRepo.Create(ctx, wishlist); err != nil {
		return nil, fmt.Errorf("failed to create wishlist: %w", err)
	}
	return &wishlist, nil
}

// ListUserWishlists returns the wishlists of the acting user only
func (s *Service) ListUserWishlists(ctx context.Context, actingUserID, userID string) ([]model.Wishlist, error) {
	if userID != actingUserID {
		return nil, ErrForbidden
	}
	return s.wishlistRepo.ListByUser(ctx, userID)
}

// AddWishlistItem adds an experience to a wishlist owned by the acting
// user. An experience can appear at most once per wishlist.
func (s *Service) AddWishlistItem(ctx context.Context, actingUserID, wishlistID string, req model.CreateWishlistItemRequest) (*model.WishlistItem, error) {
	if req.UserID != actingUserID {
		return nil, ErrForbidden
	}
	if req.ExperienceID == "" {
		return nil, Invalid("experience_id", "is required")
	}

	wishlist, err := s.wishlistRepo.GetByID(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	if wishlist == nil || wishlist.UserID != actingUserID {
		return nil, NotFound("wishlist")
	}

	exp, err := s.experienceRepo.GetByID(ctx, req.ExperienceID)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, NotFound("experience")
	}

	item := model.WishlistItem{
		ID:           uuid.NewString(),
		WishlistID:   wishlistID,
		ExperienceID: req.ExperienceID,
		DateAdded:    time.Now().UTC(),
	}
	if err := s.wishlistRepo.AddItem(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateWishlistItem) {
			return nil, Invalid("experience_id", "already in this wishlist")
		}
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	return &item, nil
}

// ListWishlistItems returns the items of a wishlist owned by the acting user
func (s *Service) ListWishlistItems(ctx context.Context, actingUserID, wishlistID string) ([]model.WishlistItem, error) {
	wishlist, err := s.wishlistRepo.GetByID(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	if wishlist == nil || wishlist.UserID != actingUserID {
		return nil, NotFound("wishlist")
	}
	return s.wishlistRepo.ListItems(ctx, wishlistID)
}
