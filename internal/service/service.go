package service

import (
	"context"

	"github.com/wayfinder/wayfinder-api/internal/model"
	"github.com/wayfinder/wayfinder-api/internal/repository"
	"github.com/wayfinder/wayfinder-api/internal/storage"
)

// Service provides business logic for the API
type Service struct {
	geoRepo        repository.GeoRepository
	locationRepo   repository.LocationRepository
	experienceRepo repository.ExperienceRepository
	ratingRepo     repository.RatingRepository
	tagRepo        repository.TagRepository
	userRepo       repository.UserRepository
	tipRepo        repository.TipRepository
	wishlistRepo   repository.WishlistRepository
	blobs          storage.BlobStore
}

// NewService creates a new service instance
func NewService(repos *repository.Container, blobs storage.BlobStore) *Service {
	return &Service{
		geoRepo:        repos.Geo,
		locationRepo:   repos.Location,
		experienceRepo: repos.Experience,
		ratingRepo:     repos.Rating,
		tagRepo:        repos.Tag,
		userRepo:       repos.User,
		tipRepo:        repos.Tip,
		wishlistRepo:   repos.Wishlist,
		blobs:          blobs,
	}
}

// ListTags returns every tag, sorted alphabetically
func (s *Service) ListTags(ctx context.Context) ([]model.Tag, error) {
	return s.tagRepo.ListAll(ctx)
}

// GetUser returns the user with the given id
func (s *Service) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NotFound("user")
	}
	return user, nil
}
