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

// CreateRating validates and records a rating, folding it into the target
// experience's aggregates atomically. RatingValue is optional: a comment-only
// rating still counts toward number_of_ratings but leaves the average as is.
func (s *Service) CreateRating(ctx context.Context, userID string, req model.CreateRatingRequest) (*model.Rating, error) {
	if req.ExperienceID == "" {
		return nil, Invalid("experience_id", "is required")
	}
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, Invalid("comment", "must not be empty")
	}
	if req.RatingValue != nil && (*req.RatingValue < 1 || *req.RatingValue > 5) {
		return nil, Invalid("rating_value", "must be an integer between 1 and 5")
	}

	rating := model.Rating{
		ID:           uuid.NewString(),
		UserID:       userID,
		ExperienceID: req.ExperienceID,
		Comment:      comment,
		RatingValue:  req.RatingValue,
		DatePosted:   time.Now().UTC(),
	}

	created, err := s.ratingRepo.Create(ctx, rating)
	if err != nil {
		if errors.Is(err, repository.ErrExperienceNotFound) {
			return nil, NotFound("experience")
		}
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}
	return created, nil
}

// ListExperienceRatings returns all ratings for one experience, newest first
func (s *Service) ListExperienceRatings(ctx context.Context, experienceID string) ([]model.Rating, error) {
	exp, err := s.experienceRepo.GetByID(ctx, experienceID)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, NotFound("experience")
	}
	return s.ratingRepo.ListByExperience(ctx, experienceID)
}
