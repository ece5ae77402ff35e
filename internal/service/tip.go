package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// CreateTip records a tip against a country or a city. A city tip also
// carries the city's country reference.
func (s *Service) CreateTip(ctx context.Context, userID string, req model.CreateTipRequest) (*model.Tip, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, Invalid("content", "must not be empty")
	}
	if req.LocationType == "" || req.LocationID == 0 {
		return nil, Invalid("location", "location_type and location_id are required")
	}

	tip := model.Tip{
		ID:         uuid.NewString(),
		Content:    content,
		CreatorID:  userID,
		DatePosted: time.Now().UTC(),
	}

	switch req.LocationType {
	case "country":
		country, err := s.geoRepo.GetCountryByID(ctx, req.LocationID)
		if err != nil {
			return nil, err
		}
		if country == nil {
			return nil, NotFound("country")
		}
		tip.CountryID = &country.ID
	case "city":
		city, err := s.geoRepo.GetCityByID(ctx, req.LocationID)
		if err != nil {
			return nil, err
		}
		if city == nil {
			return nil, NotFound("city")
		}
		tip.CityID = &city.ID
		tip.CountryID = &city.CountryID
	default:
		return nil, Invalid("location_type", "must be country or city")
	}

	if err := s.tipRepo.Create(ctx, tip); err != nil {
		return nil, fmt.Errorf("failed to create tip: %w", err)
	}
	return &tip, nil
}

// ListTips returns tips, optionally narrowed to a country or city, newest
// first. Unrecognized location types pass every tip through.
func (s *Service) ListTips(ctx context.Context, f model.TipFilter) ([]model.Tip, error) {
	return s.tipRepo.ListWithFilters(ctx, f)
}

// ListUserTips returns the tips created by one user, newest first
func (s *Service) ListUserTips(ctx context.Context, userID string) ([]model.Tip, error) {
	return s.tipRepo.ListByCreator(ctx, userID)
}
