package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// CreateExperience validates the payload, resolves its geography and
// persists a new experience for the acting user.
//
// Coordinates are settled in this order: explicit latitude/longitude when
// both are supplied; otherwise the resolved city's coordinates. When
// neither yields a usable pair the request is rejected before anything is
// written.
func (s *Service) CreateExperience(ctx context.Context, userID string, req model.CreateExperienceRequest) (*model.Experience, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, Invalid("title", "must not be empty")
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, Invalid("description", "must not be empty")
	}
	if req.Price != nil && !model.ValidPrice(*req.Price) {
		return nil, Invalid("price", "must be one of free, cheap, moderate, expensive")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, Invalid("location", "latitude and longitude must be supplied together")
	}

	res, err := s.ResolveLocation(ctx, ResolveInput{
		CountryName: req.CountryName,
		RegionName:  req.RegionName,
		CityName:    req.CityName,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		return nil, err
	}

	lat, lon := req.Latitude, req.Longitude
	if lat == nil || lon == nil {
		// Fall back to the resolved city's coordinates.
		if res.City == nil || res.City.Latitude == nil || res.City.Longitude == nil {
			return nil, Invalid("location", "supply latitude and longitude or names resolving to a known city")
		}
		lat, lon = res.City.Latitude, res.City.Longitude
	}

	if err := s.backfillFromCity(ctx, &res); err != nil {
		return nil, err
	}

	var imagePath *string
	if req.ImageData != "" {
		data, err := base64.StdEncoding.DecodeString(req.ImageData)
		if err != nil {
			return nil, Invalid("image_data", "must be valid base64")
		}
		path, err := s.blobs.Save(req.ImageName, data)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		imagePath = &path
	}

	tags, err := s.tagRepo.GetOrCreateByNames(ctx, req.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}
	tagIDs := make([]string, len(tags))
	for i, tag := range tags {
		tagIDs[i] = tag.ID
	}

	location, err := s.GetOrCreateLocation(ctx, lat, lon, res)
	if err != nil {
		return nil, err
	}

	exp := model.Experience{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		LocationID:  location.ID,
		CreatorID:   userID,
		Price:       req.Price,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Date:        req.Date,
		ImagePath:   imagePath,
		DatePosted:  time.Now().UTC(),
		Tags:        tags,
	}
	if err := s.experienceRepo.Create(ctx, exp, tagIDs); err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return &exp, nil
}

// backfillFromCity fills missing country/region references from a resolved
// city's parents, so a radius-matched city still anchors its country.
func (s *Service) backfillFromCity(ctx context.Context, res *Resolution) error {
	if res.City == nil {
		return nil
	}
	if res.Country == nil {
		country, err := s.geoRepo.GetCountryByID(ctx, res.City.CountryID)
		if err != nil {
			return fmt.Errorf("failed to load city country: %w", err)
		}
		res.Country = country
	}
	if res.Region == nil && res.City.RegionID != nil {
		region, err := s.geoRepo.GetRegionByID(ctx, *res.City.RegionID)
		if err != nil {
			return fmt.Errorf("failed to load city region: %w", err)
		}
		res.Region = region
	}
	return nil
}

// ListExperiences applies the recognized filters and returns experiences
// ordered by rating. Absent filters return the full collection.
func (s *Service) ListExperiences(ctx context.Context, f model.ExperienceFilter) ([]model.Experience, error) {
	experiences, err := s.experienceRepo.ListWithFilters(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to filter experiences: %w", err)
	}
	return experiences, nil
}

// GetExperience returns one experience by id
func (s *Service) GetExperience(ctx context.Context, id string) (*model.Experience, error) {
	exp, err := s.experienceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, NotFound("experience")
	}
	return exp, nil
}
