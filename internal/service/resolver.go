package service

import (
	"context"
	"fmt"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

const (
	// Incremental radius search: up to 5 attempts widening the bounding box
	// by half a degree each time (0.5, 1.0, 1.5, 2.0, 2.5).
	radiusMaxAttempts = 5
	radiusIncrement   = 0.5
)

// ResolveInput carries the optional geographic hints to reconcile against
// the catalog. Empty names and nil coordinates are simply unused.
type ResolveInput struct {
	CountryName string
	RegionName  string
	CityName    string
	Latitude    *float64
	Longitude   *float64
}

// Resolution is the (possibly partial) catalog match for a ResolveInput.
// Unresolved components are nil; a fully empty Resolution is a valid
// outcome, not an error.
type Resolution struct {
	Country *model.Country
	Region  *model.Region
	City    *model.City
}

// ResolveLocation reconciles free-text name hints and coordinates into
// catalog references. Names are matched by case-insensitive substring,
// each scoped to its resolved parent: the region lookup only considers
// regions of the matched country (or regions without one when no country
// resolved), and likewise for cities within regions. When no city matched
// by name and both coordinates are present, an incremental radius search
// picks any city inside the smallest bounding box that contains one --
// small windows first, so a nearby city is preferred over a distant one.
func (s *Service) ResolveLocation(ctx context.Context, in ResolveInput) (Resolution, error) {
	var res Resolution

	if in.CountryName != "" {
		country, err := s.geoRepo.FindCountryByName(ctx, in.CountryName)
		if err != nil {
			return Resolution{}, fmt.Errorf("failed to resolve country: %w", err)
		}
		res.Country = country
	}

	if in.RegionName != "" {
		var countryID *int
		if res.Country != nil {
			countryID = &res.Country.ID
		}
		region, err := s.geoRepo.FindRegionByName(ctx, in.RegionName, countryID)
		if err != nil {
			return Resolution{}, fmt.Errorf("failed to resolve region: %w", err)
		}
		res.Region = region
	}

	if in.CityName != "" {
		var regionID *int
		if res.Region != nil {
			regionID = &res.Region.ID
		}
		city, err := s.geoRepo.FindCityByName(ctx, in.CityName, regionID)
		if err != nil {
			return Resolution{}, fmt.Errorf("failed to resolve city: %w", err)
		}
		res.City = city
	}

	if res.City == nil && in.Latitude != nil && in.Longitude != nil {
		city, err := s.findCityNear(ctx, *in.Latitude, *in.Longitude)
		if err != nil {
			return Resolution{}, err
		}
		res.City = city
	}

	return res, nil
}

func (s *Service) findCityNear(ctx context.Context, lat, lon float64) (*model.City, error) {
	for attempt := 1; attempt <= radiusMaxAttempts; attempt++ {
		delta := radiusIncrement * float64(attempt)
		city, err := s.geoRepo.FindCityInBounds(ctx, lat-delta, lat+delta, lon-delta, lon+delta)
		if err != nil {
			return nil, fmt.Errorf("failed radius search: %w", err)
		}
		if city != nil {
			return city, nil
		}
	}
	return nil, nil
}
