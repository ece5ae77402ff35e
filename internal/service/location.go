package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

const (
	searchCountryLimit = 5
	searchCityLimit    = 10
)

// GetOrCreateLocation maps a resolved geography onto the canonical Location
// row for its coordinate pair, creating one lazily. When an existing row is
// returned its catalog references are kept as first written, even if the
// caller resolved different ones.
func (s *Service) GetOrCreateLocation(ctx context.Context, lat, lon *float64, res Resolution) (*model.Location, error) {
	loc := model.Location{
		ID:        uuid.NewString(),
		Latitude:  lat,
		Longitude: lon,
	}
	if res.Country != nil {
		loc.CountryID = &res.Country.ID
	}
	if res.Region != nil {
		loc.RegionID = &res.Region.ID
	}
	if res.City != nil {
		loc.CityID = &res.City.ID
	}

	created, err := s.locationRepo.GetOrCreate(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create location: %w", err)
	}
	return created, nil
}

// SearchPlaces returns a combined list of matching countries and cities for
// a free-text query, countries first.
func (s *Service) SearchPlaces(ctx context.Context, query string) ([]model.PlaceSuggestion, error) {
	countries, err := s.geoRepo.SearchCountries(ctx, query, searchCountryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search countries: %w", err)
	}

	cities, err := s.geoRepo.SearchCities(ctx, query, searchCityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search cities: %w", err)
	}

	suggestions := make([]model.PlaceSuggestion, 0, len(countries)+len(cities))
	for _, country := range countries {
		name := country.Name
		suggestions = append(suggestions, model.PlaceSuggestion{
			PlaceID: country.ID,
			Type:    "country",
			Country: &name,
		})
	}
	for _, city := range cities {
		name := city.Name
		suggestions = append(suggestions, model.PlaceSuggestion{
			PlaceID: city.ID,
			Type:    "city",
			Name:    &name,
			Region:  city.RegionName,
			Country: city.CountryName,
		})
	}
	return suggestions, nil
}
