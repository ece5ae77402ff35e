package seeder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wayfinder/wayfinder-api/internal/repository"
)

// Seeder loads the geographic catalog from data files into the database
type Seeder struct {
	parser    *Parser
	geo       repository.GeoRepository
	batchSize int
	logger    *zap.Logger
}

func New(parser *Parser, geo repository.GeoRepository, logger *zap.Logger) *Seeder {
	return &Seeder{
		parser:    parser,
		geo:       geo,
		batchSize: parser.batchSize,
		logger:    logger,
	}
}

// Run parses and inserts countries, regions and cities in that order so
// foreign keys resolve. Inserts go in batches to keep progress visible on
// large catalogs.
func (s *Seeder) Run(ctx context.Context) error {
	s.logger.Info("Parsing countries...")
	countries, err := s.parser.ParseCountries()
	if err != nil {
		return fmt.Errorf("failed to parse countries: %w", err)
	}

	s.logger.Info("Parsing regions...")
	regions, err := s.parser.ParseRegions()
	if err != nil {
		return fmt.Errorf("failed to parse regions: %w", err)
	}

	s.logger.Info("Parsing cities...")
	cities, err := s.parser.ParseCities()
	if err != nil {
		return fmt.Errorf("failed to parse cities: %w", err)
	}

	s.logger.Info("Inserting countries...", zap.Int("count", len(countries)))
	for start := 0; start < len(countries); start += s.batch() {
		if err := s.geo.BulkInsertCountries(ctx, countries[start:min(start+s.batch(), len(countries))]); err != nil {
			return fmt.Errorf("failed to insert countries: %w", err)
		}
	}

	s.logger.Info("Inserting regions...", zap.Int("count", len(regions)))
	for start := 0; start < len(regions); start += s.batch() {
		if err := s.geo.BulkInsertRegions(ctx, regions[start:min(start+s.batch(), len(regions))]); err != nil {
			return fmt.Errorf("failed to insert regions: %w", err)
		}
	}

	s.logger.Info("Inserting cities...", zap.Int("count", len(cities)))
	for start := 0; start < len(cities); start += s.batch() {
		if err := s.geo.BulkInsertCities(ctx, cities[start:min(start+s.batch(), len(cities))]); err != nil {
			return fmt.Errorf("failed to insert cities: %w", err)
		}
	}

	s.logger.Info("Catalog import completed",
		zap.Int("countries", len(countries)),
		zap.Int("regions", len(regions)),
		zap.Int("cities", len(cities)),
	)
	return nil
}

func (s *Seeder) batch() int {
	if s.batchSize <= 0 {
		return 1000
	}
	return s.batchSize
}
