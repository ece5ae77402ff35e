package seeder

import (
	"archive/zip"
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wayfinder/wayfinder-api/internal/config"
	"github.com/wayfinder/wayfinder-api/internal/model"
)

// Parser parses gazetteer data files. The files are tab separated with
// one record per line; lines starting with # are comments.
//
//	countries.tsv  id <tab> name
//	regions.tsv    id <tab> name <tab> country_id
//	cities.tsv     id <tab> name <tab> region_id <tab> country_id <tab> lat <tab> lon
//
// region_id, lat and lon may be empty. cities.tsv may be shipped zipped
// as cities.zip.
type Parser struct {
	dataDir   string
	batchSize int
}

// NewParser creates a new parser instance with config
func NewParser(seederCfg config.SeederConfig) *Parser {
	return &Parser{
		dataDir:   seederCfg.DataDir,
		batchSize: seederCfg.BatchSize,
	}
}

// ParseCountries parses countries.tsv
func (p *Parser) ParseCountries() ([]model.Country, error) {
	filePath := filepath.Join(p.dataDir, "countries.tsv")
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open countries.tsv: %w", err)
	}
	defer file.Close()

	var countries []model.Country
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()

		// Skip comments
		if strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}

		id, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		name := strings.TrimSpace(parts[1])

		if name != "" {
			countries = append(countries, model.Country{
				ID:   id,
				Name: name,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan countries.tsv: %w", err)
	}

	return countries, nil
}

// ParseRegions parses regions.tsv
func (p *Parser) ParseRegions() ([]model.Region, error) {
	filePath := filepath.Join(p.dataDir, "regions.tsv")
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open regions.tsv: %w", err)
	}
	defer file.Close()

	var regions []model.Region
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}

		id, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		name := strings.TrimSpace(parts[1])
		countryID, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}

		if name != "" {
			regions = append(regions, model.Region{
				ID:        id,
				Name:      name,
				CountryID: countryID,
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan regions.tsv: %w", err)
	}

	return regions, nil
}

// ParseCities parses cities.tsv, transparently reading cities.zip if present
func (p *Parser) ParseCities() ([]model.City, error) {
	zipPath := filepath.Join(p.dataDir, "cities.zip")
	if _, err := os.Stat(zipPath); err == nil {
		return p.parseCitiesFromZip(zipPath)
	}

	filePath := filepath.Join(p.dataDir, "cities.tsv")
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cities.tsv: %w", err)
	}
	defer file.Close()

	return p.parseCitiesFromReader(file)
}

func (p *Parser) parseCitiesFromZip(zipPath string) ([]model.City, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if strings.HasSuffix(f.Name, ".tsv") {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("failed to open file in zip: %w", err)
			}
			defer rc.Close()
			return p.parseCitiesFromReader(rc)
		}
	}

	return nil, fmt.Errorf("no tsv file found in zip")
}

func (p *Parser) parseCitiesFromReader(reader io.Reader) ([]model.City, error) {
	buf := make([]byte, 0, 64*1024)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(buf, 1024*1024)

	var cities []model.City

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 6 {
			continue
		}

		id, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		name := strings.TrimSpace(parts[1])
		if name == "" {
			continue
		}

		var regionID *int
		if parts[2] != "" {
			rid, err := strconv.Atoi(parts[2])
			if err != nil {
				continue
			}
			regionID = &rid
		}

		countryID, err := strconv.Atoi(parts[3])
		if err != nil {
			continue
		}

		var lat, lon *float64
		if parts[4] != "" && parts[5] != "" {
			la, err := strconv.ParseFloat(parts[4], 64)
			if err != nil {
				continue
			}
			lo, err := strconv.ParseFloat(parts[5], 64)
			if err != nil {
				continue
			}
			lat, lon = &la, &lo
		}

		cities = append(cities, model.City{
			ID:        id,
			Name:      name,
			RegionID:  regionID,
			CountryID: countryID,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan cities: %w", err)
	}

	return cities, nil
}
