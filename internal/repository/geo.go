package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// geoRepository reads and seeds the geographic catalog. The SQL here is
// portable across Postgres and SQLite; placeholders are rebound per driver.
type geoRepository struct {
	db *sqlx.DB
}

func (r *geoRepository) getOne(ctx context.Context, dest interface{}, query string, args ...interface{}) (bool, error) {
	err := r.db.GetContext(ctx, dest, r.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *geoRepository) FindCountryByName(ctx context.Context, name string) (*model.Country, error) {
	q := `SELECT * FROM countries WHERE LOWER(name) LIKE '%' || LOWER(?) || '%' LIMIT 1`
	var country model.Country
	found, err := r.getOne(ctx, &country, q, name)
	if err != nil || !found {
		return nil, err
	}
	return &country, nil
}

func (r *geoRepository) FindRegionByName(ctx context.Context, name string, countryID *int) (*model.Region, error) {
	q := `SELECT * FROM regions WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'`
	args := []interface{}{name}
	if countryID != nil {
		q += ` AND country_id = ?`
		args = append(args, *countryID)
	} else {
		q += ` AND country_id IS NULL`
	}
	q += ` LIMIT 1`

	var region model.Region
	found, err := r.getOne(ctx, &region, q, args...)
	if err != nil || !found {
		return nil, err
	}
	return &region, nil
}

func (r *geoRepository) FindCityByName(ctx context.Context, name string, regionID *int) (*model.City, error) {
	q := `SELECT * FROM cities WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'`
	args := []interface{}{name}
	if regionID != nil {
		q += ` AND region_id = ?`
		args = append(args, *regionID)
	} else {
		q += ` AND region_id IS NULL`
	}
	q += ` LIMIT 1`

	var city model.City
	found, err := r.getOne(ctx, &city, q, args...)
	if err != nil || !found {
		return nil, err
	}
	return &city, nil
}

func (r *geoRepository) FindCityInBounds(ctx context.Context, minLat, maxLat, minLon, maxLon float64) (*model.City, error) {
	q := `
		SELECT * FROM cities
		WHERE latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?
		LIMIT 1
	`
	var city model.City
	found, err := r.getOne(ctx, &city, q, minLat, maxLat, minLon, maxLon)
	if err != nil || !found {
		return nil, err
	}
	return &city, nil
}

func (r *geoRepository) GetCountryByID(ctx context.Context, id int) (*model.Country, error) {
	var country model.Country
	found, err := r.getOne(ctx, &country, "SELECT * FROM countries WHERE id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &country, nil
}

func (r *geoRepository) GetRegionByID(ctx context.Context, id int) (*model.Region, error) {
	var region model.Region
	found, err := r.getOne(ctx, &region, "SELECT * FROM regions WHERE id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &region, nil
}

func (r *geoRepository) GetCityByID(ctx context.Context, id int) (*model.City, error) {
	var city model.City
	found, err := r.getOne(ctx, &city, "SELECT * FROM cities WHERE id = ?", id)
	if err != nil || !found {
		return nil, err
	}
	return &city, nil
}

func (r *geoRepository) SearchCountries(ctx context.Context, query string, limit int) ([]model.Country, error) {
	q := r.db.Rebind(`
		SELECT * FROM countries
		WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'
		ORDER BY name
		LIMIT ?
	`)
	countries := []model.Country{}
	if err := r.db.SelectContext(ctx, &countries, q, query, limit); err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *geoRepository) SearchCities(ctx context.Context, query string, limit int) ([]model.CityDetail, error) {
	q := r.db.Rebind(`
		SELECT
			c.id, c.name, c.region_id, c.country_id, c.latitude, c.longitude,
			r.name AS region_name,
			cnt.name AS country_name
		FROM cities c
		LEFT JOIN regions r ON c.region_id = r.id
		LEFT JOIN countries cnt ON c.country_id = cnt.id
		WHERE LOWER(c.name) LIKE '%' || LOWER(?) || '%'
		ORDER BY c.name
		LIMIT ?
	`)
	cities := []model.CityDetail{}
	if err := r.db.SelectContext(ctx, &cities, q, query, limit); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *geoRepository) BulkInsertCountries(ctx context.Context, countries []model.Country) error {
	return bulkInsert(ctx, r.db, `INSERT INTO countries (id, name) VALUES (:id, :name)`, countries)
}

func (r *geoRepository) BulkInsertRegions(ctx context.Context, regions []model.Region) error {
	return bulkInsert(ctx, r.db, `INSERT INTO regions (id, name, country_id) VALUES (:id, :name, :country_id)`, regions)
}

func (r *geoRepository) BulkInsertCities(ctx context.Context, cities []model.City) error {
	q := `
		INSERT INTO cities (id, name, region_id, country_id, latitude, longitude)
		VALUES (:id, :name, :region_id, :country_id, :latitude, :longitude)`
	return bulkInsert(ctx, r.db, q, cities)
}

// Chunking keeps each statement well under the SQLite bound-variable limit
const insertChunkSize = 100

func bulkInsert[T any](ctx context.Context, db *sqlx.DB, query string, rows []T) error {
	for i := 0; i < len(rows); i += insertChunkSize {
		end := i + insertChunkSize
		if end > len(rows) {
			end = len(rows)
		}
		if _, err := db.NamedExecContext(ctx, query, rows[i:end]); err != nil {
			return err
		}
	}
	return nil
}
