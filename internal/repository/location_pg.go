package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// pgLocationRepository relies on the unique index over (latitude, longitude)
// to serialize concurrent get-or-create calls: the loser of an insert race
// falls through ON CONFLICT DO NOTHING and re-reads the winner's row.
type pgLocationRepository struct {
	db *sqlx.DB
}

const locationColumns = "id, latitude, longitude, country_id, region_id, city_id"

func (r *pgLocationRepository) GetOrCreate(ctx context.Context, loc model.Location) (*model.Location, error) {
	// No coordinate pair means no dedup key; every call creates a row.
	if loc.Latitude == nil || loc.Longitude == nil {
		q := `INSERT INTO locations (` + locationColumns + `)
			  VALUES (:id, :latitude, :longitude, :country_id, :region_id, :city_id)`
		if _, err := r.db.NamedExecContext(ctx, q, loc); err != nil {
			return nil, fmt.Errorf("failed to insert location: %w", err)
		}
		return &loc, nil
	}

	if existing, err := r.getByCoordinates(ctx, *loc.Latitude, *loc.Longitude); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	q := `
		INSERT INTO locations (id, latitude, longitude, country_id, region_id, city_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (latitude, longitude) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, q, loc.ID, loc.Latitude, loc.Longitude, loc.CountryID, loc.RegionID, loc.CityID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert location: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return &loc, nil
	}

	// A concurrent caller inserted the same pair first; return its row.
	existing, err := r.getByCoordinates(ctx, *loc.Latitude, *loc.Longitude)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("location conflict on (%f, %f) but no row found", *loc.Latitude, *loc.Longitude)
	}
	return existing, nil
}

func (r *pgLocationRepository) getByCoordinates(ctx context.Context, lat, lon float64) (*model.Location, error) {
	var loc model.Location
	err := r.db.GetContext(ctx, &loc,
		"SELECT * FROM locations WHERE latitude = $1 AND longitude = $2", lat, lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *pgLocationRepository) GetByID(ctx context.Context, id string) (*model.Location, error) {
	var loc model.Location
	err := r.db.GetContext(ctx, &loc, "SELECT * FROM locations WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
