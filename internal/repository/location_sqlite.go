package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// sqliteLocationRepository uses INSERT OR IGNORE against the unique
// coordinate index; SQLite's single-writer model serializes the race.
type sqliteLocationRepository struct {
	db *sqlx.DB
}

func (r *sqliteLocationRepository) GetOrCreate(ctx context.Context, loc model.Location) (*model.Location, error) {
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
		INSERT OR IGNORE INTO locations (id, latitude, longitude, country_id, region_id, city_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, q, loc.ID, loc.Latitude, loc.Longitude, loc.CountryID, loc.RegionID, loc.CityID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert location: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return &loc, nil
	}

	existing, err := r.getByCoordinates(ctx, *loc.Latitude, *loc.Longitude)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("location conflict on (%f, %f) but no row found", *loc.Latitude, *loc.Longitude)
	}
	return existing, nil
}

func (r *sqliteLocationRepository) getByCoordinates(ctx context.Context, lat, lon float64) (*model.Location, error) {
	var loc model.Location
	err := r.db.GetContext(ctx, &loc,
		"SELECT * FROM locations WHERE latitude = ? AND longitude = ?", lat, lon)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *sqliteLocationRepository) GetByID(ctx context.Context, id string) (*model.Location, error) {
	var loc model.Location
	err := r.db.GetContext(ctx, &loc, "SELECT * FROM locations WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}
