package repository

import (
	"context"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/require"

	"github.com/wayfinder/wayfinder-api/internal/config"
	"github.com/wayfinder/wayfinder-api/internal/database"
	"github.com/wayfinder/wayfinder-api/internal/model"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func setupRepo(t *testing.T) (*Container, func()) {
	cfg := config.DBConfig{Type: config.DBTypeMemory}
	db, err := database.Connect(context.Background(), cfg)
	require.NoError(t, err)

	// Shared-cache in-memory SQLite needs a single connection so that
	// concurrent test goroutines queue instead of failing with SQLITE_LOCKED.
	db.SetMaxOpenConns(1)

	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	require.NoError(t, err)

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations/sqlite",
		"sqlite3",
		driver,
	)
	require.NoError(t, err)
	err = m.Up()
	require.NoError(t, err)

	repos := NewRepositories(db, config.DBTypeMemory)
	ctx := context.Background()

	countries := []model.Country{
		{ID: 1, Name: "United States"},
		{ID: 2, Name: "France"},
	}
	require.NoError(t, repos.Geo.BulkInsertCountries(ctx, countries))

	regions := []model.Region{
		{ID: 10, Name: "New Jersey", CountryID: 1},
		{ID: 11, Name: "Illinois", CountryID: 1},
		{ID: 20, Name: "Normandy", CountryID: 2},
	}
	require.NoError(t, repos.Geo.BulkInsertRegions(ctx, regions))

	cities := []model.City{
		{ID: 100, Name: "Springfield", RegionID: intPtr(11), CountryID: 1, Latitude: floatPtr(39.8), Longitude: floatPtr(-89.65)},
		{ID: 101, Name: "Springfield", RegionID: intPtr(10), CountryID: 1, Latitude: floatPtr(40.7), Longitude: floatPtr(-74.3)},
		{ID: 102, Name: "Trenton", RegionID: intPtr(10), CountryID: 1, Latitude: floatPtr(40.0), Longitude: floatPtr(-74.0)},
		{ID: 103, Name: "Rouen", RegionID: intPtr(20), CountryID: 2, Latitude: floatPtr(49.44), Longitude: floatPtr(1.1)},
		{ID: 104, Name: "Freeport", CountryID: 2},
	}
	require.NoError(t, repos.Geo.BulkInsertCities(ctx, cities))

	users := []model.User{
		{ID: "user-1", Name: "Alice", Email: "alice@example.com", DateJoined: time.Now().UTC()},
		{ID: "user-2", Name: "Bob", Email: "bob@example.com", DateJoined: time.Now().UTC()},
	}
	for _, u := range users {
		require.NoError(t, repos.User.Create(ctx, u))
	}

	cleanup := func() {
		db.Close()
	}

	return repos, cleanup
}

// seedExperience inserts a location and an experience anchored to it,
// returning the experience id.
func seedExperience(t *testing.T, repos *Container, id string, lat, lon float64, tags []string) string {
	t.Helper()
	ctx := context.Background()

	loc, err := repos.Location.GetOrCreate(ctx, model.Location{
		ID:        "loc-" + id,
		Latitude:  floatPtr(lat),
		Longitude: floatPtr(lon),
	})
	require.NoError(t, err)

	tagRows, err := repos.Tag.GetOrCreateByNames(ctx, tags)
	require.NoError(t, err)
	tagIDs := make([]string, len(tagRows))
	for i, tag := range tagRows {
		tagIDs[i] = tag.ID
	}

	exp := model.Experience{
		ID:          id,
		Title:       "Experience " + id,
		Description: "Description " + id,
		LocationID:  loc.ID,
		CreatorID:   "user-1",
		DatePosted:  time.Now().UTC(),
	}
	require.NoError(t, repos.Experience.Create(ctx, exp, tagIDs))
	return id
}
