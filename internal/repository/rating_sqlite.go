package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// sqliteRatingRepository runs the same transaction shape as the Postgres
// implementation without an explicit row lock: SQLite admits a single
// writer, and the write transaction holds the database lock from the first
// statement through commit.
type sqliteRatingRepository struct {
	db *sqlx.DB
}

func (r *sqliteRatingRepository) Create(ctx context.Context, rating model.Rating) (*model.Rating, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Taking the write lock before reading the aggregates keeps the
	// read-modify-write atomic against other rating transactions.
	if _, err := tx.ExecContext(ctx,
		"UPDATE experiences SET number_of_ratings = number_of_ratings WHERE id = ?",
		rating.ExperienceID); err != nil {
		return nil, fmt.Errorf("failed to lock experience: %w", err)
	}

	var agg struct {
		AverageRating   float64 `db:"average_rating"`
		NumberOfRatings int     `db:"number_of_ratings"`
	}
	err = tx.GetContext(ctx, &agg,
		"SELECT average_rating, number_of_ratings FROM experiences WHERE id = ?",
		rating.ExperienceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read experience aggregates: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ratings (id, user_id, experience_id, comment, rating_value, date_posted)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rating.ID, rating.UserID, rating.ExperienceID, rating.Comment, rating.RatingValue, rating.DatePosted)
	if err != nil {
		return nil, fmt.Errorf("failed to insert rating: %w", err)
	}

	newAverage, newCount := foldRating(agg.AverageRating, agg.NumberOfRatings, rating.RatingValue)

	_, err = tx.ExecContext(ctx,
		"UPDATE experiences SET average_rating = ?, number_of_ratings = ? WHERE id = ?",
		newAverage, newCount, rating.ExperienceID)
	if err != nil {
		return nil, fmt.Errorf("failed to update experience aggregates: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rating: %w", err)
	}
	return &rating, nil
}

func (r *sqliteRatingRepository) ListByExperience(ctx context.Context, experienceID string) ([]model.Rating, error) {
	ratings := []model.Rating{}
	err := r.db.SelectContext(ctx, &ratings,
		"SELECT * FROM ratings WHERE experience_id = ? ORDER BY date_posted DESC",
		experienceID)
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
