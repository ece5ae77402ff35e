package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// pgRatingRepository serializes concurrent ratings on one experience with a
// row lock, so the read-modify-write of the denormalized aggregates cannot
// lose updates.
type pgRatingRepository struct {
	db *sqlx.DB
}

func (r *pgRatingRepository) Create(ctx context.Context, rating model.Rating) (*model.Rating, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var agg struct {
		AverageRating   float64 `db:"average_rating"`
		NumberOfRatings int     `db:"number_of_ratings"`
	}
	err = tx.GetContext(ctx, &agg,
		"SELECT average_rating, number_of_ratings FROM experiences WHERE id = $1 FOR UPDATE",
		rating.ExperienceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock experience: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ratings (id, user_id, experience_id, comment, rating_value, date_posted)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		rating.ID, rating.UserID, rating.ExperienceID, rating.Comment, rating.RatingValue, rating.DatePosted)
	if err != nil {
		return nil, fmt.Errorf("failed to insert rating: %w", err)
	}

	newAverage, newCount := foldRating(agg.AverageRating, agg.NumberOfRatings, rating.RatingValue)

	_, err = tx.ExecContext(ctx,
		"UPDATE experiences SET average_rating = $1, number_of_ratings = $2 WHERE id = $3",
		newAverage, newCount, rating.ExperienceID)
	if err != nil {
		return nil, fmt.Errorf("failed to update experience aggregates: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rating: %w", err)
	}
	return &rating, nil
}

func (r *pgRatingRepository) ListByExperience(ctx context.Context, experienceID string) ([]model.Rating, error) {
	ratings := []model.Rating{}
	err := r.db.SelectContext(ctx, &ratings,
		"SELECT * FROM ratings WHERE experience_id = $1 ORDER BY date_posted DESC",
		experienceID)
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// foldRating applies the incremental-mean update. Every rating increments
// the count, but only ratings carrying a value move the average: a
// comment-only rating leaves the average untouched while still growing the
// denominator used by later updates.
func foldRating(average float64, count int, value *int) (float64, int) {
	newCount := count + 1
	if value == nil {
		return average, newCount
	}
	return (average*float64(count) + float64(*value)) / float64(newCount), newCount
}
