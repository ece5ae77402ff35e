package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// experienceRepository stores experiences and implements the filter engine.
// Queries are written with ? placeholders and rebound per driver.
type experienceRepository struct {
	db *sqlx.DB
}

func (r *experienceRepository) Create(ctx context.Context, exp model.Experience, tagIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := tx.Rebind(`
		INSERT INTO experiences
			(id, title, description, location_id, creator_id, average_rating, number_of_ratings,
			 price, start_time, end_time, date, image_path, date_posted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = tx.ExecContext(ctx, q,
		exp.ID, exp.Title, exp.Description, exp.LocationID, exp.CreatorID,
		exp.AverageRating, exp.NumberOfRatings,
		exp.Price, exp.StartTime, exp.EndTime, exp.Date, exp.ImagePath, exp.DatePosted)
	if err != nil {
		return fmt.Errorf("failed to insert experience: %w", err)
	}

	attach := tx.Rebind("INSERT INTO experience_tags (experience_id, tag_id) VALUES (?, ?)")
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx, attach, exp.ID, tagID); err != nil {
			return fmt.Errorf("failed to attach tag: %w", err)
		}
	}

	return tx.Commit()
}

func (r *experienceRepository) GetByID(ctx context.Context, id string) (*model.Experience, error) {
	var exp model.Experience
	err := r.db.GetContext(ctx, &exp, r.db.Rebind("SELECT * FROM experiences WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadTags(ctx, []*model.Experience{&exp}); err != nil {
		return nil, err
	}
	return &exp, nil
}

// ListWithFilters applies the recognized predicates and always returns the
// result ordered by (average_rating DESC, number_of_ratings DESC). The id
// tie-break pins an order among fully tied rows so pagination is stable
// within a query.
func (r *experienceRepository) ListWithFilters(ctx context.Context, f model.ExperienceFilter) ([]model.Experience, error) {
	query := "SELECT e.* FROM experiences e"
	where := []string{}
	args := []interface{}{}

	if len(f.Tags) > 0 {
		// Conjunctive tag filter: the experience must carry every requested
		// tag. Unknown tag names simply never match.
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(f.Tags)), ", ")
		where = append(where, fmt.Sprintf(`e.id IN (
			SELECT et.experience_id
			FROM experience_tags et
			JOIN tags t ON et.tag_id = t.id
			WHERE t.name IN (%s)
			GROUP BY et.experience_id
			HAVING COUNT(DISTINCT t.name) = ?
		)`, placeholders))
		for _, tag := range f.Tags {
			args = append(args, tag)
		}
		args = append(args, len(f.Tags))
	}

	if f.SearchQuery != "" {
		where = append(where,
			"(LOWER(e.title) LIKE '%' || LOWER(?) || '%' OR LOWER(e.description) LIKE '%' || LOWER(?) || '%')")
		args = append(args, f.SearchQuery, f.SearchQuery)
	}

	if f.HasLocation {
		switch f.LocationType {
		case "country":
			query += " JOIN locations l ON e.location_id = l.id"
			where = append(where, "l.country_id = ?")
			args = append(args, f.LocationID)
		case "city":
			query += " JOIN locations l ON e.location_id = l.id"
			where = append(where, "l.city_id = ?")
			args = append(args, f.LocationID)
		}
		// Unrecognized location types are a pass-through.
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY e.average_rating DESC, e.number_of_ratings DESC, e.id"

	experiences := []model.Experience{}
	if err := r.db.SelectContext(ctx, &experiences, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}

	refs := make([]*model.Experience, len(experiences))
	for i := range experiences {
		refs[i] = &experiences[i]
	}
	if err := r.loadTags(ctx, refs); err != nil {
		return nil, err
	}
	return experiences, nil
}

func (r *experienceRepository) loadTags(ctx context.Context, experiences []*model.Experience) error {
	if len(experiences) == 0 {
		return nil
	}

	ids := make([]string, 0, len(experiences))
	byID := make(map[string]*model.Experience, len(experiences))
	for _, exp := range experiences {
		exp.Tags = []model.Tag{}
		ids = append(ids, exp.ID)
		byID[exp.ID] = exp
	}

	query, inArgs, err := sqlx.In(`
		SELECT et.experience_id, t.id, t.name
		FROM experience_tags et
		JOIN tags t ON et.tag_id = t.id
		WHERE et.experience_id IN (?)
		ORDER BY t.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to build tag query: %w", err)
	}

	rows := []struct {
		ExperienceID string `db:"experience_id"`
		ID           string `db:"id"`
		Name         string `db:"name"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), inArgs...); err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	for _, row := range rows {
		exp := byID[row.ExperienceID]
		exp.Tags = append(exp.Tags, model.Tag{ID: row.ID, Name: row.Name})
	}
	return nil
}
