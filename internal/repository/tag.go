package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

type tagRepository struct {
	db *sqlx.DB
}

// GetOrCreateByNames resolves each name to its tag row, creating missing
// tags. Names are matched exactly; duplicates in the input collapse.
func (r *tagRepository) GetOrCreateByNames(ctx context.Context, names []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))

	selectQ := r.db.Rebind("SELECT * FROM tags WHERE name = ?")
	insertQ := r.db.Rebind("INSERT INTO tags (id, name) VALUES (?, ?)")

	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		var tag model.Tag
		err := r.db.GetContext(ctx, &tag, selectQ, name)
		if errors.Is(err, sql.ErrNoRows) {
			tag = model.Tag{ID: uuid.NewString(), Name: name}
			if _, err := r.db.ExecContext(ctx, insertQ, tag.ID, tag.Name); err != nil {
				// Lost a race on the unique name; read the winner.
				if getErr := r.db.GetContext(ctx, &tag, selectQ, name); getErr != nil {
					return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
				}
			}
		} else if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *tagRepository) ListAll(ctx context.Context) ([]model.Tag, error) {
	tags := []model.Tag{}
	if err := r.db.SelectContext(ctx, &tags, "SELECT * FROM tags ORDER BY name"); err != nil {
		return nil, err
	}
	return tags, nil
}
