package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

type tipRepository struct {
	db *sqlx.DB
}

func (r *tipRepository) Create(ctx context.Context, tip model.Tip) error {
	q := `INSERT INTO tips (id, content, country_id, city_id, creator_id, date_posted)
		  VALUES (:id, :content, :country_id, :city_id, :creator_id, :date_posted)`
	_, err := r.db.NamedExecContext(ctx, q, tip)
	return err
}

func (r *tipRepository) ListWithFilters(ctx context.Context, f model.TipFilter) ([]model.Tip, error) {
	query := "SELECT * FROM tips"
	args := []interface{}{}

	if f.HasLocation {
		switch f.LocationType {
		case "country":
			query += " WHERE country_id = ?"
			args = append(args, f.LocationID)
		case "city":
			query += " WHERE city_id = ?"
			args = append(args, f.LocationID)
		}
	}
	query += " ORDER BY date_posted DESC"

	tips := []model.Tip{}
	if err := r.db.SelectContext(ctx, &tips, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return tips, nil
}

func (r *tipRepository) ListByCreator(ctx context.Context, creatorID string) ([]model.Tip, error) {
	tips := []model.Tip{}
	q := r.db.Rebind("SELECT * FROM tips WHERE creator_id = ? ORDER BY date_posted DESC")
	if err := r.db.SelectContext(ctx, &tips, q, creatorID); err != nil {
		return nil, err
	}
	return tips, nil
}
