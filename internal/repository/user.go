package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

type userRepository struct {
	db *sqlx.DB
}

func (r *userRepository) Create(ctx context.Context, user model.User) error {
	q := `INSERT INTO users (id, name, email, bio, date_joined)
		  VALUES (:id, :name, :email, :bio, :date_joined)`
	_, err := r.db.NamedExecContext(ctx, q, user)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, r.db.Rebind("SELECT * FROM users WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
