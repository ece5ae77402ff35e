package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

type wishlistRepository struct {
	db *sqlx.DB
}

func (r *wishlistRepository) Create(ctx context.Context, wishlist model.Wishlist) error {
	q := `INSERT INTO wishlists (id, user_id, title, created_date)
		  VALUES (:id, :user_id, :title, :created_date)`
	_, err := r.db.NamedExecContext(ctx, q, wishlist)
	return err
}

func (r *wishlistRepository) GetByID(ctx context.Context, id string) (*model.Wishlist, error) {
	var wishlist model.Wishlist
	err := r.db.GetContext(ctx, &wishlist, r.db.Rebind("SELECT * FROM wishlists WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID string) ([]model.Wishlist, error) {
	wishlists := []model.Wishlist{}
	q := r.db.Rebind("SELECT * FROM wishlists WHERE user_id = ? ORDER BY created_date DESC")
	if err := r.db.SelectContext(ctx, &wishlists, q, userID); err != nil {
		return nil, err
	}
	return wishlists, nil
}

func (r *wishlistRepository) AddItem(ctx context.Context, item model.WishlistItem) error {
	var count int
	q := r.db.Rebind("SELECT COUNT(*) FROM wishlist_items WHERE wishlist_id = ? AND experience_id = ?")
	if err := r.db.GetContext(ctx, &count, q, item.WishlistID, item.ExperienceID); err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateWishlistItem
	}

	insert := `INSERT INTO wishlist_items (id, wishlist_id, experience_id, date_added)
			   VALUES (:id, :wishlist_id, :experience_id, :date_added)`
	if _, err := r.db.NamedExecContext(ctx, insert, item); err != nil {
		// The unique (wishlist_id, experience_id) constraint backstops
		// the check above under concurrency.
		return err
	}
	return nil
}

func (r *wishlistRepository) ListItems(ctx context.Context, wishlistID string) ([]model.WishlistItem, error) {
	items := []model.WishlistItem{}
	q := r.db.Rebind("SELECT * FROM wishlist_items WHERE wishlist_id = ? ORDER BY date_added DESC")
	if err := r.db.SelectContext(ctx, &items, q, wishlistID); err != nil {
		return nil, err
	}
	return items, nil
}
