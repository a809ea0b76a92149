package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/Popolzen/wishlists/internal/model"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/google/uuid"
)

var wishlistsTable = table[model.Wishlist, model.WishlistResponse]{
	name:    "wishlists",
	columns: []string{"id", "name", "user_id", "created_at", "updated_at"},
	scan:    scanWishlist,
	respond: model.NewWishlistResponse,
}

func scanWishlist(s scanner) (model.Wishlist, error) {
	var w model.Wishlist
	err := s.Scan(&w.ID, &w.Name, &w.UserID, &w.CreatedAt, &w.UpdatedAt)
	w.CreatedAt = w.CreatedAt.UTC()
	w.UpdatedAt = w.UpdatedAt.UTC()
	return w, err
}

type WishlistRepository struct {
	base[uuid.UUID, model.Wishlist, model.WishlistResponse]
	now func() time.Time
}

var _ repository.WishlistStore = (*WishlistRepository)(nil)

func NewWishlistRepository(db *sql.DB) *WishlistRepository {
	return &WishlistRepository{
		base: base[uuid.UUID, model.Wishlist, model.WishlistResponse]{db: db, table: wishlistsTable},
		now:  model.Now,
	}
}

// Create сохраняет вишлист. Несуществующий владелец даёт ErrConflict (внешний ключ).
func (r *WishlistRepository) Create(ctx context.Context, payload model.WishlistCreatePayload) (model.WishlistResponse, error) {
	w := payload.Entity(uuid.New(), r.now())

	query := `
		INSERT INTO wishlists (id, name, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + wishlistsTable.selectColumns()

	resp, err := r.queryOne(ctx, query, w.ID, w.Name, w.UserID, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return model.WishlistResponse{}, classify("create wishlist", err)
	}
	return resp, nil
}

func (r *WishlistRepository) Update(ctx context.Context, id uuid.UUID, payload model.WishlistUpdatePayload) (model.WishlistResponse, error) {
	query := `
		UPDATE wishlists SET name = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + wishlistsTable.selectColumns()

	resp, err := r.queryOne(ctx, query, id, payload.Name, r.now())
	if err != nil {
		return model.WishlistResponse{}, classify("update wishlist", err)
	}
	return resp, nil
}

// ListItems возвращает позиции вишлиста
func (r *WishlistRepository) ListItems(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.ItemResponse, error) {
	query := `
		SELECT ` + itemsTable.selectColumns() + `
		FROM items
		WHERE wishlist_id = $1 AND ` + nameContains("name", 2) + `
		ORDER BY created_at DESC, id DESC`

	resp, err := queryRows(ctx, r.db, itemsTable, query, id, likeArg(filter))
	if err != nil {
		return nil, classify("list wishlist items", err)
	}
	return resp, nil
}
