package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/Popolzen/wishlists/internal/model"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/google/uuid"
)

var itemsTable = table[model.Item, model.ItemResponse]{
	name: "items",
	columns: []string{
		"id", "wishlist_id", "selected_by_id", "name", "description",
		"price", "is_hidden", "picture_id", "created_at", "updated_at",
	},
	scan:    scanItem,
	respond: model.NewItemResponse,
}

func scanItem(s scanner) (model.Item, error) {
	var item model.Item
	err := s.Scan(
		&item.ID,
		&item.WishlistID,
		&item.SelectedByID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.IsHidden,
		&item.PictureID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	item.CreatedAt = item.CreatedAt.UTC()
	item.UpdatedAt = item.UpdatedAt.UTC()
	return item, err
}

// ItemRepository хранит позиции вишлистов в таблице items
type ItemRepository struct {
	base[uuid.UUID, model.Item, model.ItemResponse]
	now func() time.Time
}

var _ repository.ItemStore = (*ItemRepository)(nil)

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{
		base: base[uuid.UUID, model.Item, model.ItemResponse]{db: db, table: itemsTable},
		now:  model.Now,
	}
}

// Create сохраняет новую позицию одним INSERT
func (r *ItemRepository) Create(ctx context.Context, payload model.ItemCreatePayload) (model.ItemResponse, error) {
	item := payload.Entity(uuid.New(), r.now())

	query := `
		INSERT INTO items (id, wishlist_id, selected_by_id, name, description, price, is_hidden, picture_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + itemsTable.selectColumns()

	resp, err := r.queryOne(ctx, query,
		item.ID,
		item.WishlistID,
		item.SelectedByID,
		item.Name,
		item.Description,
		item.Price,
		item.IsHidden,
		item.PictureID,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return model.ItemResponse{}, classify("create item", err)
	}
	return resp, nil
}

// Update заменяет изменяемые поля. Побеждает последняя запись.
func (r *ItemRepository) Update(ctx context.Context, id uuid.UUID, payload model.ItemUpdatePayload) (model.ItemResponse, error) {
	query := `
		UPDATE items
		SET name = $2, description = $3, price = $4, is_hidden = $5,
			selected_by_id = $6, picture_id = $7, updated_at = $8
		WHERE id = $1
		RETURNING ` + itemsTable.selectColumns()

	resp, err := r.queryOne(ctx, query,
		id,
		payload.Name,
		payload.Description,
		payload.Price,
		payload.IsHidden,
		payload.SelectedByID,
		payload.PictureID,
		r.now(),
	)
	if err != nil {
		return model.ItemResponse{}, classify("update item", err)
	}
	return resp, nil
}
