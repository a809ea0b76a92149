package model

import (
	"time"

	"github.com/google/uuid"
)

// Item - позиция вишлиста
type Item struct {
	ID           uuid.UUID
	WishlistID   uuid.UUID
	SelectedByID *uuid.UUID
	Name         string
	Description  *string
	Price        *int32
	IsHidden     bool
	PictureID    *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ItemCreatePayload - данные от клиента для создания позиции
type ItemCreatePayload struct {
	WishlistID  uuid.UUID `json:"wishlist_id" binding:"required"`
	Name        string    `json:"name" binding:"required,max=100"`
	Description *string   `json:"description" binding:"omitempty,max=300"`
	Price       *int32    `json:"price" binding:"omitempty,min=0"`
	IsHidden    bool      `json:"is_hidden"`
}

// Entity собирает новую позицию. Выбранной она не бывает, картинки у неё нет.
func (p ItemCreatePayload) Entity(id uuid.UUID, now time.Time) Item {
	return Item{
		ID:          id,
		WishlistID:  p.WishlistID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		IsHidden:    p.IsHidden,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ItemUpdatePayload - изменяемые поля позиции. Обновление заменяет их все,
// ключ картинки HTTP слой переносит из хранимой позиции.
type ItemUpdatePayload struct {
	Name         string     `json:"name" binding:"required,max=100"`
	Description  *string    `json:"description" binding:"omitempty,max=300"`
	Price        *int32     `json:"price" binding:"omitempty,min=0"`
	IsHidden     bool       `json:"is_hidden"`
	SelectedByID *uuid.UUID `json:"selected_by_id"`
	// PictureID меняется только через /items/:id/picture
	PictureID *uuid.UUID `json:"-"`
}

// Apply возвращает копию позиции с полями из payload и новым updated_at
func (p ItemUpdatePayload) Apply(item Item, now time.Time) Item {
	item.Name = p.Name
	item.Description = p.Description
	item.Price = p.Price
	item.IsHidden = p.IsHidden
	item.SelectedByID = p.SelectedByID
	item.PictureID = p.PictureID
	item.UpdatedAt = now
	return item
}

// NewItemUpdatePayload строит payload из текущего состояния позиции.
// Нужен, когда меняется одно поле (например, картинка), а остальные
// должны остаться как есть.
func NewItemUpdatePayload(r ItemResponse) ItemUpdatePayload {
	return ItemUpdatePayload{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		IsHidden:     r.IsHidden,
		SelectedByID: r.SelectedByID,
		PictureID:    r.PictureID,
	}
}

// ItemResponse - позиция в ответе клиенту
type ItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	WishlistID   uuid.UUID  `json:"wishlist_id"`
	SelectedByID *uuid.UUID `json:"selected_by_id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	Price        *int32     `json:"price"`
	IsHidden     bool       `json:"is_hidden"`
	PictureID    *uuid.UUID `json:"picture_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewItemResponse(item Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		WishlistID:   item.WishlistID,
		SelectedByID: item.SelectedByID,
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		IsHidden:     item.IsHidden,
		PictureID:    item.PictureID,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}
