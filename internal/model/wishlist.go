package model

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist - список желаний, принадлежит ровно одному пользователю
type Wishlist struct {
	ID        uuid.UUID
	Name      string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WishlistCreatePayload struct {
	Name   string    `json:"name" binding:"required,max=100"`
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

func (p WishlistCreatePayload) Entity(id uuid.UUID, now time.Time) Wishlist {
	return Wishlist{
		ID:        id,
		Name:      p.Name,
		UserID:    p.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WishlistUpdatePayload - владельца сменить нельзя, только название
type WishlistUpdatePayload struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (p WishlistUpdatePayload) Apply(w Wishlist, now time.Time) Wishlist {
	w.Name = p.Name
	w.UpdatedAt = now
	return w
}

type WishlistResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewWishlistResponse(w Wishlist) WishlistResponse {
	return WishlistResponse{
		ID:        w.ID,
		Name:      w.Name,
		UserID:    w.UserID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
