package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/Popolzen/wishlists/internal/model"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/google/uuid"
)

var wishlistsTable = table[model.Wishlist, model.WishlistResponse]{
	rows: func(s *storage) map[uuid.UUID]model.Wishlist { return s.wishlists },
	key:  func(w model.Wishlist) (time.Time, uuid.UUID) { return w.CreatedAt, w.ID },
	match: func(f model.Filter, w model.Wishlist) bool {
		return f.Match(w.Name)
	},
	respond: model.NewWishlistResponse,
	remove:  removeWishlist,
}

// removeWishlist удаляет вишлист вместе с его позициями
func removeWishlist(s *storage, id uuid.UUID) {
	delete(s.wishlists, id)
	for itemID, item := range s.items {
		if item.WishlistID == id {
			delete(s.items, itemID)
		}
	}
}

type WishlistRepository struct {
	base[model.Wishlist, model.WishlistResponse]
}

var _ repository.WishlistStore = (*WishlistRepository)(nil)

func (r *WishlistRepository) Create(_ context.Context, payload model.WishlistCreatePayload) (model.WishlistResponse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[payload.UserID]; !ok {
		return model.WishlistResponse{}, repository.NewError("create wishlist", repository.ErrConflict,
			fmt.Errorf("user %s does not exist", payload.UserID))
	}

	w := payload.Entity(uuid.New(), r.s.now())
	r.s.wishlists[w.ID] = w
	return model.NewWishlistResponse(w), nil
}

func (r *WishlistRepository) Update(_ context.Context, id uuid.UUID, payload model.WishlistUpdatePayload) (model.WishlistResponse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.wishlists[id]
	if !ok {
		return model.WishlistResponse{}, repository.NewError("update wishlist", repository.ErrNotFound,
			fmt.Errorf("wishlist %s", id))
	}

	w = payload.Apply(w, r.s.now())
	r.s.wishlists[id] = w
	return model.NewWishlistResponse(w), nil
}

func (r *WishlistRepository) ListItems(_ context.Context, id uuid.UUID, filter model.Filter) ([]model.ItemResponse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return selectRows(r.s, itemsTable, func(i model.Item) bool {
		return i.WishlistID == id && filter.Match(i.Name)
	}), nil
}
