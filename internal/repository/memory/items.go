package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/Popolzen/wishlists/internal/model"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/google/uuid"
)

var itemsTable = table[model.Item, model.ItemResponse]{
	rows: func(s *storage) map[uuid.UUID]model.Item { return s.items },
	key:  func(i model.Item) (time.Time, uuid.UUID) { return i.CreatedAt, i.ID },
	match: func(f model.Filter, i model.Item) bool {
		return f.Match(i.Name)
	},
	respond: model.NewItemResponse,
	remove: func(s *storage, id uuid.UUID) {
		delete(s.items, id)
	},
}

type ItemRepository struct {
	base[model.Item, model.ItemResponse]
}

var _ repository.ItemStore = (*ItemRepository)(nil)

func (r *ItemRepository) Create(_ context.Context, payload model.ItemCreatePayload) (model.ItemResponse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.wishlists[payload.WishlistID]; !ok {
		return model.ItemResponse{}, repository.NewError("create item", repository.ErrConflict,
			fmt.Errorf("wishlist %s does not exist", payload.WishlistID))
	}

	item := payload.Entity(uuid.New(), r.s.now())
	r.s.items[item.ID] = item
	return model.NewItemResponse(item), nil
}

func (r *ItemRepository) Update(_ context.Context, id uuid.UUID, payload model.ItemUpdatePayload) (model.ItemResponse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	item, ok := r.s.items[id]
	if !ok {
		return model.ItemResponse{}, repository.NewError("update item", repository.ErrNotFound,
			fmt.Errorf("item %s", id))
	}
	if payload.SelectedByID != nil {
		if _, ok := r.s.users[*payload.SelectedByID]; !ok {
			return model.ItemResponse{}, repository.NewError("update item", repository.ErrConflict,
				fmt.Errorf("user %s does not exist", *payload.SelectedByID))
		}
	}

	item = payload.Apply(item, r.s.now())
	r.s.items[id] = item
	return model.NewItemResponse(item), nil
}
