package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/Popolzen/wishlists/internal/model"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/google/uuid"
)

var usersTable = table[model.User, model.UserResponse]{
	rows: func(s *storage) map[uuid.UUID]model.User { return s.users },
	key:  func(u model.User) (time.Time, uuid.UUID) { return u.CreatedAt, u.ID },
	match: func(f model.Filter, u model.User) bool {
		return f.Match(u.NickName)
	},
	respond: model.NewUserResponse,
	remove:  removeUser,
}

// removeUser удаляет пользователя, его вишлисты и подписки.
// Позиции, выбранные пользователем в чужих вишлистах, остаются невыбранными.
func removeUser(s *storage, id uuid.UUID) {
	delete(s.users, id)

	for wishlistID, w := range s.wishlists {
		if w.UserID == id {
			removeWishlist(s, wishlistID)
		}
	}
	for itemID, item := range s.items {
		if item.SelectedByID != nil && *item.SelectedByID == id {
			item.SelectedByID = nil
			s.items[itemID] = item
		}
	}
	for subID, sub := range s.subscriptions {
		if sub.UserID == id || sub.SubscriberID == id {
			delete(s.subscriptions, subID)
		}
	}
}

type UserRepository struct {
	base[model.User, model.UserResponse]
}

var _ repository.UserStore = (*UserRepository)(nil)

// nickTaken проверяет уникальность nick_name. Вызывается под блокировкой.
func (r *UserRepository) nickTaken(nick string, except uuid.UUID) bool {
	for id, u := range r.s.users {
		if id != except && u.NickName == nick {
			return true
		}
	}
	return false
}

func (r *UserRepository) Create(_ context.Context, payload model.UserCreatePayload) (model.UserResponse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.nickTaken(payload.NickName, uuid.Nil) {
		return model.UserResponse{}, repository.NewError("create user", repository.ErrConflict,
			fmt.Errorf("nick_name %q is taken", payload.NickName))
	}

	u := payload.Entity(uuid.New(), r.s.now())
	r.s.users[u.ID] = u
	return model.NewUserResponse(u), nil
}

func (r *UserRepository) Update(_ context.Context, id uuid.UUID, payload model.UserUpdatePayload) (model.UserResponse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return model.UserResponse{}, repository.NewError("update user", repository.ErrNotFound,
			fmt.Errorf("user %s", id))
	}
	if r.nickTaken(payload.NickName, id) {
		return model.UserResponse{}, repository.NewError("update user", repository.ErrConflict,
			fmt.Errorf("nick_name %q is taken", payload.NickName))
	}

	u = payload.Apply(u, r.s.now())
	r.s.users[id] = u
	return model.NewUserResponse(u), nil
}

func (r *UserRepository) ListWishlists(_ context.Context, id uuid.UUID, filter model.Filter) ([]model.WishlistResponse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return selectRows(r.s, wishlistsTable, func(w model.Wishlist) bool {
		return w.UserID == id && filter.Match(w.Name)
	}), nil
}

func (r *UserRepository) ListSubscribers(_ context.Context, id uuid.UUID, filter model.Filter) ([]model.UserResponse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	subscribers := map[uuid.UUID]bool{}
	for _, sub := range r.s.subscriptions {
		if sub.UserID == id {
			subscribers[sub.SubscriberID] = true
		}
	}
	return selectRows(r.s, usersTable, func(u model.User) bool {
		return subscribers[u.ID] && filter.Match(u.NickName)
	}), nil
}

func (r *UserRepository) ListSubscriptions(_ context.Context, id uuid.UUID, filter model.Filter) ([]model.UserResponse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	followed := map[uuid.UUID]bool{}
	for _, sub := range r.s.subscriptions {
		if sub.SubscriberID == id {
			followed[sub.UserID] = true
		}
	}
	return selectRows(r.s, usersTable, func(u model.User) bool {
		return followed[u.ID] && filter.Match(u.NickName)
	}), nil
}
