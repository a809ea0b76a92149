// Package memory - хранилище вишлистов в памяти процесса.
// Используется, когда строка подключения к БД не задана, и в тестах.
// Правила внешних ключей и каскадного удаления те же, что в схеме PostgreSQL.
package memory

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Popolzen/wishlists/internal/model"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/google/uuid"
)

// storage - общие для всех репозиториев таблицы под одной блокировкой
type storage struct {
	mu            sync.RWMutex
	users         map[uuid.UUID]model.User
	wishlists     map[uuid.UUID]model.Wishlist
	items         map[uuid.UUID]model.Item
	subscriptions map[uuid.UUID]model.Subscription
	now           func() time.Time
}

func newStorage() *storage {
	return &storage{
		users:         map[uuid.UUID]model.User{},
		wishlists:     map[uuid.UUID]model.Wishlist{},
		items:         map[uuid.UUID]model.Item{},
		subscriptions: map[uuid.UUID]model.Subscription{},
		now:           model.Now,
	}
}

func (s *storage) Healthcheck(context.Context) error {
	return nil
}

func (s *storage) Close() error {
	return nil
}

// table описывает одну карту storage для обобщённых операций
type table[E, R any] struct {
	rows    func(*storage) map[uuid.UUID]E
	key     func(E) (time.Time, uuid.UUID)
	match   func(model.Filter, E) bool
	respond func(E) R
	// remove удаляет запись и всё, что от неё зависит. Вызывается под блокировкой.
	remove func(*storage, uuid.UUID)
}

// base реализует Get, List и Delete для любой сущности
type base[E, R any] struct {
	s     *storage
	table table[E, R]
}

func (b base[E, R]) Get(_ context.Context, id uuid.UUID) (*R, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	e, ok := b.table.rows(b.s)[id]
	if !ok {
		return nil, nil
	}
	resp := b.table.respond(e)
	return &resp, nil
}

func (b base[E, R]) List(_ context.Context, filter model.Filter) ([]R, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()

	return selectRows(b.s, b.table, func(e E) bool {
		return b.table.match(filter, e)
	}), nil
}

func (b base[E, R]) Delete(_ context.Context, id uuid.UUID) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	b.table.remove(b.s, id)
	return nil
}

// selectRows отбирает записи по условию, свежие первыми.
// Вызывающий держит блокировку.
func selectRows[E, R any](s *storage, t table[E, R], where func(E) bool) []R {
	rows := make([]E, 0)
	for _, e := range t.rows(s) {
		if where(e) {
			rows = append(rows, e)
		}
	}

	slices.SortFunc(rows, func(a, b E) int {
		at, aid := t.key(a)
		bt, bid := t.key(b)
		if c := bt.Compare(at); c != 0 {
			return c
		}
		return bytes.Compare(bid[:], aid[:])
	})

	result := make([]R, 0, len(rows))
	for _, e := range rows {
		result = append(result, t.respond(e))
	}
	return result
}

// New создаёт репозитории всех сущностей над общим хранилищем в памяти
func New() repository.Stores {
	return NewWithClock(model.Now)
}

// NewWithClock - то же, что New, с заданным источником времени
func NewWithClock(now func() time.Time) repository.Stores {
	s := newStorage()
	s.now = now

	return repository.Stores{
		Items:         &ItemRepository{base: base[model.Item, model.ItemResponse]{s: s, table: itemsTable}},
		Users:         &UserRepository{base: base[model.User, model.UserResponse]{s: s, table: usersTable}},
		Wishlists:     &WishlistRepository{base: base[model.Wishlist, model.WishlistResponse]{s: s, table: wishlistsTable}},
		Subscriptions: &SubscriptionRepository{base: base[model.Subscription, model.SubscriptionResponse]{s: s, table: subscriptionsTable}},
		Storage:       s,
	}
}
