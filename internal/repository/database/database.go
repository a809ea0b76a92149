// Package database - хранилище вишлистов в PostgreSQL.
package database

import (
	"context"
	"database/sql"
	"io"
	"time"

	"github.com/Popolzen/wishlists/internal/repository"
)

// Storage - общее подключение всех репозиториев
type Storage struct {
	db     *sql.DB
	closer io.Closer
}

func (s *Storage) Healthcheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return classify("healthcheck", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.closer.Close()
}

// Option настраивает репозитории при создании
type Option func(*options)

type options struct {
	now    func() time.Time
	closer io.Closer
}

// WithClock подменяет источник времени для created_at/updated_at
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithCloser задаёт, что освобождать при Close вместо самого *sql.DB.
// Нужен, когда *sql.DB открыт поверх пула, который тоже надо закрыть.
func WithCloser(c io.Closer) Option {
	return func(o *options) {
		o.closer = c
	}
}

// New собирает репозитории всех сущностей поверх одного *sql.DB
func New(db *sql.DB, opts ...Option) repository.Stores {
	o := options{closer: db}
	for _, opt := range opts {
		opt(&o)
	}

	items := NewItemRepository(db)
	users := NewUserRepository(db)
	wishlists := NewWishlistRepository(db)
	subscriptions := NewSubscriptionRepository(db)

	if o.now != nil {
		items.now = o.now
		users.now = o.now
		wishlists.now = o.now
		subscriptions.now = o.now
	}

	return repository.Stores{
		Items:         items,
		Users:         users,
		Wishlists:     wishlists,
		Subscriptions: subscriptions,
		Storage:       &Storage{db: db, closer: o.closer},
	}
}
