// Package repository описывает обобщённый CRUD-контракт над сущностями
// и фасад, через который HTTP слой работает со всеми хранилищами.
package repository

import (
	"context"

	"github.com/Popolzen/wishlists/internal/model"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Popolzen/wishlists/internal/repository Repository

// Creator создаёт сущность из payload. Идентификатор и временные метки
// назначает реализация.
type Creator[C, R any] interface {
	Create(ctx context.Context, payload C) (R, error)
}

// Reader - чтение по ключу и полный список.
// Get возвращает nil без ошибки, если записи нет.
type Reader[K comparable, R any] interface {
	Get(ctx context.Context, id K) (*R, error)
	List(ctx context.Context, filter model.Filter) ([]R, error)
}

// Updater заменяет изменяемые поля и обновляет updated_at.
// Для несуществующего ключа возвращает ErrNotFound.
type Updater[K comparable, U, R any] interface {
	Update(ctx context.Context, id K, payload U) (R, error)
}

// Deleter удаляет по ключу. Удаление отсутствующей записи не ошибка.
type Deleter[K comparable] interface {
	Delete(ctx context.Context, id K) error
}

// Crud - полный набор операций над одной сущностью
type Crud[K comparable, C, U, R any] interface {
	Creator[C, R]
	Reader[K, R]
	Updater[K, U, R]
	Deleter[K]
}

type ItemStore interface {
	Crud[uuid.UUID, model.ItemCreatePayload, model.ItemUpdatePayload, model.ItemResponse]
}

type WishlistStore interface {
	Crud[uuid.UUID, model.WishlistCreatePayload, model.WishlistUpdatePayload, model.WishlistResponse]
	// ListItems - позиции вишлиста, свежие первыми
	ListItems(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.ItemResponse, error)
}

type UserStore interface {
	Crud[uuid.UUID, model.UserCreatePayload, model.UserUpdatePayload, model.UserResponse]
	ListWishlists(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.WishlistResponse, error)
	// ListSubscribers - кто подписан на пользователя
	ListSubscribers(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.UserResponse, error)
	// ListSubscriptions - на кого подписан пользователь
	ListSubscriptions(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.UserResponse, error)
}

// SubscriptionStore не обновляется: у подписки нет изменяемых полей
type SubscriptionStore interface {
	Creator[model.SubscriptionCreatePayload, model.SubscriptionResponse]
	Reader[uuid.UUID, model.SubscriptionResponse]
	Deleter[uuid.UUID]
}

// Storage - общее для бэкенда: проверка доступности и освобождение ресурсов
type Storage interface {
	Healthcheck(ctx context.Context) error
	Close() error
}

// Repository - фасад над всеми хранилищами. Один экземпляр создаётся
// при старте и используется всеми обработчиками одновременно.
type Repository interface {
	CreateItem(ctx context.Context, payload model.ItemCreatePayload) (model.ItemResponse, error)
	GetItem(ctx context.Context, id uuid.UUID) (*model.ItemResponse, error)
	ListItems(ctx context.Context, filter model.Filter) ([]model.ItemResponse, error)
	UpdateItem(ctx context.Context, id uuid.UUID, payload model.ItemUpdatePayload) (model.ItemResponse, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error

	CreateUser(ctx context.Context, payload model.UserCreatePayload) (model.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.UserResponse, error)
	ListUsers(ctx context.Context, filter model.Filter) ([]model.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, payload model.UserUpdatePayload) (model.UserResponse, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListUserWishlists(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.WishlistResponse, error)
	ListUserSubscribers(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.UserResponse, error)
	ListUserSubscriptions(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.UserResponse, error)

	CreateWishlist(ctx context.Context, payload model.WishlistCreatePayload) (model.WishlistResponse, error)
	GetWishlist(ctx context.Context, id uuid.UUID) (*model.WishlistResponse, error)
	ListWishlists(ctx context.Context, filter model.Filter) ([]model.WishlistResponse, error)
	UpdateWishlist(ctx context.Context, id uuid.UUID, payload model.WishlistUpdatePayload) (model.WishlistResponse, error)
	DeleteWishlist(ctx context.Context, id uuid.UUID) error
	ListWishlistItems(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.ItemResponse, error)

	CreateSubscription(ctx context.Context, payload model.SubscriptionCreatePayload) (model.SubscriptionResponse, error)
	GetSubscription(ctx context.Context, id uuid.UUID) (*model.SubscriptionResponse, error)
	ListSubscriptions(ctx context.Context, filter model.Filter) ([]model.SubscriptionResponse, error)
	DeleteSubscription(ctx context.Context, id uuid.UUID) error

	Storage
}
