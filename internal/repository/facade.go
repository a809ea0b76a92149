package repository

import (
	"context"

	"github.com/Popolzen/wishlists/internal/model"
	"github.com/google/uuid"
)

// Stores - набор конкретных хранилищ одного бэкенда
type Stores struct {
	Items         ItemStore
	Users         UserStore
	Wishlists     WishlistStore
	Subscriptions SubscriptionStore
	Storage       Storage
}

// Facade реализует Repository, делегируя вызовы конкретным хранилищам.
// После создания не изменяется, поэтому безопасен для конкурентного использования.
type Facade struct {
	stores Stores
}

func NewFacade(stores Stores) *Facade {
	return &Facade{stores: stores}
}

var _ Repository = (*Facade)(nil)

func (f *Facade) CreateItem(ctx context.Context, payload model.ItemCreatePayload) (model.ItemResponse, error) {
	return f.stores.Items.Create(ctx, payload)
}

func (f *Facade) GetItem(ctx context.Context, id uuid.UUID) (*model.ItemResponse, error) {
	return f.stores.Items.Get(ctx, id)
}

func (f *Facade) ListItems(ctx context.Context, filter model.Filter) ([]model.ItemResponse, error) {
	return f.stores.Items.List(ctx, filter)
}

func (f *Facade) UpdateItem(ctx context.Context, id uuid.UUID, payload model.ItemUpdatePayload) (model.ItemResponse, error) {
	return f.stores.Items.Update(ctx, id, payload)
}

func (f *Facade) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return f.stores.Items.Delete(ctx, id)
}

func (f *Facade) CreateUser(ctx context.Context, payload model.UserCreatePayload) (model.UserResponse, error) {
	return f.stores.Users.Create(ctx, payload)
}

func (f *Facade) GetUser(ctx context.Context, id uuid.UUID) (*model.UserResponse, error) {
	return f.stores.Users.Get(ctx, id)
}

func (f *Facade) ListUsers(ctx context.Context, filter model.Filter) ([]model.UserResponse, error) {
	return f.stores.Users.List(ctx, filter)
}

func (f *Facade) UpdateUser(ctx context.Context, id uuid.UUID, payload model.UserUpdatePayload) (model.UserResponse, error) {
	return f.stores.Users.Update(ctx, id, payload)
}

func (f *Facade) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return f.stores.Users.Delete(ctx, id)
}

func (f *Facade) ListUserWishlists(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.WishlistResponse, error) {
	return f.stores.Users.ListWishlists(ctx, id, filter)
}

func (f *Facade) ListUserSubscribers(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.UserResponse, error) {
	return f.stores.Users.ListSubscribers(ctx, id, filter)
}

func (f *Facade) ListUserSubscriptions(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.UserResponse, error) {
	return f.stores.Users.ListSubscriptions(ctx, id, filter)
}

func (f *Facade) CreateWishlist(ctx context.Context, payload model.WishlistCreatePayload) (model.WishlistResponse, error) {
	return f.stores.Wishlists.Create(ctx, payload)
}

func (f *Facade) GetWishlist(ctx context.Context, id uuid.UUID) (*model.WishlistResponse, error) {
	return f.stores.Wishlists.Get(ctx, id)
}

func (f *Facade) ListWishlists(ctx context.Context, filter model.Filter) ([]model.WishlistResponse, error) {
	return f.stores.Wishlists.List(ctx, filter)
}

func (f *Facade) UpdateWishlist(ctx context.Context, id uuid.UUID, payload model.WishlistUpdatePayload) (model.WishlistResponse, error) {
	return f.stores.Wishlists.Update(ctx, id, payload)
}

func (f *Facade) DeleteWishlist(ctx context.Context, id uuid.UUID) error {
	return f.stores.Wishlists.Delete(ctx, id)
}

func (f *Facade) ListWishlistItems(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.ItemResponse, error) {
	return f.stores.Wishlists.ListItems(ctx, id, filter)
}

func (f *Facade) CreateSubscription(ctx context.Context, payload model.SubscriptionCreatePayload) (model.SubscriptionResponse, error) {
	return f.stores.Subscriptions.Create(ctx, payload)
}

func (f *Facade) GetSubscription(ctx context.Context, id uuid.UUID) (*model.SubscriptionResponse, error) {
	return f.stores.Subscriptions.Get(ctx, id)
}

func (f *Facade) ListSubscriptions(ctx context.Context, filter model.Filter) ([]model.SubscriptionResponse, error) {
	return f.stores.Subscriptions.List(ctx, filter)
}

func (f *Facade) DeleteSubscription(ctx context.Context, id uuid.UUID) error {
	return f.stores.Subscriptions.Delete(ctx, id)
}

// Healthcheck проверяет, что хранилище отвечает
func (f *Facade) Healthcheck(ctx context.Context) error {
	return f.stores.Storage.Healthcheck(ctx)
}

func (f *Facade) Close() error {
	return f.stores.Storage.Close()
}
