package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/Popolzen/wishlists/internal/model"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/google/uuid"
)

var subscriptionsTable = table[model.Subscription, model.SubscriptionResponse]{
	name:    "subscriptions",
	columns: []string{"id", "user_id", "subscriber_id", "created_at", "updated_at"},
	scan:    scanSubscription,
	respond: model.NewSubscriptionResponse,
}

func scanSubscription(s scanner) (model.Subscription, error) {
	var sub model.Subscription
	err := s.Scan(&sub.ID, &sub.UserID, &sub.SubscriberID, &sub.CreatedAt, &sub.UpdatedAt)
	sub.CreatedAt = sub.CreatedAt.UTC()
	sub.UpdatedAt = sub.UpdatedAt.UTC()
	return sub, err
}

// SubscriptionRepository хранит подписки. Изменяемых полей нет, поэтому нет и Update.
type SubscriptionRepository struct {
	base[uuid.UUID, model.Subscription, model.SubscriptionResponse]
	now func() time.Time
}

var _ repository.SubscriptionStore = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		base: base[uuid.UUID, model.Subscription, model.SubscriptionResponse]{db: db, table: subscriptionsTable},
		now:  model.Now,
	}
}

// List возвращает все подписки. У подписки нет имени, фильтр не применяется.
func (r *SubscriptionRepository) List(ctx context.Context, _ model.Filter) ([]model.SubscriptionResponse, error) {
	query := `
		SELECT ` + subscriptionsTable.selectColumns() + `
		FROM subscriptions
		ORDER BY created_at DESC, id DESC`

	resp, err := r.queryMany(ctx, query)
	if err != nil {
		return nil, classify("list subscriptions", err)
	}
	return resp, nil
}

// Create оформляет подписку. Повторная подписка и подписка на себя дают ErrConflict.
func (r *SubscriptionRepository) Create(ctx context.Context, payload model.SubscriptionCreatePayload) (model.SubscriptionResponse, error) {
	sub := payload.Entity(uuid.New(), r.now())

	query := `
		INSERT INTO subscriptions (id, user_id, subscriber_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + subscriptionsTable.selectColumns()

	resp, err := r.queryOne(ctx, query, sub.ID, sub.UserID, sub.SubscriberID, sub.CreatedAt, sub.UpdatedAt)
	if err != nil {
		return model.SubscriptionResponse{}, classify("create subscription", err)
	}
	return resp, nil
}
