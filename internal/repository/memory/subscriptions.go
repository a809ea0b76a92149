package memory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Popolzen/wishlists/internal/model"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/google/uuid"
)

var subscriptionsTable = table[model.Subscription, model.SubscriptionResponse]{
	rows: func(s *storage) map[uuid.UUID]model.Subscription { return s.subscriptions },
	key:  func(sub model.Subscription) (time.Time, uuid.UUID) { return sub.CreatedAt, sub.ID },
	// у подписки нет имени
	match:   func(model.Filter, model.Subscription) bool { return true },
	respond: model.NewSubscriptionResponse,
	remove: func(s *storage, id uuid.UUID) {
		delete(s.subscriptions, id)
	},
}

type SubscriptionRepository struct {
	base[model.Subscription, model.SubscriptionResponse]
}

var _ repository.SubscriptionStore = (*SubscriptionRepository)(nil)

func (r *SubscriptionRepository) Create(_ context.Context, payload model.SubscriptionCreatePayload) (model.SubscriptionResponse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(payload); err != nil {
		return model.SubscriptionResponse{}, repository.NewError("create subscription", repository.ErrConflict, err)
	}

	sub := payload.Entity(uuid.New(), r.s.now())
	r.s.subscriptions[sub.ID] = sub
	return model.NewSubscriptionResponse(sub), nil
}

// check повторяет ограничения таблицы subscriptions. Вызывается под блокировкой.
func (r *SubscriptionRepository) check(payload model.SubscriptionCreatePayload) error {
	if payload.UserID == payload.SubscriberID {
		return errors.New("cannot subscribe to yourself")
	}
	for _, id := range []uuid.UUID{payload.UserID, payload.SubscriberID} {
		if _, ok := r.s.users[id]; !ok {
			return fmt.Errorf("user %s does not exist", id)
		}
	}
	for _, sub := range r.s.subscriptions {
		if sub.UserID == payload.UserID && sub.SubscriberID == payload.SubscriberID {
			return errors.New("already subscribed")
		}
	}
	return nil
}
