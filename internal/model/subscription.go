package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscription - направленная связь: SubscriberID подписан на UserID.
// Изменяемых полей нет, поэтому нет и payload для обновления.
type Subscription struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	SubscriberID uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SubscriptionCreatePayload struct {
	UserID       uuid.UUID `json:"user_id" binding:"required"`
	SubscriberID uuid.UUID `json:"subscriber_id" binding:"required"`
}

func (p SubscriptionCreatePayload) Entity(id uuid.UUID, now time.Time) Subscription {
	return Subscription{
		ID:           id,
		UserID:       p.UserID,
		SubscriberID: p.SubscriberID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

type SubscriptionResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	SubscriberID uuid.UUID `json:"subscriber_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewSubscriptionResponse(s Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:           s.ID,
		UserID:       s.UserID,
		SubscriberID: s.SubscriberID,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
