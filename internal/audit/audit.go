// Package audit рассылает события об изменении сущностей наблюдателям:
// в файл JSON-строк и на внешний HTTP сервер.
package audit

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action тип действия аудита
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Entity - вид изменённой сущности
type Entity string

const (
	EntityItem         Entity = "item"
	EntityUser         Entity = "user"
	EntityWishlist     Entity = "wishlist"
	EntitySubscription Entity = "subscription"
)

// Event структура события аудита
type Event struct {
	Timestamp int64     `json:"ts"`
	Action    Action    `json:"action"`
	Entity    Entity    `json:"entity"`
	ID        uuid.UUID `json:"id"`
}

// NewEvent создаёт новое событие аудита
func NewEvent(action Action, entity Entity, id uuid.UUID) Event {
	return Event{
		Timestamp: time.Now().Unix(),
		Action:    action,
		Entity:    entity,
		ID:        id,
	}
}

type Observer interface {
	Notify(event Event)
	Close() error
}

type Publisher struct {
	mu          sync.Mutex
	subscribers []Observer
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Subscribe(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.subscribers = append(p.subscribers, o)
}

// Publish синхронно передаёт событие всем наблюдателям по порядку подписки
func (p *Publisher) Publish(event Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.subscribers {
		s.Notify(event)
	}
}

// Close закрывает всех наблюдателей, даже если кто-то из них вернул ошибку
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	for _, obs := range p.subscribers {
		if err := obs.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
