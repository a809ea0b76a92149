// Package blob хранит двоичные данные (картинки позиций, аватары) по uuid ключу.
package blob

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound - по ключу ничего не сохранено
var ErrNotFound = errors.New("blob not found")

// Object - содержимое объекта и тип, с которым он был сохранён
type Object struct {
	Data        []byte
	ContentType string
}

// Store - хранилище двоичных объектов
type Store interface {
	Get(ctx context.Context, key uuid.UUID) (Object, error)
	Put(ctx context.Context, key uuid.UUID, data []byte, contentType string) error
	// Delete отсутствующего ключа не ошибка
	Delete(ctx context.Context, key uuid.UUID) error
}
