package repository

import (
	"errors"
	"fmt"
)

// Виды ошибок хранилища. Проверяются через errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("storage unavailable")
	ErrInternal    = errors.New("internal storage error")
)

// Error - ошибка хранилища с видом и исходной причиной
type Error struct {
	Op   string
	Kind error
	Err  error
}

func NewError(op string, kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is сопоставляет ошибку с её видом: errors.Is(err, ErrConflict)
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// KindOf возвращает вид ошибки или ErrInternal для чужих ошибок
func KindOf(err error) error {
	for _, kind := range []error{ErrNotFound, ErrConflict, ErrUnavailable, ErrInternal} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrInternal
}
