// Package pool - типизированная обёртка над sync.Pool для объектов,
// которые умеют сбрасывать своё состояние.
package pool

import "sync"

// Resettable определяет интерфейс для типов с методом Reset
type Resettable interface {
	Reset()
}

// Pool переиспользует объекты T. Объект сбрасывается при возврате,
// поэтому Get всегда отдаёт чистый экземпляр.
type Pool[T Resettable] struct {
	pool sync.Pool
}

// New создает Pool; newFn вызывается, когда свободных объектов нет
func New[T Resettable](newFn func() T) *Pool[T] {
	p := &Pool[T]{}
	p.pool.New = func() any {
		return newFn()
	}
	return p
}

// Get возвращает объект из пула
func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put сбрасывает объект и возвращает его в пул
func (p *Pool[T]) Put(x T) {
	x.Reset()
	p.pool.Put(x)
}
