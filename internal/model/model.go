// Package model описывает сущности сервиса и преобразования
// payload -> сущность -> response.
//
// Преобразования чистые: не делают I/O и не возвращают ошибок.
// Всё, что может не пройти валидацию, отсекается раньше, при разборе
// тела запроса (binding-теги обрабатывает HTTP слой).
package model

import (
	"strings"
	"time"
)

// Filter - необязательный предикат для списков: подстрока в поле name.
type Filter struct {
	Name string `form:"name"`
}

// IsEmpty сообщает, что фильтр ничего не ограничивает
func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(f.Name) == ""
}

// Match проверяет имя на соответствие фильтру (регистр учитывается, как LIKE)
func (f Filter) Match(name string) bool {
	if f.IsEmpty() {
		return true
	}
	return strings.Contains(name, f.Name)
}

// Now возвращает текущее время в UTC с точностью до микросекунд.
// PostgreSQL хранит timestamptz с той же точностью, поэтому значение
// переживает запись и чтение без потерь.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
