package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Popolzen/wishlists/internal/model"
)

// scanner - общее у *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// table описывает отображение сущности E на таблицу и её ответ R
type table[E, R any] struct {
	name    string
	columns []string
	scan    func(scanner) (E, error)
	respond func(E) R
}

func (t table[E, R]) selectColumns() string {
	return strings.Join(t.columns, ", ")
}

// base реализует операции, одинаковые для всех сущностей: чтение по ключу,
// список и удаление. Create и Update каждая сущность пишет сама.
type base[K comparable, E, R any] struct {
	db    *sql.DB
	table table[E, R]
}

// Get ищет запись по первичному ключу. Отсутствие записи - не ошибка.
func (b base[K, E, R]) Get(ctx context.Context, id K) (*R, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, b.table.selectColumns(), b.table.name)

	resp, err := b.queryOne(ctx, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify("get "+b.table.name, err)
	}
	return &resp, nil
}

// List возвращает все записи, свежие первыми
func (b base[K, E, R]) List(ctx context.Context, filter model.Filter) ([]R, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY created_at DESC, id DESC`,
		b.table.selectColumns(), b.table.name, nameContains("name", 1))

	resp, err := b.queryMany(ctx, query, likeArg(filter))
	if err != nil {
		return nil, classify("list "+b.table.name, err)
	}
	return resp, nil
}

// Delete удаляет запись по ключу. Зависимые записи удаляет сама БД (ON DELETE).
func (b base[K, E, R]) Delete(ctx context.Context, id K) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, b.table.name)

	if _, err := b.db.ExecContext(ctx, query, id); err != nil {
		return classify("delete "+b.table.name, err)
	}
	return nil
}

// queryOne выполняет запрос, возвращающий одну строку таблицы
func (b base[K, E, R]) queryOne(ctx context.Context, query string, args ...any) (R, error) {
	var resp R
	entity, err := b.table.scan(b.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return resp, err
	}
	return b.table.respond(entity), nil
}

// queryMany выполняет запрос, возвращающий строки таблицы
func (b base[K, E, R]) queryMany(ctx context.Context, query string, args ...any) ([]R, error) {
	return queryRows(ctx, b.db, b.table, query, args...)
}

// queryRows читает строки произвольной таблицы. Нужна для запросов по связям,
// когда репозиторий одной сущности возвращает другую.
func queryRows[E, R any](ctx context.Context, db *sql.DB, t table[E, R], query string, args ...any) ([]R, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]R, 0)
	for rows.Next() {
		entity, err := t.scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, t.respond(entity))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// nameContains строит условие "column содержит подстроку $n".
// Пустой аргумент пропускает все строки.
func nameContains(column string, n int) string {
	return fmt.Sprintf(`($%[2]d = '' OR %[1]s LIKE '%%' || $%[2]d || '%%' ESCAPE '\')`, column, n)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeArg экранирует спецсимволы LIKE в пользовательском фильтре
func likeArg(filter model.Filter) string {
	if filter.IsEmpty() {
		return ""
	}
	return likeEscaper.Replace(filter.Name)
}
