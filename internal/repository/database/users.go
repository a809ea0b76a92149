package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/Popolzen/wishlists/internal/model"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/google/uuid"
)

var usersTable = table[model.User, model.UserResponse]{
	name:    "users",
	columns: []string{"id", "first_name", "second_name", "nick_name", "avatar_id", "created_at", "updated_at"},
	scan:    scanUser,
	respond: model.NewUserResponse,
}

func scanUser(s scanner) (model.User, error) {
	var u model.User
	err := s.Scan(&u.ID, &u.FirstName, &u.SecondName, &u.NickName, &u.AvatarID, &u.CreatedAt, &u.UpdatedAt)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return u, err
}

type UserRepository struct {
	base[uuid.UUID, model.User, model.UserResponse]
	now func() time.Time
}

var _ repository.UserStore = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		base: base[uuid.UUID, model.User, model.UserResponse]{db: db, table: usersTable},
		now:  model.Now,
	}
}

// List у пользователей фильтрует по nick_name: отдельного поля name нет
func (r *UserRepository) List(ctx context.Context, filter model.Filter) ([]model.UserResponse, error) {
	query := `
		SELECT ` + usersTable.selectColumns() + `
		FROM users
		WHERE ` + nameContains("nick_name", 1) + `
		ORDER BY created_at DESC, id DESC`

	resp, err := r.queryMany(ctx, query, likeArg(filter))
	if err != nil {
		return nil, classify("list users", err)
	}
	return resp, nil
}

// Create сохраняет пользователя. Занятый nick_name даёт ErrConflict.
func (r *UserRepository) Create(ctx context.Context, payload model.UserCreatePayload) (model.UserResponse, error) {
	u := payload.Entity(uuid.New(), r.now())

	query := `
		INSERT INTO users (id, first_name, second_name, nick_name, avatar_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + usersTable.selectColumns()

	resp, err := r.queryOne(ctx, query, u.ID, u.FirstName, u.SecondName, u.NickName, u.AvatarID, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return model.UserResponse{}, classify("create user", err)
	}
	return resp, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, payload model.UserUpdatePayload) (model.UserResponse, error) {
	query := `
		UPDATE users
		SET first_name = $2, second_name = $3, nick_name = $4, avatar_id = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + usersTable.selectColumns()

	resp, err := r.queryOne(ctx, query, id, payload.FirstName, payload.SecondName, payload.NickName, payload.AvatarID, r.now())
	if err != nil {
		return model.UserResponse{}, classify("update user", err)
	}
	return resp, nil
}

// ListWishlists возвращает вишлисты пользователя
func (r *UserRepository) ListWishlists(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.WishlistResponse, error) {
	query := `
		SELECT ` + wishlistsTable.selectColumns() + `
		FROM wishlists
		WHERE user_id = $1 AND ` + nameContains("name", 2) + `
		ORDER BY created_at DESC, id DESC`

	resp, err := queryRows(ctx, r.db, wishlistsTable, query, id, likeArg(filter))
	if err != nil {
		return nil, classify("list user wishlists", err)
	}
	return resp, nil
}

// ListSubscribers - пользователи, подписанные на id
func (r *UserRepository) ListSubscribers(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.UserResponse, error) {
	query := `
		SELECT ` + usersTable.selectColumns() + `
		FROM users
		WHERE id IN (SELECT subscriber_id FROM subscriptions WHERE user_id = $1)
			AND ` + nameContains("nick_name", 2) + `
		ORDER BY created_at DESC, id DESC`

	resp, err := r.queryMany(ctx, query, id, likeArg(filter))
	if err != nil {
		return nil, classify("list user subscribers", err)
	}
	return resp, nil
}

// ListSubscriptions - пользователи, на которых подписан id
func (r *UserRepository) ListSubscriptions(ctx context.Context, id uuid.UUID, filter model.Filter) ([]model.UserResponse, error) {
	query := `
		SELECT ` + usersTable.selectColumns() + `
		FROM users
		WHERE id IN (SELECT user_id FROM subscriptions WHERE subscriber_id = $1)
			AND ` + nameContains("nick_name", 2) + `
		ORDER BY created_at DESC, id DESC`

	resp, err := r.queryMany(ctx, query, id, likeArg(filter))
	if err != nil {
		return nil, classify("list user subscriptions", err)
	}
	return resp, nil
}
