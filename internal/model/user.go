package model

import (
	"time"

	"github.com/google/uuid"
)

// User - пользователь сервиса
type User struct {
	ID         uuid.UUID
	FirstName  *string
	SecondName *string
	NickName   string
	AvatarID   *uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type UserCreatePayload struct {
	FirstName  *string `json:"first_name" binding:"omitempty,max=100"`
	SecondName *string `json:"second_name" binding:"omitempty,max=100"`
	NickName   string  `json:"nick_name" binding:"required,max=100"`
}

func (p UserCreatePayload) Entity(id uuid.UUID, now time.Time) User {
	return User{
		ID:         id,
		FirstName:  p.FirstName,
		SecondName: p.SecondName,
		NickName:   p.NickName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

type UserUpdatePayload struct {
	FirstName  *string    `json:"first_name" binding:"omitempty,max=100"`
	SecondName *string    `json:"second_name" binding:"omitempty,max=100"`
	NickName   string     `json:"nick_name" binding:"required,max=100"`
	// AvatarID меняется только через /users/:id/avatar
	AvatarID *uuid.UUID `json:"-"`
}

func (p UserUpdatePayload) Apply(user User, now time.Time) User {
	user.FirstName = p.FirstName
	user.SecondName = p.SecondName
	user.NickName = p.NickName
	user.AvatarID = p.AvatarID
	user.UpdatedAt = now
	return user
}

// NewUserUpdatePayload строит payload из текущего состояния пользователя
func NewUserUpdatePayload(r UserResponse) UserUpdatePayload {
	return UserUpdatePayload{
		FirstName:  r.FirstName,
		SecondName: r.SecondName,
		NickName:   r.NickName,
		AvatarID:   r.AvatarID,
	}
}

type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	FirstName  *string    `json:"first_name"`
	SecondName *string    `json:"second_name"`
	NickName   string     `json:"nick_name"`
	AvatarID   *uuid.UUID `json:"avatar_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func NewUserResponse(user User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		FirstName:  user.FirstName,
		SecondName: user.SecondName,
		NickName:   user.NickName,
		AvatarID:   user.AvatarID,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
