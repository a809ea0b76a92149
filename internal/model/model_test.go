package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		value  string
		want   bool
	}{
		{name: "пустой фильтр пропускает всё", filter: Filter{}, value: "anything", want: true},
		{name: "пробелы считаются пустым фильтром", filter: Filter{Name: "  "}, value: "x", want: true},
		{name: "подстрока найдена", filter: Filter{Name: "bike"}, value: "new bike 2024", want: true},
		{name: "подстрока не найдена", filter: Filter{Name: "car"}, value: "new bike", want: false},
		{name: "регистр учитывается", filter: Filter{Name: "Bike"}, value: "bike", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(tt.value))
		})
	}
}

func TestNow_UTCMicroseconds(t *testing.T) {
	now := Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestItemCreatePayload_Entity(t *testing.T) {
	id := uuid.New()
	wishlistID := uuid.New()
	now := Now()

	item := ItemCreatePayload{
		WishlistID:  wishlistID,
		Name:        "bike",
		Description: ptr("red one"),
		Price:       ptr(int32(1500)),
		IsHidden:    true,
	}.Entity(id, now)

	assert.Equal(t, id, item.ID)
	assert.Equal(t, wishlistID, item.WishlistID)
	assert.Nil(t, item.SelectedByID)
	assert.Nil(t, item.PictureID)
	assert.Equal(t, "bike", item.Name)
	assert.Equal(t, "red one", *item.Description)
	assert.Equal(t, int32(1500), *item.Price)
	assert.True(t, item.IsHidden)
	assert.Equal(t, now, item.CreatedAt)
	assert.Equal(t, now, item.UpdatedAt)
}

func TestItemUpdatePayload_Apply(t *testing.T) {
	created := Now()
	item := ItemCreatePayload{WishlistID: uuid.New(), Name: "old"}.Entity(uuid.New(), created)
	selectedBy := uuid.New()
	later := created.Add(time.Second)

	updated := ItemUpdatePayload{
		Name:         "new",
		Price:        ptr(int32(10)),
		SelectedByID: &selectedBy,
	}.Apply(item, later)

	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, item.WishlistID, updated.WishlistID)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, "new", updated.Name)
	assert.Equal(t, &selectedBy, updated.SelectedByID)
	// исходное значение не изменилось
	assert.Equal(t, "old", item.Name)
}

func TestNewItemUpdatePayload_RoundTrip(t *testing.T) {
	item := ItemCreatePayload{WishlistID: uuid.New(), Name: "lamp", Price: ptr(int32(7))}.Entity(uuid.New(), Now())
	resp := NewItemResponse(item)

	again := NewItemUpdatePayload(resp).Apply(item, item.UpdatedAt)

	assert.Equal(t, item, again)
}

func TestNewItemResponse_CopiesAllFields(t *testing.T) {
	picture := uuid.New()
	selected := uuid.New()
	now := Now()
	item := Item{
		ID:           uuid.New(),
		WishlistID:   uuid.New(),
		SelectedByID: &selected,
		Name:         "book",
		Description:  ptr("hardcover"),
		Price:        ptr(int32(20)),
		IsHidden:     true,
		PictureID:    &picture,
		CreatedAt:    now,
		UpdatedAt:    now.Add(time.Minute),
	}

	resp := NewItemResponse(item)

	assert.Equal(t, ItemResponse(item), resp)
}

func TestUserPayloads(t *testing.T) {
	now := Now()
	user := UserCreatePayload{FirstName: ptr("Ann"), NickName: "ann"}.Entity(uuid.New(), now)

	assert.Equal(t, "ann", user.NickName)
	assert.Nil(t, user.SecondName)
	assert.Nil(t, user.AvatarID)
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)

	avatar := uuid.New()
	updated := UserUpdatePayload{NickName: "annie", AvatarID: &avatar}.Apply(user, now.Add(time.Second))

	assert.Equal(t, "annie", updated.NickName)
	assert.Nil(t, updated.FirstName)
	assert.Equal(t, &avatar, updated.AvatarID)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
	assert.Equal(t, UserResponse(updated), NewUserResponse(updated))
}

func TestWishlistPayloads(t *testing.T) {
	owner := uuid.New()
	now := Now()
	w := WishlistCreatePayload{Name: "birthday", UserID: owner}.Entity(uuid.New(), now)

	updated := WishlistUpdatePayload{Name: "new year"}.Apply(w, now.Add(time.Hour))

	assert.Equal(t, owner, updated.UserID)
	assert.Equal(t, "new year", updated.Name)
	assert.Equal(t, now, updated.CreatedAt)
	assert.Equal(t, WishlistResponse(updated), NewWishlistResponse(updated))
}

func TestSubscriptionPayload(t *testing.T) {
	user, subscriber := uuid.New(), uuid.New()
	s := SubscriptionCreatePayload{UserID: user, SubscriberID: subscriber}.Entity(uuid.New(), Now())

	assert.Equal(t, user, s.UserID)
	assert.Equal(t, subscriber, s.SubscriberID)
	assert.Equal(t, SubscriptionResponse(s), NewSubscriptionResponse(s))
}

func TestUpdatePayloads_BlobKeysNotBound(t *testing.T) {
	key := uuid.New().String()

	var item ItemUpdatePayload
	assert.NoError(t, json.Unmarshal([]byte(`{"name":"x","picture_id":"`+key+`"}`), &item))
	assert.Nil(t, item.PictureID)

	var user UserUpdatePayload
	assert.NoError(t, json.Unmarshal([]byte(`{"nick_name":"x","avatar_id":"`+key+`"}`), &user))
	assert.Nil(t, user.AvatarID)
}
