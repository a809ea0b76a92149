package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Popolzen/wishlists/internal/audit"
	"github.com/Popolzen/wishlists/internal/blob"
	"github.com/Popolzen/wishlists/internal/logger"
	"github.com/Popolzen/wishlists/internal/model"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxAttachmentSize - предел размера картинки или аватара
const MaxAttachmentSize = 10 << 20

// attachment описывает двоичное вложение сущности: картинку позиции
// или аватар пользователя. В сущности хранится только ключ объекта.
type attachment[R any] struct {
	entity audit.Entity
	get    func(context.Context, uuid.UUID) (*R, error)
	key    func(R) *uuid.UUID
	// setKey сохраняет новый ключ, не трогая остальные поля
	setKey func(ctx context.Context, id uuid.UUID, current R, key *uuid.UUID) (R, error)
}

func itemPicture(d Deps) attachment[model.ItemResponse] {
	return attachment[model.ItemResponse]{
		entity: audit.EntityItem,
		get:    d.Repo.GetItem,
		key:    func(r model.ItemResponse) *uuid.UUID { return r.PictureID },
		setKey: func(ctx context.Context, id uuid.UUID, current model.ItemResponse, key *uuid.UUID) (model.ItemResponse, error) {
			payload := model.NewItemUpdatePayload(current)
			payload.PictureID = key
			return d.Repo.UpdateItem(ctx, id, payload)
		},
	}
}

func userAvatar(d Deps) attachment[model.UserResponse] {
	return attachment[model.UserResponse]{
		entity: audit.EntityUser,
		get:    d.Repo.GetUser,
		key:    func(r model.UserResponse) *uuid.UUID { return r.AvatarID },
		setKey: func(ctx context.Context, id uuid.UUID, current model.UserResponse, key *uuid.UUID) (model.UserResponse, error) {
			payload := model.NewUserUpdatePayload(current)
			payload.AvatarID = key
			return d.Repo.UpdateUser(ctx, id, payload)
		},
	}
}

// updateItem обновляет позицию через PUT /items/:id. Ключ картинки
// берётся из хранимой позиции: клиент меняет его только через /picture.
func updateItem(d Deps) func(context.Context, uuid.UUID, model.ItemUpdatePayload) (model.ItemResponse, error) {
	return func(ctx context.Context, id uuid.UUID, payload model.ItemUpdatePayload) (model.ItemResponse, error) {
		current, err := d.Repo.GetItem(ctx, id)
		if err != nil {
			return model.ItemResponse{}, err
		}
		if current == nil {
			return model.ItemResponse{}, repository.NewError("update items", repository.ErrNotFound, nil)
		}
		payload.PictureID = current.PictureID
		return d.Repo.UpdateItem(ctx, id, payload)
	}
}

// updateUser - то же для пользователя и аватара
func updateUser(d Deps) func(context.Context, uuid.UUID, model.UserUpdatePayload) (model.UserResponse, error) {
	return func(ctx context.Context, id uuid.UUID, payload model.UserUpdatePayload) (model.UserResponse, error) {
		current, err := d.Repo.GetUser(ctx, id)
		if err != nil {
			return model.UserResponse{}, err
		}
		if current == nil {
			return model.UserResponse{}, repository.NewError("update users", repository.ErrNotFound, nil)
		}
		payload.AvatarID = current.AvatarID
		return d.Repo.UpdateUser(ctx, id, payload)
	}
}

// Ключи объектов, которые станут ничьими после удаления сущности.
// Каскад в хранилище удаляет позиции вишлиста и вишлисты пользователя,
// поэтому собираются и их картинки.

func itemBlobs(d Deps) func(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
		item, err := d.Repo.GetItem(ctx, id)
		if err != nil || item == nil {
			return nil, err
		}
		return appendKey(nil, item.PictureID), nil
	}
}

func wishlistBlobs(d Deps) func(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
		items, err := d.Repo.ListWishlistItems(ctx, id, model.Filter{})
		if err != nil {
			return nil, err
		}
		var keys []uuid.UUID
		for _, item := range items {
			keys = appendKey(keys, item.PictureID)
		}
		return keys, nil
	}
}

func userBlobs(d Deps) func(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	ofWishlist := wishlistBlobs(d)
	return func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
		user, err := d.Repo.GetUser(ctx, id)
		if err != nil || user == nil {
			return nil, err
		}
		keys := appendKey(nil, user.AvatarID)

		wishlists, err := d.Repo.ListUserWishlists(ctx, id, model.Filter{})
		if err != nil {
			return nil, err
		}
		for _, w := range wishlists {
			pictures, err := ofWishlist(ctx, w.ID)
			if err != nil {
				return nil, err
			}
			keys = append(keys, pictures...)
		}
		return keys, nil
	}
}

func appendKey(keys []uuid.UUID, key *uuid.UUID) []uuid.UUID {
	if key == nil {
		return keys
	}
	return append(keys, *key)
}

// load находит владельца вложения, отвечая клиенту, если его нет
func (a attachment[R]) load(d Deps, c *gin.Context) (uuid.UUID, *R, bool) {
	id, ok := parseID(c)
	if !ok {
		return id, nil, false
	}
	owner, err := a.get(c.Request.Context(), id)
	if err != nil {
		d.respondError(c, err)
		return id, nil, false
	}
	if owner == nil {
		notFound(c)
		return id, nil, false
	}
	return id, owner, true
}

// removeBlob удаляет старый объект. Сбой не влияет на ответ: сущность
// уже ссылается на новый ключ, осиротевший объект только занимает место.
func removeBlob(ctx context.Context, d Deps, key *uuid.UUID) {
	if key == nil {
		return
	}
	if err := d.Blobs.Delete(ctx, *key); err != nil {
		logger.Log().Warnw("не удалось удалить объект", "key", key.String(), "error", err)
	}
}

func putAttachmentHandler[R any](d Deps, a attachment[R]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, owner, ok := a.load(d, c)
		if !ok {
			return
		}

		data, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxAttachmentSize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "слишком большой файл"})
				return
			}
			badRequest(c, "не удалось прочитать тело запроса")
			return
		}
		if len(data) == 0 {
			badRequest(c, "пустое тело запроса")
			return
		}

		contentType := c.ContentType()
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}

		key := uuid.New()
		if err := d.Blobs.Put(c.Request.Context(), key, data, contentType); err != nil {
			logger.Log().Errorw("не удалось сохранить объект", "key", key.String(), "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, errorResponse{Error: "хранилище файлов недоступно"})
			return
		}

		resp, err := a.setKey(c.Request.Context(), id, *owner, &key)
		if err != nil {
			removeBlob(c.Request.Context(), d, &key)
			d.respondError(c, err)
			return
		}
		removeBlob(c.Request.Context(), d, a.key(*owner))

		d.publish(audit.ActionUpdate, a.entity, id)
		c.JSON(http.StatusOK, resp)
	}
}

func getAttachmentHandler[R any](d Deps, a attachment[R]) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, owner, ok := a.load(d, c)
		if !ok {
			return
		}

		key := a.key(*owner)
		if key == nil {
			notFound(c)
			return
		}

		obj, err := d.Blobs.Get(c.Request.Context(), *key)
		if err != nil {
			if errors.Is(err, blob.ErrNotFound) {
				notFound(c)
				return
			}
			logger.Log().Errorw("не удалось прочитать объект", "key", key.String(), "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, errorResponse{Error: "хранилище файлов недоступно"})
			return
		}

		contentType := obj.ContentType
		if contentType == "" {
			contentType = http.DetectContentType(obj.Data)
		}
		c.Data(http.StatusOK, contentType, obj.Data)
	}
}

func deleteAttachmentHandler[R any](d Deps, a attachment[R]) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, owner, ok := a.load(d, c)
		if !ok {
			return
		}

		key := a.key(*owner)
		if key == nil {
			c.Status(http.StatusNoContent)
			return
		}

		if _, err := a.setKey(c.Request.Context(), id, *owner, nil); err != nil {
			d.respondError(c, err)
			return
		}
		removeBlob(c.Request.Context(), d, key)

		d.publish(audit.ActionUpdate, a.entity, id)
		c.Status(http.StatusNoContent)
	}
}
