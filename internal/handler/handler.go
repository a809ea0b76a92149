// Package handler - HTTP слой сервиса вишлистов на gin.
//
// Обработчики не знают о конкретном хранилище: все обращения идут через
// фасад repository.Repository. Ошибки хранилища переводятся в HTTP статусы
// по их виду (repository.ErrNotFound -> 404 и т.д.).
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Popolzen/wishlists/internal/audit"
	"github.com/Popolzen/wishlists/internal/blob"
	"github.com/Popolzen/wishlists/internal/logger"
	"github.com/Popolzen/wishlists/internal/metrics"
	"github.com/Popolzen/wishlists/internal/model"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Publisher принимает события аудита
type Publisher interface {
	Publish(event audit.Event)
}

// Deps - зависимости обработчиков
type Deps struct {
	Repo  repository.Repository
	Blobs blob.Store
	Audit Publisher
	// Metrics необязательны
	Metrics *metrics.Metrics
	// TrustedSubnet ограничивает /metrics
	TrustedSubnet string
}

// errorResponse - тело ответа с ошибкой
type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func notFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: repository.ErrNotFound.Error()})
}

// statusOf выбирает HTTP статус по виду ошибки хранилища
func statusOf(err error) int {
	switch kind := repository.KindOf(err); {
	case errors.Is(kind, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, repository.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, repository.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError отвечает клиенту по ошибке хранилища.
// Подробности внутренних ошибок остаются в логе.
func (d Deps) respondError(c *gin.Context, err error) {
	status := statusOf(err)
	if d.Metrics != nil {
		d.Metrics.ObserveRepositoryError(err)
	}

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Log().Errorw("ошибка хранилища",
			"uri", c.Request.RequestURI,
			"kind", metrics.KindLabel(err),
			"error", err,
		)
		msg = repository.KindOf(err).Error()
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}

func (d Deps) publish(action audit.Action, entity audit.Entity, id uuid.UUID) {
	if d.Audit != nil {
		d.Audit.Publish(audit.NewEvent(action, entity, id))
	}
}

// parseID разбирает :id из пути, отвечая 400 при ошибке
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "некорректный идентификатор: "+c.Param("id"))
		return uuid.Nil, false
	}
	return id, true
}

func bindFilter(c *gin.Context) (model.Filter, bool) {
	var filter model.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, err.Error())
		return filter, false
	}
	return filter, true
}

// Обобщённые обработчики. Каждая сущность подставляет свои методы фасада.

func createHandler[C, R any](d Deps, entity audit.Entity, create func(context.Context, C) (R, error), idOf func(R) uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload C
		if err := c.ShouldBindJSON(&payload); err != nil {
			badRequest(c, err.Error())
			return
		}

		resp, err := create(c.Request.Context(), payload)
		if err != nil {
			d.respondError(c, err)
			return
		}

		d.publish(audit.ActionCreate, entity, idOf(resp))
		c.JSON(http.StatusCreated, resp)
	}
}

func getHandler[R any](d Deps, get func(context.Context, uuid.UUID) (*R, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		resp, err := get(c.Request.Context(), id)
		if err != nil {
			d.respondError(c, err)
			return
		}
		if resp == nil {
			notFound(c)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func listHandler[R any](d Deps, list func(context.Context, model.Filter) ([]R, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := bindFilter(c)
		if !ok {
			return
		}

		resp, err := list(c.Request.Context(), filter)
		if err != nil {
			d.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// relatedHandler - список, привязанный к сущности из пути (/users/:id/wishlists)
func relatedHandler[R any](d Deps, list func(context.Context, uuid.UUID, model.Filter) ([]R, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		filter, ok := bindFilter(c)
		if !ok {
			return
		}

		resp, err := list(c.Request.Context(), id, filter)
		if err != nil {
			d.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

func updateHandler[U, R any](d Deps, entity audit.Entity, update func(context.Context, uuid.UUID, U) (R, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var payload U
		if err := c.ShouldBindJSON(&payload); err != nil {
			badRequest(c, err.Error())
			return
		}

		resp, err := update(c.Request.Context(), id, payload)
		if err != nil {
			d.respondError(c, err)
			return
		}

		d.publish(audit.ActionUpdate, entity, id)
		c.JSON(http.StatusOK, resp)
	}
}

// deleteHandler удаляет сущность. blobs (может быть nil) перечисляет
// объекты, на которые ссылаются удаляемые записи: они удаляются после
// успешного удаления записей.
func deleteHandler(d Deps, entity audit.Entity, del func(context.Context, uuid.UUID) error, blobs func(context.Context, uuid.UUID) ([]uuid.UUID, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}

		var keys []uuid.UUID
		if blobs != nil {
			var err error
			if keys, err = blobs(c.Request.Context(), id); err != nil {
				d.respondError(c, err)
				return
			}
		}

		if err := del(c.Request.Context(), id); err != nil {
			d.respondError(c, err)
			return
		}
		for _, key := range keys {
			removeBlob(c.Request.Context(), d, &key)
		}

		d.publish(audit.ActionDelete, entity, id)
		c.Status(http.StatusNoContent)
	}
}

// HealthHandler отвечает 200, если хранилище доступно, и 500 иначе
func HealthHandler(d Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := d.Repo.Healthcheck(c.Request.Context()); err != nil {
			logger.Log().Warnw("хранилище недоступно", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
