package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Popolzen/wishlists/internal/audit"
	"github.com/Popolzen/wishlists/internal/logger"
	"github.com/Popolzen/wishlists/internal/repository"
)

// server - часть *http.Server, которой пользуется App
type server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

type App struct {
	server    server
	repo      repository.Repository
	publisher *audit.Publisher
}

// Run запускает HTTP сервер. Возвращает nil после Shutdown.
func (a *App) Run() error {
	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска сервера: %w", err)
	}
	return nil
}

// Close закрывает все ресурсы
func (a *App) Close() error {
	log := logger.Log()

	log.Info("Закрываем хранилище...")
	if err := a.repo.Close(); err != nil {
		log.Errorw("Ошибка закрытия хранилища", "error", err)
	}

	log.Info("Закрываем audit publisher...")
	if err := a.publisher.Close(); err != nil {
		log.Errorw("Ошибка закрытия publisher", "error", err)
	}

	return nil
}

// Shutdown выполняет graceful shutdown с таймаутом. Ресурсы закрываются,
// даже если сервер не успел остановиться.
func (a *App) Shutdown(ctx context.Context) error {
	logger.Log().Info("Останавливаем HTTP сервер...")
	if err := a.server.Shutdown(ctx); err != nil {
		_ = a.Close()
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}
	return a.Close()
}
