package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os/signal"
	"syscall"
	"time"

	"github.com/Popolzen/wishlists/internal/audit"
	"github.com/Popolzen/wishlists/internal/blob"
	"github.com/Popolzen/wishlists/internal/config"
	"github.com/Popolzen/wishlists/internal/config/db"
	"github.com/Popolzen/wishlists/internal/handler"
	"github.com/Popolzen/wishlists/internal/logger"
	"github.com/Popolzen/wishlists/internal/metrics"
	"github.com/Popolzen/wishlists/internal/repository"
	"github.com/Popolzen/wishlists/internal/repository/database"
	"github.com/Popolzen/wishlists/internal/repository/memory"
	"github.com/gin-gonic/gin"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const shutdownTimeout = 10 * time.Second

func main() {
	printBuildInfo()

	cfg := config.NewConfig()

	// Инициализируем логгер
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal("Не удалось инициализировать логгер:", err)
	}
	defer logger.Close()

	if cfg.Migrate {
		if err := migrate(cfg); err != nil {
			logger.Log().Fatalw("Ошибка выполнения миграций", "error", err)
		}
		logger.Log().Info("Миграции применены")
		return
	}

	if err := run(cfg); err != nil {
		logger.Log().Fatalw("Сервис остановлен с ошибкой", "error", err)
	}
}

// run поднимает зависимости и обслуживает запросы до сигнала остановки
func run(cfg *config.Config) error {
	gin.SetMode(gin.ReleaseMode)
	m := metrics.New()

	// Запускаем pprof сервер на настраиваемом порту
	if cfg.PprofAddr != "" {
		go func() {
			logger.Log().Infof("pprof сервер запущен на http://%s/debug/pprof/", cfg.PprofAddr)
			if err := http.ListenAndServe(cfg.PprofAddr, nil); err != nil {
				logger.Log().Errorw("Ошибка запуска pprof сервера", "error", err)
			}
		}()
	}

	blobs, err := initBlobs(cfg)
	if err != nil {
		return err
	}
	repo, err := initRepository(cfg, m)
	if err != nil {
		return err
	}
	publisher := initAudit(cfg)

	router := handler.NewRouter(handler.Deps{
		Repo:          repo,
		Blobs:         blobs,
		Audit:         publisher,
		Metrics:       m,
		TrustedSubnet: cfg.TrustedSubnet,
	}, cfg.RootPath)

	logger.Log().Infow("сервис вишлистов запущен", "addr", cfg.ServerAddr)
	app := &App{
		server:    &http.Server{Addr: cfg.ServerAddr, Handler: router},
		repo:      repo,
		publisher: publisher,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- app.Run() }()

	select {
	case err := <-errCh:
		_ = app.Close()
		return err
	case <-ctx.Done():
		logger.Log().Info("Получен сигнал остановки, завершаем работу...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Log().Info("Сервис остановлен gracefully")
		return nil
	}
}

func printBuildInfo() {
	version := "N/A"
	date := "N/A"
	commit := "N/A"

	if buildVersion != "" {
		version = buildVersion
	}
	if buildDate != "" {
		date = buildDate
	}
	if buildCommit != "" {
		commit = buildCommit
	}

	fmt.Printf("Build version: %s\n", version)
	fmt.Printf("Build date: %s\n", date)
	fmt.Printf("Build commit: %s\n", commit)
}

// migrate применяет миграции к БД из конфигурации
func migrate(cfg *config.Config) error {
	if !cfg.UseDatabase() {
		return fmt.Errorf("для миграций нужен DATABASE_DSN")
	}
	dataBase, err := db.NewDataBase(context.Background(), *cfg)
	if err != nil {
		return err
	}
	defer dataBase.Close()

	return dataBase.Migrate()
}

// initRepository выбирает хранилище: PostgreSQL при заданном DSN, иначе память.
// Схема БД приводится к последней версии при каждом старте.
func initRepository(cfg *config.Config, m *metrics.Metrics) (repository.Repository, error) {
	if !cfg.UseDatabase() {
		logger.Log().Info("Используется память")
		return repository.NewFacade(memory.New()), nil
	}

	ctx := context.Background()
	dataBase, err := db.NewDataBase(ctx, *cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}
	if err := dataBase.Ping(ctx); err != nil {
		dataBase.Close()
		return nil, err
	}
	if err := dataBase.Migrate(); err != nil {
		dataBase.Close()
		return nil, fmt.Errorf("ошибка выполнения миграций: %w", err)
	}
	m.WatchDB(dataBase.DB)

	logger.Log().Info("Используется БД")
	return repository.NewFacade(database.New(dataBase.DB, database.WithCloser(dataBase))), nil
}

// initBlobs выбирает хранилище картинок: S3 при заданном бакете, иначе память
func initBlobs(cfg *config.Config) (blob.Store, error) {
	if !cfg.UseS3() {
		logger.Log().Info("Картинки хранятся в памяти")
		return blob.NewMemoryStore(), nil
	}

	store, err := blob.NewS3Store(context.Background(), cfg.S3)
	if err != nil {
		return nil, fmt.Errorf("не удалось настроить S3: %w", err)
	}
	logger.Log().Infow("Картинки хранятся в S3", "bucket", cfg.S3.Bucket)
	return store, nil
}

// initAudit - функция инициализации аудита:
func initAudit(cfg *config.Config) *audit.Publisher {
	publisher := audit.NewPublisher()

	// Файловый observer
	if cfg.AuditFile != "" {
		fileObs, err := audit.NewFileObserver(cfg.AuditFile)
		if err != nil {
			logger.Log().Errorw("Не удалось создать file observer", "error", err)
		} else {
			publisher.Subscribe(fileObs)
			logger.Log().Infow("Аудит в файл", "path", cfg.AuditFile)
		}
	}

	// HTTP observer
	if cfg.AuditURL != "" {
		publisher.Subscribe(audit.NewHTTPObserver(cfg.AuditURL))
		logger.Log().Infow("Аудит на сервер", "url", cfg.AuditURL)
	}

	return publisher
}
