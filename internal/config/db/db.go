// Package db открывает пул соединений PostgreSQL по настройкам сервиса.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Popolzen/wishlists/internal/config"
	migration "github.com/Popolzen/wishlists/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// DBConfig содержит конфигурацию для подключения к БД
type DBConfig struct {
	DBurl          string
	MaxConns       int32
	MinConns       int32
	AcquireTimeout time.Duration
	IdleTimeout    time.Duration
	MaxLifetime    time.Duration
}

// DataBase - пул pgx и *sql.DB поверх него
type DataBase struct {
	*sql.DB
	pool   *pgxpool.Pool
	config *DBConfig
}

// NewDBConfig создает новую конфигурацию БД
func NewDBConfig(c config.Config) DBConfig {
	return DBConfig{
		DBurl:          c.DBurl,
		MaxConns:       int32(c.DBMaxConns),
		MinConns:       int32(c.DBMinConns),
		AcquireTimeout: c.AcquireTimeout,
		IdleTimeout:    c.IdleTimeout,
		MaxLifetime:    c.MaxLifetime,
	}
}

// PoolConfig переводит настройки в конфигурацию pgxpool
func (d DBConfig) PoolConfig() (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(d.DBurl)
	if err != nil {
		return nil, fmt.Errorf("некорректная строка подключения: %w", err)
	}
	poolCfg.MaxConns = d.MaxConns
	poolCfg.MinConns = d.MinConns
	poolCfg.MaxConnIdleTime = d.IdleTimeout
	poolCfg.MaxConnLifetime = d.MaxLifetime
	if d.AcquireTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = d.AcquireTimeout
	}
	return poolCfg, nil
}

// NewDataBase создает пул. Соединения открываются лениво, первое - при Ping.
func NewDataBase(ctx context.Context, c config.Config) (*DataBase, error) {
	cfg := NewDBConfig(c)
	poolCfg, err := cfg.PoolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	db.SetMaxOpenConns(int(cfg.MaxConns))

	return &DataBase{
		DB:     db,
		pool:   pool,
		config: &cfg,
	}, nil
}

// Ping проверяет подключение, ожидая не дольше AcquireTimeout
func (d *DataBase) Ping(ctx context.Context) error {
	if d.config.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.AcquireTimeout)
		defer cancel()
	}
	if err := d.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("БД недоступна: %w", err)
	}
	return nil
}

func (d *DataBase) Migrate() error {
	return migration.MigrateUp(d.DB)
}

// Close закрывает *sql.DB и пул под ним
func (d *DataBase) Close() error {
	err := d.DB.Close()
	d.pool.Close()
	return err
}
