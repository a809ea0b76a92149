// Package config собирает настройки сервиса из нескольких источников.
// Приоритет по возрастанию: значения по умолчанию, JSON-файл (-c/-config/CONFIG),
// .env, переменные окружения, флаги командной строки.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net"
	"os"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

const (
	DefaultServerAddr     = ":8080"
	DefaultRootPath       = "/api"
	DefaultPprofAddr      = "localhost:6060"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
	DefaultDBMaxConns     = 10
	DefaultDBMinConns     = 1
	DefaultAcquireTimeout = 5 * time.Second
	DefaultIdleTimeout    = 5 * time.Minute
	DefaultMaxLifetime    = time.Hour
	DefaultS3Region       = "us-east-1"
	DefaultEnvFile        = ".env"
)

// Config содержит конфигурацию приложения
type Config struct {
	ServerAddr string `json:"server_address" env:"SERVER_ADDRESS"`
	RootPath   string `json:"app_root_path" env:"APP_ROOT_PATH"`

	DBurl          string        `json:"database_dsn" env:"DATABASE_DSN"`
	DBMaxConns     int           `json:"db_max_conns" env:"DB_MAX_CONNS"`
	DBMinConns     int           `json:"db_min_conns" env:"DB_MIN_CONNS"`
	AcquireTimeout time.Duration `json:"db_acquire_timeout" env:"DB_ACQUIRE_TIMEOUT"`
	IdleTimeout    time.Duration `json:"db_idle_timeout" env:"DB_IDLE_TIMEOUT"`
	MaxLifetime    time.Duration `json:"db_max_lifetime" env:"DB_MAX_LIFETIME"`
	// Migrate - применить миграции и выйти, не запуская сервер.
	// Обычный старт с DATABASE_DSN мигрирует схему и без него.
	Migrate bool `json:"migrate" env:"MIGRATE"`

	LogLevel  string `json:"log_level" env:"LOG_LEVEL"`
	LogFormat string `json:"log_format" env:"LOG_FORMAT"`
	AuditFile string `json:"audit_file" env:"AUDIT_FILE"`
	AuditURL  string `json:"audit_url" env:"AUDIT_URL"`
	PprofAddr string `json:"pprof_address" env:"PPROF_ADDRESS"`

	// TrustedSubnet ограничивает доступ к /metrics, пустая - без ограничений
	TrustedSubnet string `json:"trusted_subnet" env:"TRUSTED_SUBNET"`

	S3 S3Config `json:"s3"`
}

// S3Config - хранилище картинок и аватаров. Пустой Bucket - хранить в памяти.
type S3Config struct {
	Endpoint        string `json:"endpoint" env:"S3_ENDPOINT"`
	Region          string `json:"region" env:"S3_REGION"`
	Bucket          string `json:"bucket" env:"S3_BUCKET"`
	AccessKeyID     string `json:"access_key_id" env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `json:"secret_access_key" env:"S3_SECRET_ACCESS_KEY"`
	ForcePathStyle  bool   `json:"force_path_style" env:"S3_FORCE_PATH_STYLE"`
}

func defaultConfig() *Config {
	return &Config{
		ServerAddr:     DefaultServerAddr,
		RootPath:       DefaultRootPath,
		DBMaxConns:     DefaultDBMaxConns,
		DBMinConns:     DefaultDBMinConns,
		AcquireTimeout: DefaultAcquireTimeout,
		IdleTimeout:    DefaultIdleTimeout,
		MaxLifetime:    DefaultMaxLifetime,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		PprofAddr:      DefaultPprofAddr,
		S3:             S3Config{Region: DefaultS3Region},
	}
}

// NewConfig читает конфигурацию процесса. Ошибка конфигурации фатальна.
func NewConfig() *Config {
	c, err := Load(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	return c
}

// Load собирает конфигурацию по аргументам командной строки args
func Load(args []string) (*Config, error) {
	c := defaultConfig()

	if err := c.loadFromFile(getConfigPath(args)); err != nil {
		return nil, err
	}
	if err := loadDotEnv(DefaultEnvFile); err != nil {
		return nil, err
	}
	if err := c.getArgsFromEnv(); err != nil {
		return nil, err
	}
	if err := c.getArgsFromCli(args); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func getConfigPath(args []string) string {
	for i, arg := range args {
		if (arg == "-c" || arg == "-config") && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("CONFIG")
}

// loadFromFile читает JSON-файл. Отсутствующий файл пропускается.
func (c *Config) loadFromFile(filename string) error {
	if filename == "" {
		return nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("не удалось прочитать конфиг %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("некорректный конфиг %s: %w", filename, err)
	}
	return nil
}

// loadDotEnv дополняет окружение значениями из .env, не перезаписывая заданные
func loadDotEnv(filename string) error {
	err := godotenv.Load(filename)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("не удалось прочитать %s: %w", filename, err)
	}
	return nil
}

func (c *Config) getArgsFromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("некорректные переменные окружения: %w", err)
	}
	if err := env.Parse(&c.S3); err != nil {
		return fmt.Errorf("некорректные переменные окружения S3: %w", err)
	}
	return nil
}

func (c *Config) getArgsFromCli(args []string) error {
	flags := flag.NewFlagSet("wishlists", flag.ContinueOnError)
	flags.StringVar(&c.ServerAddr, "a", c.ServerAddr, "server host")
	flags.StringVar(&c.RootPath, "r", c.RootPath, "API root path")
	flags.StringVar(&c.DBurl, "d", c.DBurl, "database DSN")
	flags.IntVar(&c.DBMaxConns, "db-max-conns", c.DBMaxConns, "max pool connections")
	flags.IntVar(&c.DBMinConns, "db-min-conns", c.DBMinConns, "min pool connections")
	flags.DurationVar(&c.AcquireTimeout, "db-acquire-timeout", c.AcquireTimeout, "connection acquire timeout")
	flags.DurationVar(&c.IdleTimeout, "db-idle-timeout", c.IdleTimeout, "idle connection timeout")
	flags.DurationVar(&c.MaxLifetime, "db-max-lifetime", c.MaxLifetime, "max connection lifetime")
	flags.BoolVar(&c.Migrate, "migrate", c.Migrate, "apply migrations and exit without serving (startup migrates anyway)")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format: json, console")
	flags.StringVar(&c.AuditFile, "audit-file", c.AuditFile, "audit file path")
	flags.StringVar(&c.AuditURL, "audit-url", c.AuditURL, "audit server URL")
	flags.StringVar(&c.PprofAddr, "pprof", c.PprofAddr, "pprof server address")
	flags.StringVar(&c.TrustedSubnet, "t", c.TrustedSubnet, "trusted subnet (CIDR) for /metrics")
	flags.StringVar(&c.S3.Endpoint, "s3-endpoint", c.S3.Endpoint, "S3 endpoint")
	flags.StringVar(&c.S3.Region, "s3-region", c.S3.Region, "S3 region")
	flags.StringVar(&c.S3.Bucket, "s3-bucket", c.S3.Bucket, "S3 bucket")
	flags.BoolVar(&c.S3.ForcePathStyle, "s3-path-style", c.S3.ForcePathStyle, "S3 path-style addressing")
	flags.String("c", "", "config file path")
	flags.String("config", "", "config file path")
	return flags.Parse(args)
}

func (c *Config) validate() error {
	switch {
	case c.DBMaxConns < 1:
		return fmt.Errorf("DB_MAX_CONNS должен быть положительным, получено %d", c.DBMaxConns)
	case c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns:
		return fmt.Errorf("DB_MIN_CONNS должен быть в диапазоне [0, %d], получено %d", c.DBMaxConns, c.DBMinConns)
	case c.RootPath != "" && c.RootPath[0] != '/':
		return fmt.Errorf("APP_ROOT_PATH должен начинаться с /, получено %q", c.RootPath)
	}
	if c.TrustedSubnet != "" {
		if _, _, err := net.ParseCIDR(c.TrustedSubnet); err != nil {
			return fmt.Errorf("TRUSTED_SUBNET: %w", err)
		}
	}
	return nil
}

// UseDatabase сообщает, что задана строка подключения к PostgreSQL
func (c Config) UseDatabase() bool {
	return c.DBurl != ""
}

// UseS3 сообщает, что картинки хранятся в S3
func (c Config) UseS3() bool {
	return c.S3.Bucket != ""
}
