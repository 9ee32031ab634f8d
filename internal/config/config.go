package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	DB    DBConfig
	Redis RedisConfig
	Log   LogConfig
	Web   WebConfig
}

type AppConfig struct {
	Name string `env:"APP_NAME" env-default:"petclinic"`
	Env  string `env:"APP_ENV" env-default:"dev"`
}

type HTTPConfig struct {
	Port         string        `env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// DBConfig: sin DSN se usa el store en memoria con datos de ejemplo.
type DBConfig struct {
	DSN     string `env:"DB_DSN" env-default:""`
	Migrate bool   `env:"DB_MIGRATE" env-default:"true"`
}

// RedisConfig: opcional. Si no hay Addr ni URL, cache y flash quedan en memoria.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" env-default:""`
	Password string        `env:"REDIS_PASSWORD" env-default:""`
	DB       int           `env:"REDIS_DB" env-default:"0"`
	URL      string        `env:"REDIS_URL" env-default:""`
	CacheTTL time.Duration `env:"CACHE_TTL" env-default:"5m"`
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != "" || strings.TrimSpace(c.URL) != ""
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

type WebConfig struct {
	PageSize int           `env:"PAGE_SIZE" env-default:"5"`
	FlashTTL time.Duration `env:"FLASH_TTL" env-default:"1m"`
}

// Load lee .env (si existe) y luego el entorno.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if cfg.Web.PageSize < 1 {
		return Config{}, fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.Web.PageSize)
	}
	return cfg, nil
}
