// config реализует конфигурацию learning-portal: загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Postgres DBConfig      `yaml:"postgres"`
	Mongo    MongoConfig   `yaml:"mongo"`
	Redis    RedisConfig   `yaml:"redis"`
	S3       S3Config      `yaml:"s3"`
	Auth     AuthConfig    `yaml:"auth"`
	Catalog  CatalogConfig `yaml:"catalog"`
	Recent   RecentConfig  `yaml:"recent"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — сервисные таймауты (общий дедлайн обработки запроса).
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера (API + health/metrics).
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — подключение к PostgreSQL (каталог материалов и реестр тестов).
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// MongoConfig — подключение к MongoDB (отзывы).
type MongoConfig struct {
	URL string `yaml:"url" env:"MONGO_URL" env-required:"true"`
}

// RedisConfig — подключение к Redis (список «недавно просмотренных»).
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL" env-required:"true"`
}

// S3Config — объектное хранилище обложек материалов (MinIO/S3).
// Опционально: при пустом Endpoint presign-слой отключён и материалы
// отдаются с ThumbnailURL «как есть».
type S3Config struct {
	Endpoint     string        `yaml:"endpoint"      env:"S3_ENDPOINT"`
	RootUser     string        `yaml:"root_user"     env:"S3_ROOT_USER"`
	RootPassword string        `yaml:"root_password" env:"S3_ROOT_PASSWORD"`
	Bucket       string        `yaml:"bucket"        env:"S3_BUCKET"     env-default:"materials"`
	PresignTTL   time.Duration `yaml:"presign_ttl"   env:"S3_PRESIGN_TTL" env-default:"15m"`
}

// Enabled сообщает, сконфигурировано ли объектное хранилище.
func (s S3Config) Enabled() bool {
	return s.Endpoint != ""
}

// AuthConfig — проверка access-токенов внешней подсистемы аутентификации.
type AuthConfig struct {
	JWTSecret string   `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	Issuer    string   `yaml:"issuer"     env:"JWT_ISSUER" env-default:"auth-service"`
	Audience  []string `yaml:"audience"   env:"JWT_AUDIENCE" env-default:"learning-portal"`
}

// CatalogConfig — источник статического каталога.
// Categories — ручной список категорий фильтра; материалы с категорией вне
// списка остаются фильтруемыми, просто без собственной «плашки» в UI.
type CatalogConfig struct {
	SeedPath   string   `yaml:"seed_path"  env:"CATALOG_SEED_PATH" env-default:"materials.yaml"`
	Categories []string `yaml:"categories" env:"CATALOG_CATEGORIES" env-default:"basics,algorithms,applications,advanced"`
}

// RecentConfig — «недавно просмотренные» материалы пользователя.
type RecentConfig struct {
	Max int64         `yaml:"max" env:"RECENT_MAX" env-default:"5"`
	TTL time.Duration `yaml:"ttl" env:"RECENT_TTL" env-default:"720h"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		if err := cfg.validate(); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.Postgres.URL == "" {
		return fmt.Errorf("postgres.url is required")
	}

	if c.Mongo.URL == "" {
		return fmt.Errorf("mongo.url is required")
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("redis.url is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}

	if c.S3.Enabled() {
		if c.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket is required when s3.endpoint is set")
		}

		if c.S3.PresignTTL < time.Minute {
			return fmt.Errorf("s3.presign_ttl must be at least 1m")
		}
	}

	if c.Recent.Max <= 0 {
		return fmt.Errorf("recent.max must be > 0")
	}

	if c.Recent.Max > 100 {
		return fmt.Errorf("recent.max is too large (<= 100)")
	}

	if c.Timeouts.Service <= 0 {
		return fmt.Errorf("timeouts.service must be > 0")
	}

	return nil
}
