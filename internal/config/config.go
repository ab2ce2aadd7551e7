package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Cache     CacheConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string `validate:"required,numeric"`
	Mode         string `validate:"omitempty,oneof=debug release test"` // режим gin
	ReadTimeout  int    `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout int    `mapstructure:"write_timeout" validate:"gte=0"`
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host           string `validate:"required"`
	Port           string `validate:"required,numeric"`
	User           string `validate:"required"`
	Password       string
	DBName         string `validate:"required"`
	SSLMode        string `validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MigrationsPath string `mapstructure:"migrations_path" validate:"required"`
}

// RedisConfig содержит унифицированные настройки подключения к Redis.
// Поддерживает режимы: single, sentinel, cluster. Если Enabled=false,
// кеш категорий и rate limiting отключены.
type RedisConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Mode: режим работы Redis ("single", "sentinel", "cluster")
	Mode string `mapstructure:"mode" validate:"omitempty,oneof=single sentinel cluster"`

	// Addrs: список адресов Redis (хост:порт). Для 'single' используется первый адрес.
	Addrs []string `mapstructure:"addrs"`

	// Addr: адрес для режима 'single', если Addrs пуст
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`

	// MasterName: имя мастер-сервера (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	MaxRetries      int `mapstructure:"max_retries"`
	MinRetryBackoff int `mapstructure:"min_retry_backoff"` // мс
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"` // мс

	// KeyPrefix добавляется ко всем ключам кеша и rate limiter'а
	KeyPrefix string `mapstructure:"key_prefix"`
}

// AuthConfig содержит настройки административного доступа.
// Пустой AdminSecret отключает проверку токена.
type AuthConfig struct {
	AdminSecret   string        `mapstructure:"admin_secret" validate:"omitempty,min=16"`
	AdminTokenTTL time.Duration `mapstructure:"admin_token_ttl" validate:"gt=0"`
}

// RateLimitConfig содержит настройки ограничения частоты запросов
type RateLimitConfig struct {
	MaxRequests int           `mapstructure:"max_requests" validate:"gte=0"` // 0 - без ограничений
	Window      time.Duration `mapstructure:"window" validate:"gt=0"`
}

// CacheConfig содержит настройки кеширования
type CacheConfig struct {
	CategoriesTTL time.Duration `mapstructure:"categories_ttl" validate:"gte=0"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// PostgresURL формирует URL подключения (используется golang-migrate и lib/pq)
func (d *DatabaseConfig) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.mode", "debug")
	vip.SetDefault("server.read_timeout", 10)
	vip.SetDefault("server.write_timeout", 10)

	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.migrations_path", "migrations")

	vip.SetDefault("redis.enabled", false)
	vip.SetDefault("redis.mode", "single")
	vip.SetDefault("redis.key_prefix", "trivia")

	vip.SetDefault("auth.admin_token_ttl", "24h")

	vip.SetDefault("rate_limit.max_requests", 60)
	vip.SetDefault("rate_limit.window", "1m")

	vip.SetDefault("cache.categories_ttl", "10m")
}

func bindEnv(vip *viper.Viper) {
	// Привязка для секции Server
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.mode", "GIN_MODE")

	// Привязка для секции Database
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.migrations_path", "DATABASE_MIGRATIONS_PATH")

	// Привязка для секции Redis
	vip.BindEnv("redis.enabled", "REDIS_ENABLED")
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	// Привязка для секции Auth
	vip.BindEnv("auth.admin_secret", "AUTH_ADMIN_SECRET")
	vip.BindEnv("auth.admin_token_ttl", "AUTH_ADMIN_TOKEN_TTL")

	// Привязка для RateLimit
	vip.BindEnv("rate_limit.max_requests", "RATE_LIMIT_MAX_REQUESTS")
	vip.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
}

// Load загружает конфигурацию из файла, переменных окружения и флагов.
// Приоритет: флаги > переменные окружения > файл > значения по умолчанию.
// flags может быть nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	setDefaults(vip)
	bindEnv(vip)

	if flags != nil {
		if f := flags.Lookup("port"); f != nil {
			if err := vip.BindPFlag("server.port", f); err != nil {
				return nil, fmt.Errorf("failed to bind port flag: %w", err)
			}
		}
	}

	if configPath != "" {
		vip.SetConfigFile(configPath)
		// Отсутствие файла не страшно: есть переменные окружения и значения по умолчанию
		if err := vip.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Server.Mode != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Server Port: %s (mode %s)", cfg.Server.Port, cfg.Server.Mode)
		log.Printf("Database: %s@%s:%s/%s (sslmode %s)", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, cfg.Database.SSLMode)
		log.Printf("Redis Enabled: %t (mode %s)", cfg.Redis.Enabled, cfg.Redis.Mode)
		log.Printf("Admin Secret Set: %t", cfg.Auth.AdminSecret != "")
		log.Printf("-----------------------------------------")
	}

	return &cfg, nil
}

// Validate проверяет обязательные параметры конфигурации
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.Redis.Enabled && len(c.Redis.Addrs) == 0 && c.Redis.Addr == "" {
		return fmt.Errorf("invalid config: redis is enabled but neither redis.addrs nor redis.addr is set (check REDIS_ADDR env var)")
	}
	if c.Redis.Enabled && c.Redis.Mode == "sentinel" && c.Redis.MasterName == "" {
		return fmt.Errorf("invalid config: redis sentinel mode requires master_name")
	}

	// В production пароль БД обязателен
	if c.Server.Mode == "release" && c.Database.Password == "" {
		return fmt.Errorf("database password is required in release mode (check DATABASE_PASSWORD env var)")
	}

	return nil
}
