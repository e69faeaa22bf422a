package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Server      ServerConfig
	Postgres    PostgresConfig
	Redis       RedisConfig
	Purchase    PurchaseConfig
	RateLimit   RateLimitConfig
	Idempotency IdempotencyConfig
	Auth        AuthConfig
	Carousel    CarouselConfig

	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
	SeedOnStart   bool          `env:"SEED_ON_START" envDefault:"true"`
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"localhost"`
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

// PostgresConfig is optional. Without a DSN or a user the service keeps all
// state in memory.
type PostgresConfig struct {
	DSN      string `env:"POSTGRES_DSN"`
	User     string `env:"POSTGRES_USER"`
	Password string `env:"POSTGRES_PASSWORD"`
	Name     string `env:"POSTGRES_DB" envDefault:"housedraw"`
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

func (c PostgresConfig) Enabled() bool {
	return c.DSN != "" || c.User != ""
}

// ConnString returns DSN, or a URL assembled from the individual settings.
func (c PostgresConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}

	return u.String()
}

// RedisConfig is optional. Without an address caching, rate limiting,
// idempotency keys and cross-instance notifications are off.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type PurchaseConfig struct {
	Timeout    time.Duration `env:"PURCHASE_TIMEOUT" envDefault:"5s"`
	MaxRetries int           `env:"PURCHASE_MAX_RETRIES" envDefault:"3"`
}

type RateLimitConfig struct {
	Limit  int           `env:"RATE_LIMIT_PURCHASES" envDefault:"20"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

type IdempotencyConfig struct {
	TTL     time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
	LockTTL time.Duration `env:"IDEMPOTENCY_LOCK_TTL" envDefault:"30s"`
}

type AuthConfig struct {
	// AdminJWTSecret signs admin tokens. Admin routes are disabled when empty.
	AdminJWTSecret string `env:"ADMIN_JWT_SECRET"`
}

type CarouselConfig struct {
	Interval time.Duration `env:"CAROUSEL_INTERVAL" envDefault:"5s"`
	Prefetch bool          `env:"CAROUSEL_PREFETCH" envDefault:"false"`
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("%s: invalid SERVER_PORT: %d", op, cfg.Server.Port)
	}

	if cfg.RateLimit.Limit <= 0 {
		return nil, fmt.Errorf("%s: invalid RATE_LIMIT_PURCHASES: %d", op, cfg.RateLimit.Limit)
	}

	if cfg.RateLimit.Window <= 0 {
		return nil, fmt.Errorf("%s: invalid RATE_LIMIT_WINDOW: %s", op, cfg.RateLimit.Window)
	}

	if cfg.Postgres.DSN == "" && cfg.Postgres.User != "" && cfg.Postgres.Password == "" {
		return nil, fmt.Errorf("%s: missing POSTGRES_PASSWORD", op)
	}

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// ParseLevel maps LOG_LEVEL to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}

	return l, nil
}
