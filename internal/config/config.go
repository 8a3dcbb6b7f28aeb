package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/luminark/holdings/internal/models"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:""`
	Server   Server
	DB       DB
	Store    Store
	FX       FX
	Jobs     Jobs
}

type Server struct {
	Port string `env:"SERVER_PORT" envDefault:"8080"`
}

type DB struct {
	Driver   string `env:"DB_DRIVER" envDefault:"sqlite"`
	Path     string `env:"DB_PATH" envDefault:"luminark.db"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"luminark"`
	Password string `env:"DB_PASSWORD" envDefault:"luminark"`
	Name     string `env:"DB_NAME" envDefault:"luminark"`
	SSLMode  string `env:"DB_SSL_MODE" envDefault:"disable"`
}

type Store struct {
	StateKey        string `env:"STATE_KEY" envDefault:"luminark_investments"`
	BackupRetention int    `env:"BACKUP_RETENTION" envDefault:"7"`
}

type FX struct {
	Provider     string        `env:"FX_PROVIDER" envDefault:"http"`
	APIURL       string        `env:"FX_API_URL" envDefault:""`
	APIKey       string        `env:"FX_API_KEY" envDefault:""`
	Timeout      time.Duration `env:"FX_TIMEOUT" envDefault:"10s"`
	BaseCurrency string        `env:"BASE_CURRENCY" envDefault:"IDR"`
	FallbackRate string        `env:"FX_FALLBACK_RATE" envDefault:"15000"`
	CacheEnabled bool          `env:"FX_CACHE_ENABLED" envDefault:"false"`
}

type Jobs struct {
	DashboardRefreshInterval time.Duration `env:"DASHBOARD_REFRESH_INTERVAL" envDefault:"10s"`
	BackupCron               string        `env:"BACKUP_CRON" envDefault:"5 0 * * *"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values env parsing cannot.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("DB_DRIVER must be sqlite or postgres, got %q", c.DB.Driver)
	}
	switch c.FX.Provider {
	case "http", "static":
	default:
		return fmt.Errorf("FX_PROVIDER must be http or static, got %q", c.FX.Provider)
	}
	// Capital, totals and reports are all denominated in rupiah.
	c.FX.BaseCurrency = models.NormalizeCurrency(c.FX.BaseCurrency)
	if c.FX.BaseCurrency != models.BaseCurrency {
		return fmt.Errorf("BASE_CURRENCY must be %s, got %q", models.BaseCurrency, c.FX.BaseCurrency)
	}
	if c.Store.BackupRetention < 1 {
		return fmt.Errorf("BACKUP_RETENTION must be at least 1")
	}
	if _, err := c.FX.Fallback(); err != nil {
		return err
	}
	return nil
}

// Fallback parses the fallback exchange rate.
func (f FX) Fallback() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(f.FallbackRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("FX_FALLBACK_RATE: %w", err)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("FX_FALLBACK_RATE must be positive")
	}
	return rate, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
