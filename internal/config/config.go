package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/currency"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	App   AppConfig
	Log   LogConfig
	HTTP  HTTPConfig
	Cart  CartConfig
	Store StoreConfig
}

type AppConfig struct {
	Env string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type CartConfig struct {
	Currency string // ISO 4217 code of the store currency
}

// StoreConfig selects and configures the cart persistence backend.
type StoreConfig struct {
	Driver        string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PostgresURL   string
}

// CurrencyUnit returns the parsed store currency. Load has already validated it.
func (c CartConfig) CurrencyUnit() currency.Unit {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.USD
	}
	return unit
}

// Load reads configuration from an optional config file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with FYF_ prefix (e.g., FYF_STORE_DRIVER)
// 2. config file (path, or config.yaml in . and /etc/fyf)
// 3. Built-in defaults
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/fyf")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// no config file, defaults and env vars only
	}

	v.SetEnvPrefix("FYF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env: v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			Addr:            v.GetString("http.addr"),
			ShutdownTimeout: v.GetDuration("http.shutdown_timeout"),
		},
		Cart: CartConfig{
			Currency: v.GetString("cart.currency"),
		},
		Store: StoreConfig{
			Driver:        v.GetString("store.driver"),
			SQLitePath:    v.GetString("store.sqlite_path"),
			RedisAddr:     v.GetString("store.redis_addr"),
			RedisPassword: v.GetString("store.redis_password"),
			RedisDB:       v.GetInt("store.redis_db"),
			PostgresURL:   v.GetString("store.postgres_url"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		if cfg.App.Env == "production" {
			cfg.Log.Format = "json"
		} else {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Cart.Currency == "" {
		cfg.Cart.Currency = "USD"
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = DriverSQLite
	}
	if cfg.Store.SQLitePath == "" {
		cfg.Store.SQLitePath = "fyf-cart.db"
	}
	if cfg.Store.RedisAddr == "" {
		cfg.Store.RedisAddr = "localhost:6379"
	}
}

func (c *Config) validate() error {
	if _, err := currency.ParseISO(c.Cart.Currency); err != nil {
		return fmt.Errorf("cart.currency[%s] is not valid: %w", c.Cart.Currency, err)
	}

	switch c.Store.Driver {
	case DriverMemory, DriverSQLite, DriverRedis:
	case DriverPostgres:
		if c.Store.PostgresURL == "" {
			return fmt.Errorf("store.postgres_url is required for driver %q", DriverPostgres)
		}
	default:
		return fmt.Errorf("store.driver[%s] is not supported", c.Store.Driver)
	}

	return nil
}
