package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Email    EmailConfig
	Catalog  CatalogConfig
	Cart     CartConfig
	Checkout CheckoutConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// EmailConfig configures the order notification channel.
// Provider selects the processor implementation: smtp, file, noop.
type EmailConfig struct {
	Provider  string
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	To        string // operator address that receives new-order notifications
	PickupDir string // used by the file provider
}

type CatalogConfig struct {
	Source   string // postgres, memory
	PageSize int    // default page size for product listing
}

type CartConfig struct {
	Store string        // redis, memory
	TTL   time.Duration // how long an idle cart survives in the store
}

type CheckoutConfig struct {
	ProcessTimeout time.Duration // budget for one OrderProcessor call
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cartTTL, err := time.ParseDuration(getEnv("CART_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CART_TTL: %w", err)
	}

	processTimeout, err := time.ParseDuration(getEnv("CHECKOUT_PROCESS_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHECKOUT_PROCESS_TIMEOUT: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "SportsStore API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "sportsstore"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Email: EmailConfig{
			Provider:  getEnv("EMAIL_PROVIDER", "noop"),
			Host:      getEnv("EMAIL_SMTP_HOST", "localhost"),
			Port:      getEnvInt("EMAIL_SMTP_PORT", 587),
			Username:  getEnv("EMAIL_SMTP_USERNAME", ""),
			Password:  getEnv("EMAIL_SMTP_PASSWORD", ""),
			From:      getEnv("EMAIL_FROM", "orders@sportsstore.dev"),
			To:        getEnv("EMAIL_TO", "operator@sportsstore.dev"),
			PickupDir: getEnv("EMAIL_PICKUP_DIR", "./orders"),
		},
		Catalog: CatalogConfig{
			Source:   getEnv("CATALOG_SOURCE", "memory"),
			PageSize: getEnvInt("CATALOG_PAGE_SIZE", 4),
		},
		Cart: CartConfig{
			Store: getEnv("CART_STORE", "memory"),
			TTL:   cartTTL,
		},
		Checkout: CheckoutConfig{
			ProcessTimeout: processTimeout,
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the application cannot run with
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case "postgres", "memory":
	default:
		return fmt.Errorf("CATALOG_SOURCE must be postgres or memory, got %q", c.Catalog.Source)
	}

	switch c.Cart.Store {
	case "redis", "memory":
	default:
		return fmt.Errorf("CART_STORE must be redis or memory, got %q", c.Cart.Store)
	}

	switch c.Email.Provider {
	case "smtp", "file", "noop":
	default:
		return fmt.Errorf("EMAIL_PROVIDER must be smtp, file or noop, got %q", c.Email.Provider)
	}

	if c.Catalog.PageSize < 1 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be >= 1, got %d", c.Catalog.PageSize)
	}

	if c.App.Environment == "production" {
		if c.Catalog.Source == "postgres" && c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Email.Provider == "noop" {
			fmt.Println("WARNING: EMAIL_PROVIDER is noop - order notifications will be dropped")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
