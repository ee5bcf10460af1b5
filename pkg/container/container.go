package container

import (
	"context"
	"fmt"
	"time"

	"github.com/Axocidue/SportsStore/internal/config"
	cartHandler "github.com/Axocidue/SportsStore/internal/domains/cart/handler"
	cartService "github.com/Axocidue/SportsStore/internal/domains/cart/service"
	cartStore "github.com/Axocidue/SportsStore/internal/domains/cart/store"
	catalogHandler "github.com/Axocidue/SportsStore/internal/domains/catalog/handler"
	catalogRepo "github.com/Axocidue/SportsStore/internal/domains/catalog/repository"
	catalogService "github.com/Axocidue/SportsStore/internal/domains/catalog/service"
	checkoutService "github.com/Axocidue/SportsStore/internal/domains/checkout/service"
	"github.com/Axocidue/SportsStore/internal/infrastructure/cache"
	"github.com/Axocidue/SportsStore/internal/infrastructure/database"
	"github.com/Axocidue/SportsStore/internal/infrastructure/email"
	"github.com/Axocidue/SportsStore/pkg/logger"
)

// Container is the root of the dependency graph. All wiring is explicit
// constructor injection, done once at startup; nothing resolves
// dependencies at request time.
type Container struct {
	Config *config.Config

	// Infrastructure (nil when the matching source/store is "memory")
	DB    *database.PostgresDB
	Redis *cache.RedisClient

	// Domain wiring
	CatalogRepo     catalogRepo.RepositoryInterface
	CartStore       cartStore.StoreInterface
	OrderProcessor  checkoutService.OrderProcessor
	CatalogService  catalogService.ServiceInterface
	CheckoutService checkoutService.ServiceInterface
	CartService     cartService.ServiceInterface

	// HTTP handlers
	CatalogHandler *catalogHandler.Handler
	CartHandler    *cartHandler.Handler
}

// NewContainer builds the whole dependency graph in order: config,
// infrastructure, repositories/stores, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	if err := c.initDomains(); err != nil {
		return nil, err
	}

	c.CatalogHandler = catalogHandler.NewHandler(c.CatalogService)
	c.CartHandler = cartHandler.NewHandler(c.CartService)

	logger.Info("container initialized", map[string]interface{}{
		"catalog_source":  cfg.Catalog.Source,
		"cart_store":      cfg.Cart.Store,
		"order_processor": cfg.Email.Provider,
	})

	return c, nil
}

func (c *Container) initInfrastructure() error {
	if c.Config.Catalog.Source == "postgres" {
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.HealthCheck(context.Background()); err != nil {
			return fmt.Errorf("database health check failed: %w", err)
		}

		c.DB = db
	}

	if c.Config.Cart.Store == "redis" {
		redisClient := cache.NewRedisClient(
			c.Config.Redis.Host,
			c.Config.Redis.Password,
			c.Config.Redis.DB,
		)

		if err := redisClient.Connect(context.Background()); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}

		c.Redis = redisClient
	}

	return nil
}

func (c *Container) initDomains() error {
	// Catalog read side
	switch c.Config.Catalog.Source {
	case "postgres":
		c.CatalogRepo = catalogRepo.NewPostgresRepository(c.DB.Pool)
	case "memory":
		c.CatalogRepo = catalogRepo.NewSeededRepository()
	default:
		return fmt.Errorf("unknown catalog source %q", c.Config.Catalog.Source)
	}

	// Session cart storage
	switch c.Config.Cart.Store {
	case "redis":
		c.CartStore = cartStore.NewRedisStore(c.Redis.Client, c.Config.Cart.TTL)
	case "memory":
		c.CartStore = cartStore.NewMemoryStore()
	default:
		return fmt.Errorf("unknown cart store %q", c.Config.Cart.Store)
	}

	// Order processor selection happens here, once, by configuration
	switch c.Config.Email.Provider {
	case "smtp":
		c.OrderProcessor = email.NewSMTPOrderProcessor(email.Settings{
			Host:     c.Config.Email.Host,
			Port:     c.Config.Email.Port,
			Username: c.Config.Email.Username,
			Password: c.Config.Email.Password,
			From:     c.Config.Email.From,
			To:       c.Config.Email.To,
		})
	case "file":
		c.OrderProcessor = email.NewFileOrderProcessor(c.Config.Email.PickupDir)
	case "noop":
		c.OrderProcessor = email.NewNoopOrderProcessor()
	default:
		return fmt.Errorf("unknown email provider %q", c.Config.Email.Provider)
	}

	c.CatalogService = catalogService.NewCatalogService(c.CatalogRepo, c.Config.Catalog.PageSize)
	c.CheckoutService = checkoutService.NewCheckoutService(c.OrderProcessor, c.Config.Checkout.ProcessTimeout)
	c.CartService = cartService.NewCartService(c.CatalogRepo, c.CartStore, c.CheckoutService)

	return nil
}

// Cleanup releases infrastructure connections
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
}
