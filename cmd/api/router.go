package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Axocidue/SportsStore/internal/shared/middleware"
	"github.com/Axocidue/SportsStore/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	sessionConfig := middleware.DefaultSessionConfig()
	if c.Config.App.Environment == "development" {
		sessionConfig.CookieSecure = false
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupCatalogRoutes(v1, c)
		setupCartRoutes(v1, c, sessionConfig)
	}

	return router
}

func setupCatalogRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/products", c.CatalogHandler.ListProducts)
	v1.GET("/products/:id/image", c.CatalogHandler.ProductImage)
	v1.GET("/categories", c.CatalogHandler.Categories)
}

func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container, sessionConfig middleware.SessionConfig) {
	cart := v1.Group("/cart")
	cart.Use(middleware.Session(sessionConfig))
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.DELETE("/items/:productID", c.CartHandler.RemoveItem)
		cart.DELETE("", c.CartHandler.ClearCart)
		cart.POST("/checkout", c.CartHandler.Checkout)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
			"time":    time.Now().UTC().Format(time.RFC3339),
		}

		if c.DB != nil {
			if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
				status["status"] = "degraded"
				status["database"] = err.Error()
			} else {
				status["database"] = "ok"
			}
		}

		if c.Redis != nil {
			if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
				status["status"] = "degraded"
				status["redis"] = err.Error()
			} else {
				status["redis"] = "ok"
			}
		}

		code := http.StatusOK
		if status["status"] != "ok" {
			code = http.StatusServiceUnavailable
		}
		ctx.JSON(code, status)
	}
}
