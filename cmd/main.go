package main

import (
	"fmt"
	"os"

	"github.com/anlewis/rails-engine/internal/handler"
	"github.com/anlewis/rails-engine/internal/middleware"
	"github.com/anlewis/rails-engine/internal/model"
	"github.com/anlewis/rails-engine/pkg/config"
	"github.com/anlewis/rails-engine/pkg/database"
	"github.com/anlewis/rails-engine/pkg/logger"
	"github.com/anlewis/rails-engine/pkg/metrics"
	"github.com/anlewis/rails-engine/prometheus"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found or error loading: %v\n", err)
	}

	// Load configuration
	conf, err := config.Load("rails-engine")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.InitLogger(&logger.LogConfig{
		Level:       conf.Log.Level,
		Environment: conf.Server.Env,
		ServiceName: conf.ServiceName,
	})
	if err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()

	// Initialize database connection
	_, err = database.InitDB(&conf.DB)
	if err != nil {
		log.Fatal("Failed to initialize database")
	}

	// Run migrations for the sales schema
	err = database.MigrateModels(
		&model.Customer{},
		&model.Merchant{},
		&model.Invoice{},
		&model.Item{},
		&model.InvoiceItem{},
		&model.Transaction{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database models")
	}

	// Initialize metrics
	prometheus.InitMetrics(conf)
	httpMetrics := metrics.NewHTTPMetrics(conf.ServiceName)

	// Initialize Echo framework
	e := echo.New()

	// Apply middleware
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.Middleware())
	e.Use(httpMetrics.Middleware())

	// Operational endpoints
	e.GET("/metrics", echo.WrapHandler(metrics.GetPrometheusHandler()))
	e.GET("/healthz", handler.HealthCheck)

	v1 := e.Group("/api/v1")

	customers := v1.Group("/customers")
	customers.GET("", handler.ListCustomers)
	customers.GET("/find", handler.FindCustomer)
	customers.GET("/find_all", handler.FindAllCustomers)
	customers.GET("/random", handler.RandomCustomer)
	customers.GET("/:id", handler.GetCustomer)
	customers.GET("/:id/favorite_merchant", handler.FavoriteMerchant)
	customers.GET("/:id/:relation", handler.CustomerRelated)

	merchants := v1.Group("/merchants")
	merchants.GET("", handler.ListMerchants)
	merchants.GET("/find", handler.FindMerchant)
	merchants.GET("/find_all", handler.FindAllMerchants)
	merchants.GET("/:id", handler.GetMerchant)
	merchants.GET("/:id/:relation", handler.MerchantRelated)

	// Start server
	log.Info("Starting rails-engine on port " + conf.Server.Port)
	e.Logger.Fatal(e.Start(":" + conf.Server.Port))
}
