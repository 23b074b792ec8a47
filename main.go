package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "productstore/docs"
	"productstore/internal/config"
	"productstore/internal/handlers"
	"productstore/internal/models"
	"productstore/internal/repositories"
	"productstore/internal/services"
	"productstore/pkg/rabbitmq"
)

//	@title			Products REST API
//	@version		1.0
//	@description	CRUD API for managing product records.
//	@BasePath		/api

func main() {
	cfg := config.Load()

	// --- Message broker (optional) ---
	// Product lifecycle events are best effort: a missing or unreachable
	// broker disables them without affecting the HTTP API.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("RabbitMQ unavailable, product events disabled: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}

	// --- Database ---
	db := connectDB(cfg)

	// --- Wiring ---
	productRepo := repositories.NewGORMProductRepository(db)
	productService := services.NewProductService(productRepo, publisher)
	productHandler := handlers.NewProductHandler(productService)

	app := newApp(cfg, productHandler)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", cfg.AppPort)
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// connectDB opens the Postgres connection and syncs the schema. A failed
// handshake is logged but does not stop the process: the HTTP layer
// still starts and reports gateway errors per request instead.
func connectDB(cfg config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to the database: %v", err)
		return nil
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Printf("Error migrating the database schema: %v", err)
	}
	log.Println("Database connection established")
	return db
}

// newApp builds the Fiber app with its middleware, routes and docs.
func newApp(cfg config.Config, productHandler *handlers.ProductHandler) *fiber.App {
	app := fiber.New()

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	if cfg.FrontendURL != "" {
		app.Use(cors.New(cors.Config{AllowOrigins: cfg.FrontendURL}))
	} else {
		app.Use(cors.New())
	}

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)

	// Interactive API documentation, generated from the handler
	// annotations.
	app.Get("/docs/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
