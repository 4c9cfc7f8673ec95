package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"productos-api/internal/config"
	"productos-api/internal/handlers"
	"productos-api/internal/repositories"
	"productos-api/internal/services"
)

// newApp assembles the Fiber app on top of the given repository.
func newApp(repo repositories.ProductRepository, info handlers.Info) *fiber.App {
	productService := services.NewProductService(repo)
	productHandler := handlers.NewProductHandler(productService, info)

	app := fiber.New()
	app.Use(logger.New()) // Request logger

	productHandler.RegisterRoutes(app)
	return app
}

func main() {
	// --- Configuration ---
	cfg := config.Load()

	log.Printf("Starting Products API")
	log.Printf("Environment: %s", cfg.Environment)
	log.Printf("Region: %s", cfg.AWSRegion)
	log.Printf("Table: %s", cfg.TableName)

	// --- Storage Client ---
	awsCfg, err := cfg.AWS(context.Background())
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}
	client := dynamodb.NewFromConfig(awsCfg)

	// --- Repositories and Fiber App ---
	productRepo := repositories.NewDynamoProductRepository(client, cfg.TableName)
	app := newApp(productRepo, handlers.Info{
		Environment: cfg.Environment,
		Table:       cfg.TableName,
		Region:      cfg.AWSRegion,
	})

	// --- Start HTTP Server ---
	log.Printf("Listening on %s", cfg.Addr())

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
