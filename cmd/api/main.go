package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/konnekit/orcamentos-api/internal/application/service"
	"github.com/konnekit/orcamentos-api/internal/config"
	"github.com/konnekit/orcamentos-api/internal/infrastructure/database"
	"github.com/konnekit/orcamentos-api/internal/infrastructure/repository"
	"github.com/konnekit/orcamentos-api/internal/presentation/http/handler"
	"github.com/konnekit/orcamentos-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Sweep expired idempotency keys in the background
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if deleted, err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: failed to delete expired idempotency keys: %v", err)
			} else if deleted > 0 {
				log.Printf("Deleted %d expired idempotency keys", deleted)
			}
		}
	}()

	// Initialize services
	clientService := service.NewClientService(clientRepo, quoteRepo)
	productService := service.NewProductService(productRepo, quoteRepo)
	quoteService := service.NewQuoteService(quoteRepo, clientRepo, productRepo)
	exportService := service.NewQuoteExportService(quoteRepo, &cfg.Company, &cfg.Quote, nil)

	// Initialize handlers
	handlers := &routes.Handlers{
		Client:  handler.NewClientHandler(clientService),
		Product: handler.NewProductHandler(productService),
		Quote:   handler.NewQuoteHandler(quoteService, exportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
