package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"app/cache"
	"app/config"
	"app/database"
	"app/handlers"
	"app/history"
	"app/middleware"
	"app/routes"
	"app/search"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	config.Load()

	if config.AppConfig.SearchAPIBaseURL == "" {
		log.Fatal("SEARCH_API_BASE_URL is not set")
	}

	// Pick the durable storage backend for the price history blob.
	var blob history.Blob
	switch config.AppConfig.HistoryBackend {
	case "postgres":
		if config.AppConfig.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is not set")
		}
		database.Connect(config.AppConfig.DatabaseURL)
		defer database.Close()
		blob = database.HistoryBlob{Pool: database.GetDB()}
	case "redis":
		redisBlob, err := cache.New(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, config.AppConfig.RedisDB)
		if err != nil {
			log.Fatalf("Unable to connect to Redis: %v", err)
		}
		defer redisBlob.Close()
		blob = redisBlob
	case "file":
		blob = history.FileBlob{Path: config.AppConfig.HistoryFile}
	default:
		log.Fatalf("Unknown HISTORY_BACKEND %q (want postgres, redis or file)", config.AppConfig.HistoryBackend)
	}

	store, loadStatus := history.Open(context.Background(), blob)
	if loadStatus == history.LoadCorrupt {
		log.Println("Price history could not be loaded; starting with empty history")
	}

	searchClient := search.NewClient(config.AppConfig.SearchAPIBaseURL)

	var vendorClient *search.VendorClient
	if config.AppConfig.VendorAPIBaseURL != "" {
		vendorClient = search.NewVendorClient(config.AppConfig.VendorAPIBaseURL)
	}

	h := handlers.New(store, searchClient, vendorClient, loadStatus)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())
	app.Use(middleware.RequestLogger)

	// Setup routes
	routes.SetupRoutes(app, h)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
